package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// DictionaryClient proxies word lookups to a dictionary API.
type DictionaryClient struct {
	baseURL string
	client  *http.Client
}

// NewDictionaryClient returns a dictionary lookup client. baseURL is the
// entries endpoint up to and excluding the word segment.
func NewDictionaryClient(baseURL string) *DictionaryClient {
	return &DictionaryClient{
		baseURL: baseURL,
		client:  newHTTPClient(),
	}
}

// Lookup fetches the dictionary entry for the word and returns the JSON
// response verbatim.
func (c *DictionaryClient) Lookup(ctx context.Context, word string) (json.RawMessage, error) {
	req, err := newJSONRequest(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(word), nil)
	if err != nil {
		return nil, err
	}

	return do(c.client, "dictionary", req)
}
