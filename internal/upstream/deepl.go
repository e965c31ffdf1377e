package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

const defaultDeepLURL = "https://api-free.deepl.com/v2/translate"

// DeepLClient proxies translation requests to DeepL.
type DeepLClient struct {
	baseURL string
	authKey string
	client  *http.Client
}

// NewDeepLClient returns a DeepL translation client. An empty baseURL selects
// the free-tier endpoint.
func NewDeepLClient(baseURL, authKey string) *DeepLClient {
	if baseURL == "" {
		baseURL = defaultDeepLURL
	}
	return &DeepLClient{
		baseURL: baseURL,
		authKey: authKey,
		client:  newHTTPClient(),
	}
}

// TranslateInput is a translation request forwarded to DeepL.
type TranslateInput struct {
	Text       []string `json:"text"`
	TargetLang string   `json:"target_lang"`
	SourceLang string   `json:"source_lang,omitempty"`
}

// Translate forwards the request and returns DeepL's JSON response verbatim.
func (c *DeepLClient) Translate(ctx context.Context, in TranslateInput) (json.RawMessage, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := newJSONRequest(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.authKey)

	return do(c.client, "deepl", req)
}
