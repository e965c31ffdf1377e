package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

const defaultDeepSeekURL = "https://api.deepseek.com/chat/completions"

// DeepSeekClient proxies chat-completion requests to DeepSeek.
type DeepSeekClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewDeepSeekClient returns a DeepSeek chat client.
func NewDeepSeekClient(baseURL, apiKey string) *DeepSeekClient {
	if baseURL == "" {
		baseURL = defaultDeepSeekURL
	}
	return &DeepSeekClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(),
	}
}

// ChatMessage is one turn of a chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatInput is a chat request forwarded to DeepSeek. The model is pinned
// server-side so clients cannot select arbitrary models on our key.
type ChatInput struct {
	Messages []ChatMessage `json:"messages"`
}

type deepseekRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// Chat forwards the conversation and returns DeepSeek's JSON response verbatim.
func (c *DeepSeekClient) Chat(ctx context.Context, in ChatInput) (json.RawMessage, error) {
	payload, err := json.Marshal(deepseekRequest{
		Model:    "deepseek-chat",
		Messages: in.Messages,
	})
	if err != nil {
		return nil, err
	}

	req, err := newJSONRequest(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return do(c.client, "deepseek", req)
}
