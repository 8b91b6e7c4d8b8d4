// Package vision is the recognition collaborator: an HTTP client for an
// OpenAI-compatible vision model that turns a capture image into a
// normalized classification record. The engine only sees the
// fridge.Recognizer interface.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"fridged/pkg/types"
)

// GridHint describes the storage grid so the prompt can ask for a concrete
// level and section.
type GridHint struct {
	LevelTemps       []int
	SectionsPerLevel int
}

// Client calls a chat-completions endpoint with a vision prompt.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	hint       GridHint
	httpClient *http.Client
}

// New constructs a vision client for an OpenAI-style /v1/chat/completions
// endpoint. Requests carry context-based deadlines; the http.Client itself
// has no timeout. An unset hint falls back to the stock 5x4 grid.
func New(baseURL, apiKey, model string, hint GridHint) *Client {
	if len(hint.LevelTemps) == 0 {
		hint.LevelTemps = []int{-18, -5, 2, 6, 10}
	}
	if hint.SectionsPerLevel <= 0 {
		hint.SectionsPerLevel = 4
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		hint:       hint,
		httpClient: &http.Client{Transport: tr, Timeout: 0},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Classify sends the image to the vision model and normalizes the reply.
// A reply the model garbles still yields the default profile rather than
// an error; only transport and API failures surface to the caller.
func (c *Client) Classify(ctx context.Context, imageRef string) (types.Classification, error) {
	img, err := encodeImage(imageRef)
	if err != nil {
		return types.Classification{}, err
	}
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "image_url", ImageURL: &imageURL{URL: img}},
				{Type: "text", Text: c.prompt()},
			},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return types.Classification{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return types.Classification{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Classification{}, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return types.Classification{}, err
	}
	var out chatResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return types.Classification{}, fmt.Errorf("vision response decode: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return types.Classification{}, fmt.Errorf("vision api status %d: %s", resp.StatusCode, out.Error.Message)
		}
		return types.Classification{}, fmt.Errorf("vision api status %d", resp.StatusCode)
	}
	if len(out.Choices) == 0 {
		return types.Classification{}, errors.New("vision api returned no choices")
	}
	return ParseClassification(out.Choices[0].Message.Content), nil
}

// encodeImage inlines a local file as a data URL. http(s) references pass
// through for the API to fetch itself.
func encodeImage(imageRef string) (string, error) {
	if strings.HasPrefix(imageRef, "http://") || strings.HasPrefix(imageRef, "https://") {
		return imageRef, nil
	}
	b, err := os.ReadFile(imageRef)
	if err != nil {
		return "", fmt.Errorf("read capture image: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// prompt asks for a single JSON object matching the classification schema.
func (c *Client) prompt() string {
	var sb strings.Builder
	sb.WriteString("You are the assistant of a smart refrigerated storage unit. ")
	sb.WriteString("Identify the item in the image and decide how to store it.\n\n")
	sb.WriteString("The unit has these levels (fixed temperature each, ")
	fmt.Fprintf(&sb, "%d sections per level):\n", c.hint.SectionsPerLevel)
	for i, t := range c.hint.LevelTemps {
		fmt.Fprintf(&sb, "- level %d: %d C\n", i, t)
	}
	sb.WriteString("\nRespond with exactly one JSON object, no other text, with fields:\n")
	sb.WriteString(`{"name": string, "category": one of fruit|vegetable|meat|dairy|grain|seafood|bakery|beverage|other, `)
	sb.WriteString(`"optimal_temperature": integer Celsius, "shelf_life_days": integer days or "indefinite" for non-food, `)
	sb.WriteString(`"level": integer, "section": integer, "rationale": string}` + "\n\n")
	sb.WriteString("Pick the level whose temperature is closest to the optimal temperature. ")
	sb.WriteString("Meat and seafood belong in freezer levels; produce, dairy and grains in chiller levels. ")
	sb.WriteString("shelf_life_days must be a plain number for food.")
	return sb.String()
}
