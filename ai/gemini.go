package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient talks to the Generative Language REST API. One client per
// process, constructed at bootstrap and injected wherever a Provider is
// needed.
type GeminiClient struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

// NewGeminiClient creates a Gemini client for the given model. Retries
// stay disabled: a failed call surfaces immediately as a chat error.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(60 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &GeminiClient{
		httpClient: client,
		apiKey:     apiKey,
		model:      model,
	}
}

// SetBaseURL points the client at a different endpoint. Used by tests.
func (c *GeminiClient) SetBaseURL(url string) {
	c.httpClient.SetBaseURL(url)
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate runs one completion: system instruction, replayed history,
// then the new user message as the final turn.
func (c *GeminiClient) Generate(ctx context.Context, system string, history []Turn, message string) (string, error) {
	contents := make([]generateContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, generateContent{
			Role:  turn.Role,
			Parts: []generatePart{{Text: turn.Text}},
		})
	}
	contents = append(contents, generateContent{
		Role:  RoleUser,
		Parts: []generatePart{{Text: message}},
	})

	request := generateRequest{Contents: contents}
	if system != "" {
		request.SystemInstruction = &generateContent{Parts: []generatePart{{Text: system}}}
	}

	var response generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(request).
		SetResult(&response).
		SetError(&response).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))

	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.IsError() {
		if response.Error != nil && response.Error.Message != "" {
			return "", errors.New(response.Error.Message)
		}
		return "", fmt.Errorf("gemini API error [%d]: %s", resp.StatusCode(), resp.String())
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("model returned no content")
	}
	return response.Candidates[0].Content.Parts[0].Text, nil
}
