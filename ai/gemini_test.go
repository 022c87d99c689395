package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiGenerate(t *testing.T) {
	var got generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"The wifi password is ABC123."}]}}]}`)
	}))
	defer server.Close()

	client := NewGeminiClient("secret", "gemini-2.5-flash")
	client.SetBaseURL(server.URL)

	history := []Turn{
		{Role: RoleUser, Text: "hi"},
		{Role: RoleModel, Text: "hello"},
	}
	text, err := client.Generate(context.Background(), "You are the Concierge.", history, "What is the wifi password?")
	require.NoError(t, err)
	assert.Equal(t, "The wifi password is ABC123.", text)

	// System instruction plus history plus the new message, in order
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "You are the Concierge.", got.SystemInstruction.Parts[0].Text)
	require.Len(t, got.Contents, 3)
	assert.Equal(t, RoleUser, got.Contents[0].Role)
	assert.Equal(t, RoleModel, got.Contents[1].Role)
	assert.Equal(t, RoleUser, got.Contents[2].Role)
	assert.Equal(t, "What is the wifi password?", got.Contents[2].Parts[0].Text)
}

func TestGeminiGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"code":429,"message":"rate limited","status":"RESOURCE_EXHAUSTED"}}`)
	}))
	defer server.Close()

	client := NewGeminiClient("secret", "gemini-2.5-flash")
	client.SetBaseURL(server.URL)

	_, err := client.Generate(context.Background(), "", nil, "hi")
	require.Error(t, err)
	assert.Equal(t, "rate limited", err.Error())
}

func TestGeminiGenerateNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	client := NewGeminiClient("secret", "gemini-2.5-flash")
	client.SetBaseURL(server.URL)

	_, err := client.Generate(context.Background(), "", nil, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}
