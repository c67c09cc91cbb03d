package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_FixedTemplates(t *testing.T) {
	cases := []struct {
		typ  SuggestionType
		want string
	}{
		{FixGrammar, "Fix the grammar"},
		{Summarize, "Summarize the following"},
		{Expand, "Continue writing"},
		{Rephrase, "Rephrase the following"},
		{GenerateIdeas, "Generate 5 creative ideas"},
	}
	for _, tc := range cases {
		p := BuildPrompt(tc.typ, "some text", "")
		require.True(t, strings.HasPrefix(p, tc.want), "type %s: got %q", tc.typ, p)
		require.Contains(t, p, `"some text"`)
	}
}

func TestBuildPrompt_UnknownTypeUsesUserPrompt(t *testing.T) {
	p := BuildPrompt(SuggestionType("custom"), "ctx", "do a thing")
	require.Contains(t, p, "do a thing")
	require.Contains(t, p, `"ctx"`)

	// no user prompt: the bare context passes through
	require.Equal(t, "ctx", BuildPrompt(SuggestionType("custom"), "ctx", ""))
}

func TestSuggestionTypeKnown(t *testing.T) {
	require.True(t, FixGrammar.Known())
	require.True(t, GenerateIdeas.Known())
	require.False(t, SuggestionType("nope").Known())
}

func TestGeminiClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		require.Equal(t, "key-1", r.Header.Get("x-goog-api-key"))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"world"}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(GeminiOptions{BaseURL: srv.URL, APIKey: "key-1", Model: "test-model"})
	out, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "Hello world", out)
}

func TestGeminiClient_FailureMapsToFixedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewGeminiClient(GeminiOptions{BaseURL: srv.URL, APIKey: "k"})
	_, err := c.Generate(context.Background(), "p")
	require.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGeminiClient_MissingKeyFailsWithoutNetworkCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewGeminiClient(GeminiOptions{BaseURL: srv.URL})
	_, err := c.Generate(context.Background(), "p")
	require.ErrorIs(t, err, ErrGenerationFailed)
	require.False(t, called)
}
