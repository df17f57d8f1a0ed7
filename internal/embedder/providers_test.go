package embedder

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

func manyTexts(n int) []string {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("chunk %03d", i)
	}
	return texts
}

// A long document chunks into more texts than one API request allows; the
// provider must split the batch instead of rejecting it.
func TestOpenAIProvider_EmbedBatchSplitsRequests(t *testing.T) {
	var requestSizes []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requestSizes = append(requestSizes, len(req.Input))

		type item struct {
			Embedding []float32 `json:"embedding"`
			Index     int       `json:"index"`
		}
		resp := struct {
			Data []item `json:"data"`
		}{}
		for i, text := range req.Input {
			var n int
			_, err := fmt.Sscanf(text, "chunk %d", &n)
			require.NoError(t, err)
			resp.Data = append(resp.Data, item{
				Embedding: []float32{float32(n)},
				Index:     i,
			})
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	p := &OpenAIProvider{
		apiKey:     "test-key",
		model:      DefaultOpenAIModel,
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}

	texts := manyTexts(2*MaxBatchSize + 50)
	vecs, err := p.EmbedBatch(context.Background(), texts)
	require.NoError(t, err)

	require.Len(t, vecs, len(texts))
	assert.Equal(t, []int{MaxBatchSize, MaxBatchSize, 50}, requestSizes)
	for i, vec := range vecs {
		require.Len(t, vec, 1)
		assert.Equal(t, float32(i), vec[0], "vector %d out of order", i)
	}
}

func TestOllamaProvider_EmbedBatchLarge(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"embedding": []float32{0.25},
		}))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, nil)
	p.httpClient = srv.Client()

	texts := manyTexts(MaxBatchSize + 20)
	vecs, err := p.EmbedBatch(context.Background(), texts)
	require.NoError(t, err)

	assert.Len(t, vecs, len(texts))
	assert.Equal(t, len(texts), requests)
}

func TestOpenAIProvider_ResponseCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []interface{}{},
		}))
	}))
	defer srv.Close()

	p := &OpenAIProvider{
		apiKey:     "test-key",
		model:      DefaultOpenAIModel,
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}

	_, err := p.EmbedBatch(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, ErrProviderFailed)
}
