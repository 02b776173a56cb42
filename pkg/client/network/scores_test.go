package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreClient_FetchTopScores(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/boards/5x5x12:Shaaft/scores" {
			http.Error(w, "unknown board", http.StatusBadRequest)
			return
		}
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		w.Write([]byte("me,400,40,90,1000\nyou,300,30,80,900\n"))
	}))
	defer server.Close()

	c := NewScoreClient(NewScoreClientOptions{APIURL: server.URL})

	entries, err := c.FetchTopScores(context.Background(), "5x5x12:Shaaft", 3)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "me", entries[0].Name)
	assert.Equal(t, 400, entries[0].Score)
	assert.True(t, entries[1].Online)

	_, err = c.FetchTopScores(context.Background(), "nonsense", 3)
	assert.Error(t, err)
}
