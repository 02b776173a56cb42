package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cbodonnell/shaft/pkg/scores"
)

// ScoreClient reads leaderboards from the score API.
type ScoreClient struct {
	apiURL string
	client *http.Client
}

type NewScoreClientOptions struct {
	APIURL string
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

func NewScoreClient(opts NewScoreClientOptions) *ScoreClient {
	c := &ScoreClient{
		apiURL: opts.APIURL,
		client: opts.Client,
	}
	if c.client == nil {
		c.client = http.DefaultClient
	}
	return c
}

// FetchTopScores returns the best limit scores of board, marked online.
func (c *ScoreClient) FetchTopScores(ctx context.Context, board string, limit int) ([]scores.Entry, error) {
	u := fmt.Sprintf("%s/boards/%s/scores?format=csv&limit=%s", c.apiURL, url.PathEscape(board), strconv.Itoa(limit))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scores: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to fetch scores: status: %s, body: %s", resp.Status, string(b))
	}

	return scores.ReadCSV(resp.Body)
}
