package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/domain/recommendation"
)

// Client searches the YouTube Data API for playlists and videos. Each call
// is bounded by the configured per-query timeout; a timeout surfaces as an
// ordinary query error for the caller's continue-on-failure handling.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *http.Client
	logger  *log.Logger
}

func NewClient(cfg config.YouTubeConfig, logger *log.Logger) *Client {
	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			Kind       string `json:"kind"`
			VideoID    string `json:"videoId"`
			PlaylistID string `json:"playlistId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *Client) Search(ctx context.Context, query string, kind recommendation.Kind, maxResults int) ([]recommendation.Item, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil youtube client")
	}
	if maxResults <= 0 {
		maxResults = 1
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("q", query)
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("type", string(kind))
	q.Set("key", c.apiKey)
	endpoint := c.baseURL + "/search?" + q.Encode()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("youtube search failed: status=%d body=%s", resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Printf("[YouTube] Search error type=%s status=%d body=%q", kind, resp.StatusCode, bodyStr)
		}
		return nil, err
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	items := make([]recommendation.Item, 0, len(out.Items))
	for _, it := range out.Items {
		item, ok := toItem(it.ID.Kind, it.ID.PlaylistID, it.ID.VideoID, it.Snippet.Title, it.Snippet.Thumbnails.Medium.URL)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func toItem(idKind, playlistID, videoID, title, thumbnail string) (recommendation.Item, bool) {
	switch {
	case strings.Contains(idKind, "playlist") && playlistID != "":
		return recommendation.Item{
			ExternalID:   playlistID,
			Kind:         recommendation.KindPlaylist,
			Title:        title,
			ThumbnailURL: thumbnail,
			CanonicalURL: "https://www.youtube.com/playlist?list=" + playlistID,
		}, true
	case videoID != "":
		return recommendation.Item{
			ExternalID:   videoID,
			Kind:         recommendation.KindVideo,
			Title:        title,
			ThumbnailURL: thumbnail,
			CanonicalURL: "https://www.youtube.com/watch?v=" + videoID,
		}, true
	default:
		return recommendation.Item{}, false
	}
}
