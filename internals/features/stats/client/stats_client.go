package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"ewm_backend/internals/features/stats/dto"
	"ewm_backend/internals/helpers/dbtime"
)

// Client talks to the statistics service.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// Hit records a single endpoint hit.
func (c *Client) Hit(ctx context.Context, hit dto.EndpointHit) error {
	if c.BaseURL == "" {
		return errors.New("stats base url is empty")
	}
	b, err := sonic.Marshal(hit)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/hit", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

// Stats returns hit counts per uri in [start, end]. With unique set, repeated
// hits from one ip count once.
func (c *Client) Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]dto.ViewStats, error) {
	if c.BaseURL == "" {
		return nil, errors.New("stats base url is empty")
	}
	q := url.Values{}
	q.Set("start", start.Format(dbtime.Layout))
	q.Set("end", end.Format(dbtime.Layout))
	for _, u := range uris {
		q.Add("uris", u)
	}
	q.Set("unique", strconv.FormatBool(unique))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/stats?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var out []dto.ViewStats
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return out, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("stats %s %s: http %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return b, nil
}
