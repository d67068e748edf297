package sheetfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/xavierca1/leadboard/internal/entity"
)


// Client talks to the spreadsheet-backed lead feed. One fixed sheetId
// serves every account; the sheetName query parameter selects the
// per-account tab (the 10-digit phone namespace).
type Client struct {
	baseURL string
	sheetID string
}


func NewClient(baseURL, sheetID string) *Client {
	return &Client{
		baseURL: baseURL,
		sheetID: sheetID,
	}
}


// StatusError carries the feed's HTTP status upstream. The dashboard
// treats a 500 from the feed as "no data for this account".
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sheet feed returned status %d: %s", e.Code, e.Body)
}

func (e *StatusError) StatusCode() int {
	return e.Code
}


func (c *Client) FetchLeads(ctx context.Context, sheetName string) ([]entity.Lead, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("sheet feed not configured")
	}

	endpoint := fmt.Sprintf("%s?sheetId=%s&sheetName=%s",
		c.baseURL, url.QueryEscape(c.sheetID), url.QueryEscape(sheetName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var result FeedResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("sheet feed returned invalid JSON: %w", err)
	}

	leads := make([]entity.Lead, 0, len(result.Leads))
	for _, fl := range result.Leads {
		leads = append(leads, fl.ToLead())
	}

	return leads, nil
}
