package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/JankMajesty/selectmtgdb/internal/carddb"
)

// basicLandNames get a second pass per set: the paged search collapses
// basic lands to one printing each, losing the per-artist variants.
var basicLandNames = []string{"Plains", "Island", "Swamp", "Mountain", "Forest"}

// APIClient pages through a Scryfall-style card search API.
type APIClient struct {
	baseURL   string
	userAgent string
	pageDelay time.Duration
	hc        *http.Client
}

// NewAPIClient builds a client from the API config.
func NewAPIClient(cfg APIConfig) *APIClient {
	return &APIClient{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		pageDelay: time.Duration(cfg.PageDelayMS) * time.Millisecond,
		hc:        &http.Client{Timeout: 30 * time.Second},
	}
}

// searchPage is one page of the /cards/search response envelope.
type searchPage struct {
	Data       []carddb.Card `json:"data"`
	HasMore    bool          `json:"has_more"`
	TotalCards int           `json:"total_cards"`
}

// SetCards fetches every card of one set, following pagination until the
// API reports no further pages. On a page failure the cards fetched so far
// come back along with the error.
func (c *APIClient) SetCards(ctx context.Context, setCode string) ([]carddb.Card, error) {
	var cards []carddb.Card
	for page := 1; ; page++ {
		sp, err := c.search(ctx, "set:"+setCode, page, "")
		if err != nil {
			return cards, fmt.Errorf("set %s page %d: %w", setCode, page, err)
		}
		cards = append(cards, sp.Data...)
		if !sp.HasMore {
			return cards, nil
		}
		if err := c.wait(ctx); err != nil {
			return cards, err
		}
	}
}

// BasicLandPrints fetches every printing of the five basic lands in a set
// with unique=prints. The API echoes reprints from other sets on loose name
// matches, so results are filtered to exact name and set.
func (c *APIClient) BasicLandPrints(ctx context.Context, setCode string) ([]carddb.Card, error) {
	var prints []carddb.Card
	for i, name := range basicLandNames {
		if i > 0 {
			if err := c.wait(ctx); err != nil {
				return prints, err
			}
		}
		query := fmt.Sprintf("name:%q set:%s", name, setCode)
		for page := 1; ; page++ {
			sp, err := c.search(ctx, query, page, "prints")
			if err != nil {
				return prints, fmt.Errorf("basic land %s in %s: %w", name, setCode, err)
			}
			for _, card := range sp.Data {
				if card.Name == name && card.Set == setCode {
					prints = append(prints, card)
				}
			}
			if !sp.HasMore {
				break
			}
			if err := c.wait(ctx); err != nil {
				return prints, err
			}
		}
	}
	return prints, nil
}

// search performs one /cards/search request. The API answers 404 when a
// query matches nothing; callers see that as an empty page, not a failure.
func (c *APIClient) search(ctx context.Context, query string, page int, unique string) (*searchPage, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	if unique != "" {
		params.Set("unique", unique)
	}
	reqURL := c.baseURL + "/cards/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return &searchPage{}, nil
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var sp searchPage
	if err := json.NewDecoder(resp.Body).Decode(&sp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &sp, nil
}

// wait sleeps the politeness delay between API requests.
func (c *APIClient) wait(ctx context.Context) error {
	if c.pageDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.pageDelay):
		return nil
	}
}

// mergeBasicLands replaces the deduplicated basic-land rows from the paged
// search with the full per-printing list.
func mergeBasicLands(cards, prints []carddb.Card) []carddb.Card {
	if len(prints) == 0 {
		return cards
	}
	isBasic := make(map[string]bool, len(basicLandNames))
	for _, name := range basicLandNames {
		isBasic[name] = true
	}

	merged := make([]carddb.Card, 0, len(cards)+len(prints))
	for _, c := range cards {
		if isBasic[c.Name] {
			continue
		}
		merged = append(merged, c)
	}
	return append(merged, prints...)
}
