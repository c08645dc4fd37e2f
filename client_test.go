package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JankMajesty/selectmtgdb/internal/carddb"
)

func TestSetCardsPagination(t *testing.T) {
	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Query().Get("q")+"#"+r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, `{"data":[{"name":"Opt","type_line":"Instant","set":"inv","set_name":"Invasion"}],"has_more":true,"total_cards":2}`)
			return
		}
		fmt.Fprint(w, `{"data":[{"name":"Probe","type_line":"Sorcery","set":"inv","set_name":"Invasion"}],"has_more":false,"total_cards":2}`)
	}))
	defer srv.Close()

	client := NewAPIClient(APIConfig{BaseURL: srv.URL})
	cards, err := client.SetCards(context.Background(), "inv")
	require.NoError(t, err)

	require.Len(t, cards, 2)
	assert.Equal(t, "Opt", cards[0].Name)
	assert.Equal(t, "Probe", cards[1].Name)
	assert.Equal(t, []string{"set:inv#1", "set:inv#2"}, requests)
}

func TestSetCardsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewAPIClient(APIConfig{BaseURL: srv.URL})
	_, err := client.SetCards(context.Background(), "inv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSetCardsEmptySet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The search API answers 404 for queries with no matches.
		http.Error(w, `{"object":"error","code":"not_found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewAPIClient(APIConfig{BaseURL: srv.URL})
	cards, err := client.SetCards(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestBasicLandPrintsFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "prints", r.URL.Query().Get("unique"))

		// q looks like: name:"Island" set:usg
		name := strings.TrimPrefix(strings.SplitN(r.URL.Query().Get("q"), " ", 2)[0], "name:")
		name = strings.Trim(name, `"`)

		w.Header().Set("Content-Type", "application/json")
		// One matching printing, one from another set, one loose name match.
		fmt.Fprintf(w, `{"data":[
			{"name":%[1]q,"set":"usg","set_name":"Urza's Saga","artist":"A"},
			{"name":%[1]q,"set":"inv","set_name":"Invasion","artist":"B"},
			{"name":"Snow-Covered %[1]s","set":"usg","set_name":"Urza's Saga"}
		],"has_more":false}`, name)
	}))
	defer srv.Close()

	client := NewAPIClient(APIConfig{BaseURL: srv.URL})
	prints, err := client.BasicLandPrints(context.Background(), "usg")
	require.NoError(t, err)

	// One printing survives per land name, filtered to exact name + set.
	require.Len(t, prints, 5)
	for _, p := range prints {
		assert.Equal(t, "usg", p.Set)
		assert.Equal(t, "A", p.Artist)
	}
	assert.Equal(t, "Island", prints[1].Name)
}

func TestMergeBasicLands(t *testing.T) {
	t.Parallel()

	cards := []carddb.Card{
		{Name: "Opt"},
		{Name: "Island"},
		{Name: "Forest"},
	}
	prints := []carddb.Card{
		{Name: "Island", Artist: "A"},
		{Name: "Island", Artist: "B"},
		{Name: "Forest", Artist: "C"},
	}

	merged := mergeBasicLands(cards, prints)
	require.Len(t, merged, 4)
	assert.Equal(t, "Opt", merged[0].Name)
	assert.Equal(t, "A", merged[1].Artist)
	assert.Equal(t, "B", merged[2].Artist)
	assert.Equal(t, "C", merged[3].Artist)

	// No printings fetched: the collapsed rows stay.
	assert.Equal(t, cards, mergeBasicLands(cards, nil))
}

func TestSearchSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[],"has_more":false}`)
	}))
	defer srv.Close()

	client := NewAPIClient(APIConfig{BaseURL: srv.URL, UserAgent: "selectmtgdb/test"})
	_, err := client.SetCards(context.Background(), "inv")
	require.NoError(t, err)
	assert.Equal(t, "selectmtgdb/test", gotUA)
}
