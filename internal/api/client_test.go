package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rickPage = `{
  "info": {"count": 107, "pages": 6},
  "results": [
    {"id": 1, "name": "Rick Sanchez", "status": "Alive", "species": "Human", "type": "", "gender": "Male",
     "image": "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
     "location": {"name": "Citadel of Ricks", "url": "https://rickandmortyapi.com/api/location/3"}},
    {"id": 8, "name": "Adjudicator Rick", "status": "Dead", "species": "Human", "type": "", "gender": "Male",
     "image": "https://rickandmortyapi.com/api/character/avatar/8.jpeg",
     "location": {"name": "Citadel of Ricks", "url": ""}},
    {"id": 15, "name": "Alien Rick", "status": "unknown", "species": "Alien", "type": "", "gender": "Male",
     "image": "https://rickandmortyapi.com/api/character/avatar/15.jpeg"},
    {"id": 19, "name": "Antenna Rick", "status": "unknown", "species": "Human", "type": "Human with antennae", "gender": "Male",
     "image": "https://rickandmortyapi.com/api/character/avatar/19.jpeg",
     "location": {"name": "unknown", "url": ""}}
  ]
}`

const nothingHere = `{"error":"There is nothing here"}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/api", 2*time.Second, nil)
	require.NoError(t, err)
	return c
}

func TestSearchCharactersSendsNameAndPage(t *testing.T) {
	var gotPath, gotName, gotPage string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotName = r.URL.Query().Get("name")
		gotPage = r.URL.Query().Get("page")
		_, _ = w.Write([]byte(rickPage))
	})

	page, err := c.SearchCharacters(context.Background(), "rick", 2)
	require.NoError(t, err)

	assert.Equal(t, "/api/character/", gotPath)
	assert.Equal(t, "rick", gotName)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, 6, page.Pages)
	assert.Equal(t, 107, page.Count)
	require.Len(t, page.Characters, 4)
	assert.Equal(t, "Rick Sanchez", page.Characters[0].Name)
	assert.Nil(t, page.Characters[2].Location)
	assert.Equal(t, "Unknown", page.Characters[2].LocationName())
	assert.Equal(t, "Human with antennae", page.Characters[3].Type)
}

func TestSearchCharactersNoMatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(nothingHere))
	})

	_, err := c.SearchCharacters(context.Background(), "zzzz", 1)
	require.ErrorIs(t, err, ErrNoResults)
}

func TestSearchCharactersClampsPage(t *testing.T) {
	var gotPage string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		_, _ = w.Write([]byte(rickPage))
	})

	_, err := c.SearchCharacters(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, "1", gotPage)
}

func TestSearchCharactersServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := c.SearchCharacters(context.Background(), "rick", 1)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Contains(t, se.Body, "upstream down")
}

func TestSearchCharactersBadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	})

	_, err := c.SearchCharacters(context.Background(), "rick", 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResults)
	assert.Contains(t, err.Error(), "decode response")
}

func TestSearchCharactersHonoursContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.SearchCharacters(ctx, "rick", 1)
	require.Error(t, err)
}

func TestSuggestNamesLimitsAndKeepsOrder(t *testing.T) {
	var hadPage bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadPage = r.URL.Query()["page"]
		_, _ = w.Write([]byte(rickPage))
	})

	names, err := c.SuggestNames(context.Background(), "ri", 3)
	require.NoError(t, err)
	assert.False(t, hadPage)
	assert.Equal(t, []string{"Rick Sanchez", "Adjudicator Rick", "Alien Rick"}, names)
}

func TestSuggestNamesNoMatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(nothingHere))
	})

	_, err := c.SuggestNames(context.Background(), "qqq", 3)
	require.ErrorIs(t, err, ErrNoResults)
}

func TestSampleCharactersAndLocations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/character", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rickPage))
	})
	mux.HandleFunc("/api/location", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"info":{"count":2,"pages":1},"results":[{"id":1,"name":"Earth (C-137)"},{"id":2,"name":"Abadango"}]}`))
	})
	c := newTestClient(t, mux.ServeHTTP)

	chars, err := c.SampleCharacters(context.Background())
	require.NoError(t, err)
	assert.Len(t, chars, 4)

	locs, err := c.Locations(context.Background())
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, "Earth (C-137)", locs[0].Name)
}

func TestStatusErrorBodyKeepsRunesWhole(t *testing.T) {
	body := strings.Repeat("ü", 250)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(body))
	})

	_, err := c.SearchCharacters(context.Background(), "rick", 1)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.True(t, utf8.ValidString(statusErr.Body))
	assert.Equal(t, strings.Repeat("ü", 200)+"...", statusErr.Body)
}
