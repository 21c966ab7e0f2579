package http

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/mock"
	"github.com/MKhiriev/go-deck-sync/internal/service"
	"github.com/MKhiriev/go-deck-sync/internal/store"
	"github.com/MKhiriev/go-deck-sync/models"
)

var routeTS = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testAPI struct {
	server  *httptest.Server
	data    *mock.MockRemoteDataService
	appInfo *mock.MockAppInfoService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := &testAPI{
		data:    mock.NewMockRemoteDataService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		RemoteDataService: api.data,
		AppInfoService:    api.appInfo,
	}, logger.Nop())

	api.server = httptest.NewServer(h.Init())
	t.Cleanup(api.server.Close)

	return api
}

// do sends a request without transparent gzip handling.
func (a *testAPI) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ── Decks ───────────────────────────────────────────────────────────────────

func TestRoutes_GetDecks(t *testing.T) {
	api := newTestAPI(t)

	decks := []models.Deck{{ID: "d1", UserID: "u1", Title: "Trip", CardCount: 1, LastUpdated: routeTS}}
	api.data.EXPECT().GetDecks(gomock.Any(), "u1").Return(decks, nil)

	resp := api.do(t, http.MethodGet, "/api/users/u1/decks", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))

	var body models.DecksResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Length)
	require.Len(t, body.Decks, 1)
	assert.Equal(t, "Trip", body.Decks[0].Title)
	assert.True(t, body.Decks[0].LastUpdated.Equal(routeTS))
}

func TestRoutes_GetDecks_EmptyIsArray(t *testing.T) {
	api := newTestAPI(t)
	api.data.EXPECT().GetDecks(gomock.Any(), "u1").Return(nil, nil)

	resp := api.do(t, http.MethodGet, "/api/users/u1/decks", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"decks":[],"length":0}`, readBody(t, resp))
}

func TestRoutes_PutDeck(t *testing.T) {
	api := newTestAPI(t)

	api.data.EXPECT().
		SetDeck(gomock.Any(), "u1", "d1", gomock.Any()).
		DoAndReturn(func(_ any, _, _ string, deck models.Deck) error {
			assert.Equal(t, "Trip", deck.Title)
			assert.True(t, deck.LastUpdated.Equal(routeTS))
			return nil
		})

	resp := api.do(t, http.MethodPut, "/api/users/u1/decks/d1",
		`{"title":"Trip","cardCount":0,"lastUpdated":"2026-03-01T12:00:00Z"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRoutes_PutDeck_InvalidJSON(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPut, "/api/users/u1/decks/d1", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoutes_DeleteDeck(t *testing.T) {
	api := newTestAPI(t)
	api.data.EXPECT().DeleteDeck(gomock.Any(), "u1", "d1").Return(nil)

	resp := api.do(t, http.MethodDelete, "/api/users/u1/decks/d1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ── Cards ───────────────────────────────────────────────────────────────────

func TestRoutes_GetCards(t *testing.T) {
	api := newTestAPI(t)

	cards := []models.Card{{ID: "c1", DeckID: "d1", UserID: "u1", Title: "Packing", UpdatedAt: routeTS}}
	api.data.EXPECT().GetCards(gomock.Any(), "u1").Return(cards, nil)

	resp := api.do(t, http.MethodGet, "/api/users/u1/cards", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.CardsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Length)
	assert.Equal(t, "d1", body.Cards[0].DeckID)
}

func TestRoutes_PutCard(t *testing.T) {
	api := newTestAPI(t)
	api.data.EXPECT().SetCard(gomock.Any(), "u1", "c1", gomock.Any()).Return(nil)

	resp := api.do(t, http.MethodPut, "/api/users/u1/cards/c1",
		`{"deckId":"d1","title":"Packing","updatedAt":"2026-03-01T12:00:00Z"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRoutes_DeleteCard(t *testing.T) {
	api := newTestAPI(t)
	api.data.EXPECT().DeleteCard(gomock.Any(), "u1", "c1").Return(nil)

	resp := api.do(t, http.MethodDelete, "/api/users/u1/cards/c1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ── Error statuses ──────────────────────────────────────────────────────────

func TestRoutes_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: deck d1: empty title", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"not found", store.ErrRecordNotFound, http.StatusNotFound},
		{"unavailable", fmt.Errorf("%w: %w: conn reset", store.ErrStorageUnavailable, store.ErrExecutingStatement), http.StatusServiceUnavailable},
		{"sql", fmt.Errorf("%w: syntax", store.ErrExecutingStatement), http.StatusInternalServerError},
		{"unknown", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.data.EXPECT().DeleteDeck(gomock.Any(), "u1", "d1").Return(tt.err)

			resp := api.do(t, http.MethodDelete, "/api/users/u1/decks/d1", "")
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

// ── Service routes ──────────────────────────────────────────────────────────

func TestRoutes_Health(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, readBody(t, resp))
}

func TestRoutes_Version(t *testing.T) {
	api := newTestAPI(t)
	api.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	resp := api.do(t, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Equal(t, "1.2.3", readBody(t, resp))
}

func TestRoutes_UnknownRouteAndMethod(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/users/u1/decks/d1", "{}")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRoutes_GzipListing(t *testing.T) {
	api := newTestAPI(t)
	api.data.EXPECT().GetCards(gomock.Any(), "u1").Return([]models.Card{{ID: "c1", DeckID: "d1", Title: "x"}}, nil)

	req, err := http.NewRequest(http.MethodGet, api.server.URL+"/api/users/u1/cards", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	var body models.CardsResponse
	require.NoError(t, json.NewDecoder(zr).Decode(&body))
	assert.Equal(t, 1, body.Length)
}

func TestRoutes_PanicIsRecovered(t *testing.T) {
	api := newTestAPI(t)
	api.data.EXPECT().GetDecks(gomock.Any(), "u1").DoAndReturn(func(any, string) ([]models.Deck, error) {
		panic("boom")
	})

	resp := api.do(t, http.MethodGet, "/api/users/u1/decks", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
