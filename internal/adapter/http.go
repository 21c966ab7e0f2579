package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-deck-sync/internal/config"
	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/utils"
	"github.com/MKhiriev/go-deck-sync/models"
)

const (
	decksPath  = "/api/users/{userID}/decks"
	deckPath   = "/api/users/{userID}/decks/{id}"
	cardsPath  = "/api/users/{userID}/cards"
	cardPath   = "/api/users/{userID}/cards/{id}"
	healthPath = "/api/health"
)

type httpRemoteGateway struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRemoteGateway constructs a REST implementation of
// [RemoteDataGateway]. It normalises the base URL from cfg.HTTPAddress and
// applies cfg.RequestTimeout to every call.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPRemoteGateway(cfg config.ClientAdapter, logger *logger.Logger) (RemoteDataGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("remote store response")
		return nil
	})

	return &httpRemoteGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteGateway) GetUserDecks(ctx context.Context, userID string) ([]models.Deck, error) {
	var body models.DecksResponse

	resp, err := h.request(ctx, userID, "").
		SetResult(&body).
		Get(decksPath)
	if err != nil {
		return nil, mapTransportError("get decks", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if body.Decks == nil {
		body.Decks = []models.Deck{}
	}
	return body.Decks, nil
}

func (h *httpRemoteGateway) GetUserCards(ctx context.Context, userID string) ([]models.Card, error) {
	var body models.CardsResponse

	resp, err := h.request(ctx, userID, "").
		SetResult(&body).
		Get(cardsPath)
	if err != nil {
		return nil, mapTransportError("get cards", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if body.Cards == nil {
		body.Cards = []models.Card{}
	}
	return body.Cards, nil
}

func (h *httpRemoteGateway) SetDeck(ctx context.Context, userID, id string, deck models.Deck) error {
	resp, err := h.request(ctx, userID, id).
		SetHeader("Content-Type", "application/json").
		SetBody(deck.ForRemote()).
		Put(deckPath)
	if err != nil {
		return mapTransportError("set deck", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteGateway) DeleteDeck(ctx context.Context, userID, id string) error {
	resp, err := h.request(ctx, userID, id).Delete(deckPath)
	if err != nil {
		return mapTransportError("delete deck", err)
	}

	return ignoreNotFound(mapHTTPError(resp))
}

func (h *httpRemoteGateway) SetCard(ctx context.Context, userID, id string, card models.Card) error {
	resp, err := h.request(ctx, userID, id).
		SetHeader("Content-Type", "application/json").
		SetBody(card.ForRemote()).
		Put(cardPath)
	if err != nil {
		return mapTransportError("set card", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteGateway) DeleteCard(ctx context.Context, userID, id string) error {
	resp, err := h.request(ctx, userID, id).Delete(cardPath)
	if err != nil {
		return mapTransportError("delete card", err)
	}

	return ignoreNotFound(mapHTTPError(resp))
}

func (h *httpRemoteGateway) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return mapTransportError("ping", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: health returned %d", ErrUnavailable, resp.StatusCode())
	}

	return nil
}

func (h *httpRemoteGateway) request(ctx context.Context, userID, id string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetPathParam("userID", userID)
	if id != "" {
		req.SetPathParam("id", id)
	}
	return req
}

// ignoreNotFound makes deletes idempotent.
func ignoreNotFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
