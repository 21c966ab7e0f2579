package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/utils"
	"github.com/MKhiriev/go-deck-sync/models"
)

func (h *Handler) getDecks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, "userID")

	decks, err := h.services.RemoteDataService.GetDecks(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDecks").Str("user_id", userID).Msg("error loading decks")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if decks == nil {
		decks = []models.Deck{}
	}
	if _, err = utils.WriteJSON(w, models.DecksResponse{Decks: decks, Length: len(decks)}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getDecks").Msg("error writing decks")
	}
}

func (h *Handler) getCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, "userID")

	cards, err := h.services.RemoteDataService.GetCards(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCards").Str("user_id", userID).Msg("error loading cards")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if cards == nil {
		cards = []models.Card{}
	}
	if _, err = utils.WriteJSON(w, models.CardsResponse{Cards: cards, Length: len(cards)}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getCards").Msg("error writing cards")
	}
}

func (h *Handler) putDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, id := chi.URLParam(r, "userID"), chi.URLParam(r, "id")

	var deck models.Deck
	if err := json.NewDecoder(r.Body).Decode(&deck); err != nil {
		log.Err(err).Str("func", "*Handler.putDeck").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RemoteDataService.SetDeck(r.Context(), userID, id, deck); err != nil {
		log.Err(err).Str("func", "*Handler.putDeck").Str("deck_id", id).Msg("error saving deck")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) putCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, id := chi.URLParam(r, "userID"), chi.URLParam(r, "id")

	var card models.Card
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		log.Err(err).Str("func", "*Handler.putCard").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RemoteDataService.SetCard(r.Context(), userID, id, card); err != nil {
		log.Err(err).Str("func", "*Handler.putCard").Str("card_id", id).Msg("error saving card")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, id := chi.URLParam(r, "userID"), chi.URLParam(r, "id")

	if err := h.services.RemoteDataService.DeleteDeck(r.Context(), userID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDeck").Str("deck_id", id).Msg("error deleting deck")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, id := chi.URLParam(r, "userID"), chi.URLParam(r, "id")

	if err := h.services.RemoteDataService.DeleteCard(r.Context(), userID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCard").Str("card_id", id).Msg("error deleting card")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
