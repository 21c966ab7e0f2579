package models

// DecksResponse is the body returned by the remote store when listing the
// decks of a user.
type DecksResponse struct {
	// Decks is the authoritative remote deck collection of the user.
	Decks []Deck `json:"decks"`

	// Length is the number of entries in Decks.
	Length int `json:"length"`
}

// CardsResponse is the body returned by the remote store when listing the
// cards of a user.
type CardsResponse struct {
	// Cards is the authoritative remote card collection of the user.
	Cards []Card `json:"cards"`

	// Length is the number of entries in Cards.
	Length int `json:"length"`
}
