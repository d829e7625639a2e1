package engine

import "fmt"

// Talon is the face-down stock pile. Its bottommost card (index 0 in
// cards) is the trump card, turned face-up for both bots to see for the
// entire Phase One of the game; it is the very last card drawn. Cards are
// drawn from the top (the end of the slice) one at a time.
type Talon struct {
	cards     []Card
	trumpSuit Suit
}

// NewTalon builds a Talon from the given cards, in draw order: cards[len-1]
// is drawn first, cards[0] (the trump card) is drawn last. The trump suit is
// fixed at construction time from the bottommost card and never changes
// after, even once a trump exchange swaps which specific card sits there.
func NewTalon(cards []Card) *Talon {
	if len(cards) == 0 {
		return &Talon{cards: nil, trumpSuit: Hearts}
	}
	t := &Talon{cards: make([]Card, len(cards))}
	copy(t.cards, cards)
	t.trumpSuit = t.cards[0].Suit
	return t
}

// TrumpSuit returns the suit fixed by the original bottommost talon card.
// It never changes for the life of the game, per invariant 3.
func (t *Talon) TrumpSuit() Suit {
	return t.trumpSuit
}

// TrumpCard returns the card currently sitting at the bottom of the talon
// (the one visible to both bots), and whether the talon is non-empty.
func (t *Talon) TrumpCard() (Card, bool) {
	if len(t.cards) == 0 {
		return Card{}, false
	}
	return t.cards[0], true
}

// Len returns the number of cards remaining in the talon, including the
// visible trump card.
func (t *Talon) Len() int {
	return len(t.cards)
}

// IsEmpty returns true once the talon (including the trump card) has been
// fully drawn. The game transitions from Phase One to Phase Two exactly
// when this becomes true.
func (t *Talon) IsEmpty() bool {
	return len(t.cards) == 0
}

// Draw removes and returns the topmost card. It returns an error if the
// talon is empty, since Phase One code must never call Draw once
// IsEmpty() is true.
func (t *Talon) Draw() (Card, error) {
	if len(t.cards) == 0 {
		return Card{}, fmt.Errorf("draw from empty talon: %w", ErrInvariantViolation)
	}
	card := t.cards[len(t.cards)-1]
	t.cards = t.cards[:len(t.cards)-1]
	return card, nil
}

// TrumpExchange swaps the given jack (already verified to match trumpSuit
// and to be held by the exchanging bot) into the trump card's slot, and
// returns the card it displaced. The displaced card becomes the new bot's
// to hold. The exchanged-in jack becomes the new bottommost/trump card and
// is therefore the last card that will be drawn from the talon, preserving
// invariant 3 (the nominal trump suit never changes, since a trump-suit
// jack can only ever be exchanged for another trump-suit card).
func (t *Talon) TrumpExchange(jack Card) (Card, error) {
	if len(t.cards) == 0 {
		return Card{}, fmt.Errorf("trump exchange on empty talon: %w", ErrInvariantViolation)
	}
	if jack.Rank != Jack || jack.Suit != t.trumpSuit {
		return Card{}, fmt.Errorf("%s is not the jack of trump: %w", jack, ErrAgentProtocolViolation)
	}
	old := t.cards[0]
	t.cards[0] = jack
	return old, nil
}

// Clone returns a deep copy of the talon.
func (t *Talon) Clone() *Talon {
	cards := make([]Card, len(t.cards))
	copy(cards, t.cards)
	return &Talon{cards: cards, trumpSuit: t.trumpSuit}
}
