package engine

import "math/rand"

// DeckGenerator builds the initial, unshuffled deck for a game variant (20
// cards for the standard game). Variants (24-card Schnapsen) supply their
// own implementation rather than mutating the standard one.
type DeckGenerator interface {
	InitialDeck() *OrderedCardCollection
}

// ShuffleDeck randomizes deck order using the supplied rng, mirroring the
// teacher's Deck.Shuffle which calls rand.Shuffle directly. Every source of
// randomness in the engine flows through a caller-supplied *rand.Rand so
// that games are reproducible given a seed.
func ShuffleDeck(deck *OrderedCardCollection, rng *rand.Rand) *OrderedCardCollection {
	cards := deck.Cards()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return NewOrderedCardCollection(cards)
}

// SchnapsenDeckGenerator builds the standard 20-card deck: Jack, Queen,
// King, Ten and Ace of each of the four suits.
type SchnapsenDeckGenerator struct{}

// InitialDeck returns the 20 standard-rank cards, one ordering per call;
// callers always shuffle the result before dealing.
func (SchnapsenDeckGenerator) InitialDeck() *OrderedCardCollection {
	ranks := []Rank{Jack, Queen, King, Ten, Ace}
	cards := make([]Card, 0, len(ranks)*len(Suits))
	for _, suit := range Suits {
		for _, rank := range ranks {
			cards = append(cards, GetCard(rank, suit))
		}
	}
	return NewOrderedCardCollection(cards)
}

// HandGenerator deals the shuffled deck into the two starting hands and the
// talon.
type HandGenerator interface {
	// Generate splits deck into (leaderHand, followerHand, talon). deck is
	// assumed already shuffled.
	Generate(deck *OrderedCardCollection) (*Hand, *Hand, *Talon)
}

// SchnapsenHandGenerator deals five cards to each bot in alternating order
// (even positions to the leader, odd positions to the follower) and leaves
// the remainder as the talon, matching the reference dealing order exactly:
// card 0 -> leader, card 1 -> follower, card 2 -> leader, ... up through
// index 9, with indices 10..19 left in the talon, index 19 (the bottommost,
// last-drawn card) as the trump indicator.
type SchnapsenHandGenerator struct{}

// Generate implements HandGenerator.
func (SchnapsenHandGenerator) Generate(deck *OrderedCardCollection) (*Hand, *Hand, *Talon) {
	cards := deck.Cards()
	var leaderCards, followerCards []Card
	for i, c := range cards {
		switch {
		case i < 2*MaxHandSize && i%2 == 0:
			leaderCards = append(leaderCards, c)
		case i < 2*MaxHandSize:
			followerCards = append(followerCards, c)
		}
	}

	// NewTalon takes cards[0] as the trump card (drawn last) and draws from
	// the end of the slice first; the deal order's bottommost/trump card is
	// the highest index (cards[len(cards)-1]), so the remaining indices must
	// be handed to NewTalon highest-first to land deck[len-1] at talon
	// index 0 and deck[2*MaxHandSize] — the first card to draw — at the end.
	var talonCards []Card
	for i := len(cards) - 1; i >= 2*MaxHandSize; i-- {
		talonCards = append(talonCards, cards[i])
	}
	return NewHandWith(leaderCards), NewHandWith(followerCards), NewTalon(talonCards)
}
