package engine

import "testing"

func newTestState(leaderCards, followerCards, talonCards []Card) *GameState {
	return &GameState{
		Leader:   &BotState{ID: "bot1", Hand: NewHandWith(leaderCards)},
		Follower: &BotState{ID: "bot2", Hand: NewHandWith(followerCards)},
		Talon:    NewTalon(talonCards),
	}
}

func TestLegalLeaderMovesIncludesMarriage(t *testing.T) {
	state := newTestState(
		[]Card{GetCard(Queen, Hearts), GetCard(King, Hearts), GetCard(Ace, Clubs)},
		nil,
		[]Card{GetCard(King, Spades), GetCard(Ten, Clubs)},
	)

	moves := SchnapsenMoveValidator{}.LegalLeaderMoves(state)

	var sawMarriage, sawThreeRegulars bool
	regularCount := 0
	for _, m := range moves {
		if m.Type() == MoveMarriage {
			sawMarriage = true
		}
		if m.Type() == MoveRegular {
			regularCount++
		}
	}
	sawThreeRegulars = regularCount == 3
	if !sawMarriage {
		t.Error("expected a Marriage move for the held Q♥/K♥ pair")
	}
	if !sawThreeRegulars {
		t.Errorf("expected 3 regular moves (one per card), got %d", regularCount)
	}
}

func TestLegalLeaderMovesIncludesTrumpExchange(t *testing.T) {
	state := newTestState(
		[]Card{GetCard(Jack, Spades)},
		nil,
		[]Card{GetCard(King, Spades), GetCard(Ten, Clubs)},
	)

	moves := SchnapsenMoveValidator{}.LegalLeaderMoves(state)

	found := false
	for _, m := range moves {
		if te, ok := m.(TrumpExchange); ok && te.Jack == GetCard(Jack, Spades) {
			found = true
		}
	}
	if !found {
		t.Error("expected a TrumpExchange move for the held jack of trump with a 2-card talon")
	}
}

func TestLegalLeaderMovesNoTrumpExchangeWithOneCardTalon(t *testing.T) {
	state := newTestState(
		[]Card{GetCard(Jack, Spades)},
		nil,
		[]Card{GetCard(King, Spades)},
	)

	moves := SchnapsenMoveValidator{}.LegalLeaderMoves(state)
	for _, m := range moves {
		if m.Type() == MoveTrumpExchange {
			t.Error("a 1-card talon must not allow a trump exchange (no trump card would remain)")
		}
	}
}

func TestLegalFollowerMovesPhaseOneUnconstrained(t *testing.T) {
	state := newTestState(
		[]Card{GetCard(Ace, Hearts)},
		[]Card{GetCard(Jack, Spades), GetCard(Ten, Clubs)},
		[]Card{GetCard(King, Spades), GetCard(Ten, Diamonds)}, // talon non-empty: Phase One
	)

	moves := SchnapsenMoveValidator{}.LegalFollowerMoves(state, RegularMove{Card: GetCard(Ace, Hearts)}, SchnapsenTrickScorer{})
	if len(moves) != 2 {
		t.Errorf("Phase One should allow any of the 2 held cards, got %d legal moves", len(moves))
	}
}

func TestLegalFollowerMovesPhaseTwoMustBeatWithHigherSameSuit(t *testing.T) {
	state := newTestState(
		nil,
		[]Card{GetCard(Ace, Hearts), GetCard(Jack, Hearts), GetCard(Ten, Clubs)},
		nil, // empty talon: Phase Two
	)

	moves := SchnapsenMoveValidator{}.LegalFollowerMoves(state, RegularMove{Card: GetCard(King, Hearts)}, SchnapsenTrickScorer{})
	if len(moves) != 1 {
		t.Fatalf("expected exactly 1 legal move (the higher same-suit card), got %d", len(moves))
	}
	if moves[0].(RegularMove).Card != GetCard(Ace, Hearts) {
		t.Errorf("legal move = %v, want Ace of Hearts (11 pts > King's 4 pts)", moves[0])
	}
}

func TestLegalFollowerMovesPhaseTwoMustFollowWithLowerIfNoHigher(t *testing.T) {
	state := newTestState(
		nil,
		[]Card{GetCard(Jack, Hearts), GetCard(Ten, Clubs)},
		nil,
	)

	moves := SchnapsenMoveValidator{}.LegalFollowerMoves(state, RegularMove{Card: GetCard(Ace, Hearts)}, SchnapsenTrickScorer{})
	if len(moves) != 1 || moves[0].(RegularMove).Card != GetCard(Jack, Hearts) {
		t.Errorf("expected only the lower same-suit card J♥, got %v", moves)
	}
}

func TestLegalFollowerMovesPhaseTwoMustTrumpWhenNoSameSuit(t *testing.T) {
	// Trump suit is Spades here (talon was emptied; state.Talon.TrumpSuit()
	// still reports the suit fixed at the opening deal via NewTalon, so we
	// reconstruct an empty talon whose trump suit is Spades by starting
	// from a 1-card talon and draining it).
	talon := NewTalon([]Card{GetCard(King, Spades)})
	_, _ = talon.Draw()

	state := &GameState{
		Leader:   &BotState{ID: "bot1"},
		Follower: &BotState{ID: "bot2", Hand: NewHandWith([]Card{GetCard(Jack, Spades), GetCard(Ten, Clubs)})},
		Talon:    talon,
	}

	moves := SchnapsenMoveValidator{}.LegalFollowerMoves(state, RegularMove{Card: GetCard(Ace, Hearts)}, SchnapsenTrickScorer{})
	if len(moves) != 1 || moves[0].(RegularMove).Card != GetCard(Jack, Spades) {
		t.Errorf("expected forced trump J♠, got %v", moves)
	}
}

func TestLegalFollowerMovesPhaseTwoAnyCardWhenNoSuitNoTrump(t *testing.T) {
	talon := NewTalon([]Card{GetCard(King, Spades)})
	_, _ = talon.Draw()

	state := &GameState{
		Leader:   &BotState{ID: "bot1"},
		Follower: &BotState{ID: "bot2", Hand: NewHandWith([]Card{GetCard(Ten, Clubs), GetCard(Ace, Diamonds)})},
		Talon:    talon,
	}

	moves := SchnapsenMoveValidator{}.LegalFollowerMoves(state, RegularMove{Card: GetCard(Ace, Hearts)}, SchnapsenTrickScorer{})
	if len(moves) != 2 {
		t.Errorf("with no hearts and no trump, both held cards should be legal, got %d", len(moves))
	}
}
