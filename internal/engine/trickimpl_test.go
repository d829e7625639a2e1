package engine

import "testing"

// sequenceAgent returns its configured move once; GetMove is expected to be
// called exactly once per trick in these tests.
type sequenceAgent struct{ move Move }

func (a sequenceAgent) GetMove(PlayerPerspective, Move) (Move, error) {
	return a.move, nil
}

func TestPlayTrickRegularLeaderWins(t *testing.T) {
	state := &GameState{
		Leader: &BotState{
			ID:             "bot1",
			Implementation: sequenceAgent{move: RegularMove{Card: GetCard(Ace, Hearts)}},
			Hand:           NewHandWith([]Card{GetCard(Ace, Hearts)}),
		},
		Follower: &BotState{
			ID:             "bot2",
			Implementation: sequenceAgent{move: RegularMove{Card: GetCard(Ten, Hearts)}},
			Hand:           NewHandWith([]Card{GetCard(Ten, Hearts)}),
		},
		Talon: NewTalon(nil),
	}

	next, err := SchnapsenTrickImplementer{}.PlayTrick(state, SimpleMoveRequester{}, SchnapsenMoveValidator{}, SchnapsenTrickScorer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Leader.ID != "bot1" {
		t.Errorf("leader's ace should have won the trick, but new leader is %s", next.Leader.ID)
	}
	if next.Leader.Score.Direct != 21 {
		t.Errorf("winner's score = %d, want 21 (11+10)", next.Leader.Score.Direct)
	}
	if len(next.Leader.WonCards) != 2 {
		t.Errorf("winner should have 2 won cards, got %d", len(next.Leader.WonCards))
	}
	if next.Previous.PriorState == next {
		t.Error("Previous.PriorState must be a distinct snapshot, not the same pointer as next")
	}
}

func TestPlayTrickFollowerWinsBecomesLeader(t *testing.T) {
	state := &GameState{
		Leader: &BotState{
			ID:             "bot1",
			Implementation: sequenceAgent{move: RegularMove{Card: GetCard(King, Hearts)}},
			Hand:           NewHandWith([]Card{GetCard(King, Hearts)}),
		},
		Follower: &BotState{
			ID:             "bot2",
			Implementation: sequenceAgent{move: RegularMove{Card: GetCard(Ace, Hearts)}},
			Hand:           NewHandWith([]Card{GetCard(Ace, Hearts)}),
		},
		Talon: NewTalon(nil),
	}

	next, err := SchnapsenTrickImplementer{}.PlayTrick(state, SimpleMoveRequester{}, SchnapsenMoveValidator{}, SchnapsenTrickScorer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Leader.ID != "bot2" {
		t.Errorf("follower's ace should have won the trick, making it the new leader; got %s", next.Leader.ID)
	}
}

func TestPlayTrickDrawOrderWinnerThenLoser(t *testing.T) {
	state := &GameState{
		Leader: &BotState{
			ID:             "bot1",
			Implementation: sequenceAgent{move: RegularMove{Card: GetCard(Ace, Hearts)}},
			Hand:           NewHandWith([]Card{GetCard(Ace, Hearts)}),
		},
		Follower: &BotState{
			ID:             "bot2",
			Implementation: sequenceAgent{move: RegularMove{Card: GetCard(Ten, Hearts)}},
			Hand:           NewHandWith([]Card{GetCard(Ten, Hearts)}),
		},
		Talon: NewTalon([]Card{GetCard(King, Spades), GetCard(Nine, Clubs), GetCard(Jack, Diamonds)}),
	}

	next, err := SchnapsenTrickImplementer{}.PlayTrick(state, SimpleMoveRequester{}, SchnapsenMoveValidator{}, SchnapsenTrickScorer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Winner (new leader, bot1) draws first from the top of the talon (Jack
	// of Diamonds), loser (bot2) draws second (Nine of Clubs); the trump
	// card (King of Spades) stays in the talon.
	if !next.Leader.Hand.Contains(GetCard(Jack, Diamonds)) {
		t.Error("winner should have drawn the top talon card first")
	}
	if !next.Follower.Hand.Contains(GetCard(Nine, Clubs)) {
		t.Error("loser should have drawn the next talon card second")
	}
	if next.Talon.Len() != 1 {
		t.Errorf("talon should have 1 card (the trump) remaining, got %d", next.Talon.Len())
	}
}

func TestPlayTrickMarriageAddsPendingPointsAndKeepsQueenInHand(t *testing.T) {
	state := &GameState{
		Leader: &BotState{
			ID: "bot1",
			Implementation: sequenceAgent{
				move: Marriage{Queen: GetCard(Queen, Hearts), King: GetCard(King, Hearts)},
			},
			Hand: NewHandWith([]Card{GetCard(Queen, Hearts), GetCard(King, Hearts)}),
		},
		Follower: &BotState{
			ID:             "bot2",
			Implementation: sequenceAgent{move: RegularMove{Card: GetCard(Ten, Clubs)}},
			Hand:           NewHandWith([]Card{GetCard(Ten, Clubs)}),
		},
		Talon: NewTalon([]Card{GetCard(Jack, Spades)}),
	}

	next, err := SchnapsenTrickImplementer{}.PlayTrick(state, SimpleMoveRequester{}, SchnapsenMoveValidator{}, SchnapsenTrickScorer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Leader.ID != "bot1" {
		t.Fatalf("leader's king of hearts should win against a ten of clubs, got new leader %s", next.Leader.ID)
	}
	// 20 pending (off-trump marriage, trump suit is Spades) redeemed + 4
	// (king) + 10 (ten) trick points = 34.
	if next.Leader.Score.Direct != 34 {
		t.Errorf("score = %d, want 34 (20 pending + 4 + 10)", next.Leader.Score.Direct)
	}
	if next.Leader.Score.Pending != 0 {
		t.Error("pending points should be redeemed once the marriage-declaring bot wins a trick")
	}
	if !next.Leader.Hand.Contains(GetCard(Queen, Hearts)) {
		t.Error("the queen of a declared marriage must remain in the declaring bot's hand, not be discarded")
	}
}

func TestPlayTrickTrumpExchangeKeepsLeaderAndSkipsFollower(t *testing.T) {
	state := &GameState{
		Leader: &BotState{
			ID:             "bot1",
			Implementation: sequenceAgent{move: TrumpExchange{Jack: GetCard(Jack, Spades)}},
			Hand:           NewHandWith([]Card{GetCard(Jack, Spades)}),
		},
		Follower: &BotState{
			ID:   "bot2",
			Hand: NewHandWith([]Card{GetCard(Ten, Clubs)}),
		},
		Talon: NewTalon([]Card{GetCard(King, Spades), GetCard(Nine, Diamonds)}),
	}

	next, err := SchnapsenTrickImplementer{}.PlayTrick(state, SimpleMoveRequester{}, SchnapsenMoveValidator{}, SchnapsenTrickScorer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Leader.ID != "bot1" {
		t.Error("the leader must keep the lead after a trump exchange")
	}
	if !next.Leader.Hand.Contains(GetCard(King, Spades)) {
		t.Error("leader should now hold the displaced trump card")
	}
	if next.Leader.Hand.Contains(GetCard(Jack, Spades)) {
		t.Error("the exchanged jack should have left the leader's hand")
	}
	card, _ := next.Talon.TrumpCard()
	if card != GetCard(Jack, Spades) {
		t.Errorf("the talon's visible trump card should now be the jack, got %s", card)
	}
	if !next.Previous.Trump {
		t.Error("Previous.Trump should be true after a trump exchange")
	}
	if next.Previous.FollowerMove != nil {
		t.Error("a trump exchange short-circuits the trick; the follower never moves")
	}
	if next.Previous.DisplacedTrump != GetCard(King, Spades) {
		t.Errorf("Previous.DisplacedTrump = %v, want the old trump card K♠", next.Previous.DisplacedTrump)
	}
}

func TestPlayTrickRejectsIllegalLeaderMove(t *testing.T) {
	state := &GameState{
		Leader: &BotState{
			ID:             "bot1",
			Implementation: sequenceAgent{move: RegularMove{Card: GetCard(Ace, Clubs)}}, // not actually held
			Hand:           NewHandWith([]Card{GetCard(Ace, Hearts)}),
		},
		Follower: &BotState{ID: "bot2", Hand: NewHandWith([]Card{GetCard(Ten, Clubs)})},
		Talon:    NewTalon(nil),
	}

	_, err := SchnapsenTrickImplementer{}.PlayTrick(state, SimpleMoveRequester{}, SchnapsenMoveValidator{}, SchnapsenTrickScorer{})
	if err == nil {
		t.Error("expected an error for a leader move playing an unheld card")
	}
}
