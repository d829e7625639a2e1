package engine

// MoveValidator enumerates the legal moves available to the leader and to
// the follower, given the leader's move. It mirrors the teacher's package
// functions ValidatePlay/LegalPlays (internal/engine/trick.go), generalized
// from a flat "follow suit if able" rule into Schnapsen's phase-sensitive
// one and split across leader/follower since the two roles have
// structurally different move sets (only the leader can declare a marriage
// or exchange the trump jack).
type MoveValidator interface {
	LegalLeaderMoves(state *GameState) []Move
	LegalFollowerMoves(state *GameState, leaderMove Move, scorer TrickScorer) []Move
}

// SchnapsenMoveValidator implements the standard Schnapsen legal-move
// rules.
type SchnapsenMoveValidator struct{}

// LegalLeaderMoves implements MoveValidator.
func (SchnapsenMoveValidator) LegalLeaderMoves(state *GameState) []Move {
	hand := state.Leader.Hand
	var moves []Move

	for _, c := range hand.Cards() {
		moves = append(moves, RegularMove{Card: c})
	}

	trumpSuit := state.Talon.TrumpSuit()
	if state.Talon.Len() >= 2 && hand.Contains(GetCard(Jack, trumpSuit)) {
		moves = append(moves, TrumpExchange{Jack: GetCard(Jack, trumpSuit)})
	}

	for _, suit := range Suits {
		queen := GetCard(Queen, suit)
		king := GetCard(King, suit)
		if hand.Contains(queen) && hand.Contains(king) {
			moves = append(moves, Marriage{Queen: queen, King: king})
		}
	}

	return moves
}

// LegalFollowerMoves implements MoveValidator. leaderMove must not be a
// TrumpExchange: the trick implementer never requests a follower move in
// that case. The point comparison in step 1 below uses scorer's rank table,
// since a variant like Ace-One changes which card of a suit out-ranks
// another.
func (SchnapsenMoveValidator) LegalFollowerMoves(state *GameState, leaderMove Move, scorer TrickScorer) []Move {
	hand := state.Follower.Hand
	all := hand.Cards()

	if state.Phase() == PhaseOne {
		return regularMoves(all)
	}

	leaderSuit := FollowSuitCard(leaderMove).Suit
	trumpSuit := state.Talon.TrumpSuit()
	leaderPoints := scorer.RankToPoints(FollowSuitCard(leaderMove).Rank)

	sameSuit := hand.CardsOfSuit(leaderSuit)

	var higher []Card
	for _, c := range sameSuit {
		if scorer.RankToPoints(c.Rank) > leaderPoints {
			higher = append(higher, c)
		}
	}
	if len(higher) > 0 {
		return regularMoves(higher)
	}

	if len(sameSuit) > 0 {
		return regularMoves(sameSuit)
	}

	if leaderSuit != trumpSuit {
		if trumps := hand.CardsOfSuit(trumpSuit); len(trumps) > 0 {
			return regularMoves(trumps)
		}
	}

	return regularMoves(all)
}

// regularMoves wraps each card as a RegularMove; the follower never has a
// marriage or trump-exchange option.
func regularMoves(cards []Card) []Move {
	moves := make([]Move, len(cards))
	for i, c := range cards {
		moves[i] = RegularMove{Card: c}
	}
	return moves
}
