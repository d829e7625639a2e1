package engine

import "fmt"

// TrickScorer computes rank point values, determines trick winners, and
// awards end-of-game points. Variants (Ace-One, Negative-Ace, 24-card)
// override only RankToPoints; everything else about how points flow is
// shared.
type TrickScorer interface {
	// RankToPoints returns the point value of a card rank under this
	// variant's table.
	RankToPoints(rank Rank) int

	// Winner determines the winning bot slot (0 = leader, 1 = follower) of
	// a completed regular trick, given the two played cards and the trump
	// suit.
	Winner(leaderCard, followerCard Card, trumpSuit Suit) int

	// DeclareWinner evaluates end-of-game conditions after a trick has
	// been scored. It returns (result, true) if the game has ended, or
	// (GameResult{}, false) if play continues.
	DeclareWinner(state *GameState) (GameResult, bool)
}

// SchnapsenTrickScorer implements the standard rank→points table and
// winner/award rules.
type SchnapsenTrickScorer struct{}

// RankToPoints implements TrickScorer with the standard table: Ace=11,
// Ten=10, King=4, Queen=3, Jack=2, everything else 0.
func (SchnapsenTrickScorer) RankToPoints(rank Rank) int {
	switch rank {
	case Ace:
		return 11
	case Ten:
		return 10
	case King:
		return 4
	case Queen:
		return 3
	case Jack:
		return 2
	default:
		return 0
	}
}

// Winner implements TrickScorer's trick-winner determination:
//
//   - same suit: higher point-value wins, ties (possible only under a
//     variant's overridden table, e.g. Ace-One's Ace=1=Nine in the 24-card
//     combination) are broken in the leader's favor — this is an explicit
//     divergence from the reference implementation, which breaks ties in
//     the follower's favor; spec.md is taken as authoritative here.
//   - else if leader's card is trump: leader wins.
//   - else if follower's card is trump: follower wins.
//   - else: leader wins (follower failed to follow suit in a phase where
//     it was unconstrained).
func (s SchnapsenTrickScorer) Winner(leaderCard, followerCard Card, trumpSuit Suit) int {
	if leaderCard.Suit == followerCard.Suit {
		if s.RankToPoints(followerCard.Rank) > s.RankToPoints(leaderCard.Rank) {
			return 1
		}
		return 0
	}
	if leaderCard.Suit == trumpSuit {
		return 0
	}
	if followerCard.Suit == trumpSuit {
		return 1
	}
	return 0
}

// DeclareWinner implements TrickScorer. It must be called immediately after
// a trick is scored, before the next trick's leader move is requested: the
// engine invariant that the follower can never be the first bot to reach
// 66 depends on this ordering, since the trick winner becomes leader before
// the check runs again.
func (SchnapsenTrickScorer) DeclareWinner(state *GameState) (GameResult, bool) {
	leader, follower := state.Leader, state.Follower

	if follower.Score.Total() >= WinningThreshold {
		panic(fmt.Errorf("follower %s reached %d before leader: %w", follower.ID, WinningThreshold, ErrInvariantViolation))
	}

	if leader.Score.Total() >= WinningThreshold {
		loserPoints := follower.Score.Total()
		gamePoints := GamePointsNormal
		switch {
		case loserPoints == 0:
			gamePoints = GamePointsSchwarz
		case loserPoints < SchneiderThreshold:
			gamePoints = GamePointsSchneider
		}
		return GameResult{
			Winner:     leader.ID,
			GamePoints: gamePoints,
			Loser:      follower.ID,
			LoserScore: loserPoints,
		}, true
	}

	if state.Talon.IsEmpty() && state.AllCardsPlayed() {
		return GameResult{
			Winner:     leader.ID,
			GamePoints: GamePointsNormal,
			Loser:      follower.ID,
			LoserScore: follower.Score.Total(),
		}, true
	}

	return GameResult{}, false
}
