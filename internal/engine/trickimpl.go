package engine

import "fmt"

// TrickImplementer plays exactly one trick against a GameState and returns
// the resulting state. It mirrors the reference implementation's
// TrickImplementer/SchnapsenTrickImplementer split, generalized only in
// that the validator and scorer it consults are themselves pluggable
// (variants install their own TrickScorer).
type TrickImplementer interface {
	PlayTrick(state *GameState, requester MoveRequester, validator MoveValidator, scorer TrickScorer) (*GameState, error)
}

// SchnapsenTrickImplementer implements the standard Schnapsen trick state
// machine described by spec.md's nine numbered steps.
type SchnapsenTrickImplementer struct{}

// PlayTrick implements TrickImplementer.
func (SchnapsenTrickImplementer) PlayTrick(state *GameState, requester MoveRequester, validator MoveValidator, scorer TrickScorer) (*GameState, error) {
	// The Previous snapshot must be immune to anything this trick does, so
	// it is cloned up front before any mutation happens — mirroring the
	// reference implementation's comment that the winner draws before the
	// loser specifically so the snapshot ordering cannot be disturbed.
	priorSnapshot := state.Clone()

	leaderPerspective := NewLeaderPerspective(state, validator, scorer)
	leaderMove, err := requester.RequestMove(state.Leader, leaderPerspective, nil)
	if err != nil {
		return nil, err
	}
	if !legalMoveIn(leaderMove, validator.LegalLeaderMoves(state)) {
		return nil, fmt.Errorf("leader %s played an illegal move %v: %w", state.Leader.ID, leaderMove, ErrAgentProtocolViolation)
	}

	if exchange, ok := leaderMove.(TrumpExchange); ok {
		return applyTrumpExchange(state, priorSnapshot, exchange)
	}

	if marriage, ok := leaderMove.(Marriage); ok {
		points := marriage.PendingPoints(state.Talon.TrumpSuit())
		state.Leader.Score = state.Leader.Score.WithAdditionalPendingPoints(points)
	}

	followerPerspective := NewFollowerPerspective(state, validator, scorer, leaderMove)
	followerMove, err := requester.RequestMove(state.Follower, followerPerspective, leaderMove)
	if err != nil {
		return nil, err
	}
	if !legalMoveIn(followerMove, validator.LegalFollowerMoves(state, leaderMove, scorer)) {
		return nil, fmt.Errorf("follower %s played an illegal move %v: %w", state.Follower.ID, followerMove, ErrAgentProtocolViolation)
	}
	followerRegular, ok := followerMove.(RegularMove)
	if !ok {
		return nil, fmt.Errorf("follower %s played a non-regular move: %w", state.Follower.ID, ErrAgentProtocolViolation)
	}

	leaderCard := PlayedCard(leaderMove)
	followerCard := followerRegular.Card

	// Only the physically played card leaves the leader's hand. A Marriage
	// declares both queen and king, but per spec.md §9 only the king is
	// discarded to the trick; the queen is shown and then kept in hand.
	if err := state.Leader.Hand.Remove(leaderCard); err != nil {
		return nil, err
	}
	if err := state.Follower.Hand.Remove(followerCard); err != nil {
		return nil, err
	}

	winnerSlot := scorer.Winner(leaderCard, followerCard, state.Talon.TrumpSuit())

	var winner, loser *BotState
	leaderRemainsLeader := winnerSlot == 0
	if leaderRemainsLeader {
		winner, loser = state.Leader, state.Follower
	} else {
		winner, loser = state.Follower, state.Leader
	}

	trickPoints := scorer.RankToPoints(leaderCard.Rank) + scorer.RankToPoints(followerCard.Rank)
	winner.Score = winner.Score.WithAdditionalPoints(trickPoints).RedeemPendingPoints()
	winner.WonCards = append(winner.WonCards, leaderCard, followerCard)

	if !state.Talon.IsEmpty() {
		winnerCard, err := state.Talon.Draw()
		if err != nil {
			return nil, err
		}
		if err := winner.Hand.Add(winnerCard); err != nil {
			return nil, err
		}
		if !state.Talon.IsEmpty() {
			loserCard, err := state.Talon.Draw()
			if err != nil {
				return nil, err
			}
			if err := loser.Hand.Add(loserCard); err != nil {
				return nil, err
			}
		}
	}

	next := &GameState{
		Leader:   winner,
		Follower: loser,
		Talon:    state.Talon,
		Previous: &Previous{
			PriorState:   priorSnapshot,
			LeaderMove:   leaderMove,
			FollowerMove: followerMove,
			Trump:        false,
		},
	}
	return next, nil
}

// applyTrumpExchange handles step 2 of spec.md §4.2: the exchange is
// atomic, the follower never plays, and the leader keeps the lead.
func applyTrumpExchange(state *GameState, priorSnapshot *GameState, exchange TrumpExchange) (*GameState, error) {
	displaced, err := state.Talon.TrumpExchange(exchange.Jack)
	if err != nil {
		return nil, err
	}
	if err := state.Leader.Hand.Remove(exchange.Jack); err != nil {
		return nil, err
	}
	if err := state.Leader.Hand.Add(displaced); err != nil {
		return nil, err
	}
	logger.Infof("trump exchange: %s swapped %s for %s", state.Leader.ID, exchange.Jack, displaced)

	leaderPerspective := NewLeaderPerspective(state, SchnapsenMoveValidator{}, SchnapsenTrickScorer{})
	notifyTrumpExchange(state.Leader.Implementation, leaderPerspective, exchange)
	notifyTrumpExchange(state.Follower.Implementation, leaderPerspective, exchange)

	next := &GameState{
		Leader:   state.Leader,
		Follower: state.Follower,
		Talon:    state.Talon,
		Previous: &Previous{
			PriorState:     priorSnapshot,
			LeaderMove:     exchange,
			Trump:          true,
			DisplacedTrump: displaced,
		},
	}
	return next, nil
}

// legalMoveIn reports whether move appears in legal by value equality.
func legalMoveIn(move Move, legal []Move) bool {
	for _, m := range legal {
		if m == move {
			return true
		}
	}
	return false
}
