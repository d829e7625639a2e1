package engine

import (
	"fmt"
	"math/rand"
)

// GamePlayEngine wires together every pluggable stage of a game: how the
// deck is built and dealt, how moves are validated, scored, and applied,
// and how moves are requested from agents. Variants construct their own
// GamePlayEngine value with one or two fields swapped (typically just
// TrickScorer or DeckGenerator) rather than subclassing, mirroring the
// reference implementation's GamePlayEngine/SchnapsenGamePlayEngine split.
type GamePlayEngine struct {
	DeckGenerator    DeckGenerator
	HandGenerator    HandGenerator
	MoveValidator    MoveValidator
	TrickScorer      TrickScorer
	TrickImplementer TrickImplementer
	MoveRequester    MoveRequester
}

// NewSchnapsenGamePlayEngine returns the standard 20-card engine.
func NewSchnapsenGamePlayEngine() *GamePlayEngine {
	return &GamePlayEngine{
		DeckGenerator:    SchnapsenDeckGenerator{},
		HandGenerator:    SchnapsenHandGenerator{},
		MoveValidator:    SchnapsenMoveValidator{},
		TrickScorer:      SchnapsenTrickScorer{},
		TrickImplementer: SchnapsenTrickImplementer{},
		MoveRequester:    SimpleMoveRequester{},
	}
}

// PlayGame deals a fresh game between leader and follower using rng as the
// single source of randomness, then plays it to completion. Every call
// with the same rng seed and the same two deterministic agents produces an
// identical game.
func (e *GamePlayEngine) PlayGame(leader, follower Agent, rng *rand.Rand) (*GameState, GameResult, error) {
	deck := ShuffleDeck(e.DeckGenerator.InitialDeck(), rng)
	leaderHand, followerHand, talon := e.HandGenerator.Generate(deck)
	state := NewGameState(leader, follower, leaderHand, followerHand, talon)

	logger.Infof("game start: deck=%d trump-suit=%s", deck.Len(), talon.TrumpSuit())

	return e.PlayGameFromState(state)
}

// PlayGameFromState plays to completion starting from an arbitrary
// mid-game state, most commonly the fresh deal PlayGame just built, but
// also usable to resume a game a host persisted.
func (e *GamePlayEngine) PlayGameFromState(state *GameState) (*GameState, GameResult, error) {
	for {
		next, err := e.TrickImplementer.PlayTrick(state, e.MoveRequester, e.MoveValidator, e.TrickScorer)
		if err != nil {
			logger.Warnf("aborting game: %v", err)
			return state, GameResult{}, err
		}
		state = next

		if result, over := e.TrickScorer.DeclareWinner(state); over {
			logger.Infof("declare_winner: %s beat %s %d-%d, %d game points",
				result.Winner, result.Loser, state.Leader.Score.Total(), result.LoserScore, result.GamePoints)

			winnerPerspective := NewWinnerPerspective(state, e)
			loserPerspective := NewLoserPerspective(state, e)
			notifyGameEnd(state.Leader.Implementation, winnerPerspective, result)
			notifyGameEnd(state.Follower.Implementation, loserPerspective, result)
			return state, result, nil
		}
	}
}

// PlayAtMostNTricks swaps in newLeader/newFollower as the acting agents
// (without changing whose turn it is, hand contents, or score — only which
// Agent is consulted) and plays up to n tricks or until the game ends,
// whichever comes first. It is the rollout primitive search agents use to
// evaluate a hypothetical continuation.
func (e *GamePlayEngine) PlayAtMostNTricks(state *GameState, newLeader, newFollower Agent, n int) (*GameState, int, error) {
	state = state.CopyWithOtherBots(newLeader, newFollower)
	played := 0
	for played < n {
		if state.Talon.IsEmpty() && state.AllCardsPlayed() {
			break
		}
		next, err := e.TrickImplementer.PlayTrick(state, e.MoveRequester, e.MoveValidator, e.TrickScorer)
		if err != nil {
			return state, played, err
		}
		state = next
		played++
		if _, over := e.TrickScorer.DeclareWinner(state); over {
			break
		}
	}
	return state, played, nil
}

// PlayOneTrick is PlayAtMostNTricks with n=1, named separately since
// callers reach for "just the next trick" often enough to want a direct
// spelling.
func (e *GamePlayEngine) PlayOneTrick(state *GameState, newLeader, newFollower Agent) (*GameState, error) {
	next, played, err := e.PlayAtMostNTricks(state, newLeader, newFollower, 1)
	if err != nil {
		return next, err
	}
	if played == 0 {
		return next, fmt.Errorf("game already over: %w", ErrTerminalStateAccess)
	}
	return next, nil
}
