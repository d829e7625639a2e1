package engine

import "fmt"

// Agent is the one required capability every bot must implement: choosing a
// move given its perspective on the game. When called as the follower,
// leaderMove carries the move the leader just made (non-nil); when called
// as the leader, leaderMove is nil.
//
// This mirrors the teacher's Strategy/Player split
// (internal/ai/player.go), collapsed to a single interface since Schnapsen
// has no separate bidding phase distinct from move selection.
type Agent interface {
	GetMove(perspective PlayerPerspective, leaderMove Move) (Move, error)
}

// NamedAgent is an optional capability: an Agent may implement it to report
// a display name, the same way the teacher's AI type exposes Name() without
// it being part of the minimal Player contract.
type NamedAgent interface {
	Name() string
}

// TrumpExchangeNotifiable is an optional capability: an Agent may implement
// it to be told when a trump exchange occurred, even when it was not the
// bot that performed it. Useful for a bot that wants to update internal
// book-keeping about what has been revealed without having to re-derive it
// from GetGameHistory every call.
type TrumpExchangeNotifiable interface {
	OnTrumpExchange(perspective PlayerPerspective, move TrumpExchange)
}

// GameEndNotifiable is an optional capability: an Agent may implement it to
// be told the final outcome, including whether it won or lost and the
// awarded game points.
type GameEndNotifiable interface {
	OnGameEnd(perspective PlayerPerspective, result GameResult)
}

// notifyTrumpExchange calls OnTrumpExchange on agent if it implements
// TrumpExchangeNotifiable; a no-op otherwise.
func notifyTrumpExchange(agent Agent, perspective PlayerPerspective, move TrumpExchange) {
	if n, ok := agent.(TrumpExchangeNotifiable); ok {
		n.OnTrumpExchange(perspective, move)
	}
}

// notifyGameEnd calls OnGameEnd on agent if it implements
// GameEndNotifiable; a no-op otherwise.
func notifyGameEnd(agent Agent, perspective PlayerPerspective, result GameResult) {
	if n, ok := agent.(GameEndNotifiable); ok {
		n.OnGameEnd(perspective, result)
	}
}

// MoveRequester mediates every call out to an Agent, giving the engine one
// seam at which to enforce the agent protocol (the returned move's cards
// must actually be in the requesting bot's hand) uniformly for leader and
// follower alike. It mirrors the reference implementation's
// MoveRequester/SimpleMoveRequester split.
type MoveRequester interface {
	RequestMove(bot *BotState, perspective PlayerPerspective, leaderMove Move) (Move, error)
}

// SimpleMoveRequester calls the bot's Agent directly and validates that
// every card the returned move touches is actually held by the bot.
type SimpleMoveRequester struct{}

// RequestMove implements MoveRequester.
func (SimpleMoveRequester) RequestMove(bot *BotState, perspective PlayerPerspective, leaderMove Move) (Move, error) {
	move, err := bot.Implementation.GetMove(perspective, leaderMove)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w: %v", bot.ID, ErrAgentProtocolViolation, err)
	}
	if move == nil {
		return nil, fmt.Errorf("agent %s returned a nil move: %w", bot.ID, ErrAgentProtocolViolation)
	}
	if !bot.HasCards(move.Cards()) {
		return nil, fmt.Errorf("agent %s played a card it does not hold: %w", bot.ID, ErrAgentProtocolViolation)
	}
	return move, nil
}

// refusingAgent is installed in both seats of an assumed GameState by
// MakeAssumption. It is never meant to actually be asked for a move: any
// code that calls PlayAtMostNTricks on an assumed state without first
// calling GameState.CopyWithOtherBots will get ErrAgentProtocolViolation
// back from GetMove, per SPEC_FULL's "dummy-bot continuation" resolution.
type refusingAgent struct{}

// GetMove implements Agent.
func (refusingAgent) GetMove(PlayerPerspective, Move) (Move, error) {
	return nil, fmt.Errorf("assumed state requires CopyWithOtherBots before play: %w", ErrAgentProtocolViolation)
}

// Name implements NamedAgent.
func (refusingAgent) Name() string { return "refusing-agent" }
