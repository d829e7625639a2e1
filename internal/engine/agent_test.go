package engine

import (
	"errors"
	"testing"
)

func TestSimpleMoveRequesterRejectsUnheldCard(t *testing.T) {
	bot := &BotState{ID: "bot1", Hand: NewHandWith([]Card{GetCard(Ace, Hearts)})}
	bot.Implementation = fixedMoveAgent{move: RegularMove{Card: GetCard(Ten, Clubs)}}

	_, err := SimpleMoveRequester{}.RequestMove(bot, nil, nil)
	if !errors.Is(err, ErrAgentProtocolViolation) {
		t.Errorf("expected ErrAgentProtocolViolation for an unheld card, got %v", err)
	}
}

func TestSimpleMoveRequesterAcceptsHeldCard(t *testing.T) {
	bot := &BotState{ID: "bot1", Hand: NewHandWith([]Card{GetCard(Ace, Hearts)})}
	bot.Implementation = fixedMoveAgent{move: RegularMove{Card: GetCard(Ace, Hearts)}}

	move, err := SimpleMoveRequester{}.RequestMove(bot, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move.(RegularMove).Card != GetCard(Ace, Hearts) {
		t.Errorf("expected the agent's chosen move to pass through unchanged, got %v", move)
	}
}

func TestSimpleMoveRequesterWrapsAgentError(t *testing.T) {
	bot := &BotState{ID: "bot1", Hand: NewHandWith([]Card{GetCard(Ace, Hearts)})}
	bot.Implementation = erroringAgent{}

	_, err := SimpleMoveRequester{}.RequestMove(bot, nil, nil)
	if !errors.Is(err, ErrAgentProtocolViolation) {
		t.Errorf("expected agent errors to be wrapped in ErrAgentProtocolViolation, got %v", err)
	}
}

func TestSimpleMoveRequesterRejectsNilMove(t *testing.T) {
	bot := &BotState{ID: "bot1", Hand: NewHand()}
	bot.Implementation = fixedMoveAgent{move: nil}

	_, err := SimpleMoveRequester{}.RequestMove(bot, nil, nil)
	if !errors.Is(err, ErrAgentProtocolViolation) {
		t.Errorf("expected ErrAgentProtocolViolation for a nil move, got %v", err)
	}
}

func TestRefusingAgentAlwaysErrors(t *testing.T) {
	_, err := (refusingAgent{}).GetMove(nil, nil)
	if !errors.Is(err, ErrAgentProtocolViolation) {
		t.Errorf("refusingAgent must always return ErrAgentProtocolViolation, got %v", err)
	}
	if (refusingAgent{}).Name() != "refusing-agent" {
		t.Error("refusingAgent should report its name as refusing-agent")
	}
}

type erroringAgent struct{}

func (erroringAgent) GetMove(PlayerPerspective, Move) (Move, error) {
	return nil, errors.New("boom")
}
