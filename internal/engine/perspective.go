package engine

import (
	"fmt"
	"math/rand"
)

// HistoryEntry pairs the perspective available at a past decision point
// with the trick that followed it, as returned by
// PlayerPerspective.GetGameHistory.
type HistoryEntry struct {
	Perspective  PlayerPerspective
	LeaderMove   Move
	FollowerMove Move // nil when IsExchange is true
	IsExchange   bool

	// DisplacedTrump is the old trump card pulled out of the talon by a
	// trump exchange; only meaningful when IsExchange is true. Publicly
	// revealed the moment the exchange happens, same as any played card.
	DisplacedTrump Card
}

// PlayerPerspective is everything an Agent is entitled to see when asked
// for a move: its own hand in full, both scores, the trump suit/card,
// talon size, phase, both won-cards piles, the legal move set, whether it
// is the one leading, the game history projected into past perspectives,
// the set of cards it has ever seen, the subset of the opponent's current
// hand it can identify, and a consistent random completion of everything
// it cannot.
type PlayerPerspective interface {
	Hand() *Hand
	OwnScore() Score
	OpponentScore() Score
	TrumpSuit() Suit
	TrumpCard() (Card, bool)
	TalonSize() int
	Phase() GamePhase
	OwnWonCards() []Card
	OpponentWonCards() []Card
	AmILeader() bool
	ValidMoves() ([]Move, error)
	GetGameHistory() []HistoryEntry
	SeenCards(leaderMove Move) []Card
	GetKnownCardsOfOpponentHand() []Card
	MakeAssumption(leaderMove Move, rng *rand.Rand) (*GameState, error)
	GetEngine() *GamePlayEngine
}

// basePerspective implements every method of PlayerPerspective that does
// not depend on whether "I" am the leader or the follower, or on whether
// the perspective is a live, mid-trick one versus a terminal winner/loser
// one.
type basePerspective struct {
	state     *GameState
	validator MoveValidator
	scorer    TrickScorer
	isLeader  bool
}

func (p basePerspective) me() *BotState {
	if p.isLeader {
		return p.state.Leader
	}
	return p.state.Follower
}

func (p basePerspective) opponent() *BotState {
	if p.isLeader {
		return p.state.Follower
	}
	return p.state.Leader
}

func (p basePerspective) Hand() *Hand                { return p.me().Hand }
func (p basePerspective) OwnScore() Score            { return p.me().Score }
func (p basePerspective) OpponentScore() Score       { return p.opponent().Score }
func (p basePerspective) TrumpSuit() Suit            { return p.state.Talon.TrumpSuit() }
func (p basePerspective) TrumpCard() (Card, bool)    { return p.state.Talon.TrumpCard() }
func (p basePerspective) TalonSize() int             { return p.state.Talon.Len() }
func (p basePerspective) Phase() GamePhase           { return p.state.Phase() }
func (p basePerspective) OwnWonCards() []Card        { return append([]Card(nil), p.me().WonCards...) }
func (p basePerspective) OpponentWonCards() []Card   { return append([]Card(nil), p.opponent().WonCards...) }
func (p basePerspective) AmILeader() bool            { return p.isLeader }

func (p basePerspective) GetEngine() *GamePlayEngine {
	return &GamePlayEngine{
		MoveValidator:    p.validator,
		TrickScorer:      p.scorer,
		TrickImplementer: SchnapsenTrickImplementer{},
		MoveRequester:    SimpleMoveRequester{},
		DeckGenerator:    SchnapsenDeckGenerator{},
		HandGenerator:    SchnapsenHandGenerator{},
	}
}

// GetGameHistory walks the Previous chain back to the opening deal and
// returns it in chronological order, one entry per past trick, each paired
// with this bot's own perspective at the moment that trick began: a leader
// perspective where it led, an exchange-follower perspective where the
// opponent ended the trick with a trump exchange, and otherwise a follower
// perspective seeded with the opponent's leader move.
func (p basePerspective) GetGameHistory() []HistoryEntry {
	myID := p.me().ID
	var entries []HistoryEntry
	for prev := p.state.Previous; prev != nil; prev = prev.PriorState.Previous {
		var past PlayerPerspective
		switch {
		case prev.PriorState.Leader.ID == myID:
			past = NewLeaderPerspective(prev.PriorState, p.validator, p.scorer)
		case prev.Trump:
			past = NewExchangeFollowerPerspective(prev.PriorState, p.validator, p.scorer)
		default:
			past = NewFollowerPerspective(prev.PriorState, p.validator, p.scorer, prev.LeaderMove)
		}
		entries = append(entries, HistoryEntry{
			Perspective:    past,
			LeaderMove:     prev.LeaderMove,
			FollowerMove:   prev.FollowerMove,
			IsExchange:     prev.Trump,
			DisplacedTrump: prev.DisplacedTrump,
		})
	}
	// entries was built newest-first; reverse to chronological order.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

// SeenCards returns every card this perspective's holder has certain
// knowledge of: its own hand, the visible trump card (while the talon is
// non-empty), every card revealed by a past trick/marriage/exchange, and
// leaderMove's cards if supplied (used by a follower consulting its own
// seen_cards before the current trick has been linked into history yet).
func (p basePerspective) SeenCards(leaderMove Move) []Card {
	seen := make(map[Card]bool)
	add := func(cards ...Card) {
		for _, c := range cards {
			seen[c] = true
		}
	}

	add(p.me().Hand.Cards()...)
	if card, ok := p.state.Talon.TrumpCard(); ok {
		add(card)
	}
	for _, h := range p.GetGameHistory() {
		add(h.LeaderMove.Cards()...)
		if h.FollowerMove != nil {
			add(h.FollowerMove.Cards()...)
		}
		if h.IsExchange {
			add(h.DisplacedTrump)
		}
	}
	if leaderMove != nil {
		add(leaderMove.Cards()...)
	}

	out := make([]Card, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	return out
}

// GetKnownCardsOfOpponentHand returns the cards the opponent currently
// holds that this perspective can identify with certainty: every card in
// Phase Two (nothing is hidden by then — what remains is derivable by
// elimination), or in Phase One the subset of the opponent's hand that a
// past marriage or trump exchange publicly revealed without it ever
// leaving their hand.
func (p basePerspective) GetKnownCardsOfOpponentHand() []Card {
	if p.Phase() == PhaseTwo {
		return p.opponent().Hand.Cards()
	}

	revealed := make(map[Card]bool)
	for _, h := range p.GetGameHistory() {
		if marriage, ok := h.LeaderMove.(Marriage); ok {
			revealed[marriage.Queen] = true
		}
		if h.IsExchange {
			revealed[h.DisplacedTrump] = true
		}
	}

	var known []Card
	for _, c := range p.opponent().Hand.Cards() {
		if revealed[c] {
			known = append(known, c)
		}
	}
	return known
}

// MakeAssumption implements PlayerPerspective; see assumption.go.
func (p basePerspective) MakeAssumption(leaderMove Move, rng *rand.Rand) (*GameState, error) {
	return makeAssumption(p.state, p.isLeader, p.validator, p.scorer, leaderMove, rng)
}

// leaderPerspective is the view available to the bot about to lead a
// trick.
type leaderPerspective struct{ basePerspective }

// NewLeaderPerspective builds the perspective state.Leader sees when asked
// for its move.
func NewLeaderPerspective(state *GameState, validator MoveValidator, scorer TrickScorer) PlayerPerspective {
	return leaderPerspective{basePerspective{state: state, validator: validator, scorer: scorer, isLeader: true}}
}

func (p leaderPerspective) ValidMoves() ([]Move, error) {
	return p.validator.LegalLeaderMoves(p.state), nil
}

// followerPerspective is the view available to the bot about to follow,
// seeded with the leader's just-made move.
type followerPerspective struct {
	basePerspective
	leaderMove Move
}

// NewFollowerPerspective builds the perspective state.Follower sees when
// asked to respond to leaderMove, which must be non-nil (asserted by
// ValidMoves below, matching the reference implementation's assertion in
// FollowerGameState).
func NewFollowerPerspective(state *GameState, validator MoveValidator, scorer TrickScorer, leaderMove Move) PlayerPerspective {
	return followerPerspective{
		basePerspective: basePerspective{state: state, validator: validator, scorer: scorer, isLeader: false},
		leaderMove:      leaderMove,
	}
}

func (p followerPerspective) ValidMoves() ([]Move, error) {
	if p.leaderMove == nil {
		return nil, fmt.Errorf("follower perspective has no leader move: %w", ErrInvariantViolation)
	}
	return p.validator.LegalFollowerMoves(p.state, p.leaderMove, p.scorer), nil
}

// exchangeFollowerPerspective is produced only when projecting history: it
// represents what the follower's perspective would have been during a
// trick the leader ended via trump exchange, a trick the follower never
// actually got to act in.
type exchangeFollowerPerspective struct{ basePerspective }

// NewExchangeFollowerPerspective builds a history-only perspective with no
// legal moves, since the follower was never asked to move in an exchange
// trick.
func NewExchangeFollowerPerspective(state *GameState, validator MoveValidator, scorer TrickScorer) PlayerPerspective {
	return exchangeFollowerPerspective{basePerspective{state: state, validator: validator, scorer: scorer, isLeader: false}}
}

func (p exchangeFollowerPerspective) ValidMoves() ([]Move, error) {
	return nil, nil
}

// terminalPerspective is shared by the winner and loser perspectives
// notify_game_end delivers at the end of a game: both expose the final
// state, but neither has a legal move to give, since the game is over.
type terminalPerspective struct {
	basePerspective
	engine *GamePlayEngine
}

func (p terminalPerspective) ValidMoves() ([]Move, error) {
	return nil, fmt.Errorf("no moves available after the game has ended: %w", ErrTerminalStateAccess)
}

func (p terminalPerspective) GetEngine() *GamePlayEngine {
	if p.engine != nil {
		return p.engine
	}
	return p.basePerspective.GetEngine()
}

// NewWinnerPerspective builds the terminal perspective delivered to the
// winning bot's OnGameEnd.
func NewWinnerPerspective(state *GameState, e *GamePlayEngine) PlayerPerspective {
	return terminalPerspective{
		basePerspective: basePerspective{state: state, validator: e.MoveValidator, scorer: e.TrickScorer, isLeader: true},
		engine:          e,
	}
}

// NewLoserPerspective builds the terminal perspective delivered to the
// losing bot's OnGameEnd.
func NewLoserPerspective(state *GameState, e *GamePlayEngine) PlayerPerspective {
	return terminalPerspective{
		basePerspective: basePerspective{state: state, validator: e.MoveValidator, scorer: e.TrickScorer, isLeader: false},
		engine:          e,
	}
}
