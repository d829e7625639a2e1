package engine

// BotState bundles everything the engine tracks about one of the two bot
// slots: its identity, its Agent implementation, its current hand, its
// score, and the cards it has won so far (exposed to perspectives as the
// own/opponent won-cards piles).
type BotState struct {
	ID             string
	Implementation Agent
	Hand           *Hand
	Score          Score
	WonCards       []Card
}

// Clone returns a deep copy of the bot state. The Agent implementation
// itself is never copied — it is stateless from the engine's point of view
// — but Hand and WonCards are copied so that snapshotting a GameState into
// a Previous link can never be mutated by later play.
func (b *BotState) Clone() *BotState {
	won := make([]Card, len(b.WonCards))
	copy(won, b.WonCards)
	return &BotState{
		ID:             b.ID,
		Implementation: b.Implementation,
		Hand:           b.Hand.Clone(),
		Score:          b.Score,
		WonCards:       won,
	}
}

// HasCards reports whether this bot's hand holds every card in cards,
// matching the reference's BotState.get_move assertion that a bot never
// plays a card it does not actually hold.
func (b *BotState) HasCards(cards []Card) bool {
	return b.Hand.HasCards(cards)
}

// Previous links a GameState to the immediately preceding trick: the prior
// state (captured before the trick was played, and never mutated again),
// and the moves both bots made. FollowerMove is nil when LeaderMove was a
// TrumpExchange, since the exchange short-circuits the trick and the
// follower never plays. DisplacedTrump is only meaningful when Trump is
// true: it is the old trump card the exchange pulled out of the talon and
// into the leader's hand, the companion field spec.md's ExchangeTrick
// pairs with the exchange itself — publicly revealed the same as any
// played card, so perspectives must treat it as seen.
type Previous struct {
	PriorState     *GameState
	LeaderMove     Move
	FollowerMove   Move
	Trump          bool // true if LeaderMove was a TrumpExchange
	DisplacedTrump Card
}

// GameState is the complete, perfect-information state of a game in
// progress: who leads, who follows, the talon, and a Previous link forming
// a history chain back to the opening deal (whose Previous is nil).
type GameState struct {
	Leader   *BotState
	Follower *BotState
	Talon    *Talon
	Previous *Previous
}

// NewGameState builds the opening GameState from a freshly dealt hand pair
// and talon. The bot passed as leaderAgent leads the first trick.
func NewGameState(leaderAgent, followerAgent Agent, leaderHand, followerHand *Hand, talon *Talon) *GameState {
	return &GameState{
		Leader: &BotState{
			ID:             "bot1",
			Implementation: leaderAgent,
			Hand:           leaderHand,
		},
		Follower: &BotState{
			ID:             "bot2",
			Implementation: followerAgent,
			Hand:           followerHand,
		},
		Talon: talon,
	}
}

// Phase reports whether the game is still in Phase One (talon non-empty) or
// has transitioned to Phase Two.
func (g *GameState) Phase() GamePhase {
	if g.Talon.IsEmpty() {
		return PhaseTwo
	}
	return PhaseOne
}

// AllCardsPlayed reports true once neither bot holds any cards, which can
// only happen in Phase Two after the tenth trick.
func (g *GameState) AllCardsPlayed() bool {
	return g.Leader.Hand.Size() == 0 && g.Follower.Hand.Size() == 0
}

// Clone returns a deep copy of both bot states and the talon. The Previous
// link itself is copied, but its PriorState pointer is shared rather than
// deep-copied: history snapshots are never mutated, so the chain behind
// them need not be duplicated. The trick implementer clones once per trick,
// before the trick is played, and links that snapshot into the next state's
// Previous, so a Previous.PriorState can never be observed to change after
// the fact.
func (g *GameState) Clone() *GameState {
	clone := &GameState{
		Leader:   g.Leader.Clone(),
		Follower: g.Follower.Clone(),
		Talon:    g.Talon.Clone(),
	}
	if g.Previous != nil {
		clone.Previous = &Previous{
			PriorState:     g.Previous.PriorState,
			LeaderMove:     g.Previous.LeaderMove,
			FollowerMove:   g.Previous.FollowerMove,
			Trump:          g.Previous.Trump,
			DisplacedTrump: g.Previous.DisplacedTrump,
		}
	}
	return clone
}

// CopyWithOtherBots returns a clone of the game state with both bots'
// Implementation replaced. This is the contract make_assumption's caller
// MUST use before handing an assumed state to PlayAtMostNTricks: the
// assumption machinery installs a refusingAgent in both seats (see
// assumption.go), and any code that actually wants to continue play from
// the assumed state must substitute real agents first.
func (g *GameState) CopyWithOtherBots(leader, follower Agent) *GameState {
	clone := g.Clone()
	clone.Leader.Implementation = leader
	clone.Follower.Implementation = follower
	return clone
}
