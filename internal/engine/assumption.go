package engine

import (
	"fmt"
	"math/rand"
)

// makeAssumption implements PlayerPerspective.MakeAssumption: it returns a
// GameState consistent with everything the calling perspective has actually
// seen, but with every card it has NOT seen randomly redealt between the
// opponent's hidden hand slots and the talon's hidden slots (everything
// above the visible trump card). The perspective holder's own hand, score,
// and won cards are carried over unchanged, since those are never hidden
// from it.
//
// Both bot slots in the returned state have their Implementation replaced
// with a refusingAgent: per SPEC_FULL's "dummy-bot continuation"
// resolution, a caller MUST call GameState.CopyWithOtherBots before handing
// the result to PlayAtMostNTricks, so that a search agent explicitly
// chooses which strategy plays out the hypothetical rather than
// accidentally reusing the real opponent's (information-leaking) agent.
func makeAssumption(state *GameState, isLeaderPerspective bool, validator MoveValidator, scorer TrickScorer, leaderMove Move, rng *rand.Rand) (*GameState, error) {
	var me, opp *BotState
	if isLeaderPerspective {
		me, opp = state.Leader, state.Follower
	} else {
		me, opp = state.Follower, state.Leader
	}

	perspective := basePerspective{state: state, validator: validator, scorer: scorer, isLeader: isLeaderPerspective}

	// Validate leaderMove against everything seen BEFORE it, not after: a
	// card already accounted for elsewhere (in my own hand, or already
	// played in a past trick) can never also be the card the opponent just
	// led, since no card exists twice.
	priorSeen := perspective.SeenCards(nil)
	priorSeenSet := make(map[Card]bool, len(priorSeen))
	for _, c := range priorSeen {
		priorSeenSet[c] = true
	}
	if leaderMove != nil {
		for _, c := range leaderMove.Cards() {
			if priorSeenSet[c] {
				return nil, fmt.Errorf("leader move %v plays a card already accounted for elsewhere: %w", leaderMove, ErrInvariantViolation)
			}
		}
	}

	seen := perspective.SeenCards(leaderMove)
	seenSet := make(map[Card]bool, len(seen))
	for _, c := range seen {
		seenSet[c] = true
	}

	knownOpp := make(map[Card]bool)
	for _, c := range opp.Hand.Cards() {
		if seenSet[c] {
			knownOpp[c] = true
		}
	}

	talonCards := state.Talon.cards
	var trumpCard Card
	var hiddenTalon []Card
	if len(talonCards) > 0 {
		trumpCard = talonCards[0]
		hiddenTalon = append(hiddenTalon, talonCards[1:]...)
	}

	var pool []Card
	hiddenOppSlots := 0
	for _, c := range opp.Hand.Cards() {
		if !knownOpp[c] {
			pool = append(pool, c)
			hiddenOppSlots++
		}
	}
	pool = append(pool, hiddenTalon...)

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	newOppCards := make([]Card, 0, opp.Hand.Size())
	for _, c := range opp.Hand.Cards() {
		if knownOpp[c] {
			newOppCards = append(newOppCards, c)
		}
	}
	newOppCards = append(newOppCards, pool[:hiddenOppSlots]...)

	newTalonCards := make([]Card, 0, len(talonCards))
	if len(talonCards) > 0 {
		newTalonCards = append(newTalonCards, trumpCard)
		newTalonCards = append(newTalonCards, pool[hiddenOppSlots:]...)
	}

	mine := me.Clone()
	mine.Implementation = refusingAgent{}
	sampledOpp := &BotState{
		ID:             opp.ID,
		Implementation: refusingAgent{},
		Hand:           NewHandWith(newOppCards),
		Score:          opp.Score,
		WonCards:       append([]Card(nil), opp.WonCards...),
	}

	assumed := &GameState{Talon: NewTalon(newTalonCards), Previous: state.Previous}
	if isLeaderPerspective {
		assumed.Leader, assumed.Follower = mine, sampledOpp
	} else {
		assumed.Leader, assumed.Follower = sampledOpp, mine
	}

	return assumed, nil
}
