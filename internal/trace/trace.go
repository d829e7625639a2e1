// Package trace encodes a single trick-time decision into the fixed-width
// feature vector format used to record training data for an external ML
// agent. The engine core never depends on this package; it exists purely
// as an optional recorder a hosting application can point at a live
// PlayerPerspective mid-game.
//
// Two wire formats are supported: the canonical plain-text line format
// (one comma-separated feature vector, a "||" separator, and a 0/1 outcome
// bit per line) and a binary flatbuffers encoding for hosts that want a
// typed, versioned alternative. The plain-text format is the one actually
// consumed by any downstream trainer, so it is implemented directly against
// the standard library rather than a third-party line-format library (none
// of the retrieved example pack's dependencies fit an ad hoc CSV-like
// line).
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/bran/schnapsen/internal/engine"
	"github.com/bran/schnapsen/internal/trace/tracefb"
)

// SchemaVersion is stamped into every flatbuffers record so a reader can
// tell a canonical 4-bit-suit/13-bit-rank record apart from any future
// revision; there is exactly one version today (see moveEncodingWidth's doc
// comment on the canonical, non-legacy shape).
const SchemaVersion = 1

// featurePreludeWidth is the width of the feature vector positions that do
// not scale with deck size: own/opp direct+pending (4), trump suit one-hot
// (4), phase one-hot (2), talon size (1), am-i-leader one-hot (2).
const featurePreludeWidth = 4 + 4 + 2 + 1 + 2

// moveEncodingWidth is the width of one leader-move or follower-move
// encoding: a 3-bit move-type one-hot, a 13-bit rank one-hot, and a 4-bit
// suit one-hot, following the canonical (non-legacy) shape resolved as the
// only shape this package implements.
const moveEncodingWidth = 3 + len(engine.Ranks) + len(engine.Suits)

// perCardCategories is the width of one card's 6-way one-hot: unknown,
// trump, opp-won, opp-hand-known, own-won, own-hand.
const perCardCategories = 6

// FeatureWidth returns the total feature vector length for a deck of
// deckSize cards: the prelude, one 6-way one-hot per card, and two move
// encodings (leader then follower).
func FeatureWidth(deckSize int) int {
	return featurePreludeWidth + deckSize*perCardCategories + 2*moveEncodingWidth
}

// cardCategory enumerates the 6 mutually exclusive ways a perspective can
// classify a single deck card, in low-bit-to-high-bit order.
type cardCategory int

const (
	catUnknown cardCategory = iota
	catTrump
	catOppWon
	catOppHandKnown
	catOwnWon
	catOwnHand
)

// EncodeFeatures builds the fixed-width feature vector for p's point of
// view, immediately before leaderMove (and, once known, followerMove) are
// applied to the trick. deck is the canonical card ordering to iterate for
// the per-card block, normally DeckGenerator.InitialDeck().Cards() for
// whichever variant is in play. followerMove is nil when encoding a
// leader's own decision point, before the follower has acted.
func EncodeFeatures(p engine.PlayerPerspective, deck []engine.Card, leaderMove, followerMove engine.Move) []int32 {
	out := make([]int32, 0, FeatureWidth(len(deck)))

	own, opp := p.OwnScore(), p.OpponentScore()
	out = append(out, int32(own.Direct), int32(own.Pending), int32(opp.Direct), int32(opp.Pending))

	for _, suit := range engine.Suits {
		if suit == p.TrumpSuit() {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}

	if p.Phase() == engine.PhaseTwo {
		out = append(out, 1, 0)
	} else {
		out = append(out, 0, 1)
	}

	out = append(out, int32(p.TalonSize()))

	if p.AmILeader() {
		out = append(out, 0, 1)
	} else {
		out = append(out, 1, 0)
	}

	out = append(out, encodePerCard(p, deck)...)
	out = append(out, encodeMove(leaderMove)...)
	out = append(out, encodeMove(followerMove)...)

	return out
}

func encodePerCard(p engine.PlayerPerspective, deck []engine.Card) []int32 {
	hand := p.Hand().Cards()
	ownHand := make(map[engine.Card]bool, len(hand))
	for _, c := range hand {
		ownHand[c] = true
	}
	ownWon := make(map[engine.Card]bool)
	for _, c := range p.OwnWonCards() {
		ownWon[c] = true
	}
	oppWon := make(map[engine.Card]bool)
	for _, c := range p.OpponentWonCards() {
		oppWon[c] = true
	}
	oppKnown := make(map[engine.Card]bool)
	for _, c := range p.GetKnownCardsOfOpponentHand() {
		oppKnown[c] = true
	}
	trumpCard, hasTrump := p.TrumpCard()

	out := make([]int32, 0, len(deck)*perCardCategories)
	for _, c := range deck {
		cat := catUnknown
		switch {
		case ownHand[c]:
			cat = catOwnHand
		case ownWon[c]:
			cat = catOwnWon
		case oppKnown[c]:
			cat = catOppHandKnown
		case oppWon[c]:
			cat = catOppWon
		case hasTrump && c == trumpCard:
			cat = catTrump
		}
		for i := cardCategory(0); i < perCardCategories; i++ {
			if i == cat {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out
}

// encodeMove encodes one move as move-type one-hot (3), rank one-hot (13),
// suit one-hot (4); an absent move (nil, before the follower has acted)
// encodes as all zeros, matching spec.md's "zeros if absent".
func encodeMove(m engine.Move) []int32 {
	out := make([]int32, 0, moveEncodingWidth)
	for t := engine.MoveRegular; t <= engine.MoveTrumpExchange; t++ {
		if m != nil && m.Type() == t {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}

	var card engine.Card
	haveCard := false
	if m != nil {
		switch mv := m.(type) {
		case engine.RegularMove:
			card, haveCard = mv.Card, true
		case engine.Marriage:
			card, haveCard = mv.FollowSuitCard(), true
		case engine.TrumpExchange:
			card, haveCard = mv.Jack, true
		}
	}

	for _, rank := range engine.Ranks {
		if haveCard && rank == card.Rank {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	for _, suit := range engine.Suits {
		if haveCard && suit == card.Suit {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// Record is one recorded decision: a feature vector and the eventual game
// outcome from the recording bot's point of view.
type Record struct {
	Features []int32
	Won      bool
}

// EncodeLine renders r as spec.md §6.2's plain-text line:
// "<int>,<int>,...,<int> || <0|1>\n".
func EncodeLine(r Record) string {
	parts := make([]string, len(r.Features))
	for i, f := range r.Features {
		parts[i] = strconv.Itoa(int(f))
	}
	bit := 0
	if r.Won {
		bit = 1
	}
	return fmt.Sprintf("%s || %d\n", strings.Join(parts, ","), bit)
}

// WriteLine writes r to w in the plain-text line format.
func WriteLine(w io.Writer, r Record) error {
	_, err := io.WriteString(w, EncodeLine(r))
	return err
}

// ParseLine parses one plain-text trace line back into a Record. A
// malformed line (wrong separator, non-integer feature, outcome bit other
// than 0/1) reports ErrConfigurationError, matching spec.md §7's
// classification of a malformed trace line as a configuration error rather
// than an engine invariant violation.
func ParseLine(line string) (Record, error) {
	line = strings.TrimRight(line, "\n")
	left, right, ok := strings.Cut(line, "||")
	if !ok {
		return Record{}, fmt.Errorf("trace line missing '||' separator: %w", engine.ErrConfigurationError)
	}
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	var features []int32
	if left != "" {
		fields := strings.Split(left, ",")
		features = make([]int32, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return Record{}, fmt.Errorf("trace line feature %q is not an integer: %w", f, engine.ErrConfigurationError)
			}
			features[i] = int32(n)
		}
	}

	switch right {
	case "0":
		return Record{Features: features, Won: false}, nil
	case "1":
		return Record{Features: features, Won: true}, nil
	default:
		return Record{}, fmt.Errorf("trace line outcome %q is not 0 or 1: %w", right, engine.ErrConfigurationError)
	}
}

// ReadLines parses every line r yields into Records, stopping at the first
// malformed line.
func ReadLines(r io.Reader) ([]Record, error) {
	var out []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := ParseLine(text)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace lines: %w", err)
	}
	return out, nil
}

// EncodeFlat renders r as a versioned flatbuffers binary record, the
// alternative wire format for hosts that want a typed encoding instead of
// the plain-text line.
func EncodeFlat(r Record) []byte {
	b := flatbuffers.NewBuilder(64 + len(r.Features)*4)

	tracefb.RecordStartFeaturesVector(b, len(r.Features))
	for i := len(r.Features) - 1; i >= 0; i-- {
		b.PrependInt32(r.Features[i])
	}
	featuresOffset := b.EndVector(len(r.Features))

	tracefb.RecordStart(b)
	tracefb.RecordAddSchemaVersion(b, SchemaVersion)
	tracefb.RecordAddFeatures(b, featuresOffset)
	outcome := int32(0)
	if r.Won {
		outcome = 1
	}
	tracefb.RecordAddOutcome(b, outcome)
	root := tracefb.RecordEnd(b)

	b.Finish(root)
	return b.FinishedBytes()
}

// DecodeFlat reads back a Record encoded by EncodeFlat. A schema version
// other than SchemaVersion reports ErrConfigurationError, since this
// package implements only the canonical (non-legacy) feature shape.
func DecodeFlat(buf []byte) (Record, error) {
	if len(buf) < 4 {
		return Record{}, fmt.Errorf("flat trace record too short: %w", engine.ErrConfigurationError)
	}
	fb := tracefb.GetRootAsRecord(buf, 0)
	if fb.SchemaVersion() != SchemaVersion {
		return Record{}, fmt.Errorf("flat trace record schema version %d, want %d: %w", fb.SchemaVersion(), SchemaVersion, engine.ErrConfigurationError)
	}

	n := fb.FeaturesLength()
	features := make([]int32, n)
	for i := 0; i < n; i++ {
		features[i] = fb.Features(i)
	}
	return Record{Features: features, Won: fb.Outcome() == 1}, nil
}
