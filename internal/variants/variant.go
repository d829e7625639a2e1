// Package variants assembles the standard engine in internal/engine into
// alternate rulesets: the 24-card deck (adds the four nines) and the
// Ace-One / Negative-Ace scoring tables, each of which the original
// implementation expresses as a GamePlayEngine built from one or two
// substituted components rather than a subclass.
package variants

import "github.com/bran/schnapsen/internal/engine"

// Variant names the pluggable pieces a GamePlayEngine needs beyond the
// standard rules, plus a small configurable-option surface mirroring the
// teacher's rule-option registry, generalized from Euchre's
// team/bidding/trump-hierarchy concerns down to the handful of things a
// Schnapsen ruleset actually varies: how the deck is built and how points
// are scored.
type Variant interface {
	Name() string
	Description() string

	DeckGenerator() engine.DeckGenerator
	HandGenerator() engine.HandGenerator
	TrickScorer() engine.TrickScorer

	Options() []RuleOption
	SetOption(key string, value interface{}) error
	GetOption(key string) interface{}
}

// RuleOption describes one configurable setting a Variant exposes.
type RuleOption struct {
	Key         string
	Name        string
	Description string
	Type        OptionType
	Default     interface{}
	Choices     []interface{}
}

// OptionType identifies the kind of value a RuleOption holds.
type OptionType int

const (
	OptionBool OptionType = iota
	OptionInt
	OptionChoice
)

// BaseVariant provides the option-storage plumbing shared by every
// concrete Variant. None of the built-in variants below currently expose
// any options, but the seam is kept general so a future variant (e.g. a
// house rule toggling whether the trump jack may be exchanged) has
// somewhere to put one without changing the Variant interface.
type BaseVariant struct {
	options map[string]interface{}
}

// NewBaseVariant returns an empty BaseVariant ready for embedding.
func NewBaseVariant() BaseVariant {
	return BaseVariant{options: make(map[string]interface{})}
}

// SetOption implements Variant.
func (v *BaseVariant) SetOption(key string, value interface{}) error {
	v.options[key] = value
	return nil
}

// GetOption implements Variant.
func (v *BaseVariant) GetOption(key string) interface{} {
	return v.options[key]
}

// Registry holds every variant known to a host application, keyed by name.
type Registry struct {
	variants map[string]Variant
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{variants: make(map[string]Variant)}
}

// Register adds v to the registry, keyed by v.Name().
func (r *Registry) Register(v Variant) {
	r.variants[v.Name()] = v
}

// Get retrieves a variant by name.
func (r *Registry) Get(name string) (Variant, bool) {
	v, ok := r.variants[name]
	return v, ok
}

// List returns every registered variant name.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is pre-populated with the four built-in variants below.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register(NewStandardVariant())
	DefaultRegistry.Register(NewTwentyFourCardVariant())
	DefaultRegistry.Register(NewAceOneVariant())
	DefaultRegistry.Register(NewNegativeAceVariant())
}

// Register adds v to DefaultRegistry.
func Register(v Variant) { DefaultRegistry.Register(v) }

// Get retrieves a variant from DefaultRegistry.
func Get(name string) (Variant, bool) { return DefaultRegistry.Get(name) }

// List returns every variant name in DefaultRegistry.
func List() []string { return DefaultRegistry.List() }

// NewEngine builds a *engine.GamePlayEngine wired from v's components, with
// the move validator, trick implementer, and move requester shared across
// every variant: none of them hardcode rank values, so a variant only ever
// needs to replace the deck generator and/or the trick scorer.
func NewEngine(v Variant) *engine.GamePlayEngine {
	return &engine.GamePlayEngine{
		DeckGenerator:    v.DeckGenerator(),
		HandGenerator:    v.HandGenerator(),
		MoveValidator:    engine.SchnapsenMoveValidator{},
		TrickScorer:      v.TrickScorer(),
		TrickImplementer: engine.SchnapsenTrickImplementer{},
		MoveRequester:    engine.SimpleMoveRequester{},
	}
}

// StandardVariant is the unmodified 20-card game.
type StandardVariant struct{ BaseVariant }

// NewStandardVariant returns the standard 20-card, standard-scoring variant.
func NewStandardVariant() *StandardVariant {
	return &StandardVariant{BaseVariant: NewBaseVariant()}
}

func (*StandardVariant) Name() string        { return "standard" }
func (*StandardVariant) Description() string { return "standard 20-card Schnapsen" }
func (*StandardVariant) DeckGenerator() engine.DeckGenerator {
	return engine.SchnapsenDeckGenerator{}
}
func (*StandardVariant) HandGenerator() engine.HandGenerator {
	return engine.SchnapsenHandGenerator{}
}
func (*StandardVariant) TrickScorer() engine.TrickScorer { return engine.SchnapsenTrickScorer{} }
func (*StandardVariant) Options() []RuleOption           { return nil }

// twentyFourCardDeckGenerator extends the standard 20-card deck with the
// four nines, one per suit, appended rather than prepended: deck order
// before shuffling is immaterial since ShuffleDeck fully randomizes it, so
// this follows the original implementation's actual behavior rather than
// the "prepends" phrasing used to describe the standard deck elsewhere.
type twentyFourCardDeckGenerator struct{}

func (twentyFourCardDeckGenerator) InitialDeck() *engine.OrderedCardCollection {
	standard := engine.SchnapsenDeckGenerator{}.InitialDeck().Cards()
	cards := make([]engine.Card, len(standard), len(standard)+4)
	copy(cards, standard)
	for _, suit := range engine.Suits {
		cards = append(cards, engine.GetCard(engine.Nine, suit))
	}
	return engine.NewOrderedCardCollection(cards)
}

// twentyFourCardTrickScorer adds a point value for the nine (1) to the
// standard table; every other rank keeps its standard value.
type twentyFourCardTrickScorer struct{ engine.SchnapsenTrickScorer }

func (twentyFourCardTrickScorer) RankToPoints(rank engine.Rank) int {
	if rank == engine.Nine {
		return 1
	}
	return engine.SchnapsenTrickScorer{}.RankToPoints(rank)
}

// TwentyFourCardVariant adds the four nines to the deck and gives them a
// point value, matching twenty_four_card_schnapsen.py.
type TwentyFourCardVariant struct{ BaseVariant }

// NewTwentyFourCardVariant returns the 24-card variant.
func NewTwentyFourCardVariant() *TwentyFourCardVariant {
	return &TwentyFourCardVariant{BaseVariant: NewBaseVariant()}
}

func (*TwentyFourCardVariant) Name() string        { return "24-card" }
func (*TwentyFourCardVariant) Description() string { return "24-card Schnapsen (adds the four nines)" }
func (*TwentyFourCardVariant) DeckGenerator() engine.DeckGenerator {
	return twentyFourCardDeckGenerator{}
}
func (*TwentyFourCardVariant) HandGenerator() engine.HandGenerator {
	return engine.SchnapsenHandGenerator{}
}
func (*TwentyFourCardVariant) TrickScorer() engine.TrickScorer {
	return twentyFourCardTrickScorer{}
}
func (*TwentyFourCardVariant) Options() []RuleOption { return nil }

// aceOneTrickScorer scores the ace at 1 point instead of 11, matching
// ace_one_engine.py's SCORES table (which also gives the nine a point
// value, for compatibility with a 24-card combination).
type aceOneTrickScorer struct{ engine.SchnapsenTrickScorer }

func (aceOneTrickScorer) RankToPoints(rank engine.Rank) int {
	switch rank {
	case engine.Ace:
		return 1
	case engine.Nine:
		return 1
	default:
		return engine.SchnapsenTrickScorer{}.RankToPoints(rank)
	}
}

// AceOneVariant scores the ace as the lowest-value card in the deck instead
// of the highest, matching alternative_engines/ace_one_engine.py.
type AceOneVariant struct{ BaseVariant }

// NewAceOneVariant returns the Ace-One scoring variant.
func NewAceOneVariant() *AceOneVariant {
	return &AceOneVariant{BaseVariant: NewBaseVariant()}
}

func (*AceOneVariant) Name() string        { return "ace-one" }
func (*AceOneVariant) Description() string { return "standard deck, ace scored as 1 point" }
func (*AceOneVariant) DeckGenerator() engine.DeckGenerator {
	return engine.SchnapsenDeckGenerator{}
}
func (*AceOneVariant) HandGenerator() engine.HandGenerator {
	return engine.SchnapsenHandGenerator{}
}
func (*AceOneVariant) TrickScorer() engine.TrickScorer { return aceOneTrickScorer{} }
func (*AceOneVariant) Options() []RuleOption           { return nil }

// negativeAceTrickScorer scores the ace at -11 points, matching
// negative_ace_engine.py's SCORES table.
type negativeAceTrickScorer struct{ engine.SchnapsenTrickScorer }

func (negativeAceTrickScorer) RankToPoints(rank engine.Rank) int {
	switch rank {
	case engine.Ace:
		return -11
	case engine.Nine:
		return 1
	default:
		return engine.SchnapsenTrickScorer{}.RankToPoints(rank)
	}
}

// NegativeAceVariant penalizes holding (and winning tricks with) the ace,
// matching alternative_engines/negative_ace_engine.py.
type NegativeAceVariant struct{ BaseVariant }

// NewNegativeAceVariant returns the Negative-Ace scoring variant.
func NewNegativeAceVariant() *NegativeAceVariant {
	return &NegativeAceVariant{BaseVariant: NewBaseVariant()}
}

func (*NegativeAceVariant) Name() string        { return "negative-ace" }
func (*NegativeAceVariant) Description() string { return "standard deck, ace scored as -11 points" }
func (*NegativeAceVariant) DeckGenerator() engine.DeckGenerator {
	return engine.SchnapsenDeckGenerator{}
}
func (*NegativeAceVariant) HandGenerator() engine.HandGenerator {
	return engine.SchnapsenHandGenerator{}
}
func (*NegativeAceVariant) TrickScorer() engine.TrickScorer { return negativeAceTrickScorer{} }
func (*NegativeAceVariant) Options() []RuleOption           { return nil }
