package engine

// MoveType distinguishes the three shapes a Move can take.
type MoveType int

const (
	MoveRegular MoveType = iota
	MoveMarriage
	MoveTrumpExchange
)

// String returns the move type name.
func (t MoveType) String() string {
	switch t {
	case MoveRegular:
		return "Regular"
	case MoveMarriage:
		return "Marriage"
	case MoveTrumpExchange:
		return "TrumpExchange"
	default:
		return "Unknown"
	}
}

// Move is the tagged union of everything a bot can submit to the trick
// implementer. It mirrors the teacher's Action interface
// (internal/engine/interfaces.go), generalized from Euchre's five bidding
// actions down to Schnapsen's three play-time actions.
type Move interface {
	Type() MoveType

	// Cards returns every physical card this move touches, all of which the
	// bot must hold when it submits the move. For a RegularMove this is the
	// one card played. For a Marriage it is both the queen and the king,
	// even though only the king is the card actually played to the trick
	// (the queen stays in hand; see Marriage.PlayedCard). For a
	// TrumpExchange it is the jack.
	Cards() []Card

	// IsLeaderMove reports whether this move shape is ever legal as the
	// leader's opening move of a trick. All three shapes report true: the
	// leader may play any of them, while the follower is limited to
	// RegularMove by the move validator.
	IsLeaderMove() bool
}

// RegularMove is a single card played to the trick with no side effect.
type RegularMove struct {
	Card Card
}

func (m RegularMove) Type() MoveType     { return MoveRegular }
func (m RegularMove) Cards() []Card      { return []Card{m.Card} }
func (m RegularMove) IsLeaderMove() bool { return true }

// PlayedCard returns the card physically discarded to the trick.
func (m RegularMove) PlayedCard() Card { return m.Card }

// Marriage declares a Queen+King pair of the same suit held simultaneously.
// Declaring it awards pending points (20, or 40 if Suit is trump). The card
// physically played and discarded to the trick is the King — "playing the
// king gives you the highest score" — while the Queen, which stays in the
// declaring bot's hand, is nonetheless the "effective" leader card used for
// Phase Two follow-suit determination, consistent with her being the card
// announced first.
type Marriage struct {
	Queen Card
	King  Card
}

func (m Marriage) Type() MoveType     { return MoveMarriage }
func (m Marriage) Cards() []Card      { return []Card{m.Queen, m.King} }
func (m Marriage) IsLeaderMove() bool { return true }

// PlayedCard returns the card physically discarded to the trick: the king.
func (m Marriage) PlayedCard() Card { return m.King }

// FollowSuitCard returns the card used to determine the led suit for
// Phase Two follow-suit legality: the queen.
func (m Marriage) FollowSuitCard() Card { return m.Queen }

// Suit returns the suit of the declared pair.
func (m Marriage) Suit() Suit { return m.Queen.Suit }

// PendingPoints returns the marriage's pending-point award: 40 if the pair
// is in the trump suit, else 20.
func (m Marriage) PendingPoints(trumpSuit Suit) int {
	if m.Suit() == trumpSuit {
		return 40
	}
	return 20
}

// TrumpExchange swaps the held jack of trump for the talon's visible trump
// card. It is only legal for the leader, only in Phase One, and only when
// the talon holds at least two cards (so a trump card still remains to show
// after the exchange).
type TrumpExchange struct {
	Jack Card
}

func (m TrumpExchange) Type() MoveType     { return MoveTrumpExchange }
func (m TrumpExchange) Cards() []Card      { return []Card{m.Jack} }
func (m TrumpExchange) IsLeaderMove() bool { return true }

// PlayedCard returns the card physically discarded to the trick by a
// leader/follower move. It panics for a TrumpExchange, which never reaches
// the trick-scoring stage at all: the exchange short-circuits the trick.
func PlayedCard(m Move) Card {
	switch mv := m.(type) {
	case RegularMove:
		return mv.PlayedCard()
	case Marriage:
		return mv.PlayedCard()
	default:
		panic("engine: PlayedCard called on a move with no trick card")
	}
}

// FollowSuitCard returns the card whose suit governs Phase Two follow-suit
// legality: a RegularMove's own card, or a Marriage's queen.
func FollowSuitCard(m Move) Card {
	switch mv := m.(type) {
	case RegularMove:
		return mv.Card
	case Marriage:
		return mv.FollowSuitCard()
	default:
		panic("engine: FollowSuitCard called on a move with no leader card")
	}
}
