package engine

import "testing"

func TestMarriagePlayedAndFollowSuitCards(t *testing.T) {
	m := Marriage{Queen: GetCard(Queen, Hearts), King: GetCard(King, Hearts)}

	if got := m.PlayedCard(); got != GetCard(King, Hearts) {
		t.Errorf("PlayedCard() = %s, want K♥", got)
	}
	if got := m.FollowSuitCard(); got != GetCard(Queen, Hearts) {
		t.Errorf("FollowSuitCard() = %s, want Q♥", got)
	}
}

func TestMarriagePendingPoints(t *testing.T) {
	trumpMarriage := Marriage{Queen: GetCard(Queen, Hearts), King: GetCard(King, Hearts)}
	offMarriage := Marriage{Queen: GetCard(Queen, Spades), King: GetCard(King, Spades)}

	if got := trumpMarriage.PendingPoints(Hearts); got != 40 {
		t.Errorf("trump marriage PendingPoints = %d, want 40", got)
	}
	if got := offMarriage.PendingPoints(Hearts); got != 20 {
		t.Errorf("off-suit marriage PendingPoints = %d, want 20", got)
	}
}

func TestPlayedCardAndFollowSuitCardHelpers(t *testing.T) {
	reg := RegularMove{Card: GetCard(Ace, Clubs)}
	if got := PlayedCard(reg); got != GetCard(Ace, Clubs) {
		t.Errorf("PlayedCard(RegularMove) = %s, want A♣", got)
	}
	if got := FollowSuitCard(reg); got != GetCard(Ace, Clubs) {
		t.Errorf("FollowSuitCard(RegularMove) = %s, want A♣", got)
	}

	marriage := Marriage{Queen: GetCard(Queen, Diamonds), King: GetCard(King, Diamonds)}
	if got := PlayedCard(marriage); got != GetCard(King, Diamonds) {
		t.Errorf("PlayedCard(Marriage) = %s, want K♦", got)
	}
	if got := FollowSuitCard(marriage); got != GetCard(Queen, Diamonds) {
		t.Errorf("FollowSuitCard(Marriage) = %s, want Q♦", got)
	}
}

func TestPlayedCardPanicsOnTrumpExchange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PlayedCard(TrumpExchange) should panic; trick scoring never reaches an exchange")
		}
	}()
	PlayedCard(TrumpExchange{Jack: GetCard(Jack, Spades)})
}
