package core

import "testing"

func TestCardString(t *testing.T) {
	parked := NewDragon(3, 'Y')
	parked.Mobile = false

	tests := []struct {
		card Card
		want string
	}{
		{NewNumbered(1, 'A', 3), "A3"},
		{NewNumbered(2, 'C', 12), "C12"},
		{NewDragon(3, 'Y'), "Y"},
		{parked, "Y*"},
		{NewFlower(4), "@"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCardSameIgnoresID(t *testing.T) {
	a := NewNumbered(1, 'A', 3)
	b := NewNumbered(99, 'A', 3)
	if !a.Same(b) {
		t.Error("cards with equal suit and rank should compare the same")
	}

	locked := NewDragon(5, 'X')
	free := locked
	locked.Mobile = false
	if locked.Same(free) {
		t.Error("mobility is part of structural equality")
	}
}

func TestSlot(t *testing.T) {
	var zero Slot
	if !zero.IsEmpty() {
		t.Error("zero Slot should be empty")
	}
	if zero.String() != "--" {
		t.Errorf("empty slot String() = %q", zero.String())
	}

	s := Occupied(NewFlower(1))
	c, ok := s.Card()
	if !ok || !c.IsFlower() {
		t.Errorf("Card() = %v, %v; want flower", c, ok)
	}

	if s.Same(EmptySlot()) {
		t.Error("occupied slot should differ from an empty one")
	}
	if !EmptySlot().Same(zero) {
		t.Error("empty slots are the same")
	}
}

func TestKindString(t *testing.T) {
	if KindDragon.String() != "Dragon" || Kind(42).String() != "Unknown" {
		t.Error("unexpected Kind names")
	}
}
