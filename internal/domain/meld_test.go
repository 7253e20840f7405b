package domain

import "testing"

func TestIsSet(t *testing.T) {
	cases := []struct {
		name  string
		cards []Card
		want  bool
	}{
		{"three sevens", []Card{{SuitClubs, 7}, {SuitHearts, 7}, {SuitSpades, 7}}, true},
		{"four kings", []Card{{SuitClubs, RankKing}, {SuitHearts, RankKing}, {SuitSpades, RankKing}, {SuitDiamonds, RankKing}}, true},
		{"two cards", []Card{{SuitClubs, 7}, {SuitHearts, 7}}, false},
		{"mixed ranks", []Card{{SuitClubs, 7}, {SuitHearts, 7}, {SuitSpades, 8}}, false},
	}
	for _, c := range cases {
		if got := IsSet(c.cards); got != c.want {
			t.Errorf("%s: IsSet = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsRun(t *testing.T) {
	cases := []struct {
		name  string
		cards []Card
		want  bool
	}{
		{"three straight", []Card{{SuitSpades, 4}, {SuitSpades, 5}, {SuitSpades, 6}}, true},
		{"unsorted input", []Card{{SuitHearts, 9}, {SuitHearts, 7}, {SuitHearts, 8}}, true},
		{"ace low", []Card{{SuitClubs, RankAce}, {SuitClubs, 2}, {SuitClubs, 3}}, true},
		{"long run", []Card{{SuitDiamonds, 5}, {SuitDiamonds, 6}, {SuitDiamonds, 7}, {SuitDiamonds, 8}, {SuitDiamonds, 9}}, true},
		{"no wraparound", []Card{{SuitSpades, RankQueen}, {SuitSpades, RankKing}, {SuitSpades, RankAce}}, false},
		{"mixed suits", []Card{{SuitSpades, 4}, {SuitHearts, 5}, {SuitSpades, 6}}, false},
		{"gap", []Card{{SuitSpades, 4}, {SuitSpades, 5}, {SuitSpades, 7}}, false},
		{"too short", []Card{{SuitSpades, 4}, {SuitSpades, 5}}, false},
	}
	for _, c := range cases {
		if got := IsRun(c.cards); got != c.want {
			t.Errorf("%s: IsRun = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFindPossibleMeldsGreedyConsumesRunFirst(t *testing.T) {
	// The 7S is claimed by the run, leaving only two sevens for a set. The
	// greedy scan accepts this suboptimal partition.
	hand := []Card{
		{SuitSpades, 5}, {SuitSpades, 6}, {SuitSpades, 7},
		{SuitHearts, 7}, {SuitDiamonds, 7},
	}
	melds := FindPossibleMelds(hand)
	if len(melds) != 1 {
		t.Fatalf("melds = %d, want exactly the run", len(melds))
	}
	if !IsRun(melds[0]) {
		t.Fatalf("meld should be the spade run, got %v", melds[0])
	}
}

func TestFindPossibleMeldsRunAndSet(t *testing.T) {
	hand := []Card{
		{SuitClubs, 2}, {SuitClubs, 3}, {SuitClubs, 4},
		{SuitSpades, 9}, {SuitHearts, 9}, {SuitDiamonds, 9},
		{SuitHearts, RankKing},
	}
	melds := FindPossibleMelds(hand)
	if len(melds) != 2 {
		t.Fatalf("melds = %d, want 2", len(melds))
	}
	if !IsRun(melds[0]) || !IsSet(melds[1]) {
		t.Fatalf("want run then set, got %v", melds)
	}
}

func TestHandValue(t *testing.T) {
	cases := []struct {
		name string
		hand []Card
		want int
	}{
		{"empty", nil, 0},
		{"fully melded", []Card{{SuitClubs, 2}, {SuitClubs, 3}, {SuitClubs, 4}}, 0},
		{"run plus king", []Card{{SuitSpades, 5}, {SuitSpades, 6}, {SuitSpades, 7}, {SuitDiamonds, RankKing}}, 10},
		{"nothing melds", []Card{{SuitSpades, 2}, {SuitHearts, 5}, {SuitClubs, RankJack}}, 17},
	}
	for _, c := range cases {
		if got := HandValue(c.hand); got != c.want {
			t.Errorf("%s: HandValue = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestCanLayOff(t *testing.T) {
	set3 := &Meld{Cards: []Card{{SuitClubs, 7}, {SuitHearts, 7}, {SuitSpades, 7}}}
	set4 := &Meld{Cards: []Card{{SuitClubs, 7}, {SuitHearts, 7}, {SuitSpades, 7}, {SuitDiamonds, 7}}}
	run := &Meld{Cards: []Card{{SuitSpades, 4}, {SuitSpades, 5}, {SuitSpades, 6}}}

	cases := []struct {
		name string
		card Card
		meld *Meld
		want bool
	}{
		{"fourth card into set", Card{SuitDiamonds, 7}, set3, true},
		{"fifth card into set", Card{SuitDiamonds, 7}, set4, false},
		{"wrong rank into set", Card{SuitDiamonds, 8}, set3, false},
		{"extend run high", Card{SuitSpades, 7}, run, true},
		{"extend run low", Card{SuitSpades, 3}, run, true},
		{"wrong suit on run", Card{SuitHearts, 7}, run, false},
		{"gap above run", Card{SuitSpades, 8}, run, false},
		{"empty meld", Card{SuitSpades, 8}, &Meld{}, false},
	}
	for _, c := range cases {
		if got := CanLayOff(c.card, c.meld); got != c.want {
			t.Errorf("%s: CanLayOff = %v, want %v", c.name, got, c.want)
		}
	}
}
