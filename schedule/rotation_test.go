package schedule

import (
	"errors"
	"testing"
)

func roster() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8}
}

func TestComputeRotationTable(t *testing.T) {
	table, err := ComputeRotationTable(roster())
	if err != nil {
		t.Fatalf("ComputeRotationTable() error = %v", err)
	}

	t.Run("first round uses fixed-first circle method", func(t *testing.T) {
		want := Round{{1, 8}, {2, 7}, {3, 6}, {4, 5}}
		if table[0] != want {
			t.Errorf("round 0 = %v, want %v", table[0], want)
		}
	})

	t.Run("second round moves last element behind fixed one", func(t *testing.T) {
		want := Round{{1, 7}, {6, 8}, {2, 5}, {3, 4}}
		if table[1] != want {
			t.Errorf("round 1 = %v, want %v", table[1], want)
		}
	})

	t.Run("every partnership appears exactly once", func(t *testing.T) {
		counts := make(map[Pair]int)
		total := 0
		for _, round := range table {
			for _, p := range round {
				if p.A >= p.B {
					t.Errorf("pair %v is not canonical", p)
				}
				counts[p]++
				total++
			}
		}
		if total != 28 {
			t.Errorf("total pairs = %d, want 28", total)
		}
		if len(counts) != 28 {
			t.Errorf("distinct pairs = %d, want 28", len(counts))
		}
		for p, c := range counts {
			if c != 1 {
				t.Errorf("pair %v appears %d times, want 1", p, c)
			}
		}
	})

	t.Run("each round covers every player once", func(t *testing.T) {
		for i, round := range table {
			seen := make(map[int]int)
			for _, p := range round {
				seen[p.A]++
				seen[p.B]++
			}
			if len(seen) != RosterSize {
				t.Errorf("round %d covers %d players, want %d", i, len(seen), RosterSize)
			}
			for id, c := range seen {
				if c != 1 {
					t.Errorf("round %d: player %d appears %d times", i, id, c)
				}
			}
		}
	})
}

func TestComputeRotationTableIsDeterministic(t *testing.T) {
	first, err := ComputeRotationTable(roster())
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := ComputeRotationTable(roster())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Fatalf("tables differ between calls:\n%v\n%v", first, second)
	}

	shuffled := []int{5, 3, 8, 1, 7, 2, 6, 4}
	fromShuffled, err := ComputeRotationTable(shuffled)
	if err != nil {
		t.Fatalf("shuffled roster: %v", err)
	}
	if fromShuffled != first {
		t.Errorf("input order changed the table:\n%v\n%v", fromShuffled, first)
	}
	if shuffled[0] != 5 || shuffled[7] != 4 {
		t.Errorf("input slice was modified: %v", shuffled)
	}
}

func TestComputeRotationTableNonContiguousIDs(t *testing.T) {
	table, err := ComputeRotationTable([]int{42, 7, 19, 100, 3, 64, 11, 58})
	if err != nil {
		t.Fatalf("ComputeRotationTable() error = %v", err)
	}
	want := Round{{3, 100}, {7, 64}, {11, 58}, {19, 42}}
	if table[0] != want {
		t.Errorf("round 0 = %v, want %v", table[0], want)
	}
}

func TestComputeRotationTableInvalidRoster(t *testing.T) {
	tests := []struct {
		name    string
		players []int
	}{
		{name: "empty", players: nil},
		{name: "seven players", players: []int{1, 2, 3, 4, 5, 6, 7}},
		{name: "nine players", players: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{name: "duplicate id", players: []int{1, 2, 3, 4, 5, 6, 7, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeRotationTable(tt.players)
			if !errors.Is(err, ErrInvalidRoster) {
				t.Fatalf("error = %v, want ErrInvalidRoster", err)
			}
		})
	}
}

func TestSelectRound(t *testing.T) {
	table, err := ComputeRotationTable(roster())
	if err != nil {
		t.Fatalf("ComputeRotationTable() error = %v", err)
	}

	t.Run("sequence number is one-based", func(t *testing.T) {
		got, err := SelectRound(table, 1)
		if err != nil {
			t.Fatalf("SelectRound() error = %v", err)
		}
		if got != table[0] {
			t.Errorf("SelectRound(1) = %v, want %v", got, table[0])
		}
		got, _ = SelectRound(table, 7)
		if got != table[6] {
			t.Errorf("SelectRound(7) = %v, want %v", got, table[6])
		}
	})

	t.Run("period is seven", func(t *testing.T) {
		for n := 1; n <= 30; n++ {
			a, err := SelectRound(table, n)
			if err != nil {
				t.Fatalf("SelectRound(%d) error = %v", n, err)
			}
			b, err := SelectRound(table, n+7)
			if err != nil {
				t.Fatalf("SelectRound(%d) error = %v", n+7, err)
			}
			if a != b {
				t.Errorf("SelectRound(%d) = %v, SelectRound(%d) = %v", n, a, n+7, b)
			}
		}
	})

	t.Run("non-positive sequence number", func(t *testing.T) {
		for _, n := range []int{0, -1, -8} {
			if _, err := SelectRound(table, n); !errors.Is(err, ErrInvalidSequenceNumber) {
				t.Errorf("SelectRound(%d) error = %v, want ErrInvalidSequenceNumber", n, err)
			}
		}
	})
}

func TestRoundForSequence(t *testing.T) {
	got, err := RoundForSequence([]int{8, 7, 6, 5, 4, 3, 2, 1}, 8)
	if err != nil {
		t.Fatalf("RoundForSequence() error = %v", err)
	}
	want := Round{{1, 8}, {2, 7}, {3, 6}, {4, 5}}
	if got != want {
		t.Errorf("RoundForSequence(8) = %v, want %v", got, want)
	}
	if !got.Contains(Pair{A: 8, B: 1}) {
		t.Error("Contains should ignore pair orientation")
	}

	if _, err := RoundForSequence([]int{1, 2}, 1); !errors.Is(err, ErrInvalidRoster) {
		t.Errorf("error = %v, want ErrInvalidRoster", err)
	}
}
