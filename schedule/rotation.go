// Package schedule computes partner rotations and game fixtures for the monthly
// doubles tournaments. Everything here is pure and safe for concurrent use.
package schedule

import (
	"fmt"
	"sort"
)

const (
	RosterSize    = 8
	RoundCount    = RosterSize - 1
	PairsPerRound = RosterSize / 2
)

// Pair is an unordered partnership stored as (lower id, higher id).
type Pair struct {
	A int `json:"player1_id"`
	B int `json:"player2_id"`
}

func NewPair(x, y int) Pair {
	if x > y {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

func (p Pair) Contains(playerID int) bool {
	return p.A == playerID || p.B == playerID
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.A, p.B)
}

// Round is one full partition of the roster into partnerships.
type Round [PairsPerRound]Pair

func (r Round) Pairs() []Pair {
	return r[:]
}

func (r Round) Contains(p Pair) bool {
	p = NewPair(p.A, p.B)
	for _, q := range r {
		if q == p {
			return true
		}
	}
	return false
}

// RotationTable holds the 7 rounds of a cycle. Every partnership of the roster
// appears in exactly one round.
type RotationTable [RoundCount]Round

// ComputeRotationTable builds the rotation with the circle method. The roster is
// sorted ascending first, the lowest id stays fixed and the other seven rotate.
// The input slice is not modified.
func ComputeRotationTable(players []int) (RotationTable, error) {
	var table RotationTable

	ring, err := normalizeRoster(players)
	if err != nil {
		return table, err
	}

	n := len(ring)
	for round := 0; round < RoundCount; round++ {
		for i := 0; i < n/2; i++ {
			table[round][i] = NewPair(ring[i], ring[n-1-i])
		}
		ring = rotate(ring)
	}

	return table, nil
}

// SelectRound returns the round used by the tournament with sequence number n.
// The cycle repeats every 7 tournaments: n and n+7 get the same round.
func SelectRound(table RotationTable, n int) (Round, error) {
	if n < 1 {
		return Round{}, fmt.Errorf("%w: got %d", ErrInvalidSequenceNumber, n)
	}
	return table[(n-1)%RoundCount], nil
}

// RoundForSequence is ComputeRotationTable followed by SelectRound.
func RoundForSequence(players []int, n int) (Round, error) {
	table, err := ComputeRotationTable(players)
	if err != nil {
		return Round{}, err
	}
	return SelectRound(table, n)
}

func normalizeRoster(players []int) ([]int, error) {
	if len(players) != RosterSize {
		return nil, fmt.Errorf("%w: got %d players", ErrInvalidRoster, len(players))
	}

	sorted := make([]int, len(players))
	copy(sorted, players)
	sort.Ints(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("%w: duplicate player id %d", ErrInvalidRoster, sorted[i])
		}
	}
	return sorted, nil
}

// rotate keeps position 0 and moves the last element to position 1.
func rotate(ring []int) []int {
	last := len(ring) - 1
	next := make([]int, 0, len(ring))
	next = append(next, ring[0], ring[last])
	next = append(next, ring[1:last]...)
	return next
}
