// Package rules scores a yacht hand against the twelve fixed categories.
//
// Every rule is a pure function of the five face values. Rules work from a
// frequency histogram, so the order of the dice never changes a score.
//
// # Straights
//
// SmallStraight and BigStraight count faces that appear exactly once; they
// do not check numeric adjacency. {1,3,4,5,6} has five singleton faces and
// scores 40 as a BigStraight. {1,2,3,4,4} has only three singletons and
// scores 0 as a SmallStraight.
package rules

import (
	"errors"
	"fmt"
)

// Hand is the five face values a category is scored against.
type Hand [5]int

// Category indexes one of the twelve scoring slots.
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	FullHouse
	FourOfAKind
	SmallStraight
	BigStraight
	Choice
	Yacht
)

// Count is the number of categories, and so the number of rounds in a game.
const Count = 12

var (
	// ErrInvalidCategory is returned for a category index outside [0, Count).
	ErrInvalidCategory = errors.New("invalid category")
	// ErrUnknownCategory is returned when text names no category.
	ErrUnknownCategory = errors.New("unknown category")
)

// Rule is one scoring rule and its display name.
type Rule struct {
	Category Category
	Name     string
	score    func(Hand) int
}

// Score applies the rule to h.
func (r Rule) Score(h Hand) int { return r.score(h) }

var table = [Count]Rule{
	{Ones, "Ones", upper(1)},
	{Twos, "Twos", upper(2)},
	{Threes, "Threes", upper(3)},
	{Fours, "Fours", upper(4)},
	{Fives, "Fives", upper(5)},
	{Sixes, "Sixes", upper(6)},
	{FullHouse, "Full House", fullHouse},
	{FourOfAKind, "Four of a Kind", fourOfAKind},
	{SmallStraight, "Small Straight", singletons(4, 30)},
	{BigStraight, "Big Straight", singletons(5, 40)},
	{Choice, "Choice", Sum},
	{Yacht, "Yacht", yacht},
}

// Valid reports whether c is one of the twelve categories.
func (c Category) Valid() bool { return c >= 0 && c < Count }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return table[c].Name
}

// Rules returns the registry in category order.
func Rules() []Rule {
	out := make([]Rule, Count)
	copy(out, table[:])
	return out
}

// Score computes the points h earns in category c.
func Score(c Category, h Hand) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidCategory, int(c), Count-1)
	}
	return table[c].Score(h), nil
}

// Name returns the display name of category c.
func Name(c Category) (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidCategory, int(c), Count-1)
	}
	return table[c].Name, nil
}

// Frequencies returns the face histogram of h: freq[v] is the number of
// dice showing v. Index 0 is unused; faces outside 1..6 are ignored.
func Frequencies(h Hand) [7]int {
	var freq [7]int
	for _, v := range h {
		if v >= 1 && v <= 6 {
			freq[v]++
		}
	}
	return freq
}

// Sum adds all five faces.
func Sum(h Hand) int {
	total := 0
	for _, v := range h {
		total += v
	}
	return total
}

func upper(face int) func(Hand) int {
	return func(h Hand) int {
		return Frequencies(h)[face] * face
	}
}

func fullHouse(h Hand) int {
	freq := Frequencies(h)
	threes, twos := 0, 0
	for v := 1; v <= 6; v++ {
		switch freq[v] {
		case 3:
			threes++
		case 2:
			twos++
		}
	}
	if threes == 1 && twos == 1 {
		return Sum(h)
	}
	return 0
}

func fourOfAKind(h Hand) int {
	freq := Frequencies(h)
	for v := 1; v <= 6; v++ {
		if freq[v] >= 4 {
			return v * 4
		}
	}
	return 0
}

// singletons scores points when at least need faces appear exactly once.
func singletons(need, points int) func(Hand) int {
	return func(h Hand) int {
		freq := Frequencies(h)
		n := 0
		for v := 1; v <= 6; v++ {
			if freq[v] == 1 {
				n++
			}
		}
		if n >= need {
			return points
		}
		return 0
	}
}

func yacht(h Hand) int {
	freq := Frequencies(h)
	for v := 1; v <= 6; v++ {
		if freq[v] == 5 {
			return 50
		}
	}
	return 0
}
