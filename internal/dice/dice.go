// Package dice holds the five yacht dice and the session random source
// that drives every roll.
//
// # Determinism
//
// A Set draws all of its values from the single *rand.Rand it was built
// with. Two sets built from NewRNG with the same seed, rolled with the same
// lock patterns, produce the same values in the same order.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
)

const (
	// Count is the number of dice in a Set.
	Count = 5
	// Faces is the number of sides on each die.
	Faces = 6
)

// ErrInvalidDieIndex is returned when a die index is outside [0, Count).
var ErrInvalidDieIndex = errors.New("invalid die index")

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRNG returns the session generator for seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Die is a single value-bearing die. It owns no random source; the Set
// hands it the shared generator on every roll.
type Die struct {
	value  int
	locked bool
}

// Value returns the current face.
func (d Die) Value() int { return d.value }

// Locked reports whether the die is held for the next roll.
func (d Die) Locked() bool { return d.locked }

func (d *Die) roll(rng *rand.Rand) {
	if d.locked {
		return
	}
	d.value = rng.Intn(Faces) + 1
}

// Set owns exactly Count dice. Every die starts showing 1 so values are
// always defined, even before the first roll.
type Set struct {
	dice [Count]Die
	rng  *rand.Rand
}

// NewSet builds a Set that rolls with rng.
func NewSet(rng *rand.Rand) *Set {
	s := &Set{rng: rng}
	for i := range s.dice {
		s.dice[i].value = 1
	}
	return s
}

// RollUnlocked assigns a new value to every unlocked die, in index order.
func (s *Set) RollUnlocked() {
	for i := range s.dice {
		s.dice[i].roll(s.rng)
	}
}

// LockAll holds every die.
func (s *Set) LockAll() {
	for i := range s.dice {
		s.dice[i].locked = true
	}
}

// UnlockAll releases every die.
func (s *Set) UnlockAll() {
	for i := range s.dice {
		s.dice[i].locked = false
	}
}

// SetLocked sets the lock flag of the die at index.
func (s *Set) SetLocked(index int, locked bool) error {
	if index < 0 || index >= Count {
		return fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidDieIndex, index, Count-1)
	}
	s.dice[index].locked = locked
	return nil
}

// Locked reports the lock flag of the die at index.
func (s *Set) Locked(index int) (bool, error) {
	if index < 0 || index >= Count {
		return false, fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidDieIndex, index, Count-1)
	}
	return s.dice[index].locked, nil
}

// Values returns a snapshot of the current faces. The array is a copy;
// changing it does not touch the Set.
func (s *Set) Values() [Count]int {
	var out [Count]int
	for i, d := range s.dice {
		out[i] = d.value
	}
	return out
}
