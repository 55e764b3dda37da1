package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxNameDistance is how many edits a typed category name may be away from
// the real one and still match.
const maxNameDistance = 2

// ParseCategory reads a category from player input: an index 0-11 or a
// category name. Names ignore case, spaces, '-' and '_', and a unique
// closest name within two edits is accepted ("fulhouse" is Full House).
func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return -1, fmt.Errorf("%w: empty input", ErrUnknownCategory)
	}
	if n, err := strconv.Atoi(s); err == nil {
		c := Category(n)
		if !c.Valid() {
			return -1, fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidCategory, n, Count-1)
		}
		return c, nil
	}

	key := normalizeName(s)
	best, bestDist, tied := Category(-1), -1, false
	for _, r := range table {
		d := levenshtein.ComputeDistance(key, normalizeName(r.Name))
		switch {
		case d == 0:
			return r.Category, nil
		case bestDist < 0 || d < bestDist:
			best, bestDist, tied = r.Category, d, false
		case d == bestDist:
			tied = true
		}
	}
	if bestDist <= maxNameDistance && !tied {
		return best, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, s)
}
