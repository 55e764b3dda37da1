package game

import (
	"sort"

	"github.com/jask/yacht/internal/rules"
)

// Standing is one player's final line.
type Standing struct {
	// Rank is 1-based; tied totals share a rank and the next rank skips.
	Rank   int
	Seat   int
	Name   string
	Total  int
	Scores [rules.Count]int
	Used   [rules.Count]bool
}

// Standings are ordered by total, highest first. Ties keep turn order.
type Standings []Standing

// Rank builds standings from players given in turn order.
func Rank(players []*Player) Standings {
	out := make(Standings, len(players))
	for i, p := range players {
		out[i] = Standing{
			Seat:   i,
			Name:   p.Name,
			Total:  p.Board.Total(),
			Scores: p.Board.Scores(),
			Used:   p.Board.Used(),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	for i := range out {
		if i > 0 && out[i].Total == out[i-1].Total {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}
	return out
}

// Winners returns every standing ranked first.
func (s Standings) Winners() Standings {
	var out Standings
	for _, st := range s {
		if st.Rank == 1 {
			out = append(out, st)
		}
	}
	return out
}
