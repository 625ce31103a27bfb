// Package ranking orders scored teams into tie-aware leaderboard groups.
package ranking

import (
	"sort"
)

// ScoredEntity is one leaderboard participant. A nil Score means the team has
// not been judged yet and ranks as 0.
type ScoredEntity struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Score       *float64 `json:"score"`
}

// Value returns the entity score, treating a missing score as 0.
func (e ScoredEntity) Value() float64 {
	if e.Score == nil {
		return 0
	}
	return *e.Score
}

// RankGroup is a set of entities sharing one position on the leaderboard.
type RankGroup struct {
	Position int            `json:"position"`
	Score    float64        `json:"score"`
	Members  []ScoredEntity `json:"members"`
}

// Rank sorts entities by score (desc) then display name (asc) and folds equal
// positive scores into shared groups. Positions use competition ranking, so a
// tie of k members pushes the next group's position forward by k.
// Unscored entities never share a group.
func Rank(entities []ScoredEntity) []RankGroup {
	if len(entities) == 0 {
		return []RankGroup{}
	}

	sorted := make([]ScoredEntity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].Value(), sorted[j].Value()
		if si != sj {
			return si > sj
		}
		return sorted[i].DisplayName < sorted[j].DisplayName
	})

	groups := make([]RankGroup, 0, len(sorted))
	position := 1
	for _, e := range sorted {
		score := e.Value()
		if n := len(groups); n > 0 && score > 0 && groups[n-1].Score == score {
			groups[n-1].Members = append(groups[n-1].Members, e)
			position++
			continue
		}
		groups = append(groups, RankGroup{
			Position: position,
			Score:    score,
			Members:  []ScoredEntity{e},
		})
		position++
	}
	return groups
}
