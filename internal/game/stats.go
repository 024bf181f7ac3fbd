package game

import "sort"

// PlayerStat is one row of a team's batting leaderboard.
type PlayerStat struct {
	PlayerID   uint   `json:"player_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TotalRuns  int    `json:"total_runs"`
	GamesCount int    `json:"games_count"`
}

// PlayerLookup resolves a player's display identity. Supplied by the caller
// so the aggregator stays independent of the user storage.
type PlayerLookup func(playerID uint) (name, email string, err error)

// AggregatePlayerStats folds every ball of every over of every match into
// per-player batting totals. Wickets never reduce a player's runs; this
// measures batting contribution only. A match with no balls recorded still
// counts toward its player's games. Rows come back sorted by total runs
// descending; ties keep first-appearance order.
func AggregatePlayerStats(matches []Match, lookup PlayerLookup) ([]PlayerStat, error) {
	index := make(map[uint]int)
	stats := make([]PlayerStat, 0, len(matches))

	for _, m := range matches {
		i, seen := index[m.PlayerID]
		if !seen {
			i = len(stats)
			index[m.PlayerID] = i
			stats = append(stats, PlayerStat{PlayerID: m.PlayerID})
		}
		stats[i].GamesCount++
		runs, _ := Totals(m.Overs)
		stats[i].TotalRuns += runs
	}

	for i := range stats {
		name, email, err := lookup(stats[i].PlayerID)
		if err != nil {
			return nil, err
		}
		stats[i].Name = name
		stats[i].Email = email
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalRuns > stats[b].TotalRuns
	})
	return stats, nil
}

// PlayerTotal returns one player's cumulative runs across the given matches.
// Used for profile display; no identity join, no ordering.
func PlayerTotal(matches []Match, playerID uint) int {
	total := 0
	for _, m := range matches {
		if m.PlayerID != playerID {
			continue
		}
		runs, _ := Totals(m.Overs)
		total += runs
	}
	return total
}
