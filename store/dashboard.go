package store

import (
	"sort"

	"github.com/bmkabile/fixmyward/models"
)

// WardStats is the councillor dashboard aggregate for one ward: status
// counters plus the most engaged-with issues.
type WardStats struct {
	Ward       string          `json:"ward"`
	Total      int             `json:"total"`
	Fixed      int             `json:"fixed"`
	InProgress int             `json:"inProgress"`
	Reported   int             `json:"reported"`
	Viral      []*models.Issue `json:"viral"`
}

// viralTop is how many issues the dashboard's engagement ranking shows.
const viralTop = 5

// StatsForWard aggregates the ward's issues by status and ranks them by
// engagement (likes plus comments, descending).
func (s *Store) StatsForWard(ward string) WardStats {
	s.mu.RLock()

	stats := WardStats{Ward: ward, Viral: []*models.Issue{}}
	var wardIssues []*models.Issue
	for _, issue := range s.issues {
		if issue.Ward != ward {
			continue
		}
		stats.Total++
		switch issue.Status {
		case models.Fixed:
			stats.Fixed++
		case models.InProgress:
			stats.InProgress++
		case models.Reported:
			stats.Reported++
		}
		wardIssues = append(wardIssues, issue.Clone())
	}
	s.mu.RUnlock()

	sort.SliceStable(wardIssues, func(i, j int) bool {
		ei := len(wardIssues[i].Likes) + len(wardIssues[i].Comments)
		ej := len(wardIssues[j].Likes) + len(wardIssues[j].Comments)
		return ei > ej
	})
	if len(wardIssues) > viralTop {
		wardIssues = wardIssues[:viralTop]
	}
	stats.Viral = append(stats.Viral, wardIssues...)
	return stats
}
