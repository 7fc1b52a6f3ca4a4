package store

import (
	"sort"

	"github.com/bmkabile/fixmyward/models"
)

// FeedFilter narrows the home feed. Filters are conjunctive and each is
// optional: the empty string means no constraint.
type FeedFilter struct {
	Category string
	Ward     string
	Status   string
}

// Matches reports whether the issue satisfies every set filter.
func (f FeedFilter) Matches(issue *models.Issue) bool {
	if f.Category != "" && string(issue.Category) != f.Category {
		return false
	}
	if f.Ward != "" && issue.Ward != f.Ward {
		return false
	}
	if f.Status != "" && string(issue.Status) != f.Status {
		return false
	}
	return true
}

// FilterIssues returns the displayable feed: filtered, then sorted by
// creation time descending. The sort is stable, so equal timestamps keep
// their original relative order.
func (s *Store) FilterIssues(filter FeedFilter) []*models.Issue {
	s.mu.RLock()
	var out []*models.Issue
	for _, issue := range s.issues {
		if filter.Matches(issue) {
			out = append(out, issue.Clone())
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
