package store

import (
	"github.com/bmkabile/fixmyward/models"
)

// Severity buckets a province's issue count for choropleth coloring.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// MapThresholds are the bucket boundaries: count > High is high, count >
// Medium is medium, anything else low.
type MapThresholds struct {
	High   int
	Medium int
}

// DefaultMapThresholds matches the product defaults: three or more issues
// is a hotspot, any issue at all is worth attention.
var DefaultMapThresholds = MapThresholds{High: 2, Medium: 0}

// Bucket assigns a severity to an issue count.
func (t MapThresholds) Bucket(count int) Severity {
	switch {
	case count > t.High:
		return SeverityHigh
	case count > t.Medium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// ProvinceCount is one province's aggregate on the national map.
type ProvinceCount struct {
	Province string   `json:"province"`
	Count    int      `json:"count"`
	Severity Severity `json:"severity"`
}

// WardSummary is one ward's entry in the province drill-down.
type WardSummary struct {
	Ward         string               `json:"ward"`
	IssueCount   int                  `json:"issueCount"`
	Demographics *models.Demographics `json:"demographics,omitempty"`
}

// WardDetail is the deepest drill-down level: the ward's issues plus its
// demographic figures.
type WardDetail struct {
	Ward         string               `json:"ward"`
	Province     string               `json:"province"`
	Issues       []*models.Issue      `json:"issues"`
	Demographics *models.Demographics `json:"demographics,omitempty"`
}

// ProvinceCounts aggregates issue counts per province in a single pass.
// Every known province appears, zeros included, in canonical order.
func (s *Store) ProvinceCounts() []ProvinceCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(models.Provinces))
	for _, p := range models.Provinces {
		counts[p] = 0
	}
	for _, issue := range s.issues {
		if _, ok := counts[issue.Province]; ok {
			counts[issue.Province]++
		}
	}

	out := make([]ProvinceCount, 0, len(models.Provinces))
	for _, p := range models.Provinces {
		out = append(out, ProvinceCount{
			Province: p,
			Count:    counts[p],
			Severity: s.thresholds.Bucket(counts[p]),
		})
	}
	return out
}

// WardsInProvince lists the wards that have issues in the province, in
// first-reported order, each with its issue count and demographics.
func (s *Store) WardsInProvince(province string) []WardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]int)
	var order []string
	for _, issue := range s.issues {
		if issue.Province != province {
			continue
		}
		if _, ok := seen[issue.Ward]; !ok {
			order = append(order, issue.Ward)
		}
		seen[issue.Ward]++
	}

	out := make([]WardSummary, 0, len(order))
	for _, ward := range order {
		summary := WardSummary{Ward: ward, IssueCount: seen[ward]}
		if d, ok := s.demographics[ward]; ok {
			dc := d
			summary.Demographics = &dc
		}
		out = append(out, summary)
	}
	return out
}

// WardIssues is the ward-level drill-down: an equality filter over the
// issue collection plus the demographic lookup.
func (s *Store) WardIssues(province, ward string) WardDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	detail := WardDetail{Ward: ward, Province: province, Issues: []*models.Issue{}}
	for _, issue := range s.issues {
		if issue.Ward == ward && (province == "" || issue.Province == province) {
			detail.Issues = append(detail.Issues, issue.Clone())
		}
	}
	if d, ok := s.demographics[ward]; ok {
		dc := d
		detail.Demographics = &dc
	}
	return detail
}
