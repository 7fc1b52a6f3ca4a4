package models

import (
	"time"
)

// IssueCategory enum
type IssueCategory string

const (
	Infrastructure IssueCategory = "Infrastructure"
	Water          IssueCategory = "Water & Sanitation"
	Electricity    IssueCategory = "Electricity"
	Waste          IssueCategory = "Waste Management"
	Safety         IssueCategory = "Safety & Security"
	Other          IssueCategory = "Other"
)

// Categories lists every reportable category.
var Categories = []IssueCategory{
	Infrastructure, Water, Electricity, Waste, Safety, Other,
}

func (c IssueCategory) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IssueStatus enum
type IssueStatus string

const (
	Reported   IssueStatus = "Reported"
	InProgress IssueStatus = "In Progress"
	Fixed      IssueStatus = "Fixed"
)

// Statuses lists every status an issue can carry. Transitions are
// unordered: a ward councillor may set any status at any time.
var Statuses = []IssueStatus{Reported, InProgress, Fixed}

func (s IssueStatus) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// GeoPoint is the map pin attached to a report.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Issue represents a civic issue reported by a user.
type Issue struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    IssueCategory `json:"category"`
	Province    string        `json:"province"`
	Ward        string        `json:"ward"`
	ReporterID  string        `json:"reporterId"`
	ImageURL    string        `json:"imageUrl"`
	Location    GeoPoint      `json:"location"`
	Status      IssueStatus   `json:"status"`
	Likes       []string      `json:"likes"`
	Comments    []Comment     `json:"comments"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// LikedBy reports whether the user id is in the like set.
func (i *Issue) LikedBy(userID string) bool {
	for _, id := range i.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so store readers never alias store-owned slices.
func (i *Issue) Clone() *Issue {
	cp := *i
	cp.Likes = append([]string(nil), i.Likes...)
	cp.Comments = append([]Comment(nil), i.Comments...)
	return &cp
}
