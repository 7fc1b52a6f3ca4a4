package store

import (
	"time"

	"github.com/bmkabile/fixmyward/models"
)

// SeedDemo loads the demo accounts, reports, and ward demographics the app
// ships with in lieu of a real backend. Passwords here are plaintext and
// hashed by Seed on the way in.
func SeedDemo(s *Store) error {
	users := []*models.User{
		{
			ID:       "1",
			FullName: "John Citizen",
			Email:    "john@ward.co.za",
			Ward:     "Ward 5",
			Role:     models.Citizen,
			Password: "123",
		},
		{
			ID:       "2",
			FullName: "Cllr. Maria",
			Email:    "maria@council.co.za",
			Ward:     "Ward 5",
			Role:     models.Councillor,
			Password: "123",
		},
	}

	now := time.Now()
	issues := []*models.Issue{
		{
			ID:          "1",
			Title:       "Pothole on Main Road",
			Description: "Large pothole causing accidents",
			Category:    models.Infrastructure,
			Province:    "Eastern Cape",
			Ward:        "Ward 5",
			ReporterID:  "1",
			ImageURL:    "https://picsum.photos/800/600?random=1",
			Location:    models.GeoPoint{Lat: -33.9249, Lng: 18.4241},
			Status:      models.Reported,
			Likes:       []string{"1"},
			Comments:    []models.Comment{},
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "Streetlight out on Acacia Ave",
			Description: "Whole block dark after sunset",
			Category:    models.Electricity,
			Province:    "Gauteng",
			Ward:        "Ward 3",
			ReporterID:  "1",
			ImageURL:    "https://picsum.photos/800/600?random=2",
			Location:    models.GeoPoint{Lat: -26.2041, Lng: 28.0473},
			Status:      models.InProgress,
			Likes:       []string{},
			Comments:    []models.Comment{},
			CreatedAt:   now.Add(-48 * time.Hour),
		},
		{
			ID:          "3",
			Title:       "Overflowing bins at taxi rank",
			Description: "Refuse not collected for two weeks",
			Category:    models.Waste,
			Province:    "Eastern Cape",
			Ward:        "Ward 5",
			ReporterID:  "2",
			ImageURL:    "https://picsum.photos/800/600?random=3",
			Location:    models.GeoPoint{Lat: -33.0198, Lng: 27.9039},
			Status:      models.Fixed,
			Likes:       []string{"1", "2"},
			Comments:    []models.Comment{},
			CreatedAt:   now.Add(-96 * time.Hour),
		},
	}

	demographics := map[string]models.Demographics{
		"Ward 5": {Population: 12500, Households: 3200},
		"Ward 3": {Population: 8700, Households: 2100},
	}

	return s.Seed(users, issues, demographics)
}
