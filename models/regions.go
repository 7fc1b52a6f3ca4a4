package models

// Provinces are South Africa's nine provinces, the top-level regions on the
// hotspot map.
var Provinces = []string{
	"Eastern Cape",
	"Free State",
	"Gauteng",
	"KwaZulu-Natal",
	"Limpopo",
	"Mpumalanga",
	"Northern Cape",
	"North West",
	"Western Cape",
}

// Wards are the administrative units issues are grouped by and councillors
// are scoped to. A stand-in list until a real boundary dataset is wired.
var Wards = []string{
	"Ward 1", "Ward 2", "Ward 3", "Ward 4", "Ward 5", "Ward 6", "Ward 7",
}

// Demographics holds census-style figures for a ward. External data in a
// real deployment; here a static lookup table.
type Demographics struct {
	Population int `json:"population"`
	Households int `json:"households"`
}

func IsValidProvince(name string) bool {
	for _, p := range Provinces {
		if p == name {
			return true
		}
	}
	return false
}

func IsValidWard(name string) bool {
	for _, w := range Wards {
		if w == name {
			return true
		}
	}
	return false
}
