// Package lawyers serves the static lawyer directory. The list is loaded
// once at process start and never mutated, so concurrent reads need no
// synchronization.
package lawyers

import "strings"

type Location struct {
	City        string     `json:"city"`
	State       string     `json:"state"`
	Coordinates [2]float64 `json:"coordinates"`
}

type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Record struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	Location        Location `json:"location"`
	ExperienceYears int      `json:"experience_years"`
	Contact         Contact  `json:"contact"`
	Age             int      `json:"age"`
	Fees            int      `json:"fees"`
	Rating          float64  `json:"rating"`
}

type Directory struct {
	records []Record
}

func NewDirectory() *Directory {
	return &Directory{records: staticRecords}
}

// Search filters by case-insensitive substring containment: location against
// city OR state, specialization against specialization. Empty queries match
// everything. Insertion order is preserved; no ranking, no pagination.
func (d *Directory) Search(location string, specialization string) []Record {
	location = strings.ToLower(strings.TrimSpace(location))
	specialization = strings.ToLower(strings.TrimSpace(specialization))

	filtered := make([]Record, 0, len(d.records))
	for _, lawyer := range d.records {
		cityMatch := strings.Contains(strings.ToLower(lawyer.Location.City), location)
		stateMatch := strings.Contains(strings.ToLower(lawyer.Location.State), location)
		matchesLocation := location == "" || cityMatch || stateMatch

		matchesSpecialization := specialization == "" ||
			strings.Contains(strings.ToLower(lawyer.Specialization), specialization)

		if matchesLocation && matchesSpecialization {
			filtered = append(filtered, lawyer)
		}
	}
	return filtered
}

var staticRecords = []Record{
	{
		ID:             1,
		Name:           "Amit Sharma",
		Specialization: "Criminal Law",
		Location: Location{
			City:        "Delhi",
			State:       "Delhi",
			Coordinates: [2]float64{28.6139, 77.2090},
		},
		ExperienceYears: 12,
		Contact: Contact{
			Phone: "+91-9876543210",
			Email: "amit.sharma@lawfirm.in",
		},
		Age:    38,
		Fees:   5000,
		Rating: 4.7,
	},
	{
		ID:             2,
		Name:           "Priya Patel",
		Specialization: "Family Law",
		Location: Location{
			City:        "Mumbai",
			State:       "Maharashtra",
			Coordinates: [2]float64{19.0760, 72.8777},
		},
		ExperienceYears: 8,
		Contact: Contact{
			Phone: "+91-9123456789",
			Email: "priya.patel@lawfirm.in",
		},
		Age:    34,
		Fees:   4000,
		Rating: 4.5,
	},
	{
		ID:             3,
		Name:           "Rahul Verma",
		Specialization: "Corporate Law",
		Location: Location{
			City:        "Bengaluru",
			State:       "Karnataka",
			Coordinates: [2]float64{12.9716, 77.5946},
		},
		ExperienceYears: 15,
		Contact: Contact{
			Phone: "+91-9988776655",
			Email: "rahul.verma@lawfirm.in",
		},
		Age:    42,
		Fees:   7000,
		Rating: 4.8,
	},
	{
		ID:             4,
		Name:           "Sneha Gupta",
		Specialization: "Intellectual Property",
		Location: Location{
			City:        "Kolkata",
			State:       "West Bengal",
			Coordinates: [2]float64{22.5726, 88.3639},
		},
		ExperienceYears: 10,
		Contact: Contact{
			Phone: "+91-9765432109",
			Email: "sneha.gupta@lawfirm.in",
		},
		Age:    36,
		Fees:   4500,
		Rating: 4.6,
	},
}
