package responses

import "time"

type Doctor struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	Specialization  string    `json:"specialization"`
	Qualification   string    `json:"qualification"`
	ExperienceYears int       `json:"experienceYears"`
	HospitalName    string    `json:"hospitalName,omitempty"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
}
