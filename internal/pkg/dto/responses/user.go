package responses

import "time"

type UserProfile struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	PhoneNumber       string    `json:"phoneNumber"`
	DateOfBirth       string    `json:"dateOfBirth"`
	Age               int       `json:"age"`
	Gender            string    `json:"gender"`
	BloodGroup        string    `json:"bloodGroup,omitempty"`
	Role              string    `json:"role"`
	RelativeCount     int       `json:"relativeCount"`
	HealthReportCount int       `json:"healthReportCount"`
	CreatedAt         time.Time `json:"createdAt"`
}
