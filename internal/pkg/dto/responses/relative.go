package responses

import "time"

type Relative struct {
	ID             string    `json:"id"`
	IsExistingUser bool      `json:"isExistingUser"`
	AccountID      string    `json:"accountId,omitempty"`
	Name           string    `json:"name"`
	PhoneNumber    string    `json:"phoneNumber,omitempty"`
	DateOfBirth    string    `json:"dateOfBirth,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	BloodGroup     string    `json:"bloodGroup,omitempty"`
	Relationship   string    `json:"relationship"`
	HealthReports  []string  `json:"healthReports"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
