package responses

import "time"

type Camp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	DoctorIDs   []string  `json:"doctorIds"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
