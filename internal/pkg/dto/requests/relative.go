package requests

type CreateRelative struct {
	IsExistingUser bool   `json:"isExistingUser"`
	AccountID      string `json:"accountId" validate:"omitempty,object_id"`
	Name           string `json:"name" validate:"omitempty,max=200"`
	PhoneNumber    string `json:"phoneNumber" validate:"omitempty,phone_number"`
	DateOfBirth    string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender         string `json:"gender" validate:"omitempty,gender"`
	BloodGroup     string `json:"bloodGroup" validate:"omitempty,blood_group"`
	Relationship   string `json:"relationship" validate:"required,relationship"`
}

type UpdateRelative struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	PhoneNumber  *string `json:"phoneNumber" validate:"omitempty,phone_number"`
	DateOfBirth  *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender       *string `json:"gender" validate:"omitempty,gender"`
	BloodGroup   *string `json:"bloodGroup" validate:"omitempty,blood_group"`
	Relationship *string `json:"relationship" validate:"omitempty,relationship"`
}
