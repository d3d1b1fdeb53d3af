package requests

type RegisterUser struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"required,gender"`
	BloodGroup  string `json:"bloodGroup" validate:"omitempty,blood_group"`
}

type LoginUser struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
	Password    string `json:"password" validate:"required"`
}

// LoginWithEmail is shared by the admin and doctor login routes.
type LoginWithEmail struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}
