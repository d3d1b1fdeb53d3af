package requests

type CreateDoctor struct {
	FirstName       string `json:"firstName" validate:"required,max=100"`
	LastName        string `json:"lastName" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,phone_number"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	Specialization  string `json:"specialization" validate:"required,max=200"`
	Qualification   string `json:"qualification" validate:"required,max=200"`
	ExperienceYears int    `json:"experienceYears" validate:"gte=0,lte=80"`
	HospitalName    string `json:"hospitalName" validate:"omitempty,max=200"`
}
