package requests

type CreateCamp struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Location    string   `json:"location" validate:"required,max=500"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	DoctorIDs   []string `json:"doctorIds" validate:"omitempty,dive,object_id"`
	Capacity    int      `json:"capacity" validate:"required,gt=0"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
}

type UpdateCamp struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Location    *string  `json:"location" validate:"omitempty,min=1,max=500"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	DoctorIDs   []string `json:"doctorIds" validate:"omitempty,dive,object_id"`
	Capacity    *int     `json:"capacity" validate:"omitempty,gt=0"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
}
