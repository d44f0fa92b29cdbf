package dto

// StudentCreateDTO is used by admins to register a student.
type StudentCreateDTO struct {
	Name               string  `json:"name" binding:"required,min=2,max=100"`
	Email              string  `json:"email" binding:"required,email,max=100"`
	Phone              string  `json:"phone" binding:"omitempty,max=20"`
	RegistrationNumber *string `json:"registration_number"`
	Course             string  `json:"course" binding:"omitempty,max=100"`
}

type StudentResponseDTO struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone,omitempty"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	Course             string  `json:"course,omitempty"`
	Status             string  `json:"status"`
}
