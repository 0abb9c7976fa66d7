package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// StudentLoginRequest authenticates a student with what they already know:
// their library's code, their phone, and the registration number the desk
// gave them. No password to forget.
type StudentLoginRequest struct {
	LibraryCode        string `json:"library_code" validate:"required"`
	Phone              string `json:"phone" validate:"required"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
}

type CreateUserRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Role      string  `json:"role" validate:"required,oneof=admin owner"`
	LibraryID *string `json:"library_id,omitempty" validate:"omitempty,uuid4"`
}
