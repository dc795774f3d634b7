package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// UpdateProfileRequest is a partial update; nil fields are left unchanged.
// Changing the password requires the current one.
type UpdateProfileRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=80"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Password        *string `json:"password" binding:"omitempty,min=6,max=72"`
	CurrentPassword *string `json:"currentPassword" binding:"required_with=Password"`
}
