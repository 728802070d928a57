package payload

type SignUpRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required"`
}

type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignInResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Status  int    `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// AuthErrorResponse is the error shape of the bearer middleware.
type AuthErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
