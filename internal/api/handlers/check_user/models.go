package check_user

import "github.com/Narayana2527/health-safari-apis/internal/api/handlers"

// CheckUserRequest HTTP request model
type CheckUserRequest struct {
	Email handlers.FlexString `json:"email"`
}

// CheckUserResponse HTTP response model
// Message заполняется только при ошибке сервера
type CheckUserResponse struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message,omitempty"`
}
