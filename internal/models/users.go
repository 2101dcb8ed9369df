package models

import "time"

// Роли пользователей
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Статусы пользователей
const (
	UserStatusActive   = "ACTIVE"
	UserStatusInactive = "INACTIVE"
)

// RegisterRequest - модель для регистрации пользователя, приходит извне
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest - модель создания учётной записи администратором
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest - модель для аутентификации пользователя, приходит извне
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse - модель ответа регистрации/аутентификации
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// UserData - модель пользователя из хранилища
type UserData struct {
	UserID       string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
}

// UserResponse - модель пользователя для выдачи (без хэша пароля)
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// NewUserResponse - преобразование модели хранилища в модель выдачи
func NewUserResponse(user UserData) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
