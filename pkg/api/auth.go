package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth string `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	Phone       string `json:"phone,omitempty"`
}

// RegisterResult представляет ответ на успешную регистрацию
type RegisterResult struct {
	User UserSummary `json:"user"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSummary представляет краткую информацию о пользователе в ответах auth
type UserSummary struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// LoginResult представляет ответ с токенами доступа
type LoginResult struct {
	User         UserSummary `json:"user"`
	AccessToken  string      `json:"accessToken"`         // JWT access token
	RefreshToken string      `json:"refreshToken"`        // refresh token
	ExpiresIn    int64       `json:"expiresIn,omitempty"` // время жизни access token в секундах
}

// RefreshRequest представляет запрос на обновление access token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResult представляет ответ с новым access token
type RefreshResult struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn,omitempty"`
}

// ForgotPasswordRequest запускает процедуру восстановления пароля
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest завершает восстановление пароля по OTP
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
