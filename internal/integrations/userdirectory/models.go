package userdirectory

// User модель пользователя из сервиса-справочника
type User struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Role       string `json:"role"` // admin | faculty
	Department string `json:"department"`
}

// ErrorResponse модель ошибки от сервиса-справочника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
