package api

// Response представляет единый конверт ответа сервера
// Каждый endpoint возвращает {success, message?, data?} независимо от ресурса
type Response[T any] struct {
	Data    *T     `json:"data,omitempty"`    // полезная нагрузка (может отсутствовать)
	Message string `json:"message,omitempty"` // сообщение сервера (обычно при success=false)
	Success bool   `json:"success"`           // флаг успеха на уровне приложения
}

// OK создает успешный конверт с данными
func OK[T any](data *T) *Response[T] {
	return &Response[T]{Success: true, Data: data}
}

// Empty используется для endpoint'ов без полезной нагрузки (logout, like, accept)
type Empty struct{}

// ErrorResponse представляет тело ответа с ошибкой (не-2xx статус)
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // сообщение для пользователя
}

// Pagination задает параметры постраничной выборки
type Pagination struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}
