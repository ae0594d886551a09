package api

import "time"

// RequestStatus статус запроса на знакомство
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)

// RequestFilters задает фильтры для списков запросов
type RequestFilters struct {
	Status RequestStatus
	Pagination
}

// ConnectionRequest представляет "интерес" одного пользователя к другому
type ConnectionRequest struct {
	CreatedAt time.Time     `json:"createdAt"`
	ID        string        `json:"id"`
	Message   string        `json:"message,omitempty"`
	Status    RequestStatus `json:"status"`
	Sender    UserProfile   `json:"sender"`
	Receiver  UserProfile   `json:"receiver"`
}

// RequestList представляет страницу запросов
type RequestList struct {
	Requests   []ConnectionRequest `json:"requests"`
	TotalCount int                 `json:"totalCount"`
	HasMore    bool                `json:"hasMore"`
}

// SendRequestBody тело запроса на знакомство
type SendRequestBody struct {
	Message string `json:"message,omitempty"`
}
