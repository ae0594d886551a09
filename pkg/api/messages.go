package api

import "time"

// Conversation представляет диалог между двумя пользователями
type Conversation struct {
	LastMessageAt time.Time   `json:"lastMessageAt"`
	ID            string      `json:"id"`
	LastMessage   string      `json:"lastMessage,omitempty"`
	Participant   UserSummary `json:"participant"`
	UnreadCount   int         `json:"unreadCount"`
}

// ConversationList представляет страницу диалогов
type ConversationList struct {
	Conversations []Conversation `json:"conversations"`
	TotalCount    int            `json:"totalCount"`
	HasMore       bool           `json:"hasMore"`
}

// Message представляет одно сообщение в диалоге
type Message struct {
	SentAt         time.Time `json:"sentAt"`
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"isRead"`
}

// MessageList представляет страницу сообщений диалога
type MessageList struct {
	Messages   []Message `json:"messages"`
	TotalCount int       `json:"totalCount"`
	HasMore    bool      `json:"hasMore"`
}

// SendMessageRequest представляет тело отправки сообщения
type SendMessageRequest struct {
	Content string `json:"content"`
}
