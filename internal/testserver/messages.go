package testserver

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/matrimony-client/pkg/api"
)

func (s *Backend) handleConversations(w http.ResponseWriter, r *http.Request) {
	me := userIDFrom(r.Context())

	s.mu.Lock()
	var list []api.Conversation
	for _, c := range s.conversations {
		other := c.otherThan(me)
		if other == "" {
			continue
		}
		item := api.Conversation{ID: c.id, Participant: summary(s.users[other].profile)}
		item.Participant.Email = ""
		if n := len(c.messages); n > 0 {
			last := c.messages[n-1]
			item.LastMessage = last.Content
			item.LastMessageAt = last.SentAt
		}
		for _, m := range c.messages {
			if m.SenderID != me && !m.IsRead {
				item.UnreadCount++
			}
		}
		list = append(list, item)
	}
	s.mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	page, total, more := paginate(list, r)
	writeOK(w, &api.ConversationList{Conversations: page, TotalCount: total, HasMore: more})
}

func (s *Backend) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	me := userIDFrom(r.Context())

	s.mu.Lock()
	c, ok := s.conversations[chi.URLParam(r, "id")]
	if !ok || c.otherThan(me) == "" {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}
	// Чтение помечает входящие сообщения прочитанными
	for i := range c.messages {
		if c.messages[i].SenderID != me {
			c.messages[i].IsRead = true
		}
	}
	messages := append([]api.Message(nil), c.messages...)
	s.mu.Unlock()

	page, total, more := paginate(messages, r)
	writeOK(w, &api.MessageList{Messages: page, TotalCount: total, HasMore: more})
}

func (s *Backend) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	me := userIDFrom(r.Context())

	var req api.SendMessageRequest
	if !decode(r, &req) || strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "message content is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[chi.URLParam(r, "id")]
	if !ok || c.otherThan(me) == "" {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	msg := api.Message{
		ID:             uuid.NewString(),
		ConversationID: c.id,
		SenderID:       me,
		Content:        req.Content,
		SentAt:         now(),
	}
	c.messages = append(c.messages, msg)

	writeJSON(w, http.StatusCreated, api.OK(&msg))
}

// otherThan возвращает собеседника или "", если userID не участник
func (c *conversation) otherThan(userID string) string {
	switch userID {
	case c.participants[0]:
		return c.participants[1]
	case c.participants[1]:
		return c.participants[0]
	}
	return ""
}
