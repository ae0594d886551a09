package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/iudanet/matrimony-client/pkg/api"
)

// GetConversations возвращает список диалогов
func (c *Client) GetConversations(ctx context.Context, p api.Pagination) (*api.Response[api.ConversationList], error) {
	return Do[api.ConversationList](ctx, c, "/messages/conversations", RequestOptions{Query: paginationQuery(p)})
}

// GetMessages возвращает сообщения диалога
func (c *Client) GetMessages(ctx context.Context, conversationID string, p api.Pagination) (*api.Response[api.MessageList], error) {
	path, err := idPath("/messages/conversations/%s", conversationID)
	if err != nil {
		return nil, err
	}
	return Do[api.MessageList](ctx, c, path, RequestOptions{Query: paginationQuery(p)})
}

// SendMessage отправляет сообщение в диалог
func (c *Client) SendMessage(ctx context.Context, conversationID, content string) (*api.Response[api.Message], error) {
	path, err := idPath("/messages/conversations/%s", conversationID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content cannot be empty")
	}
	return Do[api.Message](ctx, c, path, RequestOptions{
		Method: http.MethodPost,
		Body:   api.SendMessageRequest{Content: content},
	})
}
