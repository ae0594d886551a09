package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/matrimony-client/pkg/api"
)

func (c *Cli) newConversationsCmd() *cobra.Command {
	var page api.Pagination

	cmd := &cobra.Command{
		Use:     "conversations",
		Aliases: []string{"inbox"},
		Short:   "List your conversations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetConversations(cmd.Context(), page)
			if err != nil {
				return err
			}
			return show(c, resp, func(list *api.ConversationList) {
				c.header("Conversations")
				if len(list.Conversations) == 0 {
					c.io.Println("No conversations yet.")
					return
				}
				for _, conv := range list.Conversations {
					name := strings.TrimSpace(conv.Participant.FirstName + " " + conv.Participant.LastName)
					line := conv.ID + "  " + name
					if conv.UnreadCount > 0 {
						line += warnColor.Sprintf("  (%d new)", conv.UnreadCount)
					}
					c.io.Println(line)
					if conv.LastMessage != "" {
						c.io.Printf("    %s %s\n", dimColor.Sprint(formatTime(conv.LastMessageAt)), conv.LastMessage)
					}
				}
				c.printPage(len(list.Conversations), list.TotalCount, list.HasMore)
			})
		},
	}
	addPaginationFlags(cmd, &page)

	return cmd
}

func (c *Cli) newMessagesCmd() *cobra.Command {
	var page api.Pagination

	cmd := &cobra.Command{
		Use:   "messages <conversation-id>",
		Short: "Show messages of a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetMessages(cmd.Context(), args[0], page)
			if err != nil {
				return err
			}
			me := c.currentUserID(cmd.Context())
			return show(c, resp, func(list *api.MessageList) {
				c.header("Messages")
				if len(list.Messages) == 0 {
					c.io.Println("No messages yet.")
					return
				}
				for _, m := range list.Messages {
					author := m.SenderID
					if author == me {
						author = "me"
					}
					c.io.Printf("%s %s: %s\n", dimColor.Sprint(formatTime(m.SentAt)), author, m.Content)
				}
				c.printPage(len(list.Messages), list.TotalCount, list.HasMore)
			})
		},
	}
	addPaginationFlags(cmd, &page)

	return cmd
}

func (c *Cli) currentUserID(ctx context.Context) string {
	session, err := c.client.Session(ctx)
	if err != nil {
		return ""
	}
	return session.UserID
}

func (c *Cli) newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <conversation-id> <text>...",
		Short: "Send a message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args[1:], " ")
			resp, err := c.client.SendMessage(cmd.Context(), args[0], content)
			if err != nil {
				return err
			}
			return show(c, resp, func(m *api.Message) {
				c.success("Message sent (%s)", m.ID)
			})
		},
	}
}
