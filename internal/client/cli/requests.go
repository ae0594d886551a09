package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/iudanet/matrimony-client/internal/client/api"
	"github.com/iudanet/matrimony-client/pkg/api"
)

func (c *Cli) newRequestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Manage connection requests",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOffline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		c.newRequestListCmd("sent", "Requests you have sent", (*apiclient.Client).GetSentRequests),
		c.newRequestListCmd("received", "Requests sent to you", (*apiclient.Client).GetReceivedRequests),
		c.newRequestSendCmd(),
		c.newRequestAnswerCmd("accept", "Accept a received request", (*apiclient.Client).AcceptRequest),
		c.newRequestAnswerCmd("decline", "Decline a received request", (*apiclient.Client).DeclineRequest),
	)

	return cmd
}

type requestListFunc func(c *apiclient.Client, ctx context.Context, f api.RequestFilters) (*api.Response[api.RequestList], error)

func (c *Cli) newRequestListCmd(use, short string, list requestListFunc) *cobra.Command {
	var (
		filters api.RequestFilters
		status  string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if filters.Status, err = parseRequestStatus(status); err != nil {
				return err
			}
			resp, err := list(c.client, cmd.Context(), filters)
			if err != nil {
				return err
			}
			return show(c, resp, func(page *api.RequestList) {
				c.header(short)
				c.printRequests(page, use == "sent")
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status: pending, accepted or declined")
	addPaginationFlags(cmd, &filters.Pagination)

	return cmd
}

func parseRequestStatus(s string) (api.RequestStatus, error) {
	switch status := api.RequestStatus(strings.ToLower(s)); status {
	case "", api.RequestStatusPending, api.RequestStatusAccepted, api.RequestStatusDeclined:
		return status, nil
	}
	return "", fmt.Errorf("unknown request status %q", s)
}

func (c *Cli) printRequests(list *api.RequestList, sent bool) {
	if len(list.Requests) == 0 {
		c.io.Println("No requests.")
		return
	}
	for _, r := range list.Requests {
		other := r.Sender
		if sent {
			other = r.Receiver
		}
		c.io.Printf("%s  %-9s %s\n", r.ID, r.Status, profileLine(other))
		if r.Message != "" {
			c.io.Printf("    %q\n", r.Message)
		}
	}
	c.printPage(len(list.Requests), list.TotalCount, list.HasMore)
}

func (c *Cli) newRequestSendCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "send <user-id>",
		Short: "Send a connection request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.SendConnectionRequest(cmd.Context(), args[0], message)
			if err != nil {
				return err
			}
			return show(c, resp, func(r *api.ConnectionRequest) {
				c.success("Request sent (%s)", r.ID)
			})
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "note attached to the request")

	return cmd
}

type requestAnswerFunc func(c *apiclient.Client, ctx context.Context, requestID string) (*api.Response[api.ConnectionRequest], error)

func (c *Cli) newRequestAnswerCmd(use, short string, answer requestAnswerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <request-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := answer(c.client, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return show(c, resp, func(r *api.ConnectionRequest) {
				c.success("Request %s is now %s", r.ID, r.Status)
			})
		},
	}
}
