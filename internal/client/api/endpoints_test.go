package api

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/matrimony-client/pkg/api"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   string
}

// TestClient_Endpoints проверяет соответствие методов клиента HTTP методам,
// путям и query параметрам сервера
func TestClient_Endpoints(t *testing.T) {
	tests := []struct {
		call      func(ctx context.Context, c *Client) error
		name      string
		wantMeth  string
		wantPath  string
		wantQuery string
		wantBody  string
	}{
		{
			name: "register",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Register(ctx, api.RegisterRequest{Email: "a@b.co", Password: "password1", FirstName: "A"})
				return err
			},
			wantMeth: http.MethodPost,
			wantPath: "/auth/register",
			wantBody: `{"email":"a@b.co","password":"password1","firstName":"A","lastName":""}`,
		},
		{
			name: "forgot password",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ForgotPassword(ctx, "a@b.co")
				return err
			},
			wantMeth: http.MethodPost,
			wantPath: "/auth/forgot-password",
			wantBody: `{"email":"a@b.co"}`,
		},
		{
			name: "reset password",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ResetPassword(ctx, api.ResetPasswordRequest{Email: "a@b.co", OTP: "123456", NewPassword: "password2"})
				return err
			},
			wantMeth: http.MethodPost,
			wantPath: "/auth/reset-password",
			wantBody: `{"email":"a@b.co","otp":"123456","newPassword":"password2"}`,
		},
		{
			name: "same city",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetSameCityUsers(ctx, api.Pagination{Limit: 10, Offset: 20})
				return err
			},
			wantMeth:  http.MethodGet,
			wantPath:  "/users/me/same-city",
			wantQuery: "limit=10&offset=20",
		},
		{
			name: "potential matches with filters",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetPotentialMatches(ctx, api.MatchFilters{
					Pagination: api.Pagination{Limit: 5},
					AgeMin:     25,
					AgeMax:     30,
					Religion:   "hindu",
					City:       "Pune",
				})
				return err
			},
			wantMeth:  http.MethodGet,
			wantPath:  "/matches/potential",
			wantQuery: "ageMax=30&ageMin=25&city=Pune&limit=5&religion=hindu",
		},
		{
			name: "potential matches without filters",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetPotentialMatches(ctx, api.MatchFilters{})
				return err
			},
			wantMeth: http.MethodGet,
			wantPath: "/matches/potential",
		},
		{
			name: "matches",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetMatches(ctx, api.Pagination{})
				return err
			},
			wantMeth: http.MethodGet,
			wantPath: "/matches",
		},
		{
			name: "like",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.LikeProfile(ctx, "user-1")
				return err
			},
			wantMeth: http.MethodPost,
			wantPath: "/matches/user-1/like",
		},
		{
			name: "dislike",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DislikeProfile(ctx, "user-1")
				return err
			},
			wantMeth: http.MethodPost,
			wantPath: "/matches/user-1/dislike",
		},
		{
			name: "conversations",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetConversations(ctx, api.Pagination{Limit: 20})
				return err
			},
			wantMeth:  http.MethodGet,
			wantPath:  "/messages/conversations",
			wantQuery: "limit=20",
		},
		{
			name: "messages",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetMessages(ctx, "conv-1", api.Pagination{Offset: 50})
				return err
			},
			wantMeth:  http.MethodGet,
			wantPath:  "/messages/conversations/conv-1",
			wantQuery: "offset=50",
		},
		{
			name: "send message",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.SendMessage(ctx, "conv-1", "Namaste")
				return err
			},
			wantMeth: http.MethodPost,
			wantPath: "/messages/conversations/conv-1",
			wantBody: `{"content":"Namaste"}`,
		},
		{
			name: "send request",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.SendConnectionRequest(ctx, "user-9", "Hello")
				return err
			},
			wantMeth: http.MethodPost,
			wantPath: "/requests/send/user-9",
			wantBody: `{"message":"Hello"}`,
		},
		{
			name: "sent requests",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetSentRequests(ctx, api.RequestFilters{Status: api.RequestStatusPending})
				return err
			},
			wantMeth:  http.MethodGet,
			wantPath:  "/requests/sent",
			wantQuery: "status=pending",
		},
		{
			name: "received requests",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetReceivedRequests(ctx, api.RequestFilters{})
				return err
			},
			wantMeth: http.MethodGet,
			wantPath: "/requests/received",
		},
		{
			name: "accept request",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AcceptRequest(ctx, "req-1")
				return err
			},
			wantMeth: http.MethodPost,
			wantPath: "/requests/req-1/accept",
		},
		{
			name: "decline request",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DeclineRequest(ctx, "req-1")
				return err
			},
			wantMeth: http.MethodPost,
			wantPath: "/requests/req-1/decline",
		},
		{
			name: "settings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetSettings(ctx)
				return err
			},
			wantMeth: http.MethodGet,
			wantPath: "/users/settings",
		},
		{
			name: "update settings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateSettings(ctx, api.Settings{Privacy: api.PrivacySettings{ProfileVisibility: "matches"}})
				return err
			},
			wantMeth: http.MethodPut,
			wantPath: "/users/settings",
		},
		{
			name: "religions",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetReligions(ctx)
				return err
			},
			wantMeth: http.MethodGet,
			wantPath: "/master/religions",
		},
		{
			name: "castes",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetCastes(ctx, "hindu")
				return err
			},
			wantMeth:  http.MethodGet,
			wantPath:  "/master/castes",
			wantQuery: "religionId=hindu",
		},
		{
			name: "education",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetEducationLevels(ctx)
				return err
			},
			wantMeth: http.MethodGet,
			wantPath: "/master/education",
		},
		{
			name: "occupations",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetOccupations(ctx)
				return err
			},
			wantMeth: http.MethodGet,
			wantPath: "/master/occupations",
		},
		{
			name: "income ranges",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetIncomeRanges(ctx)
				return err
			},
			wantMeth: http.MethodGet,
			wantPath: "/master/income-ranges",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got recordedRequest
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				got = recordedRequest{
					method: r.Method,
					path:   r.URL.EscapedPath(),
					query:  r.URL.RawQuery,
					body:   string(body),
				}
				writeJSON(t, w, http.StatusOK, api.Response[api.Empty]{Success: true})
			}))

			require.NoError(t, tt.call(context.Background(), client))

			assert.Equal(t, tt.wantMeth, got.method)
			assert.Equal(t, tt.wantPath, got.path)
			assert.Equal(t, tt.wantQuery, got.query)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, got.body)
			}
		})
	}
}

func TestClient_EmptyIDRejectedLocally(t *testing.T) {
	counter := countCalls(func(w http.ResponseWriter, r *http.Request) {})
	client, _ := newTestClient(t, counter)
	ctx := context.Background()

	_, err := client.LikeProfile(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyID)
	_, err = client.DislikeProfile(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyID)
	_, err = client.GetMessages(ctx, "", api.Pagination{})
	assert.ErrorIs(t, err, ErrEmptyID)
	_, err = client.SendMessage(ctx, "", "hi")
	assert.ErrorIs(t, err, ErrEmptyID)
	_, err = client.SendConnectionRequest(ctx, "", "")
	assert.ErrorIs(t, err, ErrEmptyID)
	_, err = client.AcceptRequest(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyID)
	_, err = client.DeclineRequest(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyID)

	_, err = client.SendMessage(ctx, "conv-1", "   ")
	assert.Error(t, err)

	assert.Zero(t, counter.Calls())
}

func TestClient_IDIsPathEscaped(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/matches/a%2Fb/like", r.URL.EscapedPath())
		writeJSON(t, w, http.StatusOK, api.OK(&api.SwipeResult{}))
	}))

	_, err := client.LikeProfile(context.Background(), "a/b")
	require.NoError(t, err)
}

func TestClient_Register_ValidationFailsLocally(t *testing.T) {
	counter := countCalls(func(w http.ResponseWriter, r *http.Request) {})
	client, _ := newTestClient(t, counter)

	_, err := client.Register(context.Background(), api.RegisterRequest{Email: "bad", Password: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "Password")

	_, err = client.ResetPassword(context.Background(), api.ResetPasswordRequest{Email: "a@b.co", OTP: "abc", NewPassword: "password2"})
	require.Error(t, err)

	_, err = client.ForgotPassword(context.Background(), "")
	require.Error(t, err)

	assert.Zero(t, counter.Calls())
}
