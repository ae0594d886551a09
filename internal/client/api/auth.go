package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/matrimony-client/internal/validation"
	"github.com/iudanet/matrimony-client/pkg/api"
)

// Register регистрирует нового пользователя. Сессия не создается:
// после регистрации нужно выполнить Login.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.Response[api.RegisterResult], error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	resp, err := Do[api.RegisterResult](ctx, c, "/auth/register", RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	})
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return resp, nil
}

// ForgotPassword запускает восстановление пароля (сервер отправляет OTP)
func (c *Client) ForgotPassword(ctx context.Context, email string) (*api.Response[api.Empty], error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	resp, err := Do[api.Empty](ctx, c, "/auth/forgot-password", RequestOptions{
		Method: http.MethodPost,
		Body:   api.ForgotPasswordRequest{Email: email},
	})
	if err != nil {
		return nil, fmt.Errorf("forgot password request failed: %w", err)
	}
	return resp, nil
}

// ResetPassword завершает восстановление пароля с OTP
func (c *Client) ResetPassword(ctx context.Context, req api.ResetPasswordRequest) (*api.Response[api.Empty], error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	resp, err := Do[api.Empty](ctx, c, "/auth/reset-password", RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	})
	if err != nil {
		return nil, fmt.Errorf("reset password request failed: %w", err)
	}
	return resp, nil
}
