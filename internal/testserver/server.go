// Package testserver runs an in-process fake of the matrimony REST API.
// It keeps users, tokens, swipes, conversations and connection requests in
// memory and counts calls per route so tests can assert network usage.
package testserver

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/matrimony-client/pkg/api"
)

// ValidOTP принимается /auth/reset-password
const ValidOTP = "123456"

type user struct {
	profile  api.UserProfile
	settings api.Settings
	password string
}

// Backend keeps the fake API state in memory and serves it over HTTP.
// Use NewBackend; the zero value is not usable.
type Backend struct {
	users         map[string]*user // id -> user
	emails        map[string]string
	accessTokens  map[string]string // token -> user id
	refreshTokens map[string]string
	likes         map[string]map[string]bool // from -> to
	conversations map[string]*conversation
	requests      map[string]*api.ConnectionRequest
	calls         map[string]int
	logger        *slog.Logger
	limiter       *rateLimiter
	secret        []byte
	mu            sync.Mutex
}

// Server is a Backend listening on a local httptest address
type Server struct {
	*httptest.Server
	*Backend
}

// Option настраивает Backend
type Option func(*Backend)

// WithLogger включает логирование запросов фейкового сервера
func WithLogger(l *slog.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.logger = l
		}
	}
}

type conversation struct {
	id           string
	participants [2]string
	messages     []api.Message
}

// NewBackend creates an empty fake backend
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		users:         make(map[string]*user),
		emails:        make(map[string]string),
		accessTokens:  make(map[string]string),
		refreshTokens: make(map[string]string),
		likes:         make(map[string]map[string]bool),
		conversations: make(map[string]*conversation),
		requests:      make(map[string]*api.ConnectionRequest),
		calls:         make(map[string]int),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		secret:        randomSecret(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Handler возвращает роутер со всеми маршрутами API
func (s *Backend) Handler() http.Handler {
	return s.router()
}

// New starts a fake backend and registers its shutdown with t.Cleanup
func New(t testing.TB, opts ...Option) *Server {
	t.Helper()

	b := NewBackend(opts...)
	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)

	return &Server{Server: srv, Backend: b}
}

func (s *Backend) router() http.Handler {
	r := chi.NewRouter()
	r.Use(recoverer(s.logger))
	r.Use(requestLogger(s.logger))
	r.Use(s.countCalls)
	if s.limiter != nil {
		r.Use(rateLimit(s.limiter, s.logger))
	}

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/refresh", s.handleRefresh)
	r.Post("/auth/forgot-password", s.handleForgotPassword)
	r.Post("/auth/reset-password", s.handleResetPassword)

	r.Route("/master", func(r chi.Router) {
		r.Get("/religions", s.handleMaster(religions))
		r.Get("/education", s.handleMaster(educationLevels))
		r.Get("/occupations", s.handleMaster(occupations))
		r.Get("/castes", s.handleCastes)
		r.Get("/income-ranges", s.handleIncomeRanges)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Post("/auth/logout", s.handleLogout)

		r.Get("/users/me/profile", s.handleGetOwnProfile)
		r.Put("/users/me/profile", s.handleUpdateOwnProfile)
		r.Get("/users/me/same-city", s.handleSameCity)
		r.Get("/users/profile/{id}", s.handleGetProfile)
		r.Get("/users/settings", s.handleGetSettings)
		r.Put("/users/settings", s.handleUpdateSettings)

		r.Get("/matches/potential", s.handlePotentialMatches)
		r.Get("/matches", s.handleMatches)
		r.Post("/matches/{id}/like", s.handleSwipe(true))
		r.Post("/matches/{id}/dislike", s.handleSwipe(false))

		r.Get("/messages/conversations", s.handleConversations)
		r.Get("/messages/conversations/{id}", s.handleGetMessages)
		r.Post("/messages/conversations/{id}", s.handleSendMessage)

		r.Post("/requests/send/{id}", s.handleSendRequest)
		r.Get("/requests/sent", s.handleListRequests(true))
		r.Get("/requests/received", s.handleListRequests(false))
		r.Post("/requests/{id}/accept", s.handleAnswerRequest(api.RequestStatusAccepted))
		r.Post("/requests/{id}/decline", s.handleAnswerRequest(api.RequestStatusDeclined))
	})

	return r
}

// AddUser регистрирует пользователя напрямую, минуя /auth/register
func (s *Backend) AddUser(email, password string, profile api.UserProfile) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(email, password, profile)
}

func (s *Backend) addUserLocked(email, password string, profile api.UserProfile) string {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.Email = email
	s.users[profile.ID] = &user{profile: profile, password: password}
	s.emails[strings.ToLower(email)] = profile.ID
	return profile.ID
}

// Calls возвращает число обращений к маршруту, например ("GET", "/users/me/profile")
func (s *Backend) Calls(method, pattern string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method+" "+pattern]
}

// TotalCalls возвращает общее число запросов
func (s *Backend) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// TokenValid сообщает, принимает ли сервер access token
func (s *Backend) TokenValid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.accessTokens[token]
	return ok
}

// RevokeAccessTokens делает все выданные access token недействительными
func (s *Backend) RevokeAccessTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessTokens = make(map[string]string)
}

func (s *Backend) countCalls(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		// Шаблон маршрута известен только после роутинга
		pattern := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			pattern = rctx.RoutePattern()
		}
		s.mu.Lock()
		s.calls[r.Method+" "+pattern]++
		s.mu.Unlock()
	})
}

type ctxKey struct{}

func (s *Backend) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		claims, err := s.parseAccessToken(token)
		if err != nil {
			s.logger.Debug("invalid access token", "error", err)
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		// Подписанный токен еще должен быть активен (logout, revoke)
		s.mu.Lock()
		userID, active := s.accessTokens[token]
		s.mu.Unlock()
		if !active || userID != claims.UserID {
			writeError(w, http.StatusUnauthorized, "token revoked")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK[T any](w http.ResponseWriter, data *T) {
	writeJSON(w, http.StatusOK, api.OK(data))
}

func writeFailure(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, api.Response[api.Empty]{Success: false, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.ErrorResponse{Message: message})
}

func decode(r *http.Request, v any) bool {
	return json.NewDecoder(r.Body).Decode(v) == nil
}
