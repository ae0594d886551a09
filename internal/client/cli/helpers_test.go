package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/matrimony-client/internal/client/iocli"
	"github.com/iudanet/matrimony-client/internal/config"
	"github.com/iudanet/matrimony-client/internal/testserver"
	"github.com/iudanet/matrimony-client/pkg/api"
)

const testPassword = "password123"

// newTerminal возвращает IOMock, который пишет вывод в буфер и отвечает
// на запросы ввода значениями inputs по порядку
func newTerminal(inputs ...string) (*iocli.IOMock, *bytes.Buffer) {
	out := &bytes.Buffer{}
	next := func(prompt string) (string, error) {
		out.WriteString(prompt)
		if len(inputs) == 0 {
			return "", io.EOF
		}
		v := inputs[0]
		inputs = inputs[1:]
		return v, nil
	}

	return &iocli.IOMock{
		PrintlnFunc:      func(a ...any) { fmt.Fprintln(out, a...) },
		PrintfFunc:       func(format string, a ...any) { fmt.Fprintf(out, format, a...) },
		WriteFunc:        out.Write,
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
	}, out
}

// isolateEnv убирает переменные окружения, влияющие на CLI
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvPassword, "")
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("MATRIMONY_STORE_PASSPHRASE", "")
	color.NoColor = true
}

// harness запускает CLI против тестового сервера с отдельной базой
type harness struct {
	t      *testing.T
	server *testserver.Server
	dbPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	isolateEnv(t)
	return &harness{
		t:      t,
		server: testserver.New(t),
		dbPath: filepath.Join(t.TempDir(), "session.db"),
	}
}

// device возвращает второй клиент того же сервера со своей базой
func (h *harness) device() *harness {
	return &harness{
		t:      h.t,
		server: h.server,
		dbPath: filepath.Join(h.t.TempDir(), "session.db"),
	}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	return h.runWithInput(nil, args...)
}

func (h *harness) runWithInput(inputs []string, args ...string) (string, error) {
	h.t.Helper()
	terminal, out := newTerminal(inputs...)
	c := New(terminal, "test")
	c.stderr = io.Discard

	full := append([]string{"--server", h.server.URL, "--db", h.dbPath}, args...)
	err := c.Execute(context.Background(), full)
	return out.String(), err
}

// mustRun выполняет команду и требует успеха
func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

// signIn создает пользователя на сервере и входит под ним
func (h *harness) signIn(email string, profile api.UserProfile) string {
	h.t.Helper()
	id := h.server.AddUser(email, testPassword, profile)
	h.mustRun("login", "--email", email, "--password", testPassword)
	return id
}

func decodeJSON[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}
