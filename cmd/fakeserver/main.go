// Command fakeserver serves the in-memory matrimony API for trying the
// client without a real backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/matrimony-client/internal/logger"
	"github.com/iudanet/matrimony-client/internal/testserver"
	"github.com/iudanet/matrimony-client/pkg/api"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", "localhost:8080", "listen address")
	seed := flag.Bool("seed", true, "create demo users (password "+demoPassword+")")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flag.String("log-format", logger.FormatText, "log format: text or json")
	rateLimit := flag.Int("rate-limit", 0, "max requests per client per minute, 0 disables")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	log, err := logger.New(os.Stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	backend := testserver.NewBackend(
		testserver.WithLogger(log),
		testserver.WithRateLimit(*rateLimit, time.Minute),
	)
	if *seed {
		seedUsers(backend, log)
	}

	if err := serve(*addr, backend.Handler(), log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func serve(addr string, handler http.Handler, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("fake matrimony API listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

const demoPassword = "password123"

func seedUsers(b *testserver.Backend, log *slog.Logger) {
	demo := []struct {
		email   string
		profile api.UserProfile
	}{
		{"asha@example.com", api.UserProfile{FirstName: "Asha", LastName: "Rao", Gender: "female", Age: 28, Height: 162, Religion: "Hindu", City: "Pune", Occupation: "Engineer"}},
		{"ravi@example.com", api.UserProfile{FirstName: "Ravi", LastName: "Menon", Gender: "male", Age: 30, Height: 178, Religion: "Hindu", City: "Pune", Occupation: "Doctor"}},
		{"sara@example.com", api.UserProfile{FirstName: "Sara", LastName: "Khan", Gender: "female", Age: 27, Height: 165, Religion: "Muslim", City: "Mumbai", Occupation: "Teacher"}},
	}

	for _, d := range demo {
		id := b.AddUser(d.email, demoPassword, d.profile)
		log.Info("demo user", "email", d.email, "id", id)
	}
}

func printVersion() {
	fmt.Printf("Matrimony fake server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
