package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"sched-lab/api"
	"sched-lab/lexical"
	"sched-lab/notify"
	"sched-lab/observability"
	"sched-lab/participants"
	"sched-lab/repositories"
	"sched-lab/scheduling"
	"sched-lab/scoring"
	"sched-lab/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes
// error reporting so every defer executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	if config.MinConfidence < 0 || config.MinConfidence > 1 {
		return exitConfig, fmt.Errorf("MIN_CONFIDENCE must be within [0,1], got %f", config.MinConfidence)
	}

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Pipeline assembly
	messageRepository := repositories.NewMessageRepository(db, blugeWriter, log)
	userRepository := repositories.NewUserRepository(db)
	meetingRepository := repositories.NewMeetingRepository(db)

	scanner, err := lexical.NewScanner(lexical.Vocabularies())
	if err != nil {
		return exitRuntime, fmt.Errorf("building keyword scanner failed: %w", err)
	}
	resolver := participants.NewResolver(userRepository, log)
	analyzer := scheduling.NewAnalyzer(scanner, resolver, scoring.DefaultWeights(), log)
	grouper := scheduling.NewGrouper(config.GroupWindow)

	var notifier notify.Notifier
	smtpConfig := notify.SMTPConfig{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
	}
	if !config.DemoMode && smtpConfig.Enabled() {
		notifier = notify.NewSMTPNotifier(smtpConfig, log)
		log.Info("SMTP notifications enabled", "host", config.SMTPHost)
	} else {
		notifier = notify.NewDemoNotifier(log)
		log.Info("Demo mode: confirmations are logged, not sent")
	}

	monitoring := observability.NewMonitoringManager(log)

	schedulerService := services.NewSchedulerService(
		messageRepository, meetingRepository, userRepository,
		grouper, analyzer, notifier, monitoring,
		config.MinConfidence, config.HistoryLimit, log,
	)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go monitoring.Listen(ctx)

	// 5. HTTP Server
	handler := api.NewHandler(schedulerService, messageRepository, userRepository,
		meetingRepository, monitoring, log)
	server := &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", config.HTTPAddr, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("HTTP shutdown failed: %w", err)
	}
	log.Info("Program stopped cleanly")

	return exitOK, nil
}
