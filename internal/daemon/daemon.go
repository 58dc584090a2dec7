package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/avolkov/besedka/internal/config"
	"github.com/avolkov/besedka/internal/logger"
	"github.com/avolkov/besedka/internal/metrics"
	"github.com/avolkov/besedka/internal/telegram"
	"github.com/avolkov/besedka/pkg/completion"
	"github.com/avolkov/besedka/pkg/orchestrator"
	"github.com/avolkov/besedka/pkg/session"
)

// Daemon wires the session store, the completion orchestrator and the
// Telegram front end into one long-running service.
type Daemon struct {
	config  *config.Config
	logger  *logger.Logger
	metrics *metrics.Metrics

	// Core modules
	store        *session.Store
	reaper       *session.Reaper
	client       completion.Client
	orchestrator *orchestrator.Orchestrator

	// Telegram
	telegramBot *telegram.Bot

	// Services
	metricsServer *http.Server

	eventLoop *EventLoop

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	startTime time.Time
	running   bool
	mu        sync.RWMutex
}

// New creates a new daemon instance. The Telegram connection is established
// in Start so that construction stays network-free.
func New(cfg *config.Config, log *logger.Logger) (*Daemon, error) {
	ctx, cancel := context.WithCancel(context.Background())

	client, err := completion.NewClient(cfg.Completion.Provider, cfg.Completion.APIKey)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	m := metrics.New()
	store := session.New(cfg.Chat.MaxHistory)

	orch := orchestrator.New(orchestrator.Config{
		Model:        cfg.Completion.Model,
		SystemPrompt: cfg.Completion.SystemPrompt,
		MaxTokens:    cfg.Completion.MaxTokens,
		Temperature:  cfg.Completion.Temperature,
		Timeout:      cfg.Completion.CompletionTimeout(),
		Apology:      cfg.Completion.Apology,
	}, store, client, m, log.GetZerolog())

	d := &Daemon{
		config:       cfg,
		logger:       log,
		metrics:      m,
		store:        store,
		client:       client,
		orchestrator: orch,
	}
	d.ctx = ctx
	d.cancel = cancel
	d.eventLoop = NewEventLoop(d)

	if cfg.Chat.ReapIdleSessions {
		d.reaper = session.NewReaper(store, cfg.Chat.ReapInterval(), cfg.Chat.IdleTTL())
	}

	log.Info().
		Str("provider", client.Provider()).
		Str("model", cfg.Completion.Model).
		Int("max_history", cfg.Chat.MaxHistory).
		Msg("Daemon initialized")

	return d, nil
}

// Start connects to Telegram and starts all background services.
func (d *Daemon) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("daemon is already running")
	}

	bot, err := telegram.New(&d.config.Telegram, d.logger)
	if err != nil {
		return fmt.Errorf("failed to create telegram bot: %w", err)
	}
	d.telegramBot = bot

	d.registerRoutes()

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start telegram bot: %w", err)
	}

	if d.reaper != nil {
		if err := d.reaper.Start(); err != nil {
			return fmt.Errorf("failed to start session reaper: %w", err)
		}
	}

	if d.config.Metrics.Enabled {
		d.startMetricsServer()
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.eventLoop.Run(d.ctx)
	}()

	d.startTime = time.Now()
	d.running = true

	d.logger.Info().Msg("Daemon started")

	return nil
}

// Stop gracefully stops all services.
func (d *Daemon) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return fmt.Errorf("daemon is not running")
	}

	d.logger.Info().Msg("Stopping daemon")

	if err := d.telegramBot.Stop(); err != nil {
		d.logger.Warn().Err(err).Msg("Failed to stop telegram bot")
	}

	if d.reaper != nil {
		if err := d.reaper.Stop(); err != nil {
			d.logger.Warn().Err(err).Msg("Failed to stop session reaper")
		}
	}

	if d.metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := d.metricsServer.Shutdown(shutdownCtx); err != nil {
			d.logger.Warn().Err(err).Msg("Failed to stop metrics server")
		}
	}

	d.cancel()
	d.wg.Wait()

	d.running = false

	d.logger.Info().
		Dur("uptime", time.Since(d.startTime)).
		Msg("Daemon stopped")

	return nil
}

// Run starts the daemon and blocks until SIGINT or SIGTERM.
func (d *Daemon) Run() error {
	if err := d.Start(); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	d.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")

	return d.Stop()
}

// IsRunning returns whether the daemon is running.
func (d *Daemon) IsRunning() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.running
}

// resetSession replaces the user's history and updates the reset counter.
func (d *Daemon) resetSession(userID int64) {
	d.store.Reset(userID)
	d.metrics.SessionResetsTotal.Inc()
}

func (d *Daemon) startMetricsServer() {
	d.metricsServer = &http.Server{
		Addr:    d.config.Metrics.Addr,
		Handler: d.metrics.Handler(),
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.logger.Info().Str("addr", d.config.Metrics.Addr).Msg("Metrics server started")
		if err := d.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			d.logger.Error().Err(err).Msg("Metrics server failed")
		}
	}()
}
