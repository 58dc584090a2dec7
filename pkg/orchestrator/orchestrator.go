// Package orchestrator turns one user message into one committed exchange:
// it reads the session context, makes a single completion call, and records
// both the user input and whatever the user was actually shown.
package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avolkov/besedka/internal/metrics"
	"github.com/avolkov/besedka/pkg/completion"
	"github.com/avolkov/besedka/pkg/session"
)

// Config holds the fixed parameters of the orchestrator.
type Config struct {
	Model        string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
	Timeout      time.Duration

	// Apology is returned to the user when the completion service fails.
	Apology string
}

// Orchestrator coordinates the session store and the completion client.
type Orchestrator struct {
	cfg     Config
	store   *session.Store
	client  completion.Client
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// New creates a new orchestrator. metrics may be nil.
func New(cfg Config, store *session.Store, client completion.Client, m *metrics.Metrics, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		store:   store,
		client:  client,
		metrics: m,
		logger:  logger.With().Str("component", "orchestrator").Logger(),
	}
}

// Handle processes one user message and returns the reply to deliver. The
// caller always gets text back: completion failures surface as the configured
// apology, never as an error. Exactly one user turn and one assistant turn
// are committed to the session per call.
func (o *Orchestrator) Handle(ctx context.Context, userID int64, text string) string {
	logger := o.logger.With().
		Str("request_id", uuid.NewString()).
		Int64("user_id", userID).
		Logger()

	o.store.Append(userID, session.Turn{Role: session.RoleUser, Content: text})

	turns := o.store.Snapshot(userID)

	// The store already bounds the history; this guards against callers
	// handing the orchestrator a store with a larger capacity.
	if max := o.store.MaxHistory(); len(turns) > max {
		turns = turns[len(turns)-max:]
	}

	request := completion.Request{
		Model:        o.cfg.Model,
		Messages:     toMessages(turns),
		SystemPrompt: o.cfg.SystemPrompt,
		MaxTokens:    o.cfg.MaxTokens,
		Temperature:  o.cfg.Temperature,
	}

	callCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	start := time.Now()
	response, err := o.client.Complete(callCtx, request)
	elapsed := time.Since(start)

	var reply string
	if err != nil {
		kind := completion.KindOf(err)
		logger.Error().
			Err(err).
			Str("kind", string(kind)).
			Dur("elapsed", elapsed).
			Msg("Completion failed")
		o.recordFailure(kind, elapsed)
		reply = o.cfg.Apology
	} else {
		logger.Debug().
			Dur("elapsed", elapsed).
			Int("context_turns", len(turns)).
			Msg("Completion succeeded")
		o.recordSuccess(elapsed)
		reply = response.Content
	}

	// Committed in both branches so the stored conversation matches what
	// the user saw.
	o.store.Append(userID, session.Turn{Role: session.RoleAssistant, Content: reply})

	return reply
}

func toMessages(turns []session.Turn) []completion.Message {
	messages := make([]completion.Message, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, completion.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	return messages
}

func (o *Orchestrator) recordSuccess(elapsed time.Duration) {
	if o.metrics == nil {
		return
	}
	o.metrics.CompletionsTotal.WithLabelValues("success").Inc()
	o.metrics.CompletionDuration.Observe(elapsed.Seconds())
}

func (o *Orchestrator) recordFailure(kind completion.Kind, elapsed time.Duration) {
	if o.metrics == nil {
		return
	}
	o.metrics.CompletionsTotal.WithLabelValues("failure").Inc()
	o.metrics.CompletionErrorsTotal.WithLabelValues(string(kind)).Inc()
	o.metrics.CompletionDuration.Observe(elapsed.Seconds())
}
