package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sikayet/console-api/internal/data"
	"github.com/sikayet/console-api/internal/domain/model"
)

// defaultAuditQueueSize bounds the in-memory audit buffer. Entries past the
// bound are dropped with a warning rather than blocking console actions.
const defaultAuditQueueSize = 256

// auditWriteTimeout caps each database write so a slow database cannot wedge
// the worker.
const auditWriteTimeout = 5 * time.Second

// AuditService records operator actions asynchronously. Record never blocks
// and never returns an error; persistence runs on a background worker.
type AuditService struct {
	repo   *data.AuditRepo
	logger *slog.Logger
	queue  chan model.AuditEntry
}

// AuditServiceOptions groups dependencies for AuditService.
type AuditServiceOptions struct {
	Repo      *data.AuditRepo
	Logger    *slog.Logger
	QueueSize int
}

// NewAuditService constructs a new AuditService. Run must be started for
// entries to reach the database.
func NewAuditService(opts AuditServiceOptions) *AuditService {
	size := opts.QueueSize
	if size <= 0 {
		size = defaultAuditQueueSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditService{
		repo:   opts.Repo,
		logger: logger.With("component", "audit"),
		queue:  make(chan model.AuditEntry, size),
	}
}

// Record enqueues an entry for persistence. When the queue is full the entry
// is dropped; the audit trail is best effort and must not slow the console.
func (s *AuditService) Record(ctx context.Context, entry model.AuditEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.Outcome == "" {
		entry.Outcome = "ok"
	}

	select {
	case s.queue <- entry:
	default:
		s.logger.WarnContext(ctx, "audit queue full, dropping entry",
			"action", entry.Action, "actor", entry.Actor)
	}
}

// Run drains the queue until ctx is canceled, then flushes what remains.
func (s *AuditService) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			s.flush()
			return ctx.Err()
		case entry := <-s.queue:
			s.persist(entry)
		}
	}
}

func (s *AuditService) persist(entry model.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
	defer cancel()
	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Warn("audit write failed",
			"action", entry.Action, "actor", entry.Actor, "error", err)
	}
}

func (s *AuditService) flush() {
	for {
		select {
		case entry := <-s.queue:
			s.persist(entry)
		default:
			return
		}
	}
}

// NopAuditRecorder discards entries. Used when the console runs without a
// database.
type NopAuditRecorder struct{}

// Record implements ports.AuditRecorder.
func (NopAuditRecorder) Record(context.Context, model.AuditEntry) {}
