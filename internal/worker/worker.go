package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/career-launch/backend/config"
	"github.com/career-launch/backend/internal/registration"
	"github.com/career-launch/backend/pkg/queue"
)

// ConfirmationProcessor consumes submission confirmation jobs: it sends the
// confirmation email (logged for now; no provider is wired) and marks the
// submission confirmed.
type ConfirmationProcessor struct {
	repo   *registration.Repository
	queue  *queue.Queue
	email  config.EmailConfig
	logger *zap.Logger
}

// NewConfirmationProcessor creates a confirmation processor.
func NewConfirmationProcessor(repo *registration.Repository, q *queue.Queue, email config.EmailConfig, logger *zap.Logger) *ConfirmationProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationProcessor{repo: repo, queue: q, email: email, logger: logger}
}

// Process executes one confirmation job.
func (p *ConfirmationProcessor) Process(ctx context.Context, job *queue.Job) error {
	if job.Type != queue.JobTypeConfirmation {
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
	var payload queue.ConfirmationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	sub, err := p.repo.GetSubmissionByID(ctx, payload.SubmissionID)
	if err != nil {
		return fmt.Errorf("submission not found: %s", payload.SubmissionID)
	}
	if sub.ConfirmedAt != nil {
		p.logger.Info("submission already confirmed", zap.String("submission_id", sub.ID.String()))
		return nil
	}

	p.logger.Info("confirmation email sent",
		zap.String("submission_id", sub.ID.String()),
		zap.String("to", payload.Email),
		zap.String("from", p.email.FromAddress),
		zap.String("session_slug", payload.SessionSlug),
	)

	if err := p.repo.MarkConfirmed(ctx, sub.ID); err != nil {
		return fmt.Errorf("mark confirmed: %w", err)
	}
	return nil
}

// Run consumes jobs until ctx is cancelled. Failed jobs are retried and
// eventually dead-lettered.
func (p *ConfirmationProcessor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Error("dequeue failed", zap.Error(err))
			continue
		}
		if job == nil {
			continue
		}
		if err := p.Process(ctx, job); err != nil {
			p.logger.Error("confirmation job failed", zap.Error(err), zap.String("job_id", job.ID))
			_ = p.queue.Retry(ctx, job)
		}
	}
}
