package registration

import (
	"context"

	"go.uber.org/zap"

	"github.com/career-launch/backend/internal/models"
	"github.com/career-launch/backend/pkg/queue"
)

// Sink receives finished, validated submissions. The form does not care
// what happens downstream; the payload shape contract is the whole deal.
type Sink interface {
	Submit(ctx context.Context, sub models.Submission) error
}

// LogSink records submissions via zap. It is the default sink in local
// development, where no database is wired.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a logging sink.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Submit(_ context.Context, sub models.Submission) error {
	s.logger.Info("registration submitted",
		zap.String("submission_id", sub.ID.String()),
		zap.String("session_slug", sub.SessionSlug),
		zap.String("user_type", string(sub.UserType)),
		zap.String("board_id", sub.BoardID),
		zap.String("school_id", sub.SchoolID),
		zap.String("grade_level", sub.GradeLevel),
	)
	return nil
}

// FanoutSink forwards a submission to every configured sink. A failing leg
// is logged and skipped; the submission as a whole never fails.
type FanoutSink struct {
	sinks  []Sink
	logger *zap.Logger
}

// NewFanoutSink composes sinks.
func NewFanoutSink(logger *zap.Logger, sinks ...Sink) *FanoutSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FanoutSink{sinks: sinks, logger: logger}
}

func (s *FanoutSink) Submit(ctx context.Context, sub models.Submission) error {
	for _, sink := range s.sinks {
		if err := sink.Submit(ctx, sub); err != nil {
			s.logger.Error("submission sink leg failed", zap.Error(err),
				zap.String("submission_id", sub.ID.String()))
		}
	}
	return nil
}

// QueueSink enqueues a confirmation job for each educator submission.
// Student submissions carry no email, so there is nothing to confirm.
type QueueSink struct {
	queue  *queue.Queue
	logger *zap.Logger
}

// NewQueueSink creates a queue-backed sink.
func NewQueueSink(q *queue.Queue, logger *zap.Logger) *QueueSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueueSink{queue: q, logger: logger}
}

func (s *QueueSink) Submit(ctx context.Context, sub models.Submission) error {
	if sub.Email == "" {
		s.logger.Debug("skipping confirmation for submission without email",
			zap.String("submission_id", sub.ID.String()))
		return nil
	}
	return s.queue.EnqueueConfirmation(ctx, queue.ConfirmationPayload{
		SubmissionID: sub.ID,
		SessionSlug:  sub.SessionSlug,
		Email:        sub.Email,
		FirstName:    sub.FirstName,
	})
}
