package producer

import (
	"context"
	"time"

	"go-payroll/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize           = 50
	defaultPollInterval = 3 * time.Second
)

// ProcessOutboxEvents memindahkan event outbox yang masih pending ke Kafka
// sampai ctx dibatalkan.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	d := outboxDispatcher{
		repo:   repo,
		writer: writer,
		log:    logger.Named("kafka.producer.worker"),
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	d.log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		if err := d.dispatch(ctx); err != nil && ctx.Err() == nil {
			d.log.Error("dispatch outbox batch failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			d.log.Info("outbox worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) error {
	d := outboxDispatcher{repo: repo, writer: writer, log: logger}
	return d.dispatch(ctx)
}

type outboxDispatcher struct {
	repo   kafka.OutboxRepository
	writer MessageWriter
	log    *zap.Logger
}

func (d outboxDispatcher) dispatch(ctx context.Context) error {
	events, err := d.repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	d.log.Debug("dispatching outbox batch", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		// sisa batch diambil lagi pada tick berikutnya
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.deliver(ctx, event) {
			sent++
		}
	}

	d.log.Info("outbox batch dispatched",
		zap.Int("sent", sent),
		zap.Int("failed", len(events)-sent),
	)
	return nil
}

// deliver mengembalikan true bila event terkirim dan ditandai sent.
func (d outboxDispatcher) deliver(ctx context.Context, event kafka.OutboxEvent) bool {
	log := d.log.With(
		zap.String("outbox_id", event.ID),
		zap.String("event_type", event.EventType),
		zap.String("topic", event.Topic),
	)

	if err := publishEvent(ctx, d.writer, event); err != nil {
		log.Warn("publish outbox event failed",
			zap.Int("retry_count", event.RetryCount+1),
			zap.Duration("next_retry_in", kafka.RetryDelay(event.RetryCount+1)),
			zap.Error(err),
		)
		if markErr := d.repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
			log.Error("mark outbox event failed", zap.Error(markErr))
		}
		return false
	}

	if err := d.repo.MarkSent(ctx, event.ID); err != nil {
		// event sudah di broker; consumer harus idempotent terhadap kiriman ulang
		log.Error("mark outbox event sent", zap.Error(err))
		return false
	}

	log.Debug("outbox event sent", zap.String("request_id", event.RequestID))
	return true
}
