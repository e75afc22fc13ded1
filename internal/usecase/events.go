package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/totegamma/swcatalog/internal/domain"
)

// publish emits a change event. Delivery is best effort: a failed publish is
// logged, never surfaced to the request.
func publish(ctx context.Context, signal EventPublisher, kind string, id int64) {
	if signal == nil {
		return
	}
	event := domain.Event{
		Kind: kind,
		ID:   id,
		At:   time.Now().UTC(),
	}
	if err := signal.Publish(ctx, event); err != nil {
		slog.WarnContext(
			ctx, "failed to publish event",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
	}
}
