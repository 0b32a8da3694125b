// Package listener consumes the document change feed published by the
// database triggers over LISTEN/NOTIFY and hands decoded changes to the
// gate. Losing a connection loses the notifications sent while away; the
// feed is a best-effort push channel, not a durable queue.
package listener

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sethvargo/go-retry"

	"github.com/hyperaware/doorbell-relay/internal/logging"
	"github.com/hyperaware/doorbell-relay/internal/relay/eventsource"
)

// ChannelName is the NOTIFY channel the schema triggers publish to.
const ChannelName = "doorbell_changes"

// Listener holds a dedicated connection on the change-feed channel and
// dispatches each notification to the handler.
type Listener struct {
	dsn     string
	handler eventsource.ChangeHandler
	logger  logging.Logger
}

func NewListener(dsn string, handler eventsource.ChangeHandler, logger logging.Logger) *Listener {
	return &Listener{
		dsn:     dsn,
		handler: handler,
		logger:  logger.With("module", "listener"),
	}
}

// Run blocks consuming notifications until ctx is canceled, reconnecting
// with capped exponential backoff when the connection drops. Cancellation
// is a clean shutdown and returns nil.
func (l *Listener) Run(ctx context.Context) error {
	b := retry.WithCappedDuration(30*time.Second, retry.NewExponential(500*time.Millisecond))

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return err
		}
		l.logger.Warn(ctx, "change feed connection lost, reconnecting", "error", err)
		return retry.RetryableError(err)
	})

	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "listen "+ChannelName); err != nil {
		return err
	}

	l.logger.Info(ctx, "listening for document changes", "channel", ChannelName)

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		ch, err := eventsource.DecodeChange([]byte(n.Payload))
		if err != nil {
			l.logger.Warn(ctx, "dropping malformed change notification", "error", err)
			continue
		}

		l.handler.HandleChange(ctx, ch)
	}
}
