// Package notify delivers complaint status-change events to complainants.
// Delivery is best-effort: events are queued on a bounded Dispatcher and
// handed to a Notifier by background workers.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Memex-200/Abutig-sub000/internal/config"
	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

// Notifier delivers one event. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(ctx context.Context, ev domain.StatusChangeEvent) error
}

// message is the wire payload published for downstream mailers.
type message struct {
	ComplaintID      string    `json:"complaint_id"`
	Title            string    `json:"title"`
	ComplainantID    string    `json:"complainant_id"`
	ComplainantName  string    `json:"complainant_name"`
	ComplainantPhone string    `json:"complainant_phone"`
	ComplainantEmail *string   `json:"complainant_email,omitempty"`
	OldStatus        string    `json:"old_status"`
	NewStatus        string    `json:"new_status"`
	Notes            string    `json:"notes"`
	ChangedBy        string    `json:"changed_by"`
	ChangedAt        time.Time `json:"changed_at"`
}

func toMessage(ev domain.StatusChangeEvent) message {
	return message{
		ComplaintID:      ev.ComplaintID.String(),
		Title:            ev.Title,
		ComplainantID:    ev.Complainant.ID.String(),
		ComplainantName:  ev.Complainant.FullName,
		ComplainantPhone: ev.Complainant.Phone,
		ComplainantEmail: ev.Complainant.Email,
		OldStatus:        ev.OldStatus.String(),
		NewStatus:        ev.NewStatus.String(),
		Notes:            ev.Notes,
		ChangedBy:        ev.ChangedBy.String(),
		ChangedAt:        ev.ChangedAt.UTC(),
	}
}

// ---------------------------------------------------------------------------
// Redis
// ---------------------------------------------------------------------------

// publisher is the subset of *redis.Client used here.
type publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisPublisher publishes events as JSON on a Redis pub/sub channel.
// E-mail and SMS delivery subscribe to that channel out of process.
type RedisPublisher struct {
	client  publisher
	channel string
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// NewRedisPublisher creates a publisher for channel.
func NewRedisPublisher(client publisher, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// Notify publishes the event.
func (p *RedisPublisher) Notify(ctx context.Context, ev domain.StatusChangeEvent) error {
	payload, err := json.Marshal(toMessage(ev))
	if err != nil {
		return fmt.Errorf("marshal status change event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Log
// ---------------------------------------------------------------------------

// LogNotifier only logs events. It is used when Redis is not configured.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("notifier", "log")}
}

// Notify logs the event and never fails.
func (n *LogNotifier) Notify(ctx context.Context, ev domain.StatusChangeEvent) error {
	n.log.InfoContext(ctx, "complaint status changed",
		slog.String("complaint_id", ev.ComplaintID.String()),
		slog.String("complainant_id", ev.Complainant.ID.String()),
		slog.String("old_status", ev.OldStatus.String()),
		slog.String("new_status", ev.NewStatus.String()),
	)
	return nil
}
