package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// NotifyListener holds one dedicated PostgreSQL connection LISTENing on the
// notification channel and dispatches every payload to the local
// ConnectionManager. One instance per process; replicas each hold their own
// LISTEN connection, which is how events reach subscribers on other pods.
type NotifyListener struct {
	connString string
	conn       *pgx.Conn
	connMu     sync.Mutex
	manager    *ConnectionManager

	// cancelLoop and loopDone coordinate graceful shutdown of the receive loop.
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates a listener for the notification channel.
func NewNotifyListener(connString string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		manager:    manager,
	}
}

// Start establishes the dedicated LISTEN connection and begins receiving.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	if err := listenOn(ctx, conn); err != nil {
		_ = conn.Close(ctx)
		return err
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started", "channel", NotificationChannel)
	return nil
}

func listenOn(ctx context.Context, conn *pgx.Conn) error {
	sanitized := pgx.Identifier{NotificationChannel}.Sanitize()
	if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", sanitized, err)
	}
	return nil
}

// receiveLoop is the sole goroutine touching the pgx connection. It waits
// for notifications and hands payloads to the ConnectionManager, which does
// per-workflow fan-out without blocking this loop.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.manager.Dispatch([]byte(notification.Payload))
	}
}

// reconnect re-establishes the LISTEN connection with exponential backoff.
// Events fired while disconnected are not replayed here; clients recover
// them through catchup by sequence number.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		if err := listenOn(ctx, conn); err != nil {
			slog.Error("Re-LISTEN failed", "error", err)
			_ = conn.Close(ctx)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		l.conn = conn
		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it, then closes the
// LISTEN connection.
func (l *NotifyListener) Stop(ctx context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
