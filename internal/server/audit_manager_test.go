package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturingProducer struct {
	messages chan []byte
}

func newCapturingProducer() *capturingProducer {
	return &capturingProducer{messages: make(chan []byte, 64)}
}

func (p *capturingProducer) SendMessage(_ context.Context, _ string, _ []byte, value []byte) error {
	p.messages <- value
	return nil
}

func (p *capturingProducer) Close() error { return nil }

func (p *capturingProducer) next(t *testing.T) AuditLogEntry {
	t.Helper()
	select {
	case payload := <-p.messages:
		var entry AuditLogEntry
		require.NoError(t, json.Unmarshal(payload, &entry))
		return entry
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit entry")
		return AuditLogEntry{}
	}
}

func TestAuditManager_PublishesFullBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	producer := newCapturingProducer()
	manager := NewAuditManager(1, 2, time.Minute, producer, zap.NewNop())
	manager.Start(ctx)

	manager.LogEntry(ctx, AuditLogEntry{Method: http.MethodGet, Path: "/api/orders/my"})
	manager.LogEntry(ctx, AuditLogEntry{Method: http.MethodPost, Path: "/api/orders"})

	first := producer.next(t)
	second := producer.next(t)
	assert.Equal(t, "/api/orders/my", first.Path)
	assert.Equal(t, "/api/orders", second.Path)

	manager.Shutdown(context.Background())
}

func TestAuditManager_FlushesPartialBatchOnTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	producer := newCapturingProducer()
	manager := NewAuditManager(1, 10, 50*time.Millisecond, producer, zap.NewNop())
	manager.Start(ctx)

	manager.LogEntry(ctx, AuditLogEntry{Method: http.MethodGet, Path: "/api/messes"})

	entry := producer.next(t)
	assert.Equal(t, "/api/messes", entry.Path)

	manager.Shutdown(context.Background())
}

func TestAuditManager_ShutdownIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := NewAuditManager(1, 2, time.Minute, newCapturingProducer(), zap.NewNop())
	manager.Start(ctx)

	manager.Shutdown(context.Background())
	manager.Shutdown(context.Background())
}

func TestOrderIDFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/orders/order-123/approval", "order-123"},
		{"/api/orders/order-123/absence/abs-1", "order-123"},
		{"/api/orders/my", ""},
		{"/api/orders/provider", ""},
		{"/api/orders/pending", ""},
		{"/api/orders/absences/provider", ""},
		{"/api/messes/mess-1", ""},
		{"/api/orders", ""},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, orderIDFromPath(tc.path))
		})
	}
}
