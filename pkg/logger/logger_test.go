package logger

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestWithCtxFallsBackToBase(t *testing.T) {
	assert.Same(t, L, WithCtx(context.Background()))

	var buf bytes.Buffer
	reqLog := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "abc")
	ctx := InjectLogger(context.Background(), reqLog)

	WithCtx(ctx).Info("menu created")
	assert.Contains(t, buf.String(), "request_id=abc")
	assert.Contains(t, buf.String(), `msg="menu created"`)
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).With("svc", "dinehub")

	log.Info("only first")
	log.Error("both")

	assert.Contains(t, a.String(), "only first")
	assert.Contains(t, a.String(), "svc=dinehub")
	assert.NotContains(t, b.String(), "only first")
	assert.Contains(t, b.String(), "both")
}

func TestMongoHandlerQueuesDocuments(t *testing.T) {
	sink := &mongoSink{queue: make(chan LogDocument, 1)}
	log := slog.New(&MongoHandler{sink: sink}).With("request_id", "r-1").WithGroup("restaurant")

	log.Info("updated", "id", "42", "user_id", "u-7")

	select {
	case doc := <-sink.queue:
		assert.Equal(t, "updated", doc.Msg)
		assert.Equal(t, "INFO", doc.Level)
		assert.Equal(t, "r-1", doc.RequestID)
		assert.Equal(t, bson.M{"restaurant.id": "42", "restaurant.user_id": "u-7"}, doc.Attrs)
	case <-time.After(time.Second):
		require.Fail(t, "no document queued")
	}

	// a full queue drops instead of blocking
	sink.queue <- LogDocument{}
	require.NoError(t, (&MongoHandler{sink: sink}).Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "dropped", 0)))
}

func TestMongoSinkFlushesOnClose(t *testing.T) {
	var (
		mu      sync.Mutex
		written []interface{}
		closed  bool
	)
	sink := newSink(
		func(_ context.Context, docs []interface{}) error {
			mu.Lock()
			written = append(written, docs...)
			mu.Unlock()
			return nil
		},
		func(context.Context) error { closed = true; return nil },
	)
	h := &MongoHandler{sink: sink}

	log := slog.New(h)
	for i := 0; i < 3; i++ {
		log.Warn("slow query", "user_id", "u-1")
	}
	h.Close()
	h.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, written, 3)
	doc := written[0].(LogDocument)
	assert.Equal(t, "WARN", doc.Level)
	assert.Equal(t, "u-1", doc.UserID)
	assert.True(t, closed)
}

func TestCloseDetachesMongoSink(t *testing.T) {
	Close()

	disconnects := 0
	activeMongo = &MongoHandler{sink: newSink(
		func(context.Context, []interface{}) error { return nil },
		func(context.Context) error { disconnects++; return nil },
	)}

	Close()
	assert.Nil(t, activeMongo)
	Close()
	assert.Equal(t, 1, disconnects)
}
