package logtransport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTransportLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	tr := New(zap.New(core))

	tr.Connect()
	tr.Send("cw 90")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "tello connect (dry run)", entries[0].Message)
	assert.Equal(t, "tello send (dry run)", entries[1].Message)
	assert.Equal(t, "cw 90", entries[1].ContextMap()["command"])
}

func TestTransportRunStopsWithContext(t *testing.T) {
	tr := New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, tr.Run(ctx))
	assert.NoError(t, tr.Drain(ctx))
}
