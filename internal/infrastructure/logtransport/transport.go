// Package logtransport provides a dry-run Transport that only logs.
package logtransport

import (
	"context"

	"go.uber.org/zap"

	"tellobot/internal/ports/output"
)

var _ output.Transport = (*Transport)(nil)

// Transport logs every connect and command instead of sending it.
type Transport struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Transport {
	return &Transport{logger: logger}
}

func (t *Transport) Connect() {
	t.logger.Info("tello connect (dry run)")
}

func (t *Transport) Send(command string) {
	t.logger.Info("tello send (dry run)", zap.String("command", command))
}

// Run blocks until ctx is done.
func (t *Transport) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (t *Transport) Drain(context.Context) error { return nil }

func (t *Transport) Close() {}
