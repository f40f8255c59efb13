// Package transport builds the configured drone link.
package transport

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tellobot/internal/config"
	"tellobot/internal/infrastructure/logtransport"
	"tellobot/internal/infrastructure/tello"
	"tellobot/internal/ports/output"
)

// Link is a Transport with a lifecycle.
type Link interface {
	output.Transport
	Run(ctx context.Context) error
	Drain(ctx context.Context) error
	Close()
}

var (
	_ Link = (*tello.UDPTransport)(nil)
	_ Link = (*logtransport.Transport)(nil)
)

// New returns the link selected by cfg.Transport.
func New(cfg *config.Config, logger *zap.Logger) (Link, error) {
	switch cfg.Transport {
	case config.TransportUDP:
		return tello.NewUDPTransport(tello.Options{
			RemoteAddr:      cfg.TelloAddr,
			LocalAddr:       cfg.TelloLocalAddr,
			ResponseTimeout: cfg.ResponseTimeout,
			QueueSize:       cfg.SendQueue,
		}, logger.Named("tello")), nil
	case config.TransportLog:
		return logtransport.New(logger.Named("dryrun")), nil
	default:
		return nil, fmt.Errorf("transport: unknown kind %q", cfg.Transport)
	}
}
