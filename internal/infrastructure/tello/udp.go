// Package tello implements the Tello SDK text protocol over UDP.
//
// Commands are plain ASCII datagrams sent to the drone's control port; the
// drone answers each one with "ok" or "error ...". The SDK has to be switched
// on with the "command" handshake before any other command is accepted.
package tello

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tellobot/internal/ports/output"
)

const (
	// CommandSDKMode is the handshake that puts the drone in SDK mode.
	CommandSDKMode = "command"

	replyOK     = "ok"
	maxDatagram = 1518
)

var _ output.Transport = (*UDPTransport)(nil)

// Options configures a UDPTransport.
type Options struct {
	// RemoteAddr is the drone's control address, usually 192.168.10.1:8889.
	RemoteAddr string
	// LocalAddr is the local bind address; replies come back to it.
	LocalAddr string
	// ResponseTimeout bounds the wait for each reply.
	ResponseTimeout time.Duration
	// QueueSize is the number of commands buffered before new ones are dropped.
	QueueSize int
}

type request struct {
	command string
	// flushed, when set, marks a Drain barrier instead of a command.
	flushed chan struct{}
}

// UDPTransport sends commands one at a time from a single worker goroutine,
// waiting for the drone's reply before sending the next. Connect and Send
// only enqueue and never block.
type UDPTransport struct {
	opts   Options
	logger *zap.Logger

	queue     chan request
	done      chan struct{}
	closeOnce sync.Once
}

func NewUDPTransport(opts Options, logger *zap.Logger) *UDPTransport {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 16
	}
	if opts.ResponseTimeout <= 0 {
		opts.ResponseTimeout = 10 * time.Second
	}
	if opts.LocalAddr == "" {
		opts.LocalAddr = "0.0.0.0:0"
	}
	return &UDPTransport{
		opts:   opts,
		logger: logger.With(zap.String("remote", opts.RemoteAddr)),
		queue:  make(chan request, opts.QueueSize),
		done:   make(chan struct{}),
	}
}

// Connect queues the SDK-mode handshake.
func (t *UDPTransport) Connect() {
	t.enqueue(CommandSDKMode)
}

func (t *UDPTransport) Send(command string) {
	t.enqueue(command)
}

func (t *UDPTransport) enqueue(command string) {
	select {
	case <-t.done:
		t.logger.Warn("tello: transport closed, command dropped", zap.String("command", command))
		return
	default:
	}
	select {
	case t.queue <- request{command: command}:
	default:
		t.logger.Warn("tello: send queue full, command dropped", zap.String("command", command))
	}
}

// Run opens the UDP socket and processes queued commands until ctx is done
// or Close is called.
func (t *UDPTransport) Run(ctx context.Context) error {
	raddr, err := net.ResolveUDPAddr("udp", t.opts.RemoteAddr)
	if err != nil {
		return fmt.Errorf("tello: resolve remote %q: %w", t.opts.RemoteAddr, err)
	}
	laddr, err := net.ResolveUDPAddr("udp", t.opts.LocalAddr)
	if err != nil {
		return fmt.Errorf("tello: resolve local %q: %w", t.opts.LocalAddr, err)
	}
	conn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return fmt.Errorf("tello: listen %q: %w", t.opts.LocalAddr, err)
	}
	defer conn.Close()

	// Closing the socket unblocks a pending reply read on shutdown.
	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
		case <-t.done:
		case <-stopped:
			return
		}
		conn.Close()
	}()

	t.logger.Info("tello: transport running", zap.String("local", conn.LocalAddr().String()))

	buf := make([]byte, maxDatagram)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.done:
			return nil
		case req := <-t.queue:
			if req.flushed != nil {
				close(req.flushed)
				continue
			}
			t.exchange(ctx, conn, raddr, req.command, buf)
		}
	}
}

// exchange writes one command and waits for its reply. Failures are logged,
// never returned: the dispatcher does not observe delivery.
func (t *UDPTransport) exchange(ctx context.Context, conn *net.UDPConn, raddr *net.UDPAddr, command string, buf []byte) {
	log := t.logger.With(zap.String("command", command))

	if _, err := conn.WriteToUDP([]byte(command), raddr); err != nil {
		if errors.Is(err, net.ErrClosed) {
			log.Debug("tello: transport stopped, command not sent")
			return
		}
		log.Warn("tello: write failed", zap.Error(err))
		return
	}

	deadline := time.Now().Add(t.opts.ResponseTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		if !errors.Is(err, net.ErrClosed) {
			log.Warn("tello: set read deadline", zap.Error(err))
		}
		return
	}

	for {
		n, from, err := conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				log.Debug("tello: transport stopped, reply abandoned")
				return
			}
			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				log.Warn("tello: no reply", zap.Duration("timeout", t.opts.ResponseTimeout))
				return
			}
			log.Warn("tello: read failed", zap.Error(err))
			return
		}
		// Stray datagrams from other senders are not replies.
		if !from.IP.Equal(raddr.IP) || from.Port != raddr.Port {
			continue
		}
		reply := strings.TrimSpace(string(buf[:n]))
		if reply == replyOK {
			log.Debug("tello: ok")
		} else {
			log.Warn("tello: command rejected", zap.String("reply", reply))
		}
		return
	}
}

// Drain blocks until every command queued before the call has been
// processed, or ctx is done. It requires Run to be active.
func (t *UDPTransport) Drain(ctx context.Context) error {
	flushed := make(chan struct{})
	select {
	case t.queue <- request{flushed: flushed}:
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-flushed:
		return nil
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops Run. Commands still queued are discarded.
func (t *UDPTransport) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}
