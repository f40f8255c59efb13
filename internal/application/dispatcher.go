package application

import (
	"fmt"

	"go.uber.org/zap"

	"tellobot/internal/domain"
	"tellobot/internal/domain/entities"
	"tellobot/internal/ports/input"
	"tellobot/internal/ports/output"
)

var _ input.DispatchUseCase = (*Dispatcher)(nil)

// Dispatcher turns block invocations into Tello SDK command strings and hands
// them to the transport. It keeps no state between calls.
type Dispatcher struct {
	transport output.Transport
	logger    *zap.Logger
}

func NewDispatcher(transport output.Transport, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		logger:    logger,
	}
}

func (d *Dispatcher) Connect() {
	d.logger.Debug("dispatch connect")
	d.transport.Connect()
}

func (d *Dispatcher) Takeoff() { d.forward(entities.OpTakeoff) }
func (d *Dispatcher) Land()    { d.forward(entities.OpLand) }

func (d *Dispatcher) Up(args domain.Args)      { d.move(entities.OpUp, args) }
func (d *Dispatcher) Down(args domain.Args)    { d.move(entities.OpDown, args) }
func (d *Dispatcher) Left(args domain.Args)    { d.move(entities.OpLeft, args) }
func (d *Dispatcher) Right(args domain.Args)   { d.move(entities.OpRight, args) }
func (d *Dispatcher) Forward(args domain.Args) { d.move(entities.OpForward, args) }
func (d *Dispatcher) Back(args domain.Args)    { d.move(entities.OpBack, args) }
func (d *Dispatcher) CW(args domain.Args)      { d.move(entities.OpCW, args) }
func (d *Dispatcher) CCW(args domain.Args)     { d.move(entities.OpCCW, args) }

// Invoke dispatches by opcode. The only error is domain.ErrUnknownOperation;
// malformed arguments are coerced, never rejected.
func (d *Dispatcher) Invoke(opcode string, args domain.Args) (string, error) {
	op, ok := entities.OperationByID(opcode)
	if !ok {
		return "", fmt.Errorf("invoke %q: %w", opcode, domain.ErrUnknownOperation)
	}
	if op.ID == entities.OpConnect {
		d.Connect()
		return "", nil
	}
	cmd := CommandString(op, args)
	d.forward(cmd)
	return cmd, nil
}

// CommandString renders the command for op: the bare verb, or the verb and
// the canonical X. An absent X takes the declared default.
func CommandString(op entities.Operation, args domain.Args) string {
	param, ok := op.Parameter(entities.ParamX)
	if !ok {
		return op.ID
	}
	x, ok := args.Value(entities.ParamX)
	if !ok {
		x = param.Default
	}
	return op.ID + " " + domain.FormatNumber(x)
}

func (d *Dispatcher) move(opcode string, args domain.Args) {
	op, _ := entities.OperationByID(opcode)
	d.forward(CommandString(op, args))
}

func (d *Dispatcher) forward(cmd string) {
	d.logger.Debug("dispatch command", zap.String("command", cmd))
	d.transport.Send(cmd)
}
