package entities

// Opcodes of the Tello blocks. Each opcode except connect is also the SDK
// verb sent to the drone.
const (
	OpConnect = "connect"
	OpTakeoff = "takeoff"
	OpLand    = "land"
	OpUp      = "up"
	OpDown    = "down"
	OpLeft    = "left"
	OpRight   = "right"
	OpForward = "forward"
	OpBack    = "back"
	OpCW      = "cw"
	OpCCW     = "ccw"
)

const (
	// ParamX is the only parameter name a block declares.
	ParamX = "X"

	ArgumentTypeNumber = "number"

	DefaultDistanceCM  = 50
	DefaultRotationDeg = 90
)

// Parameter describes a numeric block argument.
type Parameter struct {
	Name    string  `json:"-"`
	Type    string  `json:"type"`
	Default float64 `json:"defaultValue"`
}

// Operation is an invocable block: a stable opcode and its parameters.
type Operation struct {
	ID         string
	Parameters []Parameter
}

// Parameter returns the parameter named name.
func (o Operation) Parameter(name string) (Parameter, bool) {
	for _, p := range o.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

func numberX(def float64) []Parameter {
	return []Parameter{{Name: ParamX, Type: ArgumentTypeNumber, Default: def}}
}

// Operations builds the block descriptors in display order. The slice is
// freshly allocated on every call.
func Operations() []Operation {
	return []Operation{
		{ID: OpConnect},
		{ID: OpTakeoff},
		{ID: OpLand},
		{ID: OpUp, Parameters: numberX(DefaultDistanceCM)},
		{ID: OpDown, Parameters: numberX(DefaultDistanceCM)},
		{ID: OpLeft, Parameters: numberX(DefaultDistanceCM)},
		{ID: OpRight, Parameters: numberX(DefaultDistanceCM)},
		{ID: OpForward, Parameters: numberX(DefaultDistanceCM)},
		{ID: OpBack, Parameters: numberX(DefaultDistanceCM)},
		{ID: OpCW, Parameters: numberX(DefaultRotationDeg)},
		{ID: OpCCW, Parameters: numberX(DefaultRotationDeg)},
	}
}

// OperationByID looks up a block descriptor by opcode.
func OperationByID(id string) (Operation, bool) {
	for _, op := range Operations() {
		if op.ID == id {
			return op, true
		}
	}
	return Operation{}, false
}
