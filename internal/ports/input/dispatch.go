package input

import "tellobot/internal/domain"

type DispatchUseCase interface {
	Connect()
	Takeoff()
	Land()
	Up(args domain.Args)
	Down(args domain.Args)
	Left(args domain.Args)
	Right(args domain.Args)
	Forward(args domain.Args)
	Back(args domain.Args)
	CW(args domain.Args)
	CCW(args domain.Args)
	// Invoke dispatches by opcode and returns the forwarded command string,
	// empty for connect.
	Invoke(opcode string, args domain.Args) (string, error)
}
