package action

// Closure represents a part of the vehicle that opens and closes.
type Closure string

const (
	ClosureTailgate Closure = "tailgate"
	ClosureSunroof  Closure = "sunroof"
)

// ClosureOperation is the direction in which a closure moves.
type ClosureOperation string

const (
	ClosureOpen  ClosureOperation = "OPEN"
	ClosureClose ClosureOperation = "CLOSE"
)

type closureBody struct {
	Operation ClosureOperation `json:"operation"`
}

// OpenTailgate opens the power tailgate.
func OpenTailgate() *Command {
	return buildClosureAction(ClosureTailgate, ClosureOpen)
}

// CloseTailgate closes the power tailgate.
func CloseTailgate() *Command {
	return buildClosureAction(ClosureTailgate, ClosureClose)
}

// OpenSunroof opens the sunroof. Has no effect on vehicles without one.
func OpenSunroof() *Command {
	return buildClosureAction(ClosureSunroof, ClosureOpen)
}

// CloseSunroof closes the sunroof.
func CloseSunroof() *Command {
	return buildClosureAction(ClosureSunroof, ClosureClose)
}

func buildClosureAction(closure Closure, operation ClosureOperation) *Command {
	return buildCommand(string(closure), &closureBody{Operation: operation})
}
