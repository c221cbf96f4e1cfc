package arch

import "fmt"

// InvalidParameterError reports a kind-specific parameter payload that
// violates its domain constraints.
type InvalidParameterError struct {
	ID    string
	Cause error
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("component %s: invalid parameters: %s", e.ID, e.Cause)
}

func (e *InvalidParameterError) Unwrap() error {
	return e.Cause
}

// DuplicateIDError reports an attempt to add a second component with an id
// that the topology already holds.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("component id %s is already in the topology", e.ID)
}

// NotInTopologyError reports a connect call that names a port of a component
// that was never added.
type NotInTopologyError struct {
	ID string
}

func (e *NotInTopologyError) Error() string {
	return fmt.Sprintf("component %s is not in the topology", e.ID)
}

// PortTypeMismatchError reports a connect call whose endpoints are not one
// mem-side and one cpu-side port.
type PortTypeMismatchError struct {
	A, B *Port
}

func (e *PortTypeMismatchError) Error() string {
	return fmt.Sprintf(
		"cannot connect %s (%s) to %s (%s), edges must join a mem_side "+
			"port to a cpu_side port",
		e.A.Name(), e.A.Role(), e.B.Name(), e.B.Role())
}

// PortFullError reports a connect call on a single port that already holds
// its one connection.
type PortFullError struct {
	Port *Port
}

func (e *PortFullError) Error() string {
	return fmt.Sprintf("port %s is single and already connected",
		e.Port.Name())
}

// DuplicateEdgeError reports a connect call that repeats an existing edge.
type DuplicateEdgeError struct {
	From, To *Port
}

func (e *DuplicateEdgeError) Error() string {
	return fmt.Sprintf("edge %s -> %s already exists",
		e.From.Name(), e.To.Name())
}

// CycleError reports a connect call that would close a cycle in the
// mem-side to cpu-side orientation.
type CycleError struct {
	From, To string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("connecting %s to %s would create a cycle",
		e.From, e.To)
}

// DisconnectedError names the first component, in insertion order, that
// cannot reach a memory controller.
type DisconnectedError struct {
	ID string
}

func (e *DisconnectedError) Error() string {
	return fmt.Sprintf("component %s cannot reach a memory controller", e.ID)
}

// NoMemoryControllerError reports a topology without any memory controller.
type NoMemoryControllerError struct{}

func (e *NoMemoryControllerError) Error() string {
	return "topology has no memory controller"
}
