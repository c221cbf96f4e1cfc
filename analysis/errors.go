package analysis

import (
	"fmt"

	"github.com/embedpower/dvsim/power"
)

// DuplicateRecordError reports a second record for the same operating point
// and workload.
type DuplicateRecordError struct {
	Point    power.OperatingPoint
	Workload Workload
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf(
		"a record for workload %q at %s has already been ingested",
		e.Workload, e.Point)
}

// ZeroInstructionError reports a non-idle record whose energy per
// instruction would divide by zero.
type ZeroInstructionError struct {
	Point    power.OperatingPoint
	Workload Workload
}

func (e *ZeroInstructionError) Error() string {
	return fmt.Sprintf(
		"workload %q at %s executed zero instructions and is not idle",
		e.Workload, e.Point)
}

// IPCBoundError reports a record whose IPC exceeds the configured issue
// width bound.
type IPCBoundError struct {
	Point    power.OperatingPoint
	Workload Workload
	IPC      float64
	Bound    float64
}

func (e *IPCBoundError) Error() string {
	return fmt.Sprintf(
		"workload %q at %s reports IPC %v above the issue width bound %v",
		e.Workload, e.Point, e.IPC, e.Bound)
}

// NoDataError reports an aggregation over an operating point with no
// non-idle records.
type NoDataError struct {
	Point power.OperatingPoint
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no non-idle records ingested at %s", e.Point)
}

// EmptyTableError reports an optimum selection with nothing aggregated.
type EmptyTableError struct{}

func (e *EmptyTableError) Error() string {
	return "no operating point has any non-idle record to aggregate"
}
