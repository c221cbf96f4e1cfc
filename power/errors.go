package power

import "fmt"

// NonMonotonicTableError reports a DVFS point sequence in which voltage and
// frequency do not both strictly increase.
type NonMonotonicTableError struct {
	Index      int
	Prev, Curr OperatingPoint
}

func (e *NonMonotonicTableError) Error() string {
	return fmt.Sprintf(
		"DVFS table is not strictly increasing at index %d: %s follows %s",
		e.Index, e.Curr, e.Prev)
}

// DuplicatePointError reports a repeated voltage-frequency pair in a DVFS
// point sequence.
type DuplicatePointError struct {
	Point OperatingPoint
}

func (e *DuplicatePointError) Error() string {
	return fmt.Sprintf("DVFS table repeats operating point %s", e.Point)
}

// PointNotInTableError reports a transition request to a point outside the
// domain's table.
type PointNotInTableError struct {
	Domain string
	Point  OperatingPoint
}

func (e *PointNotInTableError) Error() string {
	if e.Domain == "" {
		return fmt.Sprintf("operating point %s is not in the DVFS table",
			e.Point)
	}
	return fmt.Sprintf(
		"operating point %s is not in the DVFS table of domain %s",
		e.Point, e.Domain)
}

// NonPositiveInputError reports a voltage or frequency at or below zero.
type NonPositiveInputError struct {
	Name  string
	Value float64
}

func (e *NonPositiveInputError) Error() string {
	return fmt.Sprintf("%s must be positive, got %v", e.Name, e.Value)
}
