package power

import "fmt"

// An OperatingPoint is one admissible voltage-frequency pair.
type OperatingPoint struct {
	Voltage Voltage
	Freq    Freq
}

func (p OperatingPoint) String() string {
	return fmt.Sprintf("%s/%s", p.Voltage, p.Freq)
}

// A Table is an ordered, validated sequence of operating points. Voltage and
// frequency both strictly increase across the sequence, so table order is
// also lexicographic order. Tables are immutable once built.
type Table struct {
	points []OperatingPoint
}

// MakeTable validates and builds a DVFS table.
func MakeTable(points ...OperatingPoint) (Table, error) {
	for _, p := range points {
		if p.Voltage <= 0 {
			return Table{}, &NonPositiveInputError{
				Name: "voltage", Value: float64(p.Voltage)}
		}
		if p.Freq <= 0 {
			return Table{}, &NonPositiveInputError{
				Name: "frequency", Value: float64(p.Freq)}
		}
	}

	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]

		if curr == prev {
			return Table{}, &DuplicatePointError{Point: curr}
		}

		if curr.Voltage <= prev.Voltage || curr.Freq <= prev.Freq {
			return Table{}, &NonMonotonicTableError{
				Index: i,
				Prev:  prev,
				Curr:  curr,
			}
		}
	}

	t := Table{points: make([]OperatingPoint, len(points))}
	copy(t.points, points)

	return t, nil
}

// Len returns the number of operating points in the table.
func (t Table) Len() int {
	return len(t.points)
}

// Point returns the i-th operating point, lowest first.
func (t Table) Point(i int) OperatingPoint {
	return t.points[i]
}

// Points returns a copy of the ordered point list.
func (t Table) Points() []OperatingPoint {
	points := make([]OperatingPoint, len(t.points))
	copy(points, t.points)
	return points
}

// IndexOf returns the position of a point in the table.
func (t Table) IndexOf(p OperatingPoint) (int, bool) {
	for i, candidate := range t.points {
		if candidate == p {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether the point is a member of the table.
func (t Table) Contains(p OperatingPoint) bool {
	_, found := t.IndexOf(p)
	return found
}
