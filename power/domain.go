package power

// A Domain binds a clock source to a DVFS table and tracks the point the
// domain currently runs at. SetPoint is the sole mutator; no selection
// policy lives here, governors are external.
type Domain struct {
	name    string
	table   Table
	current OperatingPoint
}

// NewDomain creates a domain that starts at the lowest point of the table.
// The table must not be empty; an empty table is a wiring bug.
func NewDomain(name string, table Table) *Domain {
	if table.Len() == 0 {
		panic("power domain needs a non-empty DVFS table")
	}

	return &Domain{
		name:    name,
		table:   table,
		current: table.Point(0),
	}
}

// Name returns the clock source name of the domain.
func (d *Domain) Name() string {
	return d.name
}

// Table returns the DVFS table of the domain.
func (d *Domain) Table() Table {
	return d.table
}

// Current returns the operating point the domain currently runs at.
func (d *Domain) Current() OperatingPoint {
	return d.current
}

// SetPoint transitions the domain to the given operating point. Setting the
// current point again is a no-op. Points outside the table are rejected.
func (d *Domain) SetPoint(p OperatingPoint) error {
	if !d.table.Contains(p) {
		return &PointNotInTableError{Domain: d.name, Point: p}
	}

	if p == d.current {
		return nil
	}

	d.current = p

	return nil
}
