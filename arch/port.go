// Package arch models the hardware organization of an embedded system as a
// graph of components connected through typed ports.
package arch

// A Role tells which side of the memory hierarchy a port faces.
type Role int

// The two port roles. Traffic flows from MemSide ports into CPUSide ports,
// toward the memory controller.
const (
	CPUSide Role = iota
	MemSide
)

func (r Role) String() string {
	switch r {
	case CPUSide:
		return "cpu_side"
	case MemSide:
		return "mem_side"
	default:
		return "unknown"
	}
}

// Multiplicity limits how many connections a port can hold.
type Multiplicity int

// Single ports hold exactly one connection, Vector ports hold any number.
const (
	Single Multiplicity = iota
	Vector
)

// A Port is a connection endpoint owned by a component. Ports are created by
// the component constructors; the topology is the only mutator of their
// connection count.
type Port struct {
	comp         *Component
	name         string
	role         Role
	multiplicity Multiplicity

	numConn int
}

// Name returns the hierarchical name of the port, such as "L2Cache.CPUSide".
func (p *Port) Name() string {
	return p.comp.id + "." + p.name
}

// Component returns the component that owns the port.
func (p *Port) Component() *Component {
	return p.comp
}

// Role returns which side of the hierarchy the port faces.
func (p *Port) Role() Role {
	return p.role
}

// Multiplicity returns the connection limit class of the port.
func (p *Port) Multiplicity() Multiplicity {
	return p.multiplicity
}

// NumConn returns the number of edges currently attached to the port.
func (p *Port) NumConn() int {
	return p.numConn
}

func (p *Port) canAccept() bool {
	return p.multiplicity == Vector || p.numConn == 0
}
