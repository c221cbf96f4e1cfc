package arch

import (
	"fmt"
	"sort"
)

// Kind discriminates the concrete component variants. The shared behavior of
// all kinds is only "has ports, has parameters", so a single Component type
// with a kind tag replaces a type hierarchy.
type Kind int

// The component kinds that can appear in a topology.
const (
	ProcessorCore Kind = iota
	Cache
	Interconnect
	MemoryController
)

func (k Kind) String() string {
	switch k {
	case ProcessorCore:
		return "ProcessorCore"
	case Cache:
		return "Cache"
	case Interconnect:
		return "Interconnect"
	case MemoryController:
		return "MemoryController"
	default:
		return "Unknown"
	}
}

// Parameters is the kind-specific payload of a component. Validate reports
// the first domain-constraint violation.
type Parameters interface {
	Validate() error
}

// A Component is a named hardware unit with ports. Components carry no
// behavior of their own; the external simulator interprets their parameters.
type Component struct {
	id     string
	kind   Kind
	params Parameters
	ports  map[string]*Port
}

// ID returns the unique name of the component.
func (c *Component) ID() string {
	return c.id
}

// Kind returns the variant tag of the component.
func (c *Component) Kind() Kind {
	return c.kind
}

// Parameters returns the kind-specific parameter payload.
func (c *Component) Parameters() Parameters {
	return c.params
}

// Port returns the port with the given short name, such as "MemSide".
// It panics if the port does not exist, as looking up a port that a kind
// does not declare is a wiring bug, not a data error.
func (c *Component) Port(name string) *Port {
	port, found := c.ports[name]
	if !found {
		errMsg := fmt.Sprintf(
			"port %s is not available on component %s, available ports are:",
			name, c.id)
		for _, n := range c.portNames() {
			errMsg += " " + n
		}
		panic(errMsg)
	}

	return port
}

// Ports returns all ports of the component, sorted by name.
func (c *Component) Ports() []*Port {
	ports := make([]*Port, 0, len(c.ports))
	for _, name := range c.portNames() {
		ports = append(ports, c.ports[name])
	}
	return ports
}

func (c *Component) portNames() []string {
	names := make([]string, 0, len(c.ports))
	for n := range c.ports {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (c *Component) addPort(name string, role Role, m Multiplicity) {
	c.ports[name] = &Port{
		comp:         c,
		name:         name,
		role:         role,
		multiplicity: m,
	}
}

func newComponent(id string, kind Kind, params Parameters) (*Component, error) {
	if err := params.Validate(); err != nil {
		return nil, &InvalidParameterError{ID: id, Cause: err}
	}

	return &Component{
		id:     id,
		kind:   kind,
		params: params,
		ports:  make(map[string]*Port),
	}, nil
}

// NewProcessorCore creates an in-order core with separate instruction and
// data memory ports ("IMem" and "DMem", both mem-side, single).
func NewProcessorCore(id string, params CoreParams) (*Component, error) {
	c, err := newComponent(id, ProcessorCore, params)
	if err != nil {
		return nil, err
	}

	c.addPort("IMem", MemSide, Single)
	c.addPort("DMem", MemSide, Single)

	return c, nil
}

// NewCache creates a cache with a fan-in "CPUSide" vector port and a
// "MemSide" single port, so the same kind serves both private L1s and a
// shared L2.
func NewCache(id string, params CacheParams) (*Component, error) {
	c, err := newComponent(id, Cache, params)
	if err != nil {
		return nil, err
	}

	c.addPort("CPUSide", CPUSide, Vector)
	c.addPort("MemSide", MemSide, Single)

	return c, nil
}

// NewInterconnect creates a crossbar with vector ports on both sides.
func NewInterconnect(id string, params InterconnectParams) (*Component, error) {
	c, err := newComponent(id, Interconnect, params)
	if err != nil {
		return nil, err
	}

	c.addPort("CPUSide", CPUSide, Vector)
	c.addPort("MemSide", MemSide, Vector)

	return c, nil
}

// NewMemoryController creates a memory controller with a single "CPUSide"
// port. It is the sink of the topology.
func NewMemoryController(
	id string,
	params MemControllerParams,
) (*Component, error) {
	c, err := newComponent(id, MemoryController, params)
	if err != nil {
		return nil, err
	}

	c.addPort("CPUSide", CPUSide, Single)

	return c, nil
}
