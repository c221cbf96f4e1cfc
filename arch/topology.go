package arch

// An Edge is a validated connection between a mem-side port and a cpu-side
// port. From is always the mem-side end.
type Edge struct {
	From, To *Port
}

// A Topology owns a set of components and the edges that wire their ports
// together. Components are stored in an id-indexed arena and edges in an
// explicit list, so components never reference each other directly.
type Topology struct {
	name string

	components map[string]*Component
	order      []string
	edges      []Edge
}

// NewTopology creates an empty topology.
func NewTopology(name string) *Topology {
	return &Topology{
		name:       name,
		components: make(map[string]*Component),
	}
}

// Name returns the name of the topology.
func (t *Topology) Name() string {
	return t.name
}

// AddComponent places a component into the arena. Ids must be unique.
func (t *Topology) AddComponent(c *Component) error {
	if _, found := t.components[c.ID()]; found {
		return &DuplicateIDError{ID: c.ID()}
	}

	t.components[c.ID()] = c
	t.order = append(t.order, c.ID())

	return nil
}

// Component looks a component up by id.
func (t *Topology) Component(id string) (*Component, bool) {
	c, found := t.components[id]
	return c, found
}

// Components returns the components in insertion order.
func (t *Topology) Components() []*Component {
	comps := make([]*Component, 0, len(t.order))
	for _, id := range t.order {
		comps = append(comps, t.components[id])
	}
	return comps
}

// Edges returns a copy of the edge list.
func (t *Topology) Edges() []Edge {
	edges := make([]Edge, len(t.edges))
	copy(edges, t.edges)
	return edges
}

// Connect wires two ports together. Exactly one endpoint must be mem-side
// and the other cpu-side; the edge is stored mem-side first. A failed
// connect leaves the topology untouched.
func (t *Topology) Connect(a, b *Port) error {
	from, to, err := t.orient(a, b)
	if err != nil {
		return err
	}

	if err := t.portsMustBeOwned(from, to); err != nil {
		return err
	}

	if !from.canAccept() {
		return &PortFullError{Port: from}
	}
	if !to.canAccept() {
		return &PortFullError{Port: to}
	}

	if t.hasEdge(from, to) {
		return &DuplicateEdgeError{From: from, To: to}
	}

	if t.reaches(to.Component().ID(), from.Component().ID()) {
		return &CycleError{
			From: from.Component().ID(),
			To:   to.Component().ID(),
		}
	}

	t.edges = append(t.edges, Edge{From: from, To: to})
	from.numConn++
	to.numConn++

	return nil
}

// Validate checks that every component can reach a memory controller
// through the mem-side to cpu-side orientation. It reports the first
// unreachable component in insertion order.
func (t *Topology) Validate() error {
	hasMemCtrl := false
	for _, c := range t.components {
		if c.Kind() == MemoryController {
			hasMemCtrl = true
			break
		}
	}
	if !hasMemCtrl {
		return &NoMemoryControllerError{}
	}

	for _, id := range t.order {
		if !t.reachesMemController(id) {
			return &DisconnectedError{ID: id}
		}
	}

	return nil
}

func (t *Topology) orient(a, b *Port) (from, to *Port, err error) {
	switch {
	case a.Role() == MemSide && b.Role() == CPUSide:
		return a, b, nil
	case a.Role() == CPUSide && b.Role() == MemSide:
		return b, a, nil
	default:
		return nil, nil, &PortTypeMismatchError{A: a, B: b}
	}
}

func (t *Topology) portsMustBeOwned(ports ...*Port) error {
	for _, p := range ports {
		owner := p.Component().ID()
		if _, found := t.components[owner]; !found {
			return &NotInTopologyError{ID: owner}
		}
	}
	return nil
}

func (t *Topology) hasEdge(from, to *Port) bool {
	for _, e := range t.edges {
		if e.From == from && e.To == to {
			return true
		}
	}
	return false
}

// reaches reports whether dst is reachable from src by following edges in
// the mem-side to cpu-side orientation.
func (t *Topology) reaches(src, dst string) bool {
	if src == dst {
		return true
	}

	visited := map[string]bool{src: true}
	frontier := []string{src}

	for len(frontier) > 0 {
		curr := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, e := range t.edges {
			if e.From.Component().ID() != curr {
				continue
			}

			next := e.To.Component().ID()
			if next == dst {
				return true
			}
			if !visited[next] {
				visited[next] = true
				frontier = append(frontier, next)
			}
		}
	}

	return false
}

func (t *Topology) reachesMemController(id string) bool {
	if t.components[id].Kind() == MemoryController {
		return true
	}

	visited := map[string]bool{id: true}
	frontier := []string{id}

	for len(frontier) > 0 {
		curr := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, e := range t.edges {
			if e.From.Component().ID() != curr {
				continue
			}

			next := e.To.Component().ID()
			if t.components[next].Kind() == MemoryController {
				return true
			}
			if !visited[next] {
				visited[next] = true
				frontier = append(frontier, next)
			}
		}
	}

	return false
}
