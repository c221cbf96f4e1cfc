package system

import (
	"github.com/rs/xid"

	"github.com/embedpower/dvsim/arch"
	"github.com/embedpower/dvsim/power"
)

// Builder can be used to build a system configuration.
type Builder struct {
	topology *arch.Topology
	domains  []*power.Domain
	model    power.Model
	modelSet bool
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithTopology sets the component graph of the system.
func (b Builder) WithTopology(t *arch.Topology) Builder {
	b.topology = t
	return b
}

// WithPowerDomain adds a power domain to the system.
func (b Builder) WithPowerDomain(d *power.Domain) Builder {
	b.domains = append(b.domains, d)
	return b
}

// WithPowerModel sets the calibrated power model of the system.
func (b Builder) WithPowerModel(m power.Model) Builder {
	b.model = m
	b.modelSet = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.topology == nil {
		panic("a system configuration needs a topology")
	}
	if len(b.domains) == 0 {
		panic("a system configuration needs at least one power domain")
	}
	if !b.modelSet {
		panic("a system configuration needs a power model")
	}
}

// Build validates the topology and assembles the configuration.
func (b Builder) Build() (*Configuration, error) {
	b.parametersMustBeValid()

	if err := b.topology.Validate(); err != nil {
		return nil, err
	}

	return &Configuration{
		id:       xid.New().String(),
		topology: b.topology,
		domains:  b.domains,
		model:    b.model,
	}, nil
}
