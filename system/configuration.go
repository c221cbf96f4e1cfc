// Package system composes a topology, power domains, and a power model into
// one validated system configuration, the artifact an external simulator
// consumes.
package system

import (
	"github.com/embedpower/dvsim/arch"
	"github.com/embedpower/dvsim/power"
)

// A Configuration is a fully validated system description. Build it with the
// Builder; a Configuration is never half-valid.
type Configuration struct {
	id       string
	topology *arch.Topology
	domains  []*power.Domain
	model    power.Model
}

// ID returns the unique identifier of the configuration.
func (c *Configuration) ID() string {
	return c.id
}

// Topology returns the component graph of the system.
func (c *Configuration) Topology() *arch.Topology {
	return c.topology
}

// Domains returns the power domains of the system.
func (c *Configuration) Domains() []*power.Domain {
	domains := make([]*power.Domain, len(c.domains))
	copy(domains, c.domains)
	return domains
}

// Domain looks a power domain up by its clock source name.
func (c *Configuration) Domain(name string) (*power.Domain, bool) {
	for _, d := range c.domains {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

// PowerModel returns the calibrated power model of the system.
func (c *Configuration) PowerModel() power.Model {
	return c.model
}
