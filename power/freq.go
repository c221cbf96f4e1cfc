// Package power models voltage-frequency operating points, validated DVFS
// tables, clock/power domains, and the analytic power model of the system.
package power

import (
	"fmt"
	"log"
	"math"
)

// Freq defines the type of frequency.
type Freq float64

// Defines the unit of frequency.
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time in seconds between two consecutive ticks.
func (f Freq) Period() float64 {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}
	return 1.0 / float64(f)
}

// Cycles converts an elapsed time in seconds to the number of cycles passed.
func (f Freq) Cycles(seconds float64) uint64 {
	if math.IsNaN(seconds) {
		log.Panic("invalid time")
	}
	return uint64(math.Round(seconds * float64(f)))
}

func (f Freq) String() string {
	switch {
	case f >= GHz:
		return fmt.Sprintf("%vGHz", float64(f/GHz))
	case f >= MHz:
		return fmt.Sprintf("%vMHz", float64(f/MHz))
	case f >= KHz:
		return fmt.Sprintf("%vKHz", float64(f/KHz))
	default:
		return fmt.Sprintf("%vHz", float64(f))
	}
}

// Voltage defines the type of supply voltage.
type Voltage float64

// Defines the unit of voltage.
const (
	V  Voltage = 1
	MV Voltage = 1e-3
)

func (v Voltage) String() string {
	return fmt.Sprintf("%vV", float64(v))
}
