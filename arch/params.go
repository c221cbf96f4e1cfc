package arch

import "fmt"

// CoreParams describes an in-order pipeline. Widths are instructions per
// cycle, delays are cycles.
type CoreParams struct {
	IssueWidth   int
	CommitWidth  int
	DecodeWidth  int
	ForwardDelay int

	// Branch predictor table sizes. Zero disables branch prediction.
	BTBEntries          int
	GlobalPredictorSize int
}

// Validate implements Parameters.
func (p CoreParams) Validate() error {
	if p.IssueWidth < 1 {
		return fmt.Errorf("issue width must be >= 1, got %d", p.IssueWidth)
	}
	if p.CommitWidth < 1 {
		return fmt.Errorf("commit width must be >= 1, got %d", p.CommitWidth)
	}
	if p.DecodeWidth < 1 {
		return fmt.Errorf("decode width must be >= 1, got %d", p.DecodeWidth)
	}
	if p.ForwardDelay < 1 {
		return fmt.Errorf("forward delay must be >= 1 cycle, got %d",
			p.ForwardDelay)
	}
	if p.BTBEntries < 0 || p.GlobalPredictorSize < 0 {
		return fmt.Errorf("predictor table sizes must not be negative")
	}
	return nil
}

// CacheParams describes a set-associative cache. Latencies are cycles.
type CacheParams struct {
	SizeBytes     int
	Associativity int

	TagLatency      int
	DataLatency     int
	ResponseLatency int

	MSHRs        int
	WriteBuffers int

	// ReplacementPolicy is an opaque label the simulator interprets,
	// such as "LRU".
	ReplacementPolicy string
}

// Validate implements Parameters.
func (p CacheParams) Validate() error {
	if p.SizeBytes <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", p.SizeBytes)
	}
	if !isPowerOfTwo(p.Associativity) {
		return fmt.Errorf("associativity must be a power of two, got %d",
			p.Associativity)
	}
	if p.TagLatency < 1 || p.DataLatency < 1 || p.ResponseLatency < 1 {
		return fmt.Errorf(
			"latencies must be >= 1 cycle, got tag=%d, data=%d, response=%d",
			p.TagLatency, p.DataLatency, p.ResponseLatency)
	}
	if p.MSHRs < 0 || p.WriteBuffers < 0 {
		return fmt.Errorf("MSHR and write buffer counts must not be negative")
	}
	return nil
}

// InterconnectParams describes a crossbar.
type InterconnectParams struct {
	WidthBytes int
	Latency    int
}

// Validate implements Parameters.
func (p InterconnectParams) Validate() error {
	if p.WidthBytes <= 0 {
		return fmt.Errorf("bus width must be positive, got %d", p.WidthBytes)
	}
	if p.Latency < 1 {
		return fmt.Errorf("latency must be >= 1 cycle, got %d", p.Latency)
	}
	return nil
}

// MemControllerParams describes a memory controller and its attached DRAM.
type MemControllerParams struct {
	CapacityBytes int64

	// Protocol is an opaque DRAM type label, such as "DDR3_1600_8x8".
	Protocol string
}

// Validate implements Parameters.
func (p MemControllerParams) Validate() error {
	if p.CapacityBytes <= 0 {
		return fmt.Errorf("memory capacity must be positive, got %d",
			p.CapacityBytes)
	}
	if p.Protocol == "" {
		return fmt.Errorf("memory protocol must not be empty")
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
