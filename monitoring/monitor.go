// Package monitoring exposes an analysis engine and its system
// configuration over HTTP, so external reporting tools can pull summaries
// as JSON.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/embedpower/dvsim/analysis"
	"github.com/embedpower/dvsim/system"
)

// Monitor turns an analysis run into a server that external tools can pull
// results from.
type Monitor struct {
	engine     *analysis.Engine
	config     *system.Configuration
	portNumber int
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterEngine registers the analysis engine to serve results from.
func (m *Monitor) RegisterEngine(e *analysis.Engine) {
	m.engine = e
}

// RegisterConfiguration registers the system configuration to describe.
func (m *Monitor) RegisterConfiguration(c *system.Configuration) {
	m.config = c
}

// Router returns the HTTP routes of the monitor.
func (m *Monitor) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/summary", m.serveSummary).Methods("GET")
	r.HandleFunc("/api/dvfstable", m.serveTable).Methods("GET")
	r.HandleFunc("/api/topology", m.serveTopology).Methods("GET")

	return r
}

// StartServer starts the monitoring server in the background and prints its
// address to stderr.
func (m *Monitor) StartServer() {
	listener, err := net.Listen("tcp",
		net.JoinHostPort("localhost", strconv.Itoa(m.portNumber)))
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(os.Stderr, "Monitoring server started at http://%s\n",
		listener.Addr().String())

	go func() {
		err := http.Serve(listener, m.Router())
		if err != nil {
			panic(err)
		}
	}()
}

func (m *Monitor) serveSummary(w http.ResponseWriter, r *http.Request) {
	criterion := analysis.MaxEfficiency
	if r.URL.Query().Get("criterion") == "min_energy_per_instruction" {
		criterion = analysis.MinEnergyPerInstruction
	}

	summary, err := m.engine.Summarize(criterion)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	type pointJSON struct {
		VoltageVolts         float64 `json:"voltage_volts"`
		FrequencyHertz       float64 `json:"frequency_hertz"`
		Records              int     `json:"records"`
		IPC                  float64 `json:"ipc"`
		TotalPowerWatts      float64 `json:"total_power_watts"`
		EnergyPerInstruction float64 `json:"energy_per_instruction"`
		Efficiency           float64 `json:"efficiency"`
		Optimum              bool    `json:"optimum"`
	}
	type summaryJSON struct {
		Criterion string      `json:"criterion"`
		PerPoint  []pointJSON `json:"per_point"`
	}

	out := summaryJSON{Criterion: summary.Criterion.String()}
	for _, p := range summary.PerPoint {
		out.PerPoint = append(out.PerPoint, pointJSON{
			VoltageVolts:         float64(p.Point.Voltage),
			FrequencyHertz:       float64(p.Point.Freq),
			Records:              p.Records,
			IPC:                  p.IPC,
			TotalPowerWatts:      p.TotalPower,
			EnergyPerInstruction: p.EnergyPerInstruction,
			Efficiency:           p.Efficiency,
			Optimum:              p.Point == summary.Optimum,
		})
	}

	m.writeJSON(w, out)
}

func (m *Monitor) serveTable(w http.ResponseWriter, _ *http.Request) {
	type pointJSON struct {
		VoltageVolts   float64 `json:"voltage_volts"`
		FrequencyHertz float64 `json:"frequency_hertz"`
		Current        bool    `json:"current"`
	}

	table := make(map[string][]pointJSON)
	for _, d := range m.config.Domains() {
		points := []pointJSON{}
		for _, p := range d.Table().Points() {
			points = append(points, pointJSON{
				VoltageVolts:   float64(p.Voltage),
				FrequencyHertz: float64(p.Freq),
				Current:        p == d.Current(),
			})
		}
		table[d.Name()] = points
	}

	m.writeJSON(w, table)
}

func (m *Monitor) serveTopology(w http.ResponseWriter, _ *http.Request) {
	type componentJSON struct {
		ID   string `json:"id"`
		Kind string `json:"kind"`
	}
	type edgeJSON struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	type topologyJSON struct {
		Name       string          `json:"name"`
		Components []componentJSON `json:"components"`
		Edges      []edgeJSON      `json:"edges"`
	}

	t := m.config.Topology()
	out := topologyJSON{Name: t.Name()}
	for _, c := range t.Components() {
		out.Components = append(out.Components, componentJSON{
			ID:   c.ID(),
			Kind: c.Kind().String(),
		})
	}
	for _, e := range t.Edges() {
		out.Edges = append(out.Edges, edgeJSON{
			From: e.From.Name(),
			To:   e.To.Name(),
		})
	}

	m.writeJSON(w, out)
}

func (m *Monitor) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
