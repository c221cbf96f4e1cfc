package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/embedpower/dvsim/analysis"
	"github.com/embedpower/dvsim/power"
)

// readCSVFeed parses a metrics feed with the header
// voltage_volts,frequency_hertz,workload,instructions,elapsed_seconds.
func readCSVFeed(path string) ([]analysis.MetricsRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("reading feed header: %w", err)
	}

	var records []analysis.MetricsRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		record, err := parseFeedRow(row)
		if err != nil {
			return nil, fmt.Errorf("feed line %d: %w", line, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func parseFeedRow(row []string) (analysis.MetricsRecord, error) {
	if len(row) != 5 {
		return analysis.MetricsRecord{},
			fmt.Errorf("expected 5 columns, got %d", len(row))
	}

	voltage, err := strconv.ParseFloat(row[0], 64)
	if err != nil {
		return analysis.MetricsRecord{}, fmt.Errorf("voltage: %w", err)
	}

	freq, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return analysis.MetricsRecord{}, fmt.Errorf("frequency: %w", err)
	}

	instructions, err := strconv.ParseUint(row[3], 10, 64)
	if err != nil {
		return analysis.MetricsRecord{}, fmt.Errorf("instructions: %w", err)
	}

	elapsed, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return analysis.MetricsRecord{}, fmt.Errorf("elapsed seconds: %w", err)
	}

	return analysis.MakeMetricsRecord(
		power.OperatingPoint{
			Voltage: power.Voltage(voltage),
			Freq:    power.Freq(freq),
		},
		analysis.Workload(row[2]),
		instructions,
		elapsed,
	)
}
