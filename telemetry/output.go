package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/noisefield/config"
)

// LayerRecord is one stats.csv row: what was generated and how its
// values came out.
type LayerRecord struct {
	Layer      string  `csv:"layer"`
	Type       string  `csv:"type"`
	Seed       uint32  `csv:"seed"`
	Width      int     `csv:"width"`
	Height     int     `csv:"height"`
	DurationMs float64 `csv:"duration_ms"`
	Min        float64 `csv:"min"`
	Max        float64 `csv:"max"`
	Mean       float64 `csv:"mean"`
	StdDev     float64 `csv:"stddev"`
	P10        float64 `csv:"p10"`
	P50        float64 `csv:"p50"`
	P90        float64 `csv:"p90"`
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	statsFile *os.File

	statsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	statsPath := filepath.Join(dir, "stats.csv")
	f, err := os.Create(statsPath)
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}

	return &OutputManager{dir: dir, statsFile: f}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteLayer appends one layer record to stats.csv.
func (om *OutputManager) WriteLayer(rec LayerRecord) error {
	if om == nil {
		return nil
	}

	records := []LayerRecord{rec}
	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}
	return nil
}

// Close flushes and closes open files.
func (om *OutputManager) Close() error {
	if om == nil || om.statsFile == nil {
		return nil
	}
	return om.statsFile.Close()
}
