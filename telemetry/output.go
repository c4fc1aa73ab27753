package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// ConfigWriter persists a configuration as YAML.
type ConfigWriter interface {
	WriteYAML(path string) error
}

// csvFile is an output file whose header is written with the first record.
type csvFile struct {
	f             *os.File
	headerWritten bool
}

func createCSV(dir, name string) (*csvFile, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvFile{f: f}, nil
}

func (c *csvFile) write(records any) error {
	if !c.headerWritten {
		if err := gocsv.Marshal(records, c.f); err != nil {
			return err
		}
		c.headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, c.f)
}

// OutputManager writes run output as CSV files in one directory.
// A nil *OutputManager discards everything.
type OutputManager struct {
	dir    string
	fields *csvFile
	frames *csvFile
	perf   *csvFile
}

// NewOutputManager creates dir and opens the output files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	var err error
	if om.fields, err = createCSV(dir, "field_stats.csv"); err != nil {
		return nil, err
	}
	if om.frames, err = createCSV(dir, "frames.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if om.perf, err = createCSV(dir, "perf.csv"); err != nil {
		om.Close()
		return nil, err
	}
	return om, nil
}

// WriteConfig saves the configuration as config.yaml.
func (om *OutputManager) WriteConfig(cfg ConfigWriter) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFieldStats appends a row to field_stats.csv.
func (om *OutputManager) WriteFieldStats(s FieldStats) error {
	if om == nil {
		return nil
	}
	if err := om.fields.write([]FieldStats{s}); err != nil {
		return fmt.Errorf("writing field stats: %w", err)
	}
	return nil
}

// WriteFrame appends a row to frames.csv.
func (om *OutputManager) WriteFrame(r FrameRecord) error {
	if om == nil {
		return nil
	}
	if err := om.frames.write([]FrameRecord{r}); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// WritePerf appends a row to perf.csv.
func (om *OutputManager) WritePerf(s PerfStats, frame int64) error {
	if om == nil {
		return nil
	}
	if err := om.perf.write([]PerfStatsCSV{s.ToCSV(frame)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, c := range []*csvFile{om.fields, om.frames, om.perf} {
		if c == nil {
			continue
		}
		if err := c.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
