// Package storage archives recordings of a scene configuration: one
// directory per run with metadata, a snapshot and sampled trajectories.
// Runs are listed and loaded for inspection only; nothing is read back
// into a composer, and no application state is persisted.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/atomsim/internal/analysis"
	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/export"
	"github.com/san-kum/atomsim/internal/scene"
)

const (
	metadataFile     = "metadata.json"
	snapshotFile     = "snapshot.json"
	trajectoriesFile = "trajectories.csv"

	// spectrumSamples is the FFT length used for the recorded period metrics.
	spectrumSamples = 1024
)

var ErrMalformedRow = errors.New("storage: malformed trajectory row")

// Store keeps recorded runs as one directory per run under baseDir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Isotope   string             `json:"isotope"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Electrons []string           `json:"electrons"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Sample is one row of a recorded trajectory.
type Sample struct {
	Time     float64
	Electron int
	Label    string
	Position atom.Vec3
}

// Save records the composer's current configuration: metadata with measured
// periods, a snapshot at t=0 and the sampled trajectories.
func (s *Store) Save(c *scene.Composer, dt, duration float64) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%s", strings.ToLower(c.Isotope().Name()), now.Format("20060102-150405.000"))
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Isotope:   c.Isotope().Name(),
		Timestamp: now,
		Dt:        dt,
		Duration:  duration,
		Metrics:   periodMetrics(c),
	}
	for _, o := range c.Electrons() {
		meta.Electrons = append(meta.Electrons, o.Label)
	}

	if err := writeFile(filepath.Join(runDir, trajectoriesFile), func(f *os.File) error {
		return export.WriteTrajectories(f, c, dt, duration)
	}); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(runDir, snapshotFile), func(f *os.File) error {
		return export.WriteSnapshot(f, c, 0)
	}); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(runDir, metadataFile), func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}); err != nil {
		return "", err
	}

	return runID, nil
}

// periodMetrics keeps only finite values; electrons at rest have no period.
func periodMetrics(c *scene.Composer) map[string]float64 {
	metrics := make(map[string]float64)
	worst := 0.0
	for _, r := range analysis.MeasurePeriods(c, analysis.DefaultWindow, spectrumSamples) {
		if math.IsInf(r.Expected, 0) || math.IsInf(r.Measured, 0) {
			continue
		}
		metrics[fmt.Sprintf("period_%d", r.Index)] = r.Measured
		worst = math.Max(worst, r.RelError())
	}
	metrics["period_rel_err_max"] = worst
	return metrics
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrajectories(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, trajectoriesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		smp, err := parseSample(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

func parseSample(record []string) (Sample, error) {
	if len(record) != 6 {
		return Sample{}, ErrMalformedRow
	}
	var nums [4]float64
	for i, field := range []string{record[0], record[3], record[4], record[5]} {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Sample{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		nums[i] = v
	}
	idx, err := strconv.Atoi(record[1])
	if err != nil {
		return Sample{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	return Sample{
		Time:     nums[0],
		Electron: idx,
		Label:    record[2],
		Position: atom.V(nums[1], nums[2], nums[3]),
	}, nil
}
