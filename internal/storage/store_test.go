package storage

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/atomsim/internal/export"
	"github.com/san-kum/atomsim/internal/scene"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	c := scene.New(scene.CarbonOptions())
	runID, err := st.Save(c, 0.5, 2)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Isotope != "Carbon-12" {
		t.Errorf("expected isotope Carbon-12, got %q", meta.Isotope)
	}
	if len(meta.Electrons) != 6 || meta.Electrons[0] != "1s Electron 1" {
		t.Errorf("unexpected electron labels %v", meta.Electrons)
	}
	if got := meta.Metrics["period_0"]; math.Abs(got-2*math.Pi) > 1e-6 {
		t.Errorf("expected period_0 2π, got %f", got)
	}
	if got := meta.Metrics["period_rel_err_max"]; got > 1e-6 {
		t.Errorf("expected negligible period error, got %g", got)
	}

	samples, err := st.LoadTrajectories(runID)
	if err != nil {
		t.Fatalf("load trajectories failed: %v", err)
	}
	if len(samples) != 5*6 {
		t.Fatalf("expected 30 samples, got %d", len(samples))
	}
	first := samples[0]
	if first.Time != 0 || first.Electron != 0 || first.Position.X() != 3 {
		t.Errorf("unexpected first sample %+v", first)
	}
	last := samples[len(samples)-1]
	if last.Time != 2 || last.Electron != 5 {
		t.Errorf("unexpected last sample %+v", last)
	}

	if _, err := os.Stat(filepath.Join(st.baseDir, runID, snapshotFile)); err != nil {
		t.Errorf("snapshot missing: %v", err)
	}
}

func TestStoreList(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "runs"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list of missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := st.Save(scene.New(scene.CarbonOptions()), 1, 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	// directories without metadata are skipped
	if err := os.Mkdir(filepath.Join(st.baseDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreSave_InvalidSampling(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Save(scene.New(scene.CarbonOptions()), 0, 1)
	if !errors.Is(err, export.ErrInvalidSampling) {
		t.Errorf("expected ErrInvalidSampling, got %v", err)
	}
}

func TestLoadTrajectories_Malformed(t *testing.T) {
	st := New(t.TempDir())
	dir := filepath.Join(st.baseDir, "bad")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	data := "time,electron,label,x,y,z\n0,zero,a,1,2,3\n"
	if err := os.WriteFile(filepath.Join(dir, trajectoriesFile), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := st.LoadTrajectories("bad"); !errors.Is(err, ErrMalformedRow) {
		t.Errorf("expected ErrMalformedRow, got %v", err)
	}
}
