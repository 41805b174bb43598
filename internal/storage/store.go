package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"chimera/internal/kuramoto"
	"chimera/internal/sim"
	"chimera/internal/synchrony"
)

// Store writes run artifacts under a base directory: one subdirectory per
// run holding metadata.json, synchrony.csv and phases.csv.
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
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Params    kuramoto.Params `json:"params"`
	Scheme    string          `json:"scheme"`
	Seed      int64           `json:"seed"`
	Stats     synchrony.Stats `json:"stats"`
}

// Save persists one run and returns its ID.
func (s *Store) Save(result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Params:    result.Params,
		Scheme:    result.Scheme.String(),
		Seed:      result.Seed,
		Stats:     result.Stats,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeSynchrony(runDir, result); err != nil {
		return "", err
	}
	if err := s.writePhases(runDir, result); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeSynchrony(runDir string, result *sim.Result) error {
	f, err := os.Create(filepath.Join(runDir, "synchrony.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"window"}
	for c := 0; c < result.Params.N1; c++ {
		header = append(header, fmt.Sprintf("r%d", c))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, row := range result.Synchrony {
		rec := []string{strconv.Itoa(i)}
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func (s *Store) writePhases(runDir string, result *sim.Result) error {
	f, err := os.Create(filepath.Join(runDir, "phases.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if len(result.Phases) == 0 {
		return nil
	}

	header := []string{"step"}
	for i := range result.Phases[0] {
		header = append(header, fmt.Sprintf("theta%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for t, row := range result.Phases {
		rec := []string{strconv.Itoa(t)}
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// List returns all run IDs, most recent last.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Load reads a run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSynchrony reads a run's downsampled synchrony series.
func (s *Store) LoadSynchrony(runID string) ([][]float64, error) {
	return s.loadCSV(filepath.Join(s.baseDir, runID, "synchrony.csv"))
}

// LoadPhases reads a run's full phase history.
func (s *Store) LoadPhases(runID string) ([][]float64, error) {
	return s.loadCSV(filepath.Join(s.baseDir, runID, "phases.csv"))
}

func (s *Store) loadCSV(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	rows := make([][]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]float64, 0, len(rec)-1)
		for _, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("malformed value %q: %w", field, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
