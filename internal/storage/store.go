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

	"github.com/san-kum/emgrid/internal/em"
	"github.com/san-kum/emgrid/internal/field"
)

// Store persists computed runs under a base directory, one directory
// per run holding metadata.json plus one CSV per field.
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
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Shape      []int     `json:"shape"`
	Iterations int       `json:"iterations"`
	WireCount  int       `json:"wire_count"`
	Fields     []string  `json:"fields"`
}

// Scalar field names stored per run. Vector fields are stored one
// component per file.
const (
	FieldVoltage   = "voltage"
	FieldPotential = "potential"
	FieldMagneticZ = "magnetic_z"
	FieldElectricX = "electric_x"
	FieldElectricY = "electric_y"
	FieldFluxX     = "flux_x"
	FieldFluxY     = "flux_y"
)

// Save writes a computed world's fields and returns the run id. The
// world must have been computed; accessor errors propagate.
func (s *Store) Save(name string, world *em.World, iterations int) (string, error) {
	voltage, err := world.WiresVoltage()
	if err != nil {
		return "", err
	}
	potential, err := world.Potential()
	if err != nil {
		return "", err
	}
	electric, err := world.ElectricField()
	if err != nil {
		return "", err
	}
	magnetic, err := world.MagneticField()
	if err != nil {
		return "", err
	}
	flux, err := world.EnergyFlux()
	if err != nil {
		return "", err
	}

	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	w, h := world.Shape()
	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Shape:      []int{w, h},
		Iterations: iterations,
		WireCount:  len(world.Wires()),
		Fields: []string{
			FieldVoltage, FieldPotential, FieldMagneticZ,
			FieldElectricX, FieldElectricY, FieldFluxX, FieldFluxY,
		},
	}

	if err := writeMetadata(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	scalars := map[string]*field.ScalarField{
		FieldVoltage:   voltage,
		FieldPotential: potential,
		FieldMagneticZ: magnetic.Z(),
		FieldElectricX: electric.X(),
		FieldElectricY: electric.Y(),
		FieldFluxX:     flux.X(),
		FieldFluxY:     flux.Y(),
	}
	for name, f := range scalars {
		if err := writeScalarCSV(filepath.Join(runDir, name+".csv"), f); err != nil {
			return "", err
		}
	}
	return runID, nil
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

// Load reads one run's metadata.
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

// LoadField reads one stored scalar field back.
func (s *Store) LoadField(runID, name string) (*field.ScalarField, error) {
	path := filepath.Join(s.baseDir, runID, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("storage: empty field file %s", path)
	}

	// Rows are y, columns are x; see writeScalarCSV.
	h, w := len(records), len(records[0])
	out, err := field.NewScalar(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range records {
		if len(row) != w {
			return nil, fmt.Errorf("storage: ragged row %d in %s", y, path)
		}
		for x, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, err
			}
			out.Set(x, y, v)
		}
	}
	return out, nil
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// writeScalarCSV stores a field with one CSV row per y value and one
// column per x value, so the file reads like the grid seen from above.
func writeScalarCSV(path string, s *field.ScalarField) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	width, height := s.Dims()
	row := make([]string, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			row[x] = strconv.FormatFloat(s.At(x, y), 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
