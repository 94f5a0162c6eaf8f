package solver

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/pushfold/internal/strategy"
)

const blueprintFileVersion = 1

// Blueprint captures the averaged strategies produced by a solver run so they
// can be rendered or consumed later without re-solving.
type Blueprint struct {
	Version     int             `json:"version"`
	GeneratedAt time.Time       `json:"generated_at"`
	Config      Config          `json:"config"`
	Button      [13][13]float64 `json:"button"`
	BigBlind    [13][13]float64 `json:"big_blind"`
}

// Blueprint materialises the trainer's current averaged strategies.
func (t *Trainer) Blueprint() *Blueprint {
	button, bigBlind := t.AverageStrategies()
	return &Blueprint{
		Version:     blueprintFileVersion,
		GeneratedAt: time.Now().UTC(),
		Config:      t.cfg,
		Button:      button.Cells(),
		BigBlind:    bigBlind.Cells(),
	}
}

// Grids returns the blueprint's strategies as grids.
func (b *Blueprint) Grids() (button, bigBlind *strategy.Grid) {
	return strategy.FromCells(b.Button), strategy.FromCells(b.BigBlind)
}

// Save writes the blueprint as JSON, using a temp file and rename so a
// partial write never clobbers an existing blueprint.
func (b *Blueprint) Save(path string) error {
	if b == nil {
		return errors.New("nil blueprint")
	}
	if path == "" {
		return errors.New("destination path is required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create blueprint dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create blueprint temp: %w", err)
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode blueprint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close blueprint temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename blueprint: %w", err)
	}
	return nil
}

// LoadBlueprint reads a blueprint from disk and checks its version and
// configuration before use.
func LoadBlueprint(path string) (*Blueprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blueprint: %w", err)
	}
	defer f.Close()

	var bp Blueprint
	if err := json.NewDecoder(f).Decode(&bp); err != nil {
		return nil, fmt.Errorf("decode blueprint: %w", err)
	}
	if bp.Version != blueprintFileVersion {
		return nil, fmt.Errorf("unsupported blueprint version %d", bp.Version)
	}
	if err := bp.Config.Validate(); err != nil {
		return nil, fmt.Errorf("blueprint config: %w", err)
	}
	return &bp, nil
}
