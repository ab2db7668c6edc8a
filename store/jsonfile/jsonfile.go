/*
Package jsonfile stores payment slips as a JSON array in a single file.

PURPOSE:
  Final stage of the generator. The output directory is created on Prepare,
  and Save replaces the file with the full slip list.

FILE FORMAT:
  [
    {
      "employee_id": "EMP0001",
      "name": "Worker_1",
      "salary": 12345.68,
      "gender": "Female",
      "employee_level": "A1",
      "payment_date": "2026-10-16"
    },
    ...
  ]

WRITE SEMANTICS:
  Save encodes into a temp file in the same directory and renames it over the
  target, so readers never see a half-written array. An empty or nil slip
  list is written as [].

USAGE:
  store := jsonfile.New("output", "payment_slips.json")
  if err := store.Prepare(ctx); err != nil { ... }
  if err := store.Save(ctx, slips); err != nil { ... }

SEE ALSO:
  - payroll/store.go: SlipStore interface
  - store/memory: In-memory implementation for tests
*/
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/highridge/payslip/payroll"
)

const (
	DefaultDir      = "output"
	DefaultFilename = "payment_slips.json"
)

// Store writes slips to Dir/Filename.
type Store struct {
	Dir      string
	Filename string
}

var _ payroll.SlipStore = (*Store)(nil)

func New(dir, filename string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	if filename == "" {
		filename = DefaultFilename
	}
	return &Store{Dir: dir, Filename: filename}
}

// Path returns the file the slips are written to.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, s.Filename)
}

func (s *Store) Location() string { return s.Path() }

// Prepare creates the output directory if it does not exist.
func (s *Store) Prepare(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("jsonfile: create output dir: %w", err)
	}
	return nil
}

// Save overwrites the output file with slips.
func (s *Store) Save(ctx context.Context, slips []payroll.PaymentSlip) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if slips == nil {
		slips = []payroll.PaymentSlip{}
	}

	data, err := json.MarshalIndent(slips, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: encode slips: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.Dir, s.Filename+".*.tmp")
	if err != nil {
		return fmt.Errorf("jsonfile: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("jsonfile: write slips: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("jsonfile: close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("jsonfile: chmod: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		return fmt.Errorf("jsonfile: replace %s: %w", s.Path(), err)
	}
	return nil
}

// Load reads back a previously saved slip file.
func (s *Store) Load(ctx context.Context) ([]payroll.PaymentSlip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %s: %w", s.Path(), err)
	}
	var slips []payroll.PaymentSlip
	if err := json.Unmarshal(data, &slips); err != nil {
		return nil, fmt.Errorf("jsonfile: decode %s: %w", s.Path(), err)
	}
	return slips, nil
}
