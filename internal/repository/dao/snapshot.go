package dao

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Snapshot records. One self-contained Customer per line of the
// snapshot file; tickets reference their match by derived id, invoices
// reference their restaurant by name and embed full product copies so
// purchase-time state survives independently of the live catalog.

type Customer struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Tickets []Ticket `json:"tickets"`
}

type Ticket struct {
	Class     string    `json:"class"`
	Match     string    `json:"match"`
	Seat      string    `json:"seat"`
	Code      string    `json:"code"`
	Validated bool      `json:"validated"`
	Invoices  []Invoice `json:"invoices"`
}

type Invoice struct {
	Restaurant string    `json:"restaurant"`
	Products   []Product `json:"products"`
}

type Product struct {
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Attribute string  `json:"attribute"`
}

type SnapshotDAO struct {
	path string
}

func NewSnapshotDAO(path string) *SnapshotDAO {
	return &SnapshotDAO{path: path}
}

// ReadAll loads every customer record from the snapshot file. A missing
// file means a fresh session, not an error. Malformed lines are skipped
// loudly; losing them silently would be worse than losing them visibly.
func (d *SnapshotDAO) ReadAll(ctx context.Context) ([]Customer, error) {
	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("os.Open -> %w", err)
	}
	defer f.Close()

	var records []Customer
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec Customer
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			zap.L().Error("snapshot: skipping malformed record",
				zap.String("path", d.path),
				zap.Int("line", line),
				zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err -> %w", err)
	}

	return records, nil
}

// WriteAll replaces the snapshot with the given records. The write goes
// through a temp file and a rename so a crash mid-save cannot leave a
// half-written snapshot behind.
func (d *SnapshotDAO) WriteAll(ctx context.Context, records []Customer) error {
	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll -> %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), "customers-*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp -> %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			tmp.Close()
			return fmt.Errorf("json.Marshal -> %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			tmp.Close()
			return fmt.Errorf("w.Write -> %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("w.Flush -> %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close -> %w", err)
	}

	if err := os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("os.Rename -> %w", err)
	}
	return nil
}
