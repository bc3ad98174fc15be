package world

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Database loads and saves a store as a flat record file: one entity per
// line, tagged `kind:record` so variants can be told apart at load time.
type Database struct {
	path string
}

func NewDatabase(path string) *Database {
	return &Database{path: path}
}

// Load reads every record into a fresh store. A malformed line surfaces as
// a FormatError with its line number; nothing is partially loaded.
func (d *Database) Load() (*Store, error) {
	file, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	store := NewStore()
	scanner := bufio.NewScanner(file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, record, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("line %d: %w", lineno, &FormatError{Kind: "database", Reason: "missing kind tag"})
		}
		kind, ok := KindFromString(tag)
		if !ok {
			return nil, fmt.Errorf("line %d: %w", lineno, &FormatError{Kind: "database", Reason: fmt.Sprintf("unknown kind tag %q", tag)})
		}

		o, err := ParseObject(kind, record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		if err := store.Adopt(o); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading database: %w", err)
	}

	return store, nil
}

// Save writes every entity in ref order. The write is atomic: records go
// to a temp file that replaces the database only on success.
func (d *Database) Save(store *Store) error {
	var sb strings.Builder
	var recErr error
	store.ForEach(func(o Object) {
		if recErr != nil {
			return
		}
		record, err := o.Record()
		if err != nil {
			recErr = fmt.Errorf("serializing #%d: %w", o.Base().Id, err)
			return
		}
		fmt.Fprintf(&sb, "%s:%s\n", o.Kind(), record)
	})
	if recErr != nil {
		return recErr
	}

	return atomicWrite(d.path, []byte(sb.String()), 0644)
}

// atomicWrite writes data to a temp file then renames it to the target path.
// This prevents partial or empty files if the process is interrupted.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
