package notion

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"
)

// LocalArchive is the fallback store: one JSON object per line, each the
// archived record plus "kind" and "archived_at".
type LocalArchive struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewLocalArchive creates an archive backed by path. The file is created on
// first Save.
func NewLocalArchive(path string) *LocalArchive {
	return &LocalArchive{path: path, now: time.Now}
}

// Path returns the backing file.
func (a *LocalArchive) Path() string { return a.path }

// Save appends one record.
func (a *LocalArchive) Save(_ context.Context, kind string, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode archive record: %w", err)
	}
	entry := map[string]any{}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return fmt.Errorf("archive record must be an object: %w", err)
	}
	entry["kind"] = kind
	entry["archived_at"] = a.now().UTC().Format(time.RFC3339)
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode archive entry: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	f, err := os.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open local archive: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("write local archive: %w", err)
	}
	return f.Close()
}

// List returns every archived entry in insertion order. A missing file is an
// empty archive.
func (a *LocalArchive) List(_ context.Context) ([]map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := os.Open(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open local archive: %w", err)
	}
	defer func() { _ = f.Close() }()

	out := []map[string]any{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			return nil, fmt.Errorf("decode local archive: %w", err)
		}
		out = append(out, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read local archive: %w", err)
	}
	return out, nil
}
