package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/san-kum/coreforge/internal/contact"
)

const outboxFile = "outbox.json"

// Outbox keeps every contact submission outcome in one JSON array. The GUI
// submits from a goroutine, so appends are serialised.
type Outbox struct {
	mu   sync.Mutex
	path string
}

func (s *Store) Outbox() *Outbox {
	return &Outbox{path: filepath.Join(s.baseDir, outboxFile)}
}

func (o *Outbox) Append(r contact.Result) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	all, err := o.read()
	if err != nil {
		return err
	}
	all = append(all, r)

	if err := os.MkdirAll(filepath.Dir(o.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	tmp := o.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, o.path)
}

func (o *Outbox) List() ([]contact.Result, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.read()
}

func (o *Outbox) read() ([]contact.Result, error) {
	data, err := os.ReadFile(o.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []contact.Result{}, nil
		}
		return nil, err
	}
	var all []contact.Result
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	return all, nil
}
