package repository

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/teamboard/internal/domain/allocation"
	"github.com/okian/teamboard/internal/domain/model"
)

//go:embed roster.yaml
var defaultRoster []byte

// DefaultRoster returns the built-in sample roster.
func DefaultRoster() (model.Roster, error) {
	return DecodeRoster(bytes.NewReader(defaultRoster))
}

// LoadRoster reads a roster YAML file. An empty path yields DefaultRoster.
func LoadRoster(path string) (model.Roster, error) {
	if path == "" {
		return DefaultRoster()
	}
	f, err := os.Open(path)
	if err != nil {
		return model.Roster{}, fmt.Errorf("open roster: %w", err)
	}
	defer func() { _ = f.Close() }()
	return DecodeRoster(f)
}

// DecodeRoster parses and checks a roster document. Unknown fields are
// rejected so typos in hand-written seeds surface early.
func DecodeRoster(r io.Reader) (model.Roster, error) {
	var roster model.Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&roster); err != nil && !errors.Is(err, io.EOF) {
		return model.Roster{}, fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}
	if roster.Tasks == nil {
		roster.Tasks = map[int][]model.ProjectTask{}
	}
	if err := checkRoster(roster); err != nil {
		return model.Roster{}, err
	}
	for i := range roster.Employees {
		e := &roster.Employees[i]
		for j := range e.Allocations {
			e.Allocations[j].EmployeeID = e.ID
		}
		allocation.Apply(e)
	}
	return roster, nil
}

func checkRoster(r model.Roster) error {
	employees := make(map[int]struct{}, len(r.Employees))
	for _, e := range r.Employees {
		if e.ID <= 0 {
			return fmt.Errorf("%w: employee %q has no id", ErrInvalidRoster, e.Name)
		}
		if _, dup := employees[e.ID]; dup {
			return fmt.Errorf("%w: duplicate employee %d", ErrInvalidRoster, e.ID)
		}
		employees[e.ID] = struct{}{}
	}
	projects := make(map[int]struct{}, len(r.Projects))
	for _, p := range r.Projects {
		if _, dup := projects[p.ID]; dup {
			return fmt.Errorf("%w: duplicate project %d", ErrInvalidRoster, p.ID)
		}
		projects[p.ID] = struct{}{}
	}
	for _, e := range r.Employees {
		for _, a := range e.Allocations {
			if _, ok := projects[a.ProjectID]; !ok {
				return fmt.Errorf("%w: employee %d allocated to unknown project %d", ErrInvalidRoster, e.ID, a.ProjectID)
			}
			if a.Percent < 0 || a.Percent > 100 {
				return fmt.Errorf("%w: employee %d has allocation of %d%%", ErrInvalidRoster, e.ID, a.Percent)
			}
		}
	}
	for pid := range r.Tasks {
		if _, ok := projects[pid]; !ok {
			return fmt.Errorf("%w: tasks for unknown project %d", ErrInvalidRoster, pid)
		}
	}
	return nil
}
