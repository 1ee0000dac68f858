// Package catalog loads the activity candidate pool the planner draws from.
// The pool is an ordered, versioned YAML document. A default pool is compiled
// into the binary and can be replaced by a file at startup.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wanderplan/itinerary/internal/domain"
)

//go:embed default_pool.yaml
var defaultPool []byte

// Pool is a versioned, ordered list of candidate activities.
// Order matters: the planner rotates through it by position.
type Pool struct {
	Version    string            `yaml:"version"`
	Activities []domain.Activity `yaml:"activities"`
}

// Default returns the pool compiled into the binary.
func Default() (Pool, error) {
	p, err := Parse(defaultPool)
	if err != nil {
		return Pool{}, fmt.Errorf("catalog.Default: %w", err)
	}
	return p, nil
}

// Load reads a pool from path, or returns Default when path is empty.
func Load(path string) (Pool, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Pool{}, fmt.Errorf("catalog.Load: %w", err)
	}
	p, err := Parse(raw)
	if err != nil {
		return Pool{}, fmt.Errorf("catalog.Load %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML pool document.
func Parse(raw []byte) (Pool, error) {
	var p Pool
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Pool{}, fmt.Errorf("decode pool: %w", err)
	}
	if err := p.validate(); err != nil {
		return Pool{}, err
	}
	return p, nil
}

func (p Pool) validate() error {
	if strings.TrimSpace(p.Version) == "" {
		return fmt.Errorf("%w: pool version is required", domain.ErrValidation)
	}
	if len(p.Activities) == 0 {
		return fmt.Errorf("%w: pool has no activities", domain.ErrValidation)
	}
	for i, a := range p.Activities {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("%w: activity %d has no name", domain.ErrValidation, i)
		}
	}
	return nil
}
