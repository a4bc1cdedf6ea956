package demo

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog is an ordered set of scenarios. Its contents can be swapped wholesale with Replace.
type Catalog struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]Scenario
}

type catalogFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// NewCatalog validates scenarios and indexes them by ID. Duplicate IDs are rejected.
func NewCatalog(scenarios ...Scenario) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Scenario, len(scenarios))}
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidScenario, s.ID)
		}
		c.byID[s.ID] = s
		c.order = append(c.order, s.ID)
	}
	return c, nil
}

// DefaultCatalog holds the built-in scenarios.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(CelticsBulls())
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads a YAML scenario file of the form `scenarios: [...]`.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes YAML scenario data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios defined", ErrInvalidScenario)
	}
	return NewCatalog(file.Scenarios...)
}

// List returns scenarios in definition order.
func (c *Catalog) List() []Scenario {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Scenario, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Get looks up a scenario by ID.
func (c *Catalog) Get(id string) (Scenario, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byID[id]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %s", ErrScenarioNotFound, id)
	}
	return s, nil
}

// Len reports the number of scenarios.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Replace swaps in other's scenarios. Sessions already running keep the scenario they started with.
func (c *Catalog) Replace(other *Catalog) {
	order, byID := other.snapshot()
	c.mu.Lock()
	c.order = order
	c.byID = byID
	c.mu.Unlock()
}

func (c *Catalog) snapshot() ([]string, map[string]Scenario) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	byID := make(map[string]Scenario, len(c.byID))
	for k, v := range c.byID {
		byID[k] = v
	}
	return append([]string(nil), c.order...), byID
}
