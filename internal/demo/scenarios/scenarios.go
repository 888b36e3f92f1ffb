// Package scenarios contains built-in demo scenarios for chatter.
package scenarios

import (
	"github.com/zhubert/chatter/internal/demo"
	perrors "github.com/zhubert/chatter/internal/errors"
)

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Scrollback,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Lookup is Get with a not-found error for command-line callers.
func Lookup(name string) (*demo.Scenario, error) {
	if s := Get(name); s != nil {
		return s, nil
	}
	return nil, perrors.ScenarioNotFound(name)
}
