package builder

import (
	"fmt"

	"github.com/katalvlaran/antmst/core"
)

// Constructor records one topology into the draft using the resolved
// configuration. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(d *draft, cfg builderConfig) error

// Build resolves bopts and applies cons in order, returning the resulting
// description. Any constructor error is wrapped with "Build: %w".
func Build(bopts []BuilderOption, cons ...Constructor) (core.Description, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return d.desc, nil
}

// BuildGraph is Build followed by core.New.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	desc, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.New(desc)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
