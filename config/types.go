// Package config holds the solver settings: puzzle size, strategies to run
// and how to present the results. Values come from DefaultConfig, an
// optional YAML file and command-line overrides, in that order.
package config

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/hanoi/search"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config describes one solver invocation.
type Config struct {
	// Disks is the number of movable disks D.
	Disks int `yaml:"disks" validate:"min=1,max=16"`

	// Pegs is the number of pegs P. The puzzle starts on peg 1 and ends on peg P.
	Pegs int `yaml:"pegs" validate:"min=3,max=8"`

	// Strategies run in order. Names as accepted by search.ParseStrategy's
	// canonical forms.
	Strategies []string `yaml:"strategies" validate:"min=1,dive,oneof=dfs best-first bfs"`

	// MaxExpansions caps each search run; 0 disables the cap.
	MaxExpansions int `yaml:"max_expansions" validate:"min=0"`

	Output   string `yaml:"output" validate:"oneof=text json"`
	ShowPath bool   `yaml:"show_path"`
	Color    string `yaml:"color" validate:"oneof=auto always never"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the reference scenario: five disks on three pegs,
// solved by depth-first and then best-first search, with the full path printed.
func DefaultConfig() Config {
	return Config{
		Disks:         5,
		Pegs:          3,
		Strategies:    []string{search.DepthFirst.String(), search.BestFirst.String()},
		MaxExpansions: 0,
		Output:        OutputText,
		ShowPath:      true,
		Color:         ColorAuto,
		LogLevel:      "warn",
	}
}

// SearchStrategies parses Strategies. Call Validate first; an unknown name
// is reported with search.ErrUnknownStrategy.
func (c Config) SearchStrategies() ([]search.Strategy, error) {
	out := make([]search.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, err := search.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to slog.LevelWarn.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}

	return lvl
}
