// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument parsing for the ils command line.

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser splits raw arguments into flags and positional arguments.
// It handles:
//   - Long flags: --flag, --flag value, --flag=value
//   - Short flags: -l, combined as -la
//   - "--" ending flag parsing
//
// Only flags named in valueFlags take a value; every other flag is boolean,
// so "ils -l /tmp" never reads /tmp as the value of -l.
type ArgParser struct {
	flags      map[string][]string // value flags, repeatable
	boolFlags  map[string]bool
	positional []string
	raw        []string
}

// NewArgParser parses raw. valueFlags lists the long names that take a value.
func NewArgParser(raw []string, valueFlags ...string) (*ArgParser, error) {
	takesValue := make(map[string]bool, len(valueFlags))
	for _, name := range valueFlags {
		takesValue[name] = true
	}

	p := &ArgParser{
		flags:      make(map[string][]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
		raw:        raw,
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		switch {
		case arg == "--":
			p.positional = append(p.positional, raw[i+1:]...)
			return p, nil

		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			if !takesValue[name] {
				if hasValue {
					return nil, &UsageError{Message: fmt.Sprintf("flag --%s does not take a value", name)}
				}
				p.boolFlags[name] = true
				continue
			}
			if !hasValue {
				if i+1 >= len(raw) {
					return nil, &UsageError{Message: fmt.Sprintf("flag --%s requires a value", name)}
				}
				i++
				value = raw[i]
			}
			p.flags[name] = append(p.flags[name], value)

		case strings.HasPrefix(arg, "-") && arg != "-":
			for _, ch := range arg[1:] {
				p.boolFlags[string(ch)] = true
			}

		default:
			p.positional = append(p.positional, arg)
		}
	}

	return p, nil
}

// Flag returns the last value given for a value flag.
func (p *ArgParser) Flag(name string) string {
	values := p.flags[name]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

// Flags returns every value given for a repeatable value flag.
func (p *ArgParser) Flags(name string) []string {
	return p.flags[name]
}

// FlagInt returns a value flag as an integer. ok is false when absent.
func (p *ArgParser) FlagInt(name string) (value int, ok bool, err error) {
	s := p.Flag(name)
	if s == "" {
		return 0, false, nil
	}
	value, err = strconv.Atoi(s)
	if err != nil {
		return 0, false, &UsageError{Message: fmt.Sprintf("flag --%s must be an integer, got %q", name, s)}
	}
	return value, true, nil
}

// BoolFlag reports whether any of the given names was set.
func (p *ArgParser) BoolFlag(names ...string) bool {
	for _, name := range names {
		if p.boolFlags[name] {
			return true
		}
	}
	return false
}

// Positional returns all positional arguments.
func (p *ArgParser) Positional() []string {
	return p.positional
}

// Unknown returns the boolean flags not in known, sorted as given in raw.
func (p *ArgParser) Unknown(known ...string) []string {
	allowed := make(map[string]bool, len(known))
	for _, k := range known {
		allowed[k] = true
	}

	var unknown []string
	seen := make(map[string]bool)
	for name := range p.boolFlags {
		if !allowed[name] && !seen[name] {
			seen[name] = true
			unknown = append(unknown, name)
		}
	}
	sortByRawOrder(unknown, p.raw)
	return unknown
}

// sortByRawOrder orders names by their first appearance in raw so error
// messages are stable.
func sortByRawOrder(names []string, raw []string) {
	pos := func(name string) int {
		for i, a := range raw {
			if a == "--"+name || (len(name) == 1 && strings.HasPrefix(a, "-") && !strings.HasPrefix(a, "--") && strings.Contains(a[1:], name)) {
				return i
			}
		}
		return len(raw)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && pos(names[j]) < pos(names[j-1]); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
