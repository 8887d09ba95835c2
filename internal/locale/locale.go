// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Default is used when no locale is configured or it cannot be parsed.
var Default = language.AmericanEnglish

// ErrEmpty is returned by Parse for an unset locale variable.
var ErrEmpty = errors.New("locale: empty identifier")

// ParseError reports a locale identifier that could not be parsed.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("locale: cannot parse %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a POSIX style locale value such as "de_DE.UTF-8". Only the
// part before the first '.' is considered.
func Parse(raw string) (language.Tag, error) {
	id, _, _ := strings.Cut(raw, ".")
	if id == "" {
		return language.Und, ErrEmpty
	}
	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return language.Und, &ParseError{Raw: raw, Err: err}
	}
	return tag, nil
}

// Resolve is Parse with the Default fallback. It never fails.
func Resolve(raw string) language.Tag {
	tag, err := Parse(raw)
	if err != nil {
		return Default
	}
	return tag
}

// =============================================================================
// LOCALE VALUE
// =============================================================================

// Locale is a resolved display locale plus the zone dates are shown in.
// The zero value formats in en-US and local time.
type Locale struct {
	Tag      language.Tag
	Location *time.Location
}

// New returns a Locale for tag in loc. A nil loc means time.Local.
func New(tag language.Tag, loc *time.Location) Locale {
	return Locale{Tag: tag, Location: loc}
}

func (l Locale) location() *time.Location {
	if l.Location == nil {
		return time.Local
	}
	return l.Location
}

func (l Locale) base() string {
	if l.Tag == language.Und {
		base, _ := Default.Base()
		return base.String()
	}
	base, _ := l.Tag.Base()
	return base.String()
}
