// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package display

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/ils/internal/locale"
	"github.com/jeranaias/ils/internal/meta"
)

// =============================================================================
// HELPERS
// =============================================================================

var testLocale = locale.New(locale.Default, time.UTC)

// Friday, 1 March 2024.
var sampleTime = time.Date(2024, 3, 1, 12, 30, 15, 0, time.UTC)

func named(names ...string) []meta.Entry {
	entries := make([]meta.Entry, len(names))
	for i, n := range names {
		entries[i] = meta.Entry{Name: n}
	}
	return entries
}

func u64(v uint64) *uint64 { return &v }

func render(t *testing.T, entries []meta.Entry, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, entries, opts))
	return buf.String()
}

// failWriter accepts okWrites writes and fails every write after that.
type failWriter struct {
	okWrites int
	buf      bytes.Buffer
}

var errSinkClosed = errors.New("sink closed")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.okWrites == 0 {
		return 0, errSinkClosed
	}
	w.okWrites--
	return w.buf.Write(p)
}

type sgrStyler struct{}

func (sgrStyler) Name(e meta.Entry) string {
	return "\x1b[1;34m" + e.Name + "\x1b[0m"
}

// =============================================================================
// EMPTY INPUT
// =============================================================================

func TestRender_Empty(t *testing.T) {
	for _, long := range []bool{false, true} {
		for _, width := range []int{0, 80} {
			out := render(t, nil, Options{Long: long, TermWidth: width})
			assert.Empty(t, out)
		}
	}
}

// =============================================================================
// COMPACT MODE
// =============================================================================

func TestRender_CompactGrid(t *testing.T) {
	entries := named("a", "bb", "ccc", "dddd", "e")

	out := render(t, entries, Options{TermWidth: 10})
	assert.Equal(t, "a   bb\nccc dddd\ne\n", out)

	out = render(t, entries, Options{TermWidth: 20})
	assert.Equal(t, "a bb ccc dddd e\n", out)
}

func TestRender_CompactNoWidthIsOnePerLine(t *testing.T) {
	out := render(t, named("a", "bb", "ccc"), Options{})
	assert.Equal(t, "a\nbb\nccc\n", out)
}

func TestRender_CompactNameWiderThanTerminal(t *testing.T) {
	long := strings.Repeat("x", 30)
	out := render(t, named("a", long, "b"), Options{TermWidth: 10})
	assert.Equal(t, "a\n"+long+"\nb\n", out)
}

func TestRender_CompactStyledNamesUseVisibleWidth(t *testing.T) {
	entries := named("a", "bb", "ccc", "dddd", "e")
	plain := render(t, entries, Options{TermWidth: 10})
	styled := render(t, entries, Options{TermWidth: 10, Styler: sgrStyler{}})

	plainLines := strings.Split(plain, "\n")
	styledLines := strings.Split(styled, "\n")
	require.Len(t, styledLines, len(plainLines))
	for i := range plainLines {
		assert.Equal(t, VisibleWidth(plainLines[i], false), VisibleWidth(styledLines[i], false))
	}
}

func TestRender_CompactWideRunes(t *testing.T) {
	out := render(t, named("日本", "ab", "cd"), Options{TermWidth: 8})
	// 4 + 1 + 2 = 7 fits, adding the third column needs 10.
	assert.Equal(t, "日本 ab\ncd\n", out)
}

func TestRender_CompactNeverExceedsWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("abcdefghij日本語")

	for round := 0; round < 50; round++ {
		names := make([]string, 1+rng.Intn(40))
		for i := range names {
			r := make([]rune, 1+rng.Intn(14))
			for j := range r {
				r[j] = alphabet[rng.Intn(len(alphabet))]
			}
			names[i] = string(r)
		}
		width := 5 + rng.Intn(80)

		out := render(t, named(names...), Options{TermWidth: width})
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

		emitted := 0
		for _, line := range lines {
			fields := strings.Fields(line)
			emitted += len(fields)
			if VisibleWidth(line, false) > width {
				require.Len(t, fields, 1, "over-wide line %q at width %d", line, width)
				assert.Equal(t, line, fields[0])
			}
		}
		assert.Equal(t, len(names), emitted)
	}
}

func TestFitIntoWidth_PrefersMostColumns(t *testing.T) {
	cells := []Cell{NewCell("aa", false), NewCell("bb", false), NewCell("cc", false), NewCell("dd", false)}

	layout, ok := fitIntoWidth(cells, 1, 11)
	require.True(t, ok)
	assert.Equal(t, 4, layout.columns)

	layout, ok = fitIntoWidth(cells, 1, 7)
	require.True(t, ok)
	assert.Equal(t, 2, layout.columns)
	assert.Equal(t, []int{2, 2}, layout.widths)

	_, ok = fitIntoWidth(cells, 1, 1)
	assert.False(t, ok)

	_, ok = fitIntoWidth(nil, 1, 80)
	assert.False(t, ok)
}

// =============================================================================
// LONG MODE
// =============================================================================

func longEntries() []meta.Entry {
	date := meta.NewDate(sampleTime)
	return []meta.Entry{
		{
			Name:                    "bin",
			FileType:                meta.Directory{},
			PermissionsOrAttributes: meta.PermissionsFromMode(0o755),
			Owner:                   &meta.Owner{UID: 0, GID: 0},
			Size:                    u64(4096),
			Date:                    &date,
		},
		{
			Name:                    "notes.txt",
			PermissionsOrAttributes: meta.PermissionsFromMode(0o640),
			Owner:                   &meta.Owner{UID: 1000, GID: 100},
			Size:                    u64(12),
		},
	}
}

func TestRender_Long(t *testing.T) {
	out := render(t, longEntries(), Options{Long: true, TermWidth: 10, Locale: testLocale})

	want := fmt.Sprintf("%-9s %-8s %-4s %-24s %s\n", "rwxr-xr-x", "0:0", "4096", "Fri Mar  1 12:30:15 2024", "bin") +
		fmt.Sprintf("%-9s %-8s %-4s %-24s %s\n", "rw-r-----", "1000:100", "12", "_", "notes.txt")
	assert.Equal(t, want, out)
}

func TestRender_LongPlaceholders(t *testing.T) {
	out := render(t, named("only-name"), Options{Long: true})
	assert.Equal(t, "_ _ _ _ only-name\n", out)
}

func TestRender_LongFieldsPaddedToBatchMax(t *testing.T) {
	out := render(t, longEntries(), Options{Long: true, Locale: testLocale})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	// The name column starts at the same offset on every row.
	first := strings.LastIndex(lines[0], " ")
	second := strings.LastIndex(lines[1], " ")
	assert.Equal(t, first, second)
}

func TestRender_LongHumanSizes(t *testing.T) {
	out := render(t, longEntries()[:1], Options{Long: true, HumanSizes: true, Locale: testLocale})
	assert.Contains(t, out, " 4.0 KiB ")
}

func TestRender_LongStyledNameNotPadded(t *testing.T) {
	out := render(t, longEntries(), Options{Long: true, Locale: testLocale, Styler: sgrStyler{}})
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.True(t, strings.HasSuffix(line, "\x1b[0m"), line)
	}
}

func TestRender_LongDateFallsBackToSecondary(t *testing.T) {
	date := meta.Date{
		Primary:   meta.Timestamp{Sec: 0},
		Secondary: meta.Timestamp{Sec: sampleTime.Unix()},
	}
	out := render(t, []meta.Entry{{Name: "old", Date: &date}}, Options{Long: true, Locale: testLocale})
	assert.Equal(t, "_ _ _ Fri Mar  1 12:30:15 2024 old\n", out)
}

// =============================================================================
// DETERMINISM AND FAILURES
// =============================================================================

func TestRender_Deterministic(t *testing.T) {
	entries := append(longEntries(), named("x", "yy", "zzz")...)
	for _, opts := range []Options{
		{Long: true, Locale: testLocale},
		{TermWidth: 12},
		{},
	} {
		assert.Equal(t, render(t, entries, opts), render(t, entries, opts))
	}
}

func TestRender_WriteFailureStopsOutput(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		stage string
	}{
		{"grid", Options{TermWidth: 3}, "grid"},
		{"lines", Options{}, "lines"},
		{"table", Options{Long: true, Locale: testLocale}, "table"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &failWriter{okWrites: 1}
			err := Render(w, named("a", "b", "c"), tt.opts)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutputWrite)
			assert.ErrorIs(t, err, errSinkClosed)

			var werr *WriteError
			require.True(t, errors.As(err, &werr))
			assert.Equal(t, tt.stage, werr.Stage)

			// The first line stays written.
			assert.Equal(t, 1, strings.Count(w.buf.String(), "\n"))
		})
	}
}
