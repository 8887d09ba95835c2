// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// =============================================================================
// DATE FORMATTING
// =============================================================================

// dateTimeFormat is the %c equivalent of one language. Nil name tables keep
// the English abbreviations.
type dateTimeFormat struct {
	pattern string
	days    *[7]string
	months  *[12]string
}

var englishFormat = dateTimeFormat{pattern: "%a %b %e %T %Y"}

var formats = map[string]dateTimeFormat{
	"en": englishFormat,
	"de": {
		pattern: "%a %d %b %Y %T",
		days:    &[7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		months:  &[12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	},
	"fr": {
		pattern: "%a %d %b %Y %T",
		days:    &[7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		months:  &[12]string{"janv.", "févr.", "mars", "avril", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	},
	"es": {
		pattern: "%a %d %b %Y %T",
		days:    &[7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		months:  &[12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	},
	"it": {
		pattern: "%a %d %b %Y %T",
		days:    &[7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		months:  &[12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
	},
	"pt": {
		pattern: "%a %d %b %Y %T",
		days:    &[7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
		months:  &[12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
	},
	"nl": {
		pattern: "%a %d %b %Y %T",
		days:    &[7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
		months:  &[12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
	},
	"ja": {pattern: "%Y年%m月%d日 %H時%M分%S秒"},
	"zh": {pattern: "%Y年%m月%d日 %H时%M分%S秒"},
}

// FormatTime renders t, truncated to whole seconds, in the locale's date and
// time representation.
func (l Locale) FormatTime(t time.Time) string {
	t = t.Truncate(time.Second).In(l.location())

	f, ok := formats[l.base()]
	if !ok {
		f = englishFormat
	}

	pattern := f.pattern
	if f.days != nil || f.months != nil {
		var pairs []string
		if f.days != nil {
			pairs = append(pairs, "%a", f.days[t.Weekday()])
		}
		if f.months != nil {
			pairs = append(pairs, "%b", f.months[t.Month()-1])
		}
		pattern = strings.NewReplacer(pairs...).Replace(pattern)
	}
	return strftime.Format(pattern, t)
}
