// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package meta

import "time"

// =============================================================================
// DATE
// =============================================================================

// Timestamp is a raw on-disk time. HasNsec is false when the source format
// has no sub-second field for it.
type Timestamp struct {
	Sec     int64
	Nsec    uint32
	HasNsec bool
}

// IsEpochSentinel reports whether the timestamp is the zero epoch without a
// sub-second component, which sources use for "never set".
func (ts Timestamp) IsEpochSentinel() bool {
	return ts.Sec == 0 && !ts.HasNsec
}

// Date is the timestamp shown in long listings. Secondary is used when
// Primary is the epoch sentinel.
type Date struct {
	Primary   Timestamp
	Secondary Timestamp
}

// NewDate returns a Date whose primary timestamp is t.
func NewDate(t time.Time) Date {
	return Date{Primary: Timestamp{Sec: t.Unix(), Nsec: uint32(t.Nanosecond()), HasNsec: true}}
}

// Time returns the effective timestamp truncated to whole seconds.
func (d Date) Time() time.Time {
	ts := d.Primary
	if ts.IsEpochSentinel() {
		ts = d.Secondary
	}
	return time.Unix(ts.Sec, 0)
}
