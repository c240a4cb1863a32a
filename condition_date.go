// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"strconv"
	"time"
)

// dateCmp is the Date family's comparator.
type dateCmp uint8

const (
	dateCmpEquals dateCmp = iota
	dateCmpLessThan
	dateCmpLessThanEquals
)

func dateCmpFn(cmp dateCmp, negated bool) func(a, b time.Time) bool {
	switch cmp {
	case dateCmpEquals:
		if negated {
			return func(a, b time.Time) bool { return !a.Equal(b) }
		}
		return func(a, b time.Time) bool { return a.Equal(b) }
	case dateCmpLessThan:
		if negated {
			return func(a, b time.Time) bool { return !a.Before(b) }
		}
		return func(a, b time.Time) bool { return a.Before(b) }
	default: // dateCmpLessThanEquals
		if negated {
			return func(a, b time.Time) bool { return a.After(b) }
		}
		return func(a, b time.Time) bool { return !a.After(b) }
	}
}

// dateMatch implements the Date family (§4.4.3): V may be a Timestamp or an
// RFC 3339 string; GreaterThan/GreaterThanEquals are encoded by flipping
// the Negated bit of LessThanEquals/LessThan respectively, mirroring
// Numeric (spec §9).
func dateMatch(req Request, v PolicyVersion, allowed StringOrList, value SessionValue, cmp dateCmp, vr variant) (bool, error) {
	if value.IsNull() {
		return vr.ifExists(), nil
	}

	var when time.Time
	if t, ok := value.AsTimestamp(); ok {
		when = t
	} else if s, ok := value.AsString(); ok {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			if cmp == dateCmpEquals {
				return vr.negated(), nil
			}
			return false, nil
		}
		when = parsed.UTC()
	} else {
		return false, nil
	}

	fn := dateCmpFn(cmp, vr.negated())
	for _, el := range allowed.Values() {
		substituted, err := plainSubstituteVersioned(el, req, v)
		if err != nil {
			return false, err
		}
		parsed, ok := parseDateLiteral(substituted)
		if !ok {
			continue
		}
		if fn(when, parsed) {
			return true, nil
		}
	}
	return false, nil
}

// parseDateLiteral parses an allowed-list date element, trying RFC 3339
// first and falling back to a decimal Unix-second count, per §4.4.3.
func parseDateLiteral(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), true
	}
	return time.Time{}, false
}
