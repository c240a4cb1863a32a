// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import "strconv"

// numericCmp is the Numeric family's comparator.
type numericCmp uint8

const (
	numericCmpEquals numericCmp = iota
	numericCmpLessThan
	numericCmpLessThanEquals
)

func numericCmpFn(cmp numericCmp, negated bool) func(a, b int64) bool {
	switch cmp {
	case numericCmpEquals:
		if negated {
			return func(a, b int64) bool { return a != b }
		}
		return func(a, b int64) bool { return a == b }
	case numericCmpLessThan:
		if negated {
			return func(a, b int64) bool { return a >= b }
		}
		return func(a, b int64) bool { return a < b }
	default: // numericCmpLessThanEquals
		if negated {
			return func(a, b int64) bool { return a > b }
		}
		return func(a, b int64) bool { return a <= b }
	}
}

// numericMatch implements the Numeric family (§4.4.2): V must be an
// integer; GreaterThan/GreaterThanEquals are not independent comparators —
// NumericGreaterThan is LessThanEquals with the Negated bit flipped and
// NumericGreaterThanEquals is LessThan with the Negated bit flipped (spec
// §9's preserved encoding), which is why this function only ever sees
// Equals/LessThan/LessThanEquals.
func numericMatch(req Request, v PolicyVersion, allowed StringOrList, value SessionValue, cmp numericCmp, vr variant) (bool, error) {
	if value.IsNull() {
		return vr.ifExists(), nil
	}
	n, ok := value.AsInteger()
	if !ok {
		return false, nil
	}

	fn := numericCmpFn(cmp, vr.negated())
	for _, el := range allowed.Values() {
		substituted, err := plainSubstituteVersioned(el, req, v)
		if err != nil {
			return false, err
		}
		parsed, err := strconv.ParseInt(substituted, 10, 64)
		if err != nil {
			continue
		}
		if fn(n, parsed) {
			return true, nil
		}
	}
	return false, nil
}
