// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import "strings"

// stringCmp is the String family's comparator.
type stringCmp uint8

const (
	stringCmpEquals stringCmp = iota
	stringCmpEqualsIgnoreCase
	stringCmpLike
)

// stringMatch implements the String family (§4.4.1): V must be a string.
func stringMatch(req Request, v PolicyVersion, allowed StringOrList, value SessionValue, cmp stringCmp, vr variant) (bool, error) {
	if value.IsNull() {
		return vr.ifExists(), nil
	}
	s, ok := value.AsString()
	if !ok {
		return false, nil
	}

	if cmp == stringCmpLike {
		for _, el := range allowed.Values() {
			src, err := regexMatcherVersioned(el, req, v)
			if err != nil {
				return false, err
			}
			re, err := compileAnchored(src)
			if err != nil {
				continue
			}
			if re.MatchString(s) != vr.negated() {
				return true, nil
			}
		}
		return false, nil
	}

	cmpFn := func(a, b string) bool { return a == b }
	if cmp == stringCmpEqualsIgnoreCase {
		cmpFn = func(a, b string) bool { return strings.EqualFold(a, b) }
	}

	for _, el := range allowed.Values() {
		substituted, err := plainSubstituteVersioned(el, req, v)
		if err != nil {
			return false, err
		}
		if cmpFn(s, substituted) != vr.negated() {
			return true, nil
		}
	}
	return false, nil
}
