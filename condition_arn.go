// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

// arnMatch implements the Arn family (§4.4.7): V must be a string parseable
// as an ARN. ArnEquals and ArnLike are implemented identically — preserved
// verbatim from the reference implementation (spec §9) — so there is no
// separate comparator parameter here.
func arnMatch(req Request, v PolicyVersion, allowed StringOrList, value SessionValue, vr variant) (bool, error) {
	if value.IsNull() {
		return vr.ifExists(), nil
	}
	s, ok := value.AsString()
	if !ok {
		return false, nil
	}

	candidate, err := ParseArn(s)
	if err != nil {
		// Unparseable means it never matches: negated (not-equals) yields
		// true, all other variants yield false.
		return vr.negated(), nil
	}

	for _, el := range allowed.Values() {
		matched, err := arnPatternMatch(el, candidate, req, v)
		if err != nil {
			return false, err
		}
		if matched != vr.negated() {
			return true, nil
		}
	}
	return false, nil
}
