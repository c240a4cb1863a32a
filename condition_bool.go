// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

// boolMatch implements the Bool family (§4.4.4): a single comparator with
// only None/IfExists variants (no Negated form). An empty allowed list
// never matches, since there is nothing to compare against (spec §9).
func boolMatch(req Request, v PolicyVersion, allowed StringOrList, value SessionValue, vr variant) (bool, error) {
	if value.IsNull() {
		return vr.ifExists(), nil
	}
	b, ok := value.AsBool()
	if !ok {
		return false, nil
	}

	for _, el := range allowed.Values() {
		substituted, err := plainSubstituteVersioned(el, req, v)
		if err != nil {
			return false, err
		}
		switch substituted {
		case "true":
			if b {
				return true, nil
			}
		case "false":
			if !b {
				return true, nil
			}
		}
	}
	return false, nil
}
