// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

// nullMatch implements the Null family (§4.4.8): a single operator with no
// variant or comparator dispatch. It operates directly on any SessionValue
// kind — an empty allowed list never matches, since there is nothing to
// compare against (spec §9).
func nullMatch(req Request, v PolicyVersion, allowed StringOrList, value SessionValue) (bool, error) {
	var allowedBools []bool
	for _, el := range allowed.Values() {
		substituted, err := plainSubstituteVersioned(el, req, v)
		if err != nil {
			return false, err
		}
		switch substituted {
		case "true":
			allowedBools = append(allowedBools, true)
		case "false":
			allowedBools = append(allowedBools, false)
		}
	}

	isNull := value.IsNull()
	for _, b := range allowedBools {
		if b == isNull {
			return true, nil
		}
	}
	return false, nil
}
