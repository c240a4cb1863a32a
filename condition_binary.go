// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import "encoding/base64"

// binaryMatch implements the Binary family (§4.4.5): a single comparator
// with only None/IfExists variants (no Negated form), comparing raw bytes.
// V may be Binary or String (treated as its raw byte form).
func binaryMatch(allowed StringOrList, value SessionValue, vr variant) (bool, error) {
	if value.IsNull() {
		return vr.ifExists(), nil
	}

	var want []byte
	if b, ok := value.AsBinary(); ok {
		want = b
	} else if s, ok := value.AsString(); ok {
		want = []byte(s)
	} else {
		return false, nil
	}

	for _, el := range allowed.Values() {
		decoded, err := base64.StdEncoding.DecodeString(el)
		if err != nil {
			continue
		}
		if string(decoded) == string(want) {
			return true, nil
		}
	}
	return false, nil
}
