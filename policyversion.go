// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import "fmt"

// PolicyVersion selects the wire-format dialect a Policy was authored
// against. Variable substitution (§4.2) is only active at Version20121017;
// Unspecified and Version20081017 behave identically (no substitution).
type PolicyVersion int

// PolicyVersion constants.
const (
	VersionUnspecified PolicyVersion = iota
	Version20081017
	Version20121017
)

func (v PolicyVersion) String() string {
	switch v {
	case VersionUnspecified:
		return ""
	case Version20081017:
		return "2008-10-17"
	case Version20121017:
		return "2012-10-17"
	default:
		return fmt.Sprintf("unknown(%d)", int(v))
	}
}

// substitutionActive reports whether §4.2 variable substitution runs at
// this version.
func (v PolicyVersion) substitutionActive() bool {
	return v == Version20121017
}

// ParsePolicyVersion parses a policy version literal. The empty string maps
// to VersionUnspecified.
func ParsePolicyVersion(s string) (PolicyVersion, error) {
	switch s {
	case "":
		return VersionUnspecified, nil
	case "2008-10-17":
		return Version20081017, nil
	case "2012-10-17":
		return Version20121017, nil
	default:
		return VersionUnspecified, InvalidPolicyVersion(s)
	}
}

// MarshalJSON implements json.Marshaler. VersionUnspecified marshals as
// JSON null so the field round-trips as absent.
func (v PolicyVersion) MarshalJSON() ([]byte, error) {
	if v == VersionUnspecified {
		return []byte("null"), nil
	}
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *PolicyVersion) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = VersionUnspecified
		return nil
	}
	parsed, err := ParsePolicyVersion(trimQuotes(string(data)))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
