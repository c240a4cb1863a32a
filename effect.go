// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import "fmt"

// Effect is the declared outcome of a matching Statement.
type Effect int

// Effect constants.
const (
	EffectAllow Effect = iota
	EffectDeny
)

var effectStrings = [...]string{"Allow", "Deny"}

func (e Effect) String() string {
	if e >= 0 && int(e) < len(effectStrings) {
		return effectStrings[e]
	}
	return fmt.Sprintf("unknown(%d)", int(e))
}

// MarshalJSON implements json.Marshaler.
func (e Effect) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Effect) UnmarshalJSON(data []byte) error {
	s := string(data)
	s = trimQuotes(s)
	switch s {
	case "Allow":
		*e = EffectAllow
	case "Deny":
		*e = EffectDeny
	default:
		return fmt.Errorf("aspen: invalid effect %q", s)
	}
	return nil
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// Decision is the outcome of evaluating a Policy (or a set of policies)
// against a Request. It forms a monoid with Deny dominating Allow
// dominating DefaultDeny.
type Decision int

// Decision constants.
const (
	DefaultDeny Decision = iota
	Allow
	Deny
)

var decisionStrings = [...]string{"DefaultDeny", "Allow", "Deny"}

func (d Decision) String() string {
	if d >= 0 && int(d) < len(decisionStrings) {
		return decisionStrings[d]
	}
	return fmt.Sprintf("unknown(%d)", int(d))
}

// IsAllowed reports whether the decision grants access.
func (d Decision) IsAllowed() bool {
	return d == Allow
}

// combine merges two decisions per the Deny-dominates-Allow-dominates-
// DefaultDeny dominance rule (spec §4.8).
func combine(a, b Decision) Decision {
	if a == Deny || b == Deny {
		return Deny
	}
	if a == Allow || b == Allow {
		return Allow
	}
	return DefaultDeny
}
