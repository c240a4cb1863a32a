// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import "encoding/json"

// StringOrList is a JSON field that may be encoded as either a single string
// or an array of strings. It remembers which shape it was parsed from (or
// constructed with) so MarshalJSON round-trips the original shape.
type StringOrList struct {
	values   []string
	wasArray bool
}

// NewScalar builds a StringOrList that marshals as a single string.
func NewScalar(v string) StringOrList {
	return StringOrList{values: []string{v}, wasArray: false}
}

// NewList builds a StringOrList that marshals as an array, even if it holds
// a single element.
func NewList(vs ...string) StringOrList {
	return StringOrList{values: append([]string(nil), vs...), wasArray: true}
}

// Values returns the underlying elements in document order.
func (s StringOrList) Values() []string {
	return s.values
}

// Len returns the number of elements.
func (s StringOrList) Len() int {
	return len(s.values)
}

// MarshalJSON implements json.Marshaler, preserving the original shape.
func (s StringOrList) MarshalJSON() ([]byte, error) {
	if !s.wasArray && len(s.values) == 1 {
		return json.Marshal(s.values[0])
	}
	if s.values == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s.values)
}

// UnmarshalJSON implements json.Unmarshaler, accepting either a string or an
// array of strings and recording which shape was seen.
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var scalar string
	if err := json.Unmarshal(data, &scalar); err == nil {
		s.values = []string{scalar}
		s.wasArray = false
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	s.values = list
	s.wasArray = true
	return nil
}
