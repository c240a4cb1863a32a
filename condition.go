// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"encoding/json"
	"sort"
)

// conditionFamily identifies one of the eight condition operator families.
type conditionFamily uint8

const (
	familyString conditionFamily = iota
	familyNumeric
	familyDate
	familyBool
	familyBinary
	familyIPAddress
	familyArn
	familyNull
)

// ConditionOp is a single condition operator: a family, a family-specific
// comparator index, and a variant flag. The ~53 named operators are the
// Cartesian product of (family, comparator, variant) minus the
// combinations each family disallows (Binary/Bool/Null have no Negated
// form); see spec §4.4 and §9 — represented as a tagged variant routed
// through a small per-family dispatch table rather than a 53-armed switch.
type ConditionOp struct {
	family conditionFamily
	cmp    uint8
	v      variant
}

var stringDisplayNames = [12]string{
	"StringEquals", "StringEqualsIfExists", "StringNotEquals", "StringNotEqualsIfExists",
	"StringEqualsIgnoreCase", "StringEqualsIgnoreCaseIfExists", "StringNotEqualsIgnoreCase", "StringNotEqualsIgnoreCaseIfExists",
	"StringLike", "StringLikeIfExists", "StringNotLike", "StringNotLikeIfExists",
}

var numericDisplayNames = [12]string{
	"NumericEquals", "NumericEqualsIfExists", "NumericNotEquals", "NumericNotEqualsIfExists",
	"NumericLessThan", "NumericLessThanIfExists", "NumericGreaterThanEquals", "NumericGreaterThanEqualsIfExists",
	"NumericLessThanEquals", "NumericLessThanEqualsIfExists", "NumericGreaterThan", "NumericGreaterThanIfExists",
}

var dateDisplayNames = [12]string{
	"DateEquals", "DateEqualsIfExists", "DateNotEquals", "DateNotEqualsIfExists",
	"DateLessThan", "DateLessThanIfExists", "DateGreaterThanEquals", "DateGreaterThanEqualsIfExists",
	"DateLessThanEquals", "DateLessThanEqualsIfExists", "DateGreaterThan", "DateGreaterThanIfExists",
}

var boolDisplayNames = [2]string{"Bool", "BoolIfExists"}
var binaryDisplayNames = [2]string{"BinaryEquals", "BinaryEqualsIfExists"}
var ipAddressDisplayNames = [4]string{"IpAddress", "IpAddressIfExists", "NotIpAddress", "NotIpAddressIfExists"}
var arnDisplayNames = [8]string{
	"ArnEquals", "ArnEqualsIfExists", "ArnNotEquals", "ArnNotEqualsIfExists",
	"ArnLike", "ArnLikeIfExists", "ArnNotLike", "ArnNotLikeIfExists",
}

const nullDisplayName = "Null"

// String returns the operator's canonical display name, the same name used
// for JSON (de)serialization.
func (op ConditionOp) String() string {
	idx := int(op.cmp)*4 + op.v.asIndex()
	switch op.family {
	case familyString:
		return stringDisplayNames[idx]
	case familyNumeric:
		return numericDisplayNames[idx]
	case familyDate:
		return dateDisplayNames[idx]
	case familyBool:
		return boolDisplayNames[op.v.asIndex()]
	case familyBinary:
		return binaryDisplayNames[op.v.asIndex()]
	case familyIPAddress:
		return ipAddressDisplayNames[op.v.asIndex()]
	case familyArn:
		return arnDisplayNames[idx]
	case familyNull:
		return nullDisplayName
	default:
		return "unknown"
	}
}

// conditionOpTable is the flat name -> operator lookup used by
// ParseConditionOp; built once from the display-name tables above so the
// two never drift apart.
var conditionOpTable = buildConditionOpTable()

func buildConditionOpTable() map[string]ConditionOp {
	t := make(map[string]ConditionOp, 53)
	for i, name := range stringDisplayNames {
		t[name] = ConditionOp{family: familyString, cmp: uint8(i / 4), v: variant(i % 4)}
	}
	for i, name := range numericDisplayNames {
		t[name] = ConditionOp{family: familyNumeric, cmp: uint8(i / 4), v: variant(i % 4)}
	}
	for i, name := range dateDisplayNames {
		t[name] = ConditionOp{family: familyDate, cmp: uint8(i / 4), v: variant(i % 4)}
	}
	for i, name := range boolDisplayNames {
		t[name] = ConditionOp{family: familyBool, v: variant(i)}
	}
	for i, name := range binaryDisplayNames {
		t[name] = ConditionOp{family: familyBinary, v: variant(i)}
	}
	for i, name := range ipAddressDisplayNames {
		t[name] = ConditionOp{family: familyIPAddress, v: variant(i)}
	}
	for i, name := range arnDisplayNames {
		t[name] = ConditionOp{family: familyArn, cmp: uint8(i / 4), v: variant(i % 4)}
	}
	t[nullDisplayName] = ConditionOp{family: familyNull}
	return t
}

// ParseConditionOp looks up a condition operator by its canonical display
// name (e.g. "StringEquals", "NumericGreaterThanIfExists", "Null").
func ParseConditionOp(name string) (ConditionOp, error) {
	op, ok := conditionOpTable[name]
	if !ok {
		return ConditionOp{}, InvalidConditionOperator(name)
	}
	return op, nil
}

// MarshalJSON implements json.Marshaler.
func (op ConditionOp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + op.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (op *ConditionOp) UnmarshalJSON(data []byte) error {
	parsed, err := ParseConditionOp(trimQuotes(string(data)))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

// conditionEntry is one (operator, block) pair of a Condition.
type conditionEntry struct {
	op    ConditionOp
	block map[string]StringOrList
}

// Condition is an ordered mapping from ConditionOp to a mapping from
// session-key to a list of allowed-value expressions. Per spec §9 only
// iterate/get/insert are exposed — callers do not need the rest of an
// ordered-map API.
type Condition struct {
	entries []conditionEntry
}

// NewCondition returns an empty Condition.
func NewCondition() *Condition {
	return &Condition{}
}

// Insert adds (or replaces) the block for op.
func (c *Condition) Insert(op ConditionOp, block map[string]StringOrList) {
	for i := range c.entries {
		if c.entries[i].op == op {
			c.entries[i].block = block
			return
		}
	}
	c.entries = append(c.entries, conditionEntry{op: op, block: block})
}

// Get returns the block registered for op, if any.
func (c *Condition) Get(op ConditionOp) (map[string]StringOrList, bool) {
	for _, e := range c.entries {
		if e.op == op {
			return e.block, true
		}
	}
	return nil, false
}

// Iterate calls fn for each (operator, block) pair in the total order
// described by spec §5: the lexicographic order of each operator's
// canonical display name, so evaluation is deterministic and short-circuits
// reproducibly across runs.
func (c *Condition) Iterate(fn func(op ConditionOp, block map[string]StringOrList) bool) {
	ordered := append([]conditionEntry(nil), c.entries...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].op.String() < ordered[j].op.String()
	})
	for _, e := range ordered {
		if !fn(e.op, e.block) {
			return
		}
	}
}

// matches evaluates the whole Condition against req at policy version v: it
// matches iff every (operator, block) pair matches (conjunction across
// operators and keys; spec §4.4 top-level semantics).
func (c *Condition) matches(req Request, v PolicyVersion) (bool, error) {
	result := true
	var outerErr error
	c.Iterate(func(op ConditionOp, block map[string]StringOrList) bool {
		for key, allowed := range block {
			value := req.session(key)
			ok, err := dispatchConditionOp(op, allowed, value, req, v)
			if err != nil {
				outerErr = err
				result = false
				return false
			}
			if !ok {
				result = false
				return false
			}
		}
		return true
	})
	if outerErr != nil {
		return false, outerErr
	}
	return result, nil
}

// MarshalJSON implements json.Marshaler: `{ <OperatorName>: { <Key>: ... }, ... }`.
func (c *Condition) MarshalJSON() ([]byte, error) {
	obj := make(map[string]map[string]StringOrList, len(c.entries))
	for _, e := range c.entries {
		obj[e.op.String()] = e.block
	}
	return json.Marshal(obj)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]StringOrList
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := NewCondition()
	for name, block := range raw {
		op, err := ParseConditionOp(name)
		if err != nil {
			return err
		}
		out.Insert(op, block)
	}
	*c = *out
	return nil
}

// dispatchConditionOp routes to the family-specific matcher.
func dispatchConditionOp(op ConditionOp, allowed StringOrList, value SessionValue, req Request, v PolicyVersion) (bool, error) {
	switch op.family {
	case familyString:
		return stringMatch(req, v, allowed, value, stringCmp(op.cmp), op.v)
	case familyNumeric:
		return numericMatch(req, v, allowed, value, numericCmp(op.cmp), op.v)
	case familyDate:
		return dateMatch(req, v, allowed, value, dateCmp(op.cmp), op.v)
	case familyBool:
		return boolMatch(req, v, allowed, value, op.v)
	case familyBinary:
		return binaryMatch(allowed, value, op.v)
	case familyIPAddress:
		return ipAddressMatch(req, v, allowed, value, op.v)
	case familyArn:
		return arnMatch(req, v, allowed, value, op.v)
	case familyNull:
		return nullMatch(req, v, allowed, value)
	default:
		return false, nil
	}
}
