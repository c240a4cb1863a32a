// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"encoding/json"
	"fmt"
)

// Policy is the top-level access-control document: a version, an optional
// opaque id, and an ordered sequence of statements evaluated in document
// order (spec §3, §4.8).
type Policy struct {
	Version PolicyVersion
	Id      string

	Statements      []Statement
	statementsArray bool
}

var policyKnownFields = map[string]bool{"Version": true, "Id": true, "Statement": true}

// UnmarshalJSON implements json.Unmarshaler, accepting the "Statement"
// field as either a single Statement or an array (spec §6).
func (p *Policy) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if !policyKnownFields[key] {
			return fmt.Errorf("aspen: unknown policy field %q", key)
		}
	}

	var out Policy

	if v, ok := raw["Version"]; ok {
		if err := json.Unmarshal(v, &out.Version); err != nil {
			return err
		}
	}
	if v, ok := raw["Id"]; ok {
		if err := json.Unmarshal(v, &out.Id); err != nil {
			return err
		}
	}

	stmtRaw, ok := raw["Statement"]
	if !ok {
		return fmt.Errorf("aspen: policy Statement is required")
	}

	var single Statement
	if err := json.Unmarshal(stmtRaw, &single); err == nil {
		out.Statements = []Statement{single}
		out.statementsArray = false
	} else {
		var list []Statement
		if err := json.Unmarshal(stmtRaw, &list); err != nil {
			return err
		}
		out.Statements = list
		out.statementsArray = true
	}

	*p = out
	return nil
}

// MarshalJSON implements json.Marshaler, preserving the Statement field's
// original scalar-or-list shape.
func (p Policy) MarshalJSON() ([]byte, error) {
	obj := make(map[string]interface{}, 3)
	if p.Version != VersionUnspecified {
		obj["Version"] = p.Version
	}
	if p.Id != "" {
		obj["Id"] = p.Id
	}
	if !p.statementsArray && len(p.Statements) == 1 {
		obj["Statement"] = p.Statements[0]
	} else {
		obj["Statement"] = p.Statements
	}
	return json.Marshal(obj)
}

// ParsePolicy parses a policy document from its JSON wire format (spec §6).
func ParsePolicy(data []byte) (*Policy, error) {
	var p Policy
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Evaluate iterates the policy's statements in document order and combines
// their decisions so that Deny dominates Allow, which dominates DefaultDeny
// (spec §4.8). It short-circuits on the first Deny; an Allow is remembered
// while the remaining statements are checked for a Deny. If no statement
// matches, the result is DefaultDeny.
func (p *Policy) Evaluate(req Request) (Decision, error) {
	result := DefaultDeny
	for i := range p.Statements {
		d, err := p.Statements[i].Evaluate(req, p.Version)
		if err != nil {
			return DefaultDeny, err
		}
		if d == Deny {
			return Deny, nil
		}
		result = combine(result, d)
	}
	return result, nil
}
