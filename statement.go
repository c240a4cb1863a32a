// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"encoding/json"
	"fmt"
)

// Statement is the unit of matching within a Policy: one Effect
// contribution per matched statement (spec §3, §4.7).
type Statement struct {
	Sid string

	Effect Effect

	action      []Action
	actionArray bool
	notAction   bool

	resource      []Resource
	resourceArray bool
	notResource   bool
	hasResource   bool

	principal    Principal
	hasPrincipal bool
	notPrincipal bool

	Condition *Condition
}

var statementKnownFields = map[string]bool{
	"Sid": true, "Effect": true, "Action": true, "NotAction": true,
	"Resource": true, "NotResource": true, "Principal": true, "NotPrincipal": true,
	"Condition": true,
}

// UnmarshalJSON implements json.Unmarshaler. Unknown fields are rejected
// (spec §6); Effect is required; exactly one of Action/NotAction must be
// present. Resource/NotResource may both be absent in any statement, with
// or without a Principal; the resource gate is then skipped, as if the
// statement had Resource "*" (recorded as an Open Question resolution).
// Duplicate keys are not detected: the last occurrence wins.
func (s *Statement) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if !statementKnownFields[key] {
			return fmt.Errorf("aspen: unknown statement field %q", key)
		}
	}

	var out Statement

	if v, ok := raw["Sid"]; ok {
		if err := json.Unmarshal(v, &out.Sid); err != nil {
			return err
		}
	}
	if v, ok := raw["Effect"]; ok {
		if err := json.Unmarshal(v, &out.Effect); err != nil {
			return err
		}
	} else {
		return fmt.Errorf("aspen: statement Effect is required")
	}

	actionRaw, hasAction := raw["Action"]
	notActionRaw, hasNotAction := raw["NotAction"]
	switch {
	case hasAction && hasNotAction:
		return fmt.Errorf("aspen: Action and NotAction cannot both be set")
	case hasAction:
		actions, arr, err := unmarshalActionList(actionRaw)
		if err != nil {
			return err
		}
		out.action, out.actionArray = actions, arr
	case hasNotAction:
		actions, arr, err := unmarshalActionList(notActionRaw)
		if err != nil {
			return err
		}
		out.action, out.actionArray, out.notAction = actions, arr, true
	default:
		return fmt.Errorf("aspen: either Action or NotAction must be set")
	}

	resourceRaw, hasResource := raw["Resource"]
	notResourceRaw, hasNotResource := raw["NotResource"]
	switch {
	case hasResource && hasNotResource:
		return fmt.Errorf("aspen: Resource and NotResource cannot both be set")
	case hasResource:
		resources, arr, err := unmarshalResourceList(resourceRaw)
		if err != nil {
			return err
		}
		out.resource, out.resourceArray, out.hasResource = resources, arr, true
	case hasNotResource:
		resources, arr, err := unmarshalResourceList(notResourceRaw)
		if err != nil {
			return err
		}
		out.resource, out.resourceArray, out.notResource, out.hasResource = resources, arr, true, true
	}

	principalRaw, hasPrincipal := raw["Principal"]
	notPrincipalRaw, hasNotPrincipal := raw["NotPrincipal"]
	switch {
	case hasPrincipal && hasNotPrincipal:
		return fmt.Errorf("aspen: Principal and NotPrincipal cannot both be set")
	case hasPrincipal:
		if err := json.Unmarshal(principalRaw, &out.principal); err != nil {
			return err
		}
		out.hasPrincipal = true
	case hasNotPrincipal:
		if err := json.Unmarshal(notPrincipalRaw, &out.principal); err != nil {
			return err
		}
		out.hasPrincipal, out.notPrincipal = true, true
	}

	if v, ok := raw["Condition"]; ok {
		cond := NewCondition()
		if err := json.Unmarshal(v, cond); err != nil {
			return err
		}
		out.Condition = cond
	}

	*s = out
	return nil
}

// MarshalJSON implements json.Marshaler, preserving each field's original
// scalar-or-list shape.
func (s Statement) MarshalJSON() ([]byte, error) {
	obj := make(map[string]interface{}, 8)
	if s.Sid != "" {
		obj["Sid"] = s.Sid
	}
	obj["Effect"] = s.Effect

	actionLiterals := make([]string, len(s.action))
	for i, a := range s.action {
		actionLiterals[i] = a.String()
	}
	actionKey := "Action"
	if s.notAction {
		actionKey = "NotAction"
	}
	obj[actionKey] = StringOrList{values: actionLiterals, wasArray: s.actionArray}

	if s.hasResource {
		resourceLiterals := make([]string, len(s.resource))
		for i, r := range s.resource {
			resourceLiterals[i] = r.String()
		}
		resourceKey := "Resource"
		if s.notResource {
			resourceKey = "NotResource"
		}
		obj[resourceKey] = StringOrList{values: resourceLiterals, wasArray: s.resourceArray}
	}

	if s.hasPrincipal {
		principalKey := "Principal"
		if s.notPrincipal {
			principalKey = "NotPrincipal"
		}
		obj[principalKey] = s.principal
	}

	if s.Condition != nil {
		obj["Condition"] = s.Condition
	}

	return json.Marshal(obj)
}

func unmarshalActionList(data json.RawMessage) ([]Action, bool, error) {
	var sol StringOrList
	if err := json.Unmarshal(data, &sol); err != nil {
		return nil, false, err
	}
	actions := make([]Action, 0, sol.Len())
	for _, literal := range sol.Values() {
		a, err := ParseAction(literal)
		if err != nil {
			return nil, false, err
		}
		actions = append(actions, a)
	}
	return actions, sol.wasArray, nil
}

func unmarshalResourceList(data json.RawMessage) ([]Resource, bool, error) {
	var sol StringOrList
	if err := json.Unmarshal(data, &sol); err != nil {
		return nil, false, err
	}
	resources := make([]Resource, 0, sol.Len())
	for _, literal := range sol.Values() {
		r, err := ParseResource(literal)
		if err != nil {
			return nil, false, err
		}
		resources = append(resources, r)
	}
	return resources, sol.wasArray, nil
}

// Evaluate applies the five-gate statement evaluation of §4.7: action,
// resource, principal, then condition. The first gate that fails to match
// yields DefaultDeny; if every gate passes, the statement contributes its
// declared Effect.
func (s *Statement) Evaluate(req Request, v PolicyVersion) (Decision, error) {
	var actionMatched bool
	var err error
	if s.notAction {
		actionMatched, err = notActionListMatches(s.action, req.Service, req.Action)
	} else {
		actionMatched, err = actionListMatches(s.action, req.Service, req.Action)
	}
	if err != nil {
		return DefaultDeny, err
	}
	if !actionMatched {
		return DefaultDeny, nil
	}

	if s.hasResource {
		var resourceMatched bool
		if s.notResource {
			resourceMatched, err = notResourceListMatches(s.resource, req.Resources, req, v)
		} else {
			resourceMatched, err = resourceListMatches(s.resource, req.Resources, req, v)
		}
		if err != nil {
			return DefaultDeny, err
		}
		if !resourceMatched {
			return DefaultDeny, nil
		}
	}

	if s.hasPrincipal {
		matched := s.principal.matches(req.Actors)
		if s.notPrincipal {
			matched = !matched
		}
		if !matched {
			return DefaultDeny, nil
		}
	}

	if s.Condition != nil {
		ok, err := s.Condition.matches(req, v)
		if err != nil {
			return DefaultDeny, err
		}
		if !ok {
			return DefaultDeny, nil
		}
	}

	if s.Effect == EffectDeny {
		return Deny, nil
	}
	return Allow, nil
}
