// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import "strings"

// Resource is a Statement's Resource/NotResource clause element: either the
// wildcard Any, or an ARN pattern whose five components (after "arn:") are
// each a glob, with the resource component additionally variable-expanding.
type Resource struct {
	any     bool
	pattern string
}

// AnyResource is the "*" resource clause, matching every candidate ARN.
func AnyResource() Resource { return Resource{any: true} }

// ParseResource parses a resource literal: "*" or a six-colon-part ARN
// pattern beginning with "arn".
func ParseResource(literal string) (Resource, error) {
	if literal == "*" {
		return AnyResource(), nil
	}
	parts := strings.SplitN(literal, ":", 6)
	if len(parts) != 6 || parts[0] != "arn" {
		return Resource{}, InvalidResource(literal)
	}
	return Resource{pattern: literal}, nil
}

// String renders the resource clause back to its literal form.
func (r Resource) String() string {
	if r.any {
		return "*"
	}
	return r.pattern
}

// matches reports whether this clause matches candidate (§4.5).
func (r Resource) matches(candidate Arn, req Request, v PolicyVersion) (bool, error) {
	if r.any {
		return true, nil
	}
	return arnPatternMatch(r.pattern, candidate, req, v)
}

// resourceListMatches implements the statement-level "resource" form of
// §4.5: every candidate resource must be matched by some pattern in the
// list; an empty candidate list requires the list to contain at least one
// Any.
func resourceListMatches(list []Resource, candidates []Arn, req Request, v PolicyVersion) (bool, error) {
	if len(candidates) == 0 {
		for _, r := range list {
			if r.any {
				return true, nil
			}
		}
		return false, nil
	}
	for _, c := range candidates {
		matched := false
		for _, r := range list {
			ok, err := r.matches(c, req, v)
			if err != nil {
				return false, err
			}
			if ok {
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

// notResourceListMatches implements the statement-level "not_resource" form
// of §4.5: no candidate resource may be matched by any pattern in the list.
// An empty candidate list with a list containing Any is a non-match.
func notResourceListMatches(list []Resource, candidates []Arn, req Request, v PolicyVersion) (bool, error) {
	if len(candidates) == 0 {
		for _, r := range list {
			if r.any {
				return false, nil
			}
		}
		return true, nil
	}
	for _, c := range candidates {
		for _, r := range list {
			ok, err := r.matches(c, req, v)
			if err != nil {
				return false, err
			}
			if ok {
				return false, nil
			}
		}
	}
	return true, nil
}
