// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

// Action is a Statement's Action/NotAction clause element: either the
// wildcard Any, or a Specific{service, operation} pair. Operation may
// contain `*`/`?` glob metacharacters; service may not.
type Action struct {
	any       bool
	service   string
	operation string
}

// AnyAction is the "*" action clause, matching every (service, action) pair.
func AnyAction() Action { return Action{any: true} }

// ParseAction parses an action literal: "*" or "service:operation", each
// byte of service and operation alphanumeric or `-`/`_`, neither at either
// end; operation additionally allows `*`/`?` anywhere.
func ParseAction(literal string) (Action, error) {
	if literal == "*" {
		return AnyAction(), nil
	}
	idx := indexByte(literal, ':')
	if idx < 0 {
		return Action{}, InvalidAction(literal)
	}
	service, operation := literal[:idx], literal[idx+1:]
	if !validActionComponent(service, false) || !validActionComponent(operation, true) {
		return Action{}, InvalidAction(literal)
	}
	return Action{service: service, operation: operation}, nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// validActionComponent checks the §3 lexical rule: nonempty ASCII, each
// byte alphanumeric or `-`/`_` with `-`/`_` not at either end; allowGlob
// additionally permits `*`/`?` at any position.
func validActionComponent(s string, allowGlob bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isAlphanumeric(c):
			continue
		case c == '-' || c == '_':
			if i == 0 || i == len(s)-1 {
				return false
			}
		case allowGlob && (c == '*' || c == '?'):
			continue
		default:
			return false
		}
	}
	return true
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// String renders the action clause back to its literal form.
func (a Action) String() string {
	if a.any {
		return "*"
	}
	return a.service + ":" + a.operation
}

// matches reports whether this clause matches a request's (service, action)
// per §4.3.
func (a Action) matches(service, action string) (bool, error) {
	if a.any {
		return true, nil
	}
	if a.service != service {
		return false, nil
	}
	re, err := compileAnchored(globToRegex(a.operation))
	if err != nil {
		return false, nil
	}
	return re.MatchString(action), nil
}

// actionListMatches reports whether any element of list matches (service,
// action) — the Action-clause-list semantics of §4.3.
func actionListMatches(list []Action, service, action string) (bool, error) {
	for _, a := range list {
		ok, err := a.matches(service, action)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// notActionListMatches inverts actionListMatches: matches iff no element
// of list matches.
func notActionListMatches(list []Action, service, action string) (bool, error) {
	ok, err := actionListMatches(list, service, action)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
