// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

// PrincipalIdentity is the extension point for an acting identity. Session
// storage, federation, and role-chain resolution are external concerns
// (spec §1); callers supply identities satisfying this interface rather
// than a concrete struct hierarchy.
type PrincipalIdentity interface {
	// ARN returns the identity's ARN, if it has one.
	ARN() (Arn, bool)
	// CanonicalUserID returns the identity's canonical-user id, if any.
	CanonicalUserID() (string, bool)
	// ServiceDNSNames returns the global and regional DNS names used to
	// match a Service principal clause, if the identity represents an
	// AWS service.
	ServiceDNSNames() (global, regional string, ok bool)
}

// Request is a single access request to be evaluated against a Policy.
type Request struct {
	Service     string
	Action      string
	Actors      []PrincipalIdentity
	Resources   []Arn
	SessionData map[string]SessionValue
}

// NewRequest builds a Request with an initialized, empty session data map.
func NewRequest(service, action string) Request {
	return Request{
		Service:     service,
		Action:      action,
		SessionData: make(map[string]SessionValue),
	}
}

// WithResource appends a resource ARN and returns the Request for chaining.
func (r Request) WithResource(a Arn) Request {
	r.Resources = append(r.Resources, a)
	return r
}

// WithActor appends an actor identity and returns the Request for chaining.
func (r Request) WithActor(p PrincipalIdentity) Request {
	r.Actors = append(r.Actors, p)
	return r
}

// WithSession sets a session data key and returns the Request for chaining.
func (r Request) WithSession(key string, v SessionValue) Request {
	if r.SessionData == nil {
		r.SessionData = make(map[string]SessionValue)
	}
	r.SessionData[key] = v
	return r
}

// session looks up a session key, returning Null for an unbound key.
func (r Request) session(key string) SessionValue {
	if v, ok := r.SessionData[key]; ok {
		return v
	}
	return NullValue()
}
