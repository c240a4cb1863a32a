// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package policyset

import (
	"sync"

	"github.com/aspen-iam/aspen"
)

// PolicySet is a concurrency-safe registry from PolicySource to Policy.
// Writes (Put) take a full lock; reads (Snapshot, EvaluateAny) take a
// read lock and operate on a defensive copy, mirroring the teacher's
// snapshot-under-lock cache discipline without its reload/invalidation
// machinery — population is entirely the caller's responsibility.
type PolicySet struct {
	mu       sync.RWMutex
	policies map[PolicySource]*aspen.Policy
}

// New returns an empty PolicySet.
func New() *PolicySet {
	return &PolicySet{policies: make(map[PolicySource]*aspen.Policy)}
}

// Put attaches policy at source, replacing any policy already attached
// there.
func (ps *PolicySet) Put(source PolicySource, policy *aspen.Policy) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.policies[source] = policy
}

// Delete detaches the policy at source, if any.
func (ps *PolicySet) Delete(source PolicySource) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	delete(ps.policies, source)
}

// Get returns the policy attached at source, if any.
func (ps *PolicySet) Get(source PolicySource) (*aspen.Policy, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	p, ok := ps.policies[source]
	return p, ok
}

// Snapshot returns a defensive copy of the current source -> policy
// mapping, safe for lock-free iteration by the caller.
func (ps *PolicySet) Snapshot() map[PolicySource]*aspen.Policy {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	copied := make(map[PolicySource]*aspen.Policy, len(ps.policies))
	for k, v := range ps.policies {
		copied[k] = v
	}
	return copied
}

// PolicyMatch records which attached policy decided an EvaluateAny call.
type PolicyMatch struct {
	Source   PolicySource
	Decision aspen.Decision
}

// EvaluateAny evaluates req against every policy currently in the set
// and combines the per-policy decisions with the same Deny-dominates-
// Allow-dominates-DefaultDeny rule used within a single policy's
// statements (spec §4.8). It returns the combined decision along with
// the PolicyMatch of the policy that decided it, for audit/debugging
// purposes: the first denying policy found (evaluation stops there), else
// the first allowing policy found, else nil. Policies are visited in map
// iteration order, which is not fixed.
func (ps *PolicySet) EvaluateAny(req aspen.Request) (aspen.Decision, *PolicyMatch, error) {
	snap := ps.Snapshot()

	result := aspen.DefaultDeny
	var firstMatch *PolicyMatch
	for source, policy := range snap {
		d, err := policy.Evaluate(req)
		if err != nil {
			return aspen.DefaultDeny, nil, err
		}
		switch {
		case d == aspen.Deny:
			return aspen.Deny, &PolicyMatch{Source: source, Decision: d}, nil
		case d == aspen.Allow && result != aspen.Allow:
			result = aspen.Allow
			if firstMatch == nil {
				firstMatch = &PolicyMatch{Source: source, Decision: d}
			}
		}
	}
	return result, firstMatch, nil
}
