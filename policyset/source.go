// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

// Package policyset provides an in-process, concurrency-safe registry
// mapping a policy's attachment point to its parsed document. It is
// external glue around the aspen evaluator, not a storage or
// distribution layer: population and persistence are the caller's
// responsibility.
package policyset

// sourceKind tags a PolicySource's variant, recovered from the
// reference implementation's policyset.rs (dropped by the distilled
// specification but reinstated here as the external-glue key type).
type sourceKind int

const (
	sourceInline sourceKind = iota
	sourceDirectAttached
	sourceGroupInline
	sourceGroupAttached
	sourceResource
)

// PolicySource identifies where a policy is attached: directly inline
// on a principal or resource, attached by ARN, or inherited through a
// group. Only the fields relevant to the variant are populated.
type PolicySource struct {
	kind sourceKind

	entityArn  string
	entityID   string
	policyName string

	policyArn string
	policyID  string
	version   string

	groupArn string
	groupID  string

	resourceArn string
}

// InlineSource identifies a policy embedded directly on an entity (a
// user, role, or group), identified by name rather than ARN.
func InlineSource(entityArn, entityID, policyName string) PolicySource {
	return PolicySource{kind: sourceInline, entityArn: entityArn, entityID: entityID, policyName: policyName}
}

// DirectAttachedSource identifies a managed policy attached directly to
// an entity.
func DirectAttachedSource(policyArn, policyID, version string) PolicySource {
	return PolicySource{kind: sourceDirectAttached, policyArn: policyArn, policyID: policyID, version: version}
}

// GroupInlineSource identifies a policy embedded on a group the
// requesting principal belongs to.
func GroupInlineSource(groupArn, groupID, policyName string) PolicySource {
	return PolicySource{kind: sourceGroupInline, groupArn: groupArn, groupID: groupID, policyName: policyName}
}

// GroupAttachedSource identifies a managed policy attached to a group
// the requesting principal belongs to.
func GroupAttachedSource(groupArn, groupID, policyArn, policyID, version string) PolicySource {
	return PolicySource{
		kind: sourceGroupAttached, groupArn: groupArn, groupID: groupID,
		policyArn: policyArn, policyID: policyID, version: version,
	}
}

// ResourceSource identifies a resource-based policy attached directly
// to the target resource (e.g. a bucket policy). policyName may be
// empty when the resource policy is unnamed.
func ResourceSource(resourceArn, policyName string) PolicySource {
	return PolicySource{kind: sourceResource, resourceArn: resourceArn, policyName: policyName}
}

// String renders a debug-friendly description of the source.
func (s PolicySource) String() string {
	switch s.kind {
	case sourceInline:
		return "Inline(" + s.entityArn + "/" + s.policyName + ")"
	case sourceDirectAttached:
		return "DirectAttached(" + s.policyArn + ":" + s.version + ")"
	case sourceGroupInline:
		return "GroupInline(" + s.groupArn + "/" + s.policyName + ")"
	case sourceGroupAttached:
		return "GroupAttached(" + s.groupArn + "," + s.policyArn + ":" + s.version + ")"
	case sourceResource:
		return "Resource(" + s.resourceArn + ")"
	default:
		return "unknown"
	}
}
