// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

// Package aspen implements the evaluator for an AWS-IAM-style JSON
// access-control policy language. A Policy is a declarative document
// describing whether a Request — identified by a service, an API action,
// an acting principal, target resources, and a bag of session attributes —
// is permitted. Evaluate answers one question: given a policy document and
// a request context, does the policy Allow, Deny, or leave the decision as
// a DefaultDeny?
//
// Evaluation is a pure function of (Policy, Request); it performs no I/O,
// holds no mutable state, and is safe for concurrent use. The only
// package-level mutable state is GeneratePolicyID's mutex-guarded entropy
// source, which is not used by evaluation. Transport,
// authentication, and policy storage/distribution are left to callers —
// see the policyset and audit subpackages for optional in-process glue.
package aspen
