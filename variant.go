// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

// variant is a condition operator's modifier flag: whether a missing
// session value should match (IfExists) and whether the per-element
// comparison result should be inverted (Negated).
type variant uint8

const (
	variantNone variant = iota
	variantIfExists
	variantNegated
	variantIfExistsNegated
)

func (v variant) asIndex() int { return int(v) }

// ifExists reports whether a Null session value should match under this
// variant.
func (v variant) ifExists() bool {
	return v == variantIfExists || v == variantIfExistsNegated
}

// negated reports whether the per-element comparison result is inverted
// under this variant.
func (v variant) negated() bool {
	return v == variantNegated || v == variantIfExistsNegated
}
