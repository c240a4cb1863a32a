// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import "strings"

// globToRegex compiles a glob pattern into an anchored regex source string.
// `*` becomes `.*`, `?` becomes `.`, every other rune is regex-escaped. The
// result is wrapped in `^...$`. This never fails and never expands policy
// variables — see substitutePlain and substituteRegex for that.
//
// A bespoke builder is used here rather than a third-party glob library
// (e.g. gobwas/glob) because the Like/ArnLike/ArnEquals operators need a
// single regex that interleaves raw glob wildcards with regex-escaped,
// variable-substituted literals in one pattern (see substituteRegex);
// gobwas/glob compiles pure glob strings and has no hook for splicing in
// pre-escaped literal fragments, so the mixed construction is done by hand
// with the standard regexp/syntax escaping rules. See DESIGN.md.
func globToRegex(pattern string) string {
	var b strings.Builder
	b.WriteByte('^')
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		default:
			writeEscapedRune(&b, r)
		}
	}
	b.WriteByte('$')
	return b.String()
}

// regexMetacharacters are escaped with a backslash when they appear as a
// literal character in a generated pattern.
const regexMetacharacters = `\.+*?()|[]{}^$`

func writeEscapedRune(b *strings.Builder, r rune) {
	if strings.ContainsRune(regexMetacharacters, r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
