// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import "strings"

// substitutePlain expands ${name} references in template against the
// request's session data, emitting substituted values verbatim and
// leaving any literal `*`/`?` in the template as themselves (spec §4.2
// rule 5). It is the "plain substitute" pure function described in
// spec §9, kept separate from the regex-compiling form below.
func substitutePlain(template string, req Request) (string, error) {
	var b strings.Builder
	i := 0
	n := len(template)
	for i < n {
		c := template[i]
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= n || template[i+1] != '{' {
			return "", InvalidSubstitution(template)
		}
		end := strings.IndexByte(template[i+2:], '}')
		if end < 0 {
			return "", InvalidSubstitution(template)
		}
		name := template[i+2 : i+2+end]
		b.WriteString(substitutionLiteral(name, req))
		i += 2 + end + 1
	}
	return b.String(), nil
}

// substituteRegex builds an anchored regex source string from template: raw
// `*`/`?` outside a substitution expand to `.*`/`.` (glob semantics),
// everything else is regex-escaped, and ${name} substitutions are expanded
// to their session value's string form, regex-escaped so the matched
// characters are taken literally (spec §4.2 rule 4). It is the
// "regex-compile-with-substitute" pure function described in spec §9.
func substituteRegex(template string, req Request) (string, error) {
	var b strings.Builder
	b.WriteByte('^')
	i := 0
	n := len(template)
	for i < n {
		c := template[i]
		if c != '$' {
			switch c {
			case '*':
				b.WriteString(".*")
			case '?':
				b.WriteByte('.')
			default:
				if c >= 0x80 {
					// A byte of a multi-byte UTF-8 sequence: never a regex
					// metacharacter, copied as is to keep the rune intact.
					b.WriteByte(c)
				} else {
					writeEscapedRune(&b, rune(c))
				}
			}
			i++
			continue
		}
		if i+1 >= n || template[i+1] != '{' {
			return "", InvalidSubstitution(template)
		}
		end := strings.IndexByte(template[i+2:], '}')
		if end < 0 {
			return "", InvalidSubstitution(template)
		}
		name := template[i+2 : i+2+end]
		lit := substitutionLiteral(name, req)
		for _, r := range lit {
			writeEscapedRune(&b, r)
		}
		i += 2 + end + 1
	}
	b.WriteByte('$')
	return b.String(), nil
}

// substitutionLiteral resolves a single ${name} body to its literal
// replacement string per spec §4.2 rule 3.
func substitutionLiteral(name string, req Request) string {
	switch name {
	case "*":
		return "*"
	case "$":
		return "$"
	case "?":
		return "?"
	default:
		return req.session(name).String()
	}
}

// plainSubstituteVersioned applies substitutePlain only at Version20121017;
// at earlier versions the template is returned unchanged (spec §4.2's
// policy-version gate).
func plainSubstituteVersioned(template string, req Request, v PolicyVersion) (string, error) {
	if !v.substitutionActive() {
		return template, nil
	}
	return substitutePlain(template, req)
}

// regexMatcherVersioned builds an anchored regex source for template,
// applying substitution only at Version20121017 (otherwise falling back to
// a pure glob-to-regex compilation with no variable expansion).
func regexMatcherVersioned(template string, req Request, v PolicyVersion) (string, error) {
	if !v.substitutionActive() {
		return globToRegex(template), nil
	}
	return substituteRegex(template, req)
}
