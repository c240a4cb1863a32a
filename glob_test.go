// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobToRegex(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		match   []string
		noMatch []string
	}{
		{
			name:    "star wildcard",
			pattern: "s3:Get*",
			match:   []string{"s3:GetObject", "s3:Get"},
			noMatch: []string{"s3:PutObject"},
		},
		{
			name:    "question mark wildcard",
			pattern: "iam:Get?ser",
			match:   []string{"iam:GetUser"},
			noMatch: []string{"iam:GetUsers", "iam:Get"},
		},
		{
			name:    "literal regex metacharacters are escaped",
			pattern: "a.b+c",
			match:   []string{"a.b+c"},
			noMatch: []string{"axbyc", "abc"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			re := regexp.MustCompile(globToRegex(tc.pattern))
			for _, m := range tc.match {
				assert.True(t, re.MatchString(m), "expected %q to match %q", tc.pattern, m)
			}
			for _, m := range tc.noMatch {
				assert.False(t, re.MatchString(m), "expected %q not to match %q", tc.pattern, m)
			}
		})
	}
}
