// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"regexp"
	"strings"
)

// Arn is a parsed six-part ARN literal: arn:partition:service:region:account:resource.
type Arn struct {
	Partition string
	Service   string
	Region    string
	Account   string
	Resource  string
}

// ParseArn parses a literal ARN string, requiring exactly six colon-
// separated parts with the first equal to "arn".
func ParseArn(s string) (Arn, error) {
	parts := strings.SplitN(s, ":", 6)
	if len(parts) != 6 || parts[0] != "arn" {
		return Arn{}, InvalidResource(s)
	}
	return Arn{
		Partition: parts[1],
		Service:   parts[2],
		Region:    parts[3],
		Account:   parts[4],
		Resource:  parts[5],
	}, nil
}

// String renders the ARN back to its canonical literal form.
func (a Arn) String() string {
	return strings.Join([]string{"arn", a.Partition, a.Service, a.Region, a.Account, a.Resource}, ":")
}

// arnPatternMatch reports whether the six-colon-part ARN pattern matches
// candidate, under the version-gated matcher rules of §4.2: the first four
// components are plain globs, the resource component is variable-expanding.
// An arn-pattern with fewer than six colon-parts never matches and is not
// an error — the caller is expected to have already skipped such elements,
// mirroring original_source's arn_pattern_matches/arn_match behavior of
// silently skipping malformed allowed-list entries.
func arnPatternMatch(pattern string, candidate Arn, req Request, v PolicyVersion) (bool, error) {
	parts := strings.SplitN(pattern, ":", 6)
	if len(parts) != 6 {
		return false, nil
	}

	partitionRe, err := compileAnchored(globToRegex(parts[1]))
	if err != nil {
		return false, nil
	}
	serviceRe, err := compileAnchored(globToRegex(parts[2]))
	if err != nil {
		return false, nil
	}
	regionRe, err := compileAnchored(globToRegex(parts[3]))
	if err != nil {
		return false, nil
	}
	accountRe, err := compileAnchored(globToRegex(parts[4]))
	if err != nil {
		return false, nil
	}
	resourceSrc, err := regexMatcherVersioned(parts[5], req, v)
	if err != nil {
		return false, err
	}
	resourceRe, err := compileAnchored(resourceSrc)
	if err != nil {
		return false, nil
	}

	return partitionRe.MatchString(candidate.Partition) &&
		serviceRe.MatchString(candidate.Service) &&
		regionRe.MatchString(candidate.Region) &&
		accountRe.MatchString(candidate.Account) &&
		resourceRe.MatchString(candidate.Resource), nil
}

func compileAnchored(src string) (*regexp.Regexp, error) {
	return regexp.Compile(src)
}
