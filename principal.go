// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"encoding/json"
	"strings"
)

// awsPrincipalKind tags an AWS principal entry's variant.
type awsPrincipalKind int

const (
	awsPrincipalAny awsPrincipalKind = iota
	awsPrincipalAccountID
	awsPrincipalArn
)

// AWSPrincipal is one entry of a Principal clause's AWS family: the
// wildcard Any, a 12-digit account id, or a full ARN.
type AWSPrincipal struct {
	kind      awsPrincipalKind
	accountID string
	arn       Arn
}

// ParseAWSPrincipal parses an AWS principal literal: "*", a 12-digit
// account id, or a valid ARN.
func ParseAWSPrincipal(literal string) (AWSPrincipal, error) {
	if literal == "*" {
		return AWSPrincipal{kind: awsPrincipalAny}, nil
	}
	if isAccountID(literal) {
		return AWSPrincipal{kind: awsPrincipalAccountID, accountID: literal}, nil
	}
	arn, err := ParseArn(literal)
	if err != nil {
		return AWSPrincipal{}, InvalidPrincipal(literal)
	}
	return AWSPrincipal{kind: awsPrincipalArn, arn: arn}, nil
}

func isAccountID(s string) bool {
	if len(s) != 12 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// matches reports whether an identity's ARN satisfies this AWS principal
// entry, per §4.6: exact ARN match, or — when the clause ARN's resource
// component is "root" — a partition+service+region+account match; an
// account-id clause matches when the identity's account equals the id.
func (p AWSPrincipal) matches(identityArn Arn) bool {
	switch p.kind {
	case awsPrincipalAny:
		return true
	case awsPrincipalAccountID:
		return p.accountID == identityArn.Account
	case awsPrincipalArn:
		if p.arn == identityArn {
			return true
		}
		if p.arn.Resource == "root" {
			return p.arn.Partition == identityArn.Partition &&
				p.arn.Service == identityArn.Service &&
				p.arn.Region == identityArn.Region &&
				p.arn.Account == identityArn.Account
		}
		return false
	default:
		return false
	}
}

// String renders the AWS principal entry back to its literal form.
func (p AWSPrincipal) String() string {
	switch p.kind {
	case awsPrincipalAny:
		return "*"
	case awsPrincipalAccountID:
		return p.accountID
	case awsPrincipalArn:
		return p.arn.String()
	default:
		return ""
	}
}

// Principal is a Statement's Principal/NotPrincipal clause: either the
// wildcard Any, or a Specified set of AWS/CanonicalUser/Federated/Service
// entries (any populated family may contribute a match). Each family
// remembers whether it was parsed from a scalar or a list, per the
// "scalar-or-list" wire convention (spec §6).
type Principal struct {
	any bool

	aws      []AWSPrincipal
	awsArray bool

	canonicalUsers      []string
	canonicalUsersArray bool

	federated      []string
	federatedArray bool

	services      []string
	servicesArray bool
}

// AnyPrincipal is the "*" principal clause, matching any actor.
func AnyPrincipal() Principal { return Principal{any: true} }

// NewSpecifiedPrincipal builds a Specified principal clause from its
// constituent families. Any argument may be nil/empty.
func NewSpecifiedPrincipal(aws []AWSPrincipal, canonicalUsers, federated, services []string) Principal {
	return Principal{
		aws:                 aws,
		awsArray:            len(aws) != 1,
		canonicalUsers:      canonicalUsers,
		canonicalUsersArray: len(canonicalUsers) != 1,
		federated:           federated,
		federatedArray:      len(federated) != 1,
		services:            services,
		servicesArray:       len(services) != 1,
	}
}

// matches reports whether any identity in actors satisfies this principal
// clause, per §4.6. Federated matching is explicitly unsupported (spec §9)
// and always fails to match rather than erroring, mirroring "implementation-
// defined; must be rejected explicitly if not supported" by simply never
// matching a federated entry.
func (p Principal) matches(actors []PrincipalIdentity) bool {
	if p.any {
		return len(actors) > 0
	}
	for _, actor := range actors {
		if arn, ok := actor.ARN(); ok {
			for _, aws := range p.aws {
				if aws.matches(arn) {
					return true
				}
			}
		}
		if cu, ok := actor.CanonicalUserID(); ok {
			for _, want := range p.canonicalUsers {
				if cu == want {
					return true
				}
			}
		}
		if global, regional, ok := actor.ServiceDNSNames(); ok {
			for _, want := range p.services {
				if global == want || regional == want {
					return true
				}
			}
		}
	}
	return false
}

// String renders the principal clause to a debug-friendly literal form.
func (p Principal) String() string {
	if p.any {
		return "*"
	}
	return strings.Join([]string{"Specified"}, "")
}

// MarshalJSON implements json.Marshaler, emitting "*" for Any and an object
// of the populated families otherwise.
func (p Principal) MarshalJSON() ([]byte, error) {
	if p.any {
		return json.Marshal("*")
	}
	obj := make(map[string]StringOrList, 4)
	if len(p.aws) > 0 {
		strs := make([]string, len(p.aws))
		for i, a := range p.aws {
			strs[i] = a.String()
		}
		obj["AWS"] = StringOrList{values: strs, wasArray: p.awsArray}
	}
	if len(p.canonicalUsers) > 0 {
		obj["CanonicalUser"] = StringOrList{values: p.canonicalUsers, wasArray: p.canonicalUsersArray}
	}
	if len(p.federated) > 0 {
		obj["Federated"] = StringOrList{values: p.federated, wasArray: p.federatedArray}
	}
	if len(p.services) > 0 {
		obj["Service"] = StringOrList{values: p.services, wasArray: p.servicesArray}
	}
	return json.Marshal(obj)
}

// UnmarshalJSON implements json.Unmarshaler, accepting "*" or an object
// with AWS/CanonicalUser/Federated/Service keys.
func (p *Principal) UnmarshalJSON(data []byte) error {
	var star string
	if err := json.Unmarshal(data, &star); err == nil {
		if star != "*" {
			return InvalidPrincipal(star)
		}
		*p = AnyPrincipal()
		return nil
	}

	var raw map[string]StringOrList
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	result := Principal{}
	for key, sol := range raw {
		switch key {
		case "AWS":
			result.aws = make([]AWSPrincipal, 0, sol.Len())
			for _, el := range sol.Values() {
				parsed, err := ParseAWSPrincipal(el)
				if err != nil {
					return err
				}
				result.aws = append(result.aws, parsed)
			}
			result.awsArray = sol.wasArray
		case "CanonicalUser":
			result.canonicalUsers = sol.Values()
			result.canonicalUsersArray = sol.wasArray
		case "Federated":
			result.federated = sol.Values()
			result.federatedArray = sol.wasArray
		case "Service":
			result.services = sol.Values()
			result.servicesArray = sol.wasArray
		default:
			return InvalidPrincipal(key)
		}
	}
	*p = result
	return nil
}
