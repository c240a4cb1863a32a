// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"encoding/base64"
	"encoding/json"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConditionOpRoundTrip(t *testing.T) {
	names := []string{
		"StringEquals", "StringNotEqualsIgnoreCaseIfExists", "NumericGreaterThan",
		"DateLessThanEquals", "Bool", "BinaryEquals", "IpAddress", "NotIpAddressIfExists",
		"ArnLike", "ArnEquals", "Null",
	}
	for _, name := range names {
		op, err := ParseConditionOp(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, op.String())
	}
}

func TestParseConditionOpRejectsUnknown(t *testing.T) {
	_, err := ParseConditionOp("NotARealOperator")
	require.Error(t, err)
}

func TestConditionOpJSONRoundTrip(t *testing.T) {
	op, err := ParseConditionOp("StringLikeIfExists")
	require.NoError(t, err)

	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.Equal(t, `"StringLikeIfExists"`, string(data))

	var out ConditionOp
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, op, out)
}

func TestConditionIterateIsSortedByDisplayName(t *testing.T) {
	c := NewCondition()
	stringEq, _ := ParseConditionOp("StringEquals")
	nullOp, _ := ParseConditionOp("Null")
	boolOp, _ := ParseConditionOp("Bool")
	c.Insert(stringEq, map[string]StringOrList{"k": NewScalar("v")})
	c.Insert(nullOp, map[string]StringOrList{"k": NewScalar("true")})
	c.Insert(boolOp, map[string]StringOrList{"k": NewScalar("true")})

	var seen []string
	c.Iterate(func(op ConditionOp, _ map[string]StringOrList) bool {
		seen = append(seen, op.String())
		return true
	})
	assert.Equal(t, []string{"Bool", "Null", "StringEquals"}, seen)
}

func TestConditionJSONRoundTrip(t *testing.T) {
	c := NewCondition()
	stringEq, _ := ParseConditionOp("StringEquals")
	c.Insert(stringEq, map[string]StringOrList{"aws:username": NewScalar("alice")})

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var out Condition
	require.NoError(t, json.Unmarshal(data, &out))
	block, ok := out.Get(stringEq)
	require.True(t, ok)
	assert.Equal(t, []string{"alice"}, block["aws:username"].Values())
}

func TestDispatchStringEquals(t *testing.T) {
	req := NewRequest("svc", "act")
	op, _ := ParseConditionOp("StringEquals")
	allowed := NewList("alice", "bob")

	ok, err := dispatchConditionOp(op, allowed, StringValue("alice"), req, Version20121017)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dispatchConditionOp(op, allowed, StringValue("carol"), req, Version20121017)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDispatchIfExistsOnNull(t *testing.T) {
	req := NewRequest("svc", "act")
	op, _ := ParseConditionOp("StringEqualsIfExists")

	ok, err := dispatchConditionOp(op, NewList("alice"), NullValue(), req, Version20121017)
	require.NoError(t, err)
	assert.True(t, ok, "IfExists must match when the session key is unbound")

	noneOp, _ := ParseConditionOp("StringEquals")
	ok, err = dispatchConditionOp(noneOp, NewList("alice"), NullValue(), req, Version20121017)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Numeric/Date GreaterThan(Equals) are intentionally encoded by flipping
// the Negated bit of LessThan(Equals) rather than as independent
// comparators — this is a deliberately preserved quirk, not a bug to fix.
func TestNumericGreaterThanEncodedAsNegatedLessThanEquals(t *testing.T) {
	req := NewRequest("svc", "act")
	op, _ := ParseConditionOp("NumericGreaterThan")

	ok, err := dispatchConditionOp(op, NewList("5"), IntegerValue(10), req, Version20121017)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dispatchConditionOp(op, NewList("5"), IntegerValue(5), req, Version20121017)
	require.NoError(t, err)
	assert.False(t, ok, "GreaterThan must be strict")
}

func TestDateGreaterThanEqualsEncodedAsNegatedLessThan(t *testing.T) {
	req := NewRequest("svc", "act")
	op, _ := ParseConditionOp("DateGreaterThanEquals")

	now := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	ok, err := dispatchConditionOp(op, NewList(now.Format(time.RFC3339)), IntegerValue(0), req, Version20121017)
	require.NoError(t, err)
	assert.False(t, ok, "wrong value kind never matches")

	ok, err = dispatchConditionOp(op, NewList(earlier.Format(time.RFC3339)), TimestampValue(now), req, Version20121017)
	require.NoError(t, err)
	assert.True(t, ok)
}

// ArnLike and ArnEquals are implemented identically; the comparator is
// preserved but unused by arnMatch (spec's documented latent-bug retention).
func TestArnLikeAndArnEqualsAreEquivalent(t *testing.T) {
	req := NewRequest("svc", "act")
	likeOp, _ := ParseConditionOp("ArnLike")
	equalsOp, _ := ParseConditionOp("ArnEquals")
	allowed := NewList("arn:aws:s3:::bucket/*")
	value := StringValue("arn:aws:s3:::bucket/key")

	likeResult, err := dispatchConditionOp(likeOp, allowed, value, req, Version20121017)
	require.NoError(t, err)
	equalsResult, err := dispatchConditionOp(equalsOp, allowed, value, req, Version20121017)
	require.NoError(t, err)
	assert.Equal(t, likeResult, equalsResult)
	assert.True(t, likeResult)
}

func TestArnMatchUnparseableValueRespectsNegation(t *testing.T) {
	req := NewRequest("svc", "act")
	notEquals, _ := ParseConditionOp("ArnNotEquals")
	equals, _ := ParseConditionOp("ArnEquals")
	allowed := NewList("arn:aws:s3:::bucket/*")
	value := StringValue("not-an-arn")

	ok, err := dispatchConditionOp(notEquals, allowed, value, req, Version20121017)
	require.NoError(t, err)
	assert.True(t, ok, "unparseable value under negated variant must match")

	ok, err = dispatchConditionOp(equals, allowed, value, req, Version20121017)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoolEmptyAllowedListNeverMatches(t *testing.T) {
	req := NewRequest("svc", "act")
	op, _ := ParseConditionOp("Bool")
	ok, err := dispatchConditionOp(op, StringOrList{}, BoolValue(true), req, Version20121017)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNullEmptyAllowedListNeverMatches(t *testing.T) {
	req := NewRequest("svc", "act")
	op, _ := ParseConditionOp("Null")
	ok, err := dispatchConditionOp(op, StringOrList{}, NullValue(), req, Version20121017)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDispatchBinaryEquals(t *testing.T) {
	req := NewRequest("svc", "act")
	op, _ := ParseConditionOp("BinaryEquals")
	encoded := base64.StdEncoding.EncodeToString([]byte("hello"))

	ok, err := dispatchConditionOp(op, NewList(encoded), BinaryValue([]byte("hello")), req, Version20121017)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDispatchIPAddress(t *testing.T) {
	req := NewRequest("svc", "act")
	op, _ := ParseConditionOp("IpAddress")
	addr := netip.MustParseAddr("203.0.113.5")

	ok, err := dispatchConditionOp(op, NewList("203.0.113.0/24"), IPAddrValue(addr), req, Version20121017)
	require.NoError(t, err)
	assert.True(t, ok)

	notIn, _ := ParseConditionOp("NotIpAddress")
	ok, err = dispatchConditionOp(notIn, NewList("203.0.113.0/24"), IPAddrValue(addr), req, Version20121017)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConditionMatchesConjunction(t *testing.T) {
	req := NewRequest("svc", "act").
		WithSession("aws:username", StringValue("alice")).
		WithSession("aws:SecureTransport", BoolValue(true))

	c := NewCondition()
	stringEq, _ := ParseConditionOp("StringEquals")
	boolOp, _ := ParseConditionOp("Bool")
	c.Insert(stringEq, map[string]StringOrList{"aws:username": NewScalar("alice")})
	c.Insert(boolOp, map[string]StringOrList{"aws:SecureTransport": NewScalar("true")})

	ok, err := c.matches(req, Version20121017)
	require.NoError(t, err)
	assert.True(t, ok)

	c.Insert(stringEq, map[string]StringOrList{"aws:username": NewScalar("bob")})
	ok, err = c.matches(req, Version20121017)
	require.NoError(t, err)
	assert.False(t, ok)
}
