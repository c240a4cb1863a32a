// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineDominance(t *testing.T) {
	assert.Equal(t, Deny, combine(Deny, Allow))
	assert.Equal(t, Deny, combine(Allow, Deny))
	assert.Equal(t, Allow, combine(Allow, DefaultDeny))
	assert.Equal(t, Allow, combine(DefaultDeny, Allow))
	assert.Equal(t, DefaultDeny, combine(DefaultDeny, DefaultDeny))
	assert.Equal(t, Deny, combine(Deny, Deny))
}

func TestDecisionIsAllowed(t *testing.T) {
	assert.True(t, Allow.IsAllowed())
	assert.False(t, Deny.IsAllowed())
	assert.False(t, DefaultDeny.IsAllowed())
}

func TestEffectJSONRoundTrip(t *testing.T) {
	data, err := EffectDeny.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"Deny"`, string(data))

	var e Effect
	assert.NoError(t, e.UnmarshalJSON(data))
	assert.Equal(t, EffectDeny, e)
}
