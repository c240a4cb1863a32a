// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOrListScalarRoundTrip(t *testing.T) {
	var s StringOrList
	require.NoError(t, json.Unmarshal([]byte(`"s3:GetObject"`), &s))
	assert.False(t, s.wasArray)
	assert.Equal(t, []string{"s3:GetObject"}, s.Values())

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"s3:GetObject"`, string(data))
}

func TestStringOrListArrayRoundTrip(t *testing.T) {
	var s StringOrList
	require.NoError(t, json.Unmarshal([]byte(`["s3:GetObject"]`), &s))
	assert.True(t, s.wasArray)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `["s3:GetObject"]`, string(data))
}

func TestNewListAlwaysMarshalsAsArray(t *testing.T) {
	s := NewList("a")
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(data))
}
