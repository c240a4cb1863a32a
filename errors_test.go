// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	err := InvalidAction("s3")
	require.Error(t, err)
	assert.Equal(t, "Invalid action: s3", err.Error())

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrInvalidAction, ae.Kind)
	assert.Equal(t, "s3", ae.Literal)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "InvalidResource", ErrInvalidResource.String())
	assert.Equal(t, "InvalidSubstitution", ErrInvalidSubstitution.String())
}
