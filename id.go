// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	idEntropy     = ulid.Monotonic(rand.Reader, 0)
	idEntropyLock sync.Mutex
)

// GeneratePolicyID returns a new lexically sortable identifier (a ULID).
// The policy-set manifest loader uses it to fill in an entity, group or
// policy id that a manifest attachment omits.
func GeneratePolicyID() string {
	idEntropyLock.Lock()
	defer idEntropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), idEntropy).String()
}
