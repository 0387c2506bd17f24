package htmlkit

import (
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
)

// groupPrefix makes generated group identities valid markup ids: they
// start with a letter and contain only identifier-safe characters.
const groupPrefix = "accordion-"

// newGroupID returns a fresh group identity shared by a container and its
// sections within a single render call. Each call derives a new token
// from a random UUID hashed into sixteen hex digits, so identities are
// unique across renders with overwhelming probability and never reference
// a previously rendered tree. uuid draws from crypto/rand and is safe for
// unsynchronized concurrent use.
func newGroupID() string {
	id := uuid.New()
	sum := fnv.New64a()
	sum.Write(id[:])
	return fmt.Sprintf("%s%016x", groupPrefix, sum.Sum64())
}
