// Package session generates unique identifiers for analysis sessions.
package session

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator issues session IDs. IDs carry a monotonic counter for ordering
// plus a random uuid fragment so IDs from separate processes never collide.
type Generator struct {
	counter uint64
}

func New() *Generator {
	return &Generator{}
}

// Next returns a new session ID of the form "sess-<n>-<uuid8>".
func (g *Generator) Next() string {
	n := atomic.AddUint64(&g.counter, 1)
	return fmt.Sprintf("sess-%d-%s", n, uuid.NewString()[:8])
}
