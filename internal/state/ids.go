package state

import (
	"log"
	"sync/atomic"

	"github.com/google/uuid"
)

var debug atomic.Bool

// SetDebug turns per-command logging on or off.
func SetDebug(on bool) {
	debug.Store(on)
}

func debugf(format string, args ...any) {
	if debug.Load() {
		log.Printf("[PAD] "+format, args...)
	}
}

// newID returns a unique command ID such as "line-5f0c…".
func newID(kind string) string {
	return kind + "-" + uuid.NewString()
}
