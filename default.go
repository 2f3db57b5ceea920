//go:build !ios && !android && (amd64 || arm64)

package unurgo

import (
	"sync"

	"github.com/obinnaokechukwu/unurgo/engine"
	"github.com/obinnaokechukwu/unurgo/urng"
)

// The process-wide default adapter. The engine does setup sampling during
// generator construction, before any per-generator source exists, so some
// uniform source has to be installed at all times. The adapter is created
// once, lazily, and repointed at the primary stream of whichever handle is
// currently being constructed.
//
// The repointing is unsynchronized: constructing two generators
// concurrently would race on it, which is why New documents that
// construction calls must be serialized.
var (
	defaultOnce    sync.Once
	defaultAdapter *urng.Adapter
)

func installDefaultSource(eng engine.Engine, s urng.Stream) error {
	defaultOnce.Do(func() {
		defaultAdapter = urng.New(nil)
	})
	defaultAdapter.SetStream(s)
	return eng.SetDefaultSource(defaultAdapter)
}
