// Package urng wraps Go uniform random number streams as pull-based sources
// a sampling engine can draw from.
//
// The Adapter is the bridge's hot path: every uniform the engine consumes
// crosses through Adapter.Pull. Its delivery mode decides where the number
// comes from on each pull: straight from the stream, from a single value
// cached ahead of the call, or from an array refilled in batches. Single
// draws cache one prefetched uniform so the common one-uniform sample costs
// no extra boundary crossing; batch draws stream through an array so n
// samples cost one buffer fill instead of n calls.
package urng

// Stream produces uniform random numbers in [0,1). It is the contract the
// embedding application's generator has to satisfy; NewMathRand adapts the
// standard library's *rand.Rand.
type Stream interface {
	// Float64 returns the next uniform value.
	Float64() float64

	// Fill replaces every element of p with fresh uniform values.
	Fill(p []float64)
}

// Delivery modes. Exactly one is active per adapter at any time.
const (
	modeCall   = iota // pull straight from the stream
	modeCached        // return the cached value once, then fall back to modeCall
	modeArray         // walk a buffer, refilling it from the stream on exhaustion
)

// Adapter presents one Stream as a pull-based uniform source
// (it implements engine.Source).
//
// An adapter is owned by the generator handle it belongs to and is not safe
// for concurrent pulls; mode and cursor are unsynchronized. The stream must
// be set before the first pull.
type Adapter struct {
	mode   int
	stream Stream

	// cached-value mode
	cached float64

	// array-stream mode
	buf []float64
	cur int
}

// New returns an adapter in call-through mode over s. A nil s is allowed
// for adapters whose stream is installed later via SetStream.
func New(s Stream) *Adapter {
	return &Adapter{stream: s}
}

// Pull produces one uniform value according to the current delivery mode.
//
// In cached-value mode the adapter hands out the cached value exactly once
// and switches itself back to call-through, so a second pull within the same
// sampling operation reaches the stream rather than replaying a stale value.
// In array-stream mode a pull that finds the cursor at the end of the buffer
// first refills the whole buffer from the stream.
func (a *Adapter) Pull() float64 {
	switch a.mode {
	case modeCached:
		a.mode = modeCall
		return a.cached
	case modeArray:
		if a.cur >= len(a.buf) {
			a.stream.Fill(a.buf)
			a.cur = 0
		}
		v := a.buf[a.cur]
		a.cur++
		return v
	default:
		return a.stream.Float64()
	}
}

// SetCached installs v as the next value Pull returns and switches to
// cached-value mode. Used when the caller already obtained one uniform on
// the Go side before invoking the engine.
func (a *Adapter) SetCached(v float64) {
	a.cached = v
	a.mode = modeCached
}

// SetArray installs buf as the pull buffer and switches to array-stream
// mode. The cursor starts at the end of the buffer: the first pull always
// triggers a refill, so callers need not pre-fill buf. buf must be
// non-empty.
func (a *Adapter) SetArray(buf []float64) {
	a.buf = buf
	a.cur = len(buf)
	a.mode = modeArray
}

// Reset switches back to call-through mode. Batch operations call it when
// they finish so a later operation never pulls from a stale buffer.
func (a *Adapter) Reset() {
	a.mode = modeCall
	a.buf = nil
	a.cur = 0
}

// SetStream repoints the adapter at a different stream. The process-wide
// default adapter is repointed this way on every generator construction.
func (a *Adapter) SetStream(s Stream) {
	a.stream = s
}

// Stream returns the stream the adapter currently draws from.
func (a *Adapter) Stream() Stream {
	return a.stream
}
