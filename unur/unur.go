//go:build !ios && !android && (amd64 || arm64)

// Package unur provides bindings to the UNURAN non-uniform random variate
// generation library. It implements the engine contracts on top of UNURAN's
// string API and generic URNG interface: generators are built with
// unur_str2gen and pull their uniforms through callbacks that cross back
// into Go.
package unur

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/unurgo/engine"
	"github.com/obinnaokechukwu/unurgo/internal/bindings"
	"github.com/obinnaokechukwu/unurgo/internal/handles"
)

// Function bindings - registered on the first Load().
var (
	unurStr2Gen      func(spec string) uintptr
	unurFree         func(gen uintptr)
	unurSampleDiscr  func(gen uintptr) int32
	unurSampleCont   func(gen uintptr) float64
	unurSampleVec    func(gen uintptr, vec unsafe.Pointer) int32
	unurGetDimension func(gen uintptr) int32
	unurGetDistr     func(gen uintptr) uintptr
	unurDistrGetType func(distr uintptr) uint32

	unurURNGNew        func(sampler uintptr, state uintptr) uintptr
	unurURNGFree       func(urng uintptr) int32
	unurChgURNG        func(gen uintptr, urng uintptr) int32
	unurChgURNGAux     func(gen uintptr, urng uintptr) int32
	unurSetDefaultURNG func(urng uintptr) uintptr

	unurGetStrerror     func(code int32) string
	unurSetErrorHandler func(handler uintptr) uintptr

	// Address of the global unur_errno variable.
	unurErrnoAddr uintptr

	registerOnce sync.Once
	registerErr  error
)

// Load loads the UNURAN shared library and registers all function bindings.
// It is safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	registerOnce.Do(func() {
		if registerErr = bindings.Load(); registerErr != nil {
			return
		}
		lib := bindings.LibUnuran()

		purego.RegisterLibFunc(&unurStr2Gen, lib, "unur_str2gen")
		purego.RegisterLibFunc(&unurFree, lib, "unur_free")
		purego.RegisterLibFunc(&unurSampleDiscr, lib, "unur_sample_discr")
		purego.RegisterLibFunc(&unurSampleCont, lib, "unur_sample_cont")
		purego.RegisterLibFunc(&unurSampleVec, lib, "unur_sample_vec")
		purego.RegisterLibFunc(&unurGetDimension, lib, "unur_get_dimension")
		purego.RegisterLibFunc(&unurGetDistr, lib, "unur_get_distr")
		purego.RegisterLibFunc(&unurDistrGetType, lib, "unur_distr_get_type")

		purego.RegisterLibFunc(&unurURNGNew, lib, "unur_urng_new")
		purego.RegisterLibFunc(&unurURNGFree, lib, "unur_urng_free")
		purego.RegisterLibFunc(&unurChgURNG, lib, "unur_chg_urng")
		purego.RegisterLibFunc(&unurChgURNGAux, lib, "unur_chg_urng_aux")
		purego.RegisterLibFunc(&unurSetDefaultURNG, lib, "unur_set_default_urng")

		purego.RegisterLibFunc(&unurGetStrerror, lib, "unur_get_strerror")
		purego.RegisterLibFunc(&unurSetErrorHandler, lib, "unur_set_error_handler")

		if addr, err := purego.Dlsym(lib, "unur_errno"); err == nil {
			unurErrnoAddr = addr
		}
	})
	return registerErr
}

// IsLoaded returns true if the UNURAN library has been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// The uniform sampler callback handed to unur_urng_new. UNURAN passes back
// the opaque state pointer, which is a handle table id for the bound Source.
// One pre-registered trampoline serves every URNG object.
var (
	unifCallbackOnce sync.Once
	unifCallbackPtr  uintptr
)

func unifCallback() uintptr {
	unifCallbackOnce.Do(func() {
		unifCallbackPtr = purego.NewCallback(unifTrampoline)
	})
	return unifCallbackPtr
}

// unifTrampoline is invoked by UNURAN whenever the engine needs a uniform.
// Signature: double (*sampler)(void *state)
func unifTrampoline(state uintptr) float64 {
	src, ok := handles.Lookup(state).(engine.Source)
	if !ok {
		// The handle was unregistered while native code could still call
		// back. A neutral value is the only answer that does not crash
		// the native stack.
		return 0.5
	}
	return src.Pull()
}

// urngRef ties one native UNUR_URNG object to the handle id its callback
// state points at. Both are released together.
type urngRef struct {
	ptr    uintptr
	handle uintptr
}

func newURNG(s engine.Source) (*urngRef, error) {
	id := handles.Register(s)
	ptr := unurURNGNew(unifCallback(), id)
	if ptr == 0 {
		handles.Unregister(id)
		return nil, newError("unur_urng_new")
	}
	return &urngRef{ptr: ptr, handle: id}, nil
}

func (u *urngRef) free() {
	if u == nil || u.ptr == 0 {
		return
	}
	unurURNGFree(u.ptr)
	handles.Unregister(u.handle)
	u.ptr = 0
}

// Engine implements the engine.Engine contract over the native UNURAN
// library. The zero value is ready to use; every method loads the library
// on first need.
type Engine struct{}

var defaultEngine = &Engine{}

// DefaultEngine returns the shared native engine instance.
func DefaultEngine() *Engine {
	return defaultEngine
}

// NewGenerator builds a generator from a UNURAN string API description such
// as "distr=normal(0,1) & method=tdr". On failure the returned error carries
// UNURAN's own diagnostic text.
//
// UNURAN may already sample during setup (method tables, hat functions), so
// a default uniform source should be installed via SetDefaultSource before
// the first call.
func (e *Engine) NewGenerator(spec string) (engine.Generator, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	g := unurStr2Gen(spec)
	if g == 0 {
		return nil, newError("unur_str2gen")
	}
	return &generator{gen: g}, nil
}

// The engine-wide default URNG. Created once; later SetDefaultSource calls
// only swap the box target so the native side never sees a new object.
var (
	defaultMu     sync.Mutex
	defaultURNG   uintptr
	defaultHandle uintptr
	defaultBox    *sourceBox
)

type sourceBox struct {
	src engine.Source
}

func (b *sourceBox) Pull() float64 {
	return b.src.Pull()
}

// SetDefaultSource installs s as UNURAN's global fallback uniform source
// (unur_set_default_urng). Generator setup work samples from it before any
// per-generator source is bound.
func (e *Engine) SetDefaultSource(s engine.Source) error {
	if err := Load(); err != nil {
		return err
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultURNG != 0 {
		defaultBox.src = s
		return nil
	}

	box := &sourceBox{src: s}
	id := handles.Register(box)
	ptr := unurURNGNew(unifCallback(), id)
	if ptr == 0 {
		handles.Unregister(id)
		return newError("unur_urng_new")
	}
	unurSetDefaultURNG(ptr)

	defaultURNG = ptr
	defaultHandle = id
	defaultBox = box
	return nil
}

// generator wraps one native UNUR_GEN instance plus the URNG objects
// created for its source bindings.
type generator struct {
	gen  uintptr
	urng [2]*urngRef // indexed by engine.Slot
}

func (g *generator) SampleDiscrete() int {
	return int(unurSampleDiscr(g.gen))
}

func (g *generator) SampleContinuous() float64 {
	return unurSampleCont(g.gen)
}

func (g *generator) SampleVector(dst []float64) {
	unurSampleVec(g.gen, unsafe.Pointer(&dst[0]))
}

func (g *generator) Dimension() int {
	return int(unurGetDimension(g.gen))
}

func (g *generator) Class() engine.Class {
	distr := unurGetDistr(g.gen)
	if distr == 0 {
		return 0
	}
	return engine.Class(unurDistrGetType(distr))
}

// BindSource wraps s in a native URNG object and attaches it to the given
// slot, replacing and freeing any previous binding for that slot.
func (g *generator) BindSource(s engine.Source, slot engine.Slot) error {
	ref, err := newURNG(s)
	if err != nil {
		return err
	}

	var rc int32
	op := "unur_chg_urng"
	switch slot {
	case engine.Auxiliary:
		rc = unurChgURNGAux(g.gen, ref.ptr)
		op = "unur_chg_urng_aux"
	default:
		rc = unurChgURNG(g.gen, ref.ptr)
	}
	if rc != success {
		ref.free()
		return newError(op)
	}

	g.urng[slot].free()
	g.urng[slot] = ref
	return nil
}

// Destroy releases the URNG objects (auxiliary first, then primary) and
// finally the generator itself.
func (g *generator) Destroy() {
	if g.gen == 0 {
		return
	}
	g.urng[engine.Auxiliary].free()
	g.urng[engine.Primary].free()
	unurFree(g.gen)
	g.gen = 0
}

// goString converts a NUL-terminated C string to a Go string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	for i := 0; i < 4096; i++ {
		b := *(*byte)(unsafe.Pointer(p + uintptr(i)))
		if b == 0 {
			return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), i))
		}
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), 4096))
}
