// ABOUTME: Process-wide default collector with explicit Init/Finish bookends
// ABOUTME: Thin wrappers over an explicit Collector handle

package gc

// inst is the default collector between Init and Finish.
var inst *Collector

// Init creates the process-wide default collector. The conventional
// effort is 1. Init panics if a default collector already exists.
func Init(effort float64) {
	if inst != nil {
		panic("gc: Init called twice")
	}
	inst = New(effort)
}

// Finish closes the default collector, finalizing and freeing every
// live block, and clears it so Init may be called again. Finish panics
// without a matching Init.
func Finish() {
	if inst == nil {
		panic("gc: Finish without Init")
	}
	inst.Close()
	inst = nil
}

// Default returns the collector created by Init, or nil.
func Default() *Collector { return inst }

// NumBlocks reports the default collector's live block count.
func NumBlocks() int { return inst.NumBlocks() }

// Effort reads the default collector's pacing multiplier.
func Effort() float64 { return inst.Effort() }

// SetEffort tunes the default collector's pacing multiplier.
func SetEffort(e float64) { inst.SetEffort(e) }
