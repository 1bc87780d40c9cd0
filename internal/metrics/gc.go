package metrics

import (
	"math"
	"runtime/debug"

	"github.com/agbru/ecccalc/internal/logging"
)

// GCMode controls the garbage collector behavior during a scalar batch.
type GCMode string

const (
	GCModeAuto       GCMode = "auto"
	GCModeAggressive GCMode = "aggressive"
	GCModeDisabled   GCMode = "disabled"
)

// GCAutoThreshold is the minimum batch size for auto GC control to activate.
const GCAutoThreshold = 64

// GCController suspends Go's garbage collector while a batch of scalar
// multiplications runs and restores it afterward. A soft memory limit of
// three times the process footprint stays in place while GC is off.
type GCController struct {
	mode              GCMode
	active            bool
	originalGCPercent int
	collector         *MemoryCollector
	logger            logging.Logger
	start, end        MemorySnapshot
}

// NewGCController creates a GC controller for the given mode and batch size.
// "disabled" means GC control is disabled, not the collector.
func NewGCController(mode string, batchSize int, logger logging.Logger) *GCController {
	gc := &GCController{mode: GCMode(mode), collector: NewMemoryCollector(), logger: logger}
	switch gc.mode {
	case GCModeAggressive:
		gc.active = true
	case GCModeAuto:
		gc.active = batchSize >= GCAutoThreshold
	}
	return gc
}

// Active reports whether Begin will suspend the collector.
func (gc *GCController) Active() bool { return gc.active }

// Begin disables GC if the controller is active.
func (gc *GCController) Begin() {
	if !gc.active {
		return
	}
	gc.start = gc.collector.Snapshot()
	gc.originalGCPercent = debug.SetGCPercent(-1)
	if limit := int64(float64(gc.start.Sys) * 3); limit > 0 {
		debug.SetMemoryLimit(limit)
	}
	if gc.logger != nil {
		gc.logger.Debug("gc disabled",
			logging.String("mode", string(gc.mode)),
			logging.Uint64("heap_alloc_bytes", gc.start.HeapAlloc))
	}
}

// End restores the original GC settings and triggers a collection.
func (gc *GCController) End() {
	if !gc.active {
		return
	}
	gc.end = gc.collector.Snapshot()
	debug.SetGCPercent(gc.originalGCPercent)
	debug.SetMemoryLimit(math.MaxInt64)
	if gc.logger != nil {
		delta := gc.end.Since(gc.start)
		gc.logger.Debug("gc re-enabled",
			logging.String("mode", string(gc.mode)),
			logging.Uint64("heap_alloc_bytes", gc.end.HeapAlloc),
			logging.Uint64("total_alloc_bytes", delta.Bytes),
			logging.Int("gc_cycles", int(delta.GCs)))
	}
}

// Stats returns the allocation activity between Begin and End. It is zero
// for an inactive controller.
func (gc *GCController) Stats() AllocDelta {
	if !gc.active {
		return AllocDelta{}
	}
	return gc.end.Since(gc.start)
}
