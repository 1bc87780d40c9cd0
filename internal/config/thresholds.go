package config

import "runtime"

// EffectiveWorkers resolves the batch parallelism: an explicit -workers
// value wins, otherwise it is estimated from the CPU count.
func (c AppConfig) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return EstimateBatchWorkers()
}

// EstimateBatchWorkers picks a worker count for independent scalar
// multiplications. Each worker keeps a few hundred live Nat values, so
// beyond 16 cores the allocator rather than the CPU becomes the limit.
func EstimateBatchWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return numCPU
	case numCPU <= 16:
		return numCPU - 1 // leave a core for the progress display
	default:
		return 16
	}
}
