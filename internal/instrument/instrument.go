package instrument

import (
	"fmt"
	"runtime"
	"time"
)

// PhaseStats captures wall-clock time and heap movement for one named phase
// of an analysis run.
type PhaseStats struct {
	Name           string        `json:"name"`
	Duration       time.Duration `json:"duration"`
	HeapAllocBytes uint64        `json:"heap_alloc_bytes"`
	HeapDeltaBytes int64         `json:"heap_delta_bytes"`
}

func (s PhaseStats) String() string {
	return fmt.Sprintf("%s: %.4fs, heap %+.2f MB (now %.2f MB)",
		s.Name,
		s.Duration.Seconds(),
		float64(s.HeapDeltaBytes)/(1024*1024),
		float64(s.HeapAllocBytes)/(1024*1024))
}

// Phase is an in-flight measurement started by Start.
type Phase struct {
	name       string
	start      time.Time
	startAlloc uint64
}

// Start begins measuring a named phase.
func Start(name string) *Phase {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &Phase{name: name, start: time.Now(), startAlloc: m.HeapAlloc}
}

// Stop finishes the measurement.
func (p *Phase) Stop() PhaseStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return PhaseStats{
		Name:           p.name,
		Duration:       time.Since(p.start),
		HeapAllocBytes: m.HeapAlloc,
		HeapDeltaBytes: int64(m.HeapAlloc) - int64(p.startAlloc),
	}
}
