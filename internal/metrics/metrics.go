package metrics

import (
	"sync"
	"time"
)

type backendStats struct {
	reads       int
	readErrors  int
	writes      int
	writeErrors int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about store and catalog
// activity. It is intentionally simple so it can be swapped for a real
// backend later; when OTel instruments are attached the same calls also
// export.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*backendStats
	ops   map[string]int
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*backendStats),
		ops:   make(map[string]int),
		otel:  otel,
	}
}

// RecordStoreRead counts a backend load and its outcome.
func (r *Recorder) RecordStoreRead(backend string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(backend)
	r.mu.Lock()
	stats.reads++
	stats.lastLatency = duration
	if err != nil {
		stats.readErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStoreOp(backend, "read", duration, err)
	}
}

// RecordStoreWrite counts a backend save and its outcome.
func (r *Recorder) RecordStoreWrite(backend string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(backend)
	r.mu.Lock()
	stats.writes++
	stats.lastLatency = duration
	if err != nil {
		stats.writeErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStoreOp(backend, "write", duration, err)
	}
}

// RecordCatalogOp counts a completed catalog mutation or lookup by name
// (create, update, delete, list, get).
func (r *Recorder) RecordCatalogOp(op string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ops[op]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCatalogOp(op)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// StoreReads returns the total loads recorded for a backend.
func (r *Recorder) StoreReads(backend string) int {
	return r.Snapshot(backend).Reads
}

// StoreWrites returns the total saves recorded for a backend.
func (r *Recorder) StoreWrites(backend string) int {
	return r.Snapshot(backend).Writes
}

// StoreWriteErrors returns the failed saves recorded for a backend.
func (r *Recorder) StoreWriteErrors(backend string) int {
	return r.Snapshot(backend).WriteErrors
}

// CatalogOps returns how many times the named catalog operation completed.
func (r *Recorder) CatalogOps(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ops[op]
}

// Snapshot is a copy of the current stats for one backend.
type Snapshot struct {
	Reads       int
	ReadErrors  int
	Writes      int
	WriteErrors int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(backend string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[backend]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Reads:       stats.reads,
		ReadErrors:  stats.readErrors,
		Writes:      stats.writes,
		WriteErrors: stats.writeErrors,
		LastLatency: stats.lastLatency,
	}
}

func (r *Recorder) ensureStats(backend string) *backendStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[backend]
	if !ok {
		stats = &backendStats{}
		r.stats[backend] = stats
	}
	return stats
}
