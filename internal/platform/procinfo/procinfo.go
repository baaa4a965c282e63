// Package procinfo reports read-only observations of the running process:
// how long it has been up and how much heap it holds.
package procinfo

import (
	"fmt"
	"math"
	"runtime"
	"time"
)

// processStart approximates the process start time; package initialisation
// runs before main.
var processStart = time.Now()

// MemoryStats is a heap snapshot in bytes.
type MemoryStats struct {
	// HeapUsed is memory occupied by live and not yet swept heap objects.
	HeapUsed uint64
	// HeapTotal is heap memory obtained from the operating system.
	HeapTotal uint64
}

// Monitor reads uptime and memory figures. The zero value is not usable; call New.
type Monitor struct {
	started    time.Time
	now        func() time.Time
	readMemory func() MemoryStats
}

// Option customises a Monitor.
type Option func(*Monitor)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// WithStartTime overrides the process start reference.
func WithStartTime(t time.Time) Option {
	return func(m *Monitor) { m.started = t }
}

// WithMemoryReader replaces the runtime.MemStats reader.
func WithMemoryReader(read func() MemoryStats) Option {
	return func(m *Monitor) { m.readMemory = read }
}

// New returns a Monitor measuring from process start.
func New(opts ...Option) *Monitor {
	m := &Monitor{
		started:    processStart,
		now:        time.Now,
		readMemory: readRuntimeMemory,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Now returns the monitor's current time.
func (m *Monitor) Now() time.Time {
	return m.now()
}

// StartedAt returns the start reference uptime is measured from.
func (m *Monitor) StartedAt() time.Time {
	return m.started
}

// Uptime returns whole seconds since start, rounded down and never negative.
// With the default clock the difference uses the monotonic reading, so
// successive calls never go backwards.
func (m *Monitor) Uptime() int64 {
	elapsed := m.now().Sub(m.started)
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / time.Second)
}

// Memory returns the current heap snapshot.
func (m *Monitor) Memory() MemoryStats {
	return m.readMemory()
}

func readRuntimeMemory() MemoryStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return MemoryStats{HeapUsed: ms.HeapAlloc, HeapTotal: ms.HeapSys}
}

// FormatMegabytes renders bytes as whole megabytes, e.g. "12 MB".
// Halves round up.
func FormatMegabytes(b uint64) string {
	return fmt.Sprintf("%d MB", uint64(math.Round(float64(b)/1024/1024)))
}
