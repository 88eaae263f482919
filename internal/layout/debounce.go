package layout

import "sync"

// Debouncer implements last-write-wins scheduling. Every resize calls Bump and
// schedules work tagged with the returned generation; when the delay expires,
// the work runs only if Current still reports that generation.
//
// The zero value is ready to use.
type Debouncer struct {
	mu  sync.Mutex
	gen uint64
}

// Bump invalidates all pending work and returns the new generation.
func (d *Debouncer) Bump() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	return d.gen
}

// Current reports whether gen is the latest generation.
func (d *Debouncer) Current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return gen == d.gen
}
