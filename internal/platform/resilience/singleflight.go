package resilience

import "sync"

// SingleFlight runs one call per key at a time; concurrent callers for the
// same key wait and share the leader's result. The zero value is ready to
// use. Slide building uses it so every display client hitting the same
// auction shares one computation.
type SingleFlight struct {
	mu       sync.Mutex
	inFlight map[string]*flight
}

type flight struct {
	done sync.WaitGroup
	val  any
	err  error
}

// Do returns the shared result and whether this caller joined an existing
// flight instead of leading one.
func (sf *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	sf.mu.Lock()
	if sf.inFlight == nil {
		sf.inFlight = make(map[string]*flight)
	}

	if f, ok := sf.inFlight[key]; ok {
		sf.mu.Unlock()
		f.done.Wait()
		return f.val, f.err, true
	}

	f := &flight{}
	f.done.Add(1)
	sf.inFlight[key] = f
	sf.mu.Unlock()

	f.val, f.err = fn()
	f.done.Done()

	sf.mu.Lock()
	delete(sf.inFlight, key)
	sf.mu.Unlock()

	return f.val, f.err, false
}
