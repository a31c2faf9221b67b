// Package scheduler manages one-shot timers bound to absolute instants.
package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ndanilko/pomni/pkg/common"
)

// Scheduler holds the set of armed timers, keyed by opaque handle.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func New() *Scheduler {
	return &Scheduler{timers: make(map[string]*time.Timer)}
}

// Arm registers fn to run at the given instant and returns a handle usable
// with Cancel. Instants in the past fire as soon as possible; the callback
// always runs on its own goroutine, never inline with the caller.
func (s *Scheduler) Arm(at time.Time, fn func()) string {
	handle := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	// The callback takes s.mu first, so even an already-due timer cannot
	// observe the map before this entry lands.
	s.timers[handle] = time.AfterFunc(time.Until(at), func() {
		s.fire(handle, fn)
	})
	return handle
}

// Cancel stops the timer behind the handle, best-effort. Unknown handles and
// timers that already fired are a silent no-op, so racing a fire is harmless.
func (s *Scheduler) Cancel(handle string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[handle]; ok {
		timer.Stop()
		delete(s.timers, handle)
	}
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}

// Stop cancels every armed timer. Used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for handle, timer := range s.timers {
		timer.Stop()
		delete(s.timers, handle)
	}
}

// fire claims the handle and runs the callback. If Cancel won the race the
// entry is gone and the callback is never invoked, which keeps the
// cancel-versus-fire outcome to exactly one visible effect.
func (s *Scheduler) fire(handle string, fn func()) {
	s.mu.Lock()
	_, live := s.timers[handle]
	delete(s.timers, handle)
	s.mu.Unlock()

	if !live {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			common.Logger.Error("timer callback panicked:", r)
		}
	}()
	fn()
}
