package weather

import "sync"

// Point is a coordinate pair supplied by the user.
type Point struct {
	Lat float64
	Lon float64
}

// Locations remembers each user's coordinates for forecasts and digests.
// The mapping is in-memory only; users re-teach the bot after a restart.
type Locations struct {
	mu sync.RWMutex
	m  map[uint64]Point
}

func NewLocations() *Locations {
	return &Locations{m: make(map[uint64]Point)}
}

func (l *Locations) Set(userID uint64, p Point) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[userID] = p
}

func (l *Locations) Get(userID uint64) (Point, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.m[userID]
	return p, ok
}

// All returns a snapshot of every remembered location.
func (l *Locations) All() map[uint64]Point {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snapshot := make(map[uint64]Point, len(l.m))
	for userID, p := range l.m {
		snapshot[userID] = p
	}
	return snapshot
}
