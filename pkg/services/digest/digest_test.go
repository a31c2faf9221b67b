package digest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndanilko/pomni/pkg/weather"
)

var msk = time.FixedZone("MSK", 3*60*60)

type fakeGateway struct {
	mu   sync.Mutex
	sent map[uint64][]string
}

func (f *fakeGateway) SendDM(userID uint64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sent == nil {
		f.sent = make(map[uint64][]string)
	}
	f.sent[userID] = append(f.sent[userID], text)
	return nil
}

type fakeProvider struct{}

func (fakeProvider) Today(ctx context.Context, lat, lon float64) (*weather.Conditions, error) {
	return &weather.Conditions{Temperature: 21.0, Code: 0}, nil
}

func TestNextSlot(t *testing.T) {
	s := &Service{loc: msk, hours: []int{8, 22}}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"midday picks the evening slot",
			time.Date(2024, 1, 1, 12, 0, 0, 0, msk),
			time.Date(2024, 1, 1, 22, 0, 0, 0, msk),
		},
		{
			"early morning picks the morning slot",
			time.Date(2024, 1, 1, 6, 30, 0, 0, msk),
			time.Date(2024, 1, 1, 8, 0, 0, 0, msk),
		},
		{
			"late evening rolls to tomorrow morning",
			time.Date(2024, 1, 1, 23, 15, 0, 0, msk),
			time.Date(2024, 1, 2, 8, 0, 0, 0, msk),
		},
		{
			"exactly on a slot rolls forward",
			time.Date(2024, 1, 1, 8, 0, 0, 0, msk),
			time.Date(2024, 1, 1, 22, 0, 0, 0, msk),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.nextSlot(tt.now)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestSendReachesEveryKnownLocation(t *testing.T) {
	locations := weather.NewLocations()
	locations.Set(7, weather.Point{Lat: 55.75, Lon: 37.61})
	locations.Set(8, weather.Point{Lat: 59.93, Lon: 30.33})

	gateway := &fakeGateway{}
	s := &Service{
		gateway:   gateway,
		provider:  fakeProvider{},
		locations: locations,
		loc:       msk,
	}

	s.send(8)

	require.Len(t, gateway.sent, 2)
	assert.Contains(t, gateway.sent[7][0], "Good morning")

	s.send(22)
	assert.Contains(t, gateway.sent[7][1], "Good evening")
}

func TestStopTerminatesLoop(t *testing.T) {
	s := Start(&fakeGateway{}, fakeProvider{}, weather.NewLocations(), msk, 8, 22)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
