// Package digest sends the morning and evening weather digests to every user
// with a remembered location.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/ndanilko/pomni/pkg/common"
	"github.com/ndanilko/pomni/pkg/weather"
)

// Gateway delivers digest messages to a user.
type Gateway interface {
	SendDM(userID uint64, text string) error
}

// Service runs the digest loop until Stop is called.
type Service struct {
	gateway   Gateway
	provider  weather.Provider
	locations *weather.Locations
	loc       *time.Location
	hours     []int
	stopped   chan struct{}
}

// Start launches the digest goroutine. The hours are wall-clock hours in the
// reference time zone; the loop sleeps until the nearest one, sends, re-arms.
func Start(gateway Gateway, provider weather.Provider, locations *weather.Locations, loc *time.Location, hours ...int) *Service {
	s := &Service{
		gateway:   gateway,
		provider:  provider,
		locations: locations,
		loc:       loc,
		hours:     hours,
		stopped:   make(chan struct{}),
	}

	go s.run()
	return s
}

func (s *Service) run() {
	for {
		now := time.Now().In(s.loc)
		slot := s.nextSlot(now)
		timer := time.NewTimer(slot.Sub(now))

		select {
		case <-timer.C:
			s.send(slot.Hour())
		case <-s.stopped:
			timer.Stop()
			return
		}
	}
}

// nextSlot returns the earliest upcoming digest instant after now.
func (s *Service) nextSlot(now time.Time) time.Time {
	var next time.Time
	for _, hour := range s.hours {
		slot := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, s.loc)
		if !slot.After(now) {
			slot = slot.AddDate(0, 0, 1)
		}
		if next.IsZero() || slot.Before(next) {
			next = slot
		}
	}
	return next
}

func (s *Service) send(hour int) {
	greeting := "🌙 Good evening!"
	if hour < 12 {
		greeting = "☀️ Good morning!"
	}

	for userID, point := range s.locations.All() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		conditions, err := s.provider.Today(ctx, point.Lat, point.Lon)
		cancel()
		if err != nil {
			common.Logger.Error("digest forecast failed:", err)
			continue
		}

		text := fmt.Sprintf("%s\n\n%s", greeting, weather.Format(conditions))
		if err := s.gateway.SendDM(userID, text); err != nil {
			common.Logger.Error("digest delivery failed:", err)
		}
	}
}

// Stop terminates the digest loop.
func (s *Service) Stop() {
	close(s.stopped)
}
