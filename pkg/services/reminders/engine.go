// Package reminders orchestrates the time parser, the store, the scheduler
// and the messaging gateway into the reminder engine.
package reminders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ndanilko/pomni/pkg/common"
	"github.com/ndanilko/pomni/pkg/models"
	"github.com/ndanilko/pomni/pkg/scheduler"
	"github.com/ndanilko/pomni/pkg/store"
	"github.com/ndanilko/pomni/pkg/timeparse"
)

// Gateway delivers outbound notifications to a user.
// Implementations wrap the chat transport; the engine never sees its wire format.
type Gateway interface {
	SendDM(userID uint64, text string) error
}

// Separator splits the reminder body from its time phrase in raw input.
const Separator = "!"

var (
	// ErrBadFormat means the raw input carried no separator.
	ErrBadFormat = errors.New("missing separator between reminder text and time phrase")
	// ErrUnrecognizedTime means the time phrase matched no grammar rule.
	ErrUnrecognizedTime = errors.New("time phrase not recognized")
)

// Lead-time bounds applied to every parsed instant.
const (
	minLead = time.Minute
	maxLead = 365 * 24 * time.Hour
)

// Engine owns the reminder lifecycle: create, cancel, fire, recover.
type Engine struct {
	store   *store.Store
	sched   *scheduler.Scheduler
	gateway Gateway
	now     func() time.Time
}

func New(st *store.Store, sched *scheduler.Scheduler, gateway Gateway, loc *time.Location) *Engine {
	return &Engine{
		store:   st,
		sched:   sched,
		gateway: gateway,
		now:     func() time.Time { return time.Now().In(loc) },
	}
}

// CreateResult reports the registered reminder together with any clamping
// that was applied to the requested instant.
type CreateResult struct {
	ID          int
	Text        string
	Time        time.Time
	Adjustments []string
}

// Create registers a reminder from raw user input of the form "text ! phrase".
// The parsed instant is clamped to at least one minute and at most one year
// ahead; each applied clamp is surfaced in the result.
func (e *Engine) Create(userID uint64, raw string) (*CreateResult, error) {
	body, phrase, found := strings.Cut(raw, Separator)
	if !found {
		return nil, ErrBadFormat
	}
	body = strings.TrimSpace(body)
	phrase = strings.TrimSpace(phrase)

	now := e.now()
	at, ok := timeparse.Parse(phrase, now)
	if !ok {
		return nil, ErrUnrecognizedTime
	}

	result := &CreateResult{Text: body}
	if at.Before(now.Add(minLead)) {
		at = now.Add(minLead)
		result.Adjustments = append(result.Adjustments, "The minimum lead time is 1 minute, scheduling in 1 minute.")
	}
	if at.After(now.Add(maxLead)) {
		at = now.Add(maxLead)
		result.Adjustments = append(result.Adjustments, "The maximum lead time is 1 year, scheduling in 1 year.")
	}

	id, err := e.store.Append(userID, body, at)
	if err != nil {
		return nil, err
	}

	jobID := e.sched.Arm(at, func() { e.onFire(userID, body, id) })
	if err := e.store.SetJobID(userID, id, jobID); err != nil {
		// The reminder is live either way; recovery mints a fresh handle anyway.
		common.Logger.Warn("failed to persist scheduler handle:", err)
	}

	result.ID = id
	result.Time = at
	return result, nil
}

// Cancel removes a reminder and stops its timer, best-effort.
// It reports whether the reminder existed.
func (e *Engine) Cancel(userID uint64, id int) bool {
	for _, r := range e.store.List(userID) {
		if r.ID != id {
			continue
		}
		if r.JobID != "" {
			e.sched.Cancel(r.JobID)
		}
		if err := e.store.Remove(userID, id); err != nil {
			common.Logger.Error("failed to remove cancelled reminder:", err)
		}
		return true
	}
	return false
}

// List returns the user's pending reminders in insertion order.
func (e *Engine) List(userID uint64) []models.Reminder {
	return e.store.List(userID)
}

// onFire runs from the armed timer: deliver, then drop the record.
// Delivery is at-most-once: the record goes away even when the send failed.
func (e *Engine) onFire(userID uint64, text string, id int) {
	if err := e.gateway.SendDM(userID, fmt.Sprintf("⏰ Reminder fired: %s", text)); err != nil {
		common.Logger.Error("reminder delivery failed:", err)
	}
	if err := e.store.Remove(userID, id); err != nil {
		common.Logger.Error("failed to remove fired reminder:", err)
	}
}

// Recover replays the store into the scheduler after a restart. Reminders
// whose instant is still ahead are re-armed with a freshly minted handle;
// instants that passed while the process was down are dropped undelivered.
// It runs once, after Load and before the bot serves traffic.
func (e *Engine) Recover() (restored, dropped int) {
	now := e.now()

	for userID, reminders := range e.store.All() {
		for _, r := range reminders {
			if !r.Time.After(now) {
				if err := e.store.Remove(userID, r.ID); err != nil {
					common.Logger.Error("failed to drop stale reminder:", err)
				}
				dropped++
				continue
			}

			uid, text, id := userID, r.Text, r.ID
			jobID := e.sched.Arm(r.Time, func() { e.onFire(uid, text, id) })
			if err := e.store.SetJobID(uid, id, jobID); err != nil {
				common.Logger.Warn("failed to persist recovered scheduler handle:", err)
			}
			restored++
		}
	}

	common.Logger.Info(fmt.Sprintf("recovery complete: %d restored, %d dropped", restored, dropped))
	return restored, dropped
}
