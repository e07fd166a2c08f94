package services

import (
	"sync"
	"time"
)

// DefaultToastDuration unifies the 2s/3s auto-dismiss delays the screens
// previously disagreed on.
const DefaultToastDuration = 3 * time.Second

// Toaster holds at most one transient feedback message. Showing a new
// message replaces the current one outright and re-arms the auto-clear
// timer; there is no queue.
type Toaster struct {
	mu         sync.Mutex
	duration   time.Duration
	message    string
	timer      *time.Timer
	generation uint64
}

func NewToaster(duration time.Duration) *Toaster {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return &Toaster{duration: duration}
}

func (toaster *Toaster) Show(message string) {
	toaster.mu.Lock()
	defer toaster.mu.Unlock()

	if toaster.timer != nil {
		toaster.timer.Stop()
	}
	toaster.message = message
	toaster.generation++

	// The generation check keeps a stale timer that already fired from
	// clearing a message shown after it.
	generation := toaster.generation
	toaster.timer = time.AfterFunc(toaster.duration, func() {
		toaster.clearGeneration(generation)
	})
}

func (toaster *Toaster) Current() string {
	toaster.mu.Lock()
	defer toaster.mu.Unlock()
	return toaster.message
}

func (toaster *Toaster) Dismiss() {
	toaster.mu.Lock()
	defer toaster.mu.Unlock()
	toaster.clearLocked()
}

// Stop releases the pending timer; used on shutdown.
func (toaster *Toaster) Stop() {
	toaster.Dismiss()
}

func (toaster *Toaster) clearGeneration(generation uint64) {
	toaster.mu.Lock()
	defer toaster.mu.Unlock()
	if generation != toaster.generation {
		return
	}
	toaster.clearLocked()
}

func (toaster *Toaster) clearLocked() {
	if toaster.timer != nil {
		toaster.timer.Stop()
		toaster.timer = nil
	}
	toaster.message = ""
	toaster.generation++
}
