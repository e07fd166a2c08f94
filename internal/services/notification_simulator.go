package services

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/armedhealth/armed/internal/models"
)

const defaultArrivalDelay = time.Second

// Pool of synthetic system notifications; one is picked uniformly per
// simulated arrival.
var systemNotificationPool = []struct {
	Title       string
	Description string
}{
	{"Profile Updated", "Your profile was updated successfully."},
	{"Weekly Summary Ready", "Your weekly health summary is available."},
	{"Data Synced", "Your dashboard data was synced across devices."},
	{"Privacy Policy Update", "Our privacy policy has been updated."},
	{"New Insight Available", "Health insights now cover your sleep trends."},
	{"Scheduled Maintenance", "The dashboard will be briefly unavailable tonight at 02:00."},
}

// NotificationSimulator stands in for a backend push channel: shortly
// after the list is cleared it delivers a fresh unread system
// notification. Unlike a bare timer it is cancellable, so nothing fires
// into a torn-down service.
type NotificationSimulator struct {
	notifications NotificationRepository
	delay         time.Duration
	mu            sync.Mutex
	timer         *time.Timer
}

func NewNotificationSimulator(notifications NotificationRepository, delay time.Duration) *NotificationSimulator {
	if delay <= 0 {
		delay = defaultArrivalDelay
	}
	return &NotificationSimulator{
		notifications: notifications,
		delay:         delay,
	}
}

// Start ties the simulator to the application lifecycle: context
// cancellation releases any pending delivery.
func (simulator *NotificationSimulator) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		simulator.Stop()
	}()
}

// Schedule arms a delivery after the configured delay. A second call
// before the timer fires supersedes the first.
func (simulator *NotificationSimulator) Schedule() {
	simulator.mu.Lock()
	defer simulator.mu.Unlock()

	if simulator.timer != nil {
		simulator.timer.Stop()
	}
	simulator.timer = time.AfterFunc(simulator.delay, simulator.deliver)
}

func (simulator *NotificationSimulator) Stop() {
	simulator.mu.Lock()
	defer simulator.mu.Unlock()

	if simulator.timer != nil {
		simulator.timer.Stop()
		simulator.timer = nil
	}
}

func (simulator *NotificationSimulator) deliver() {
	simulator.mu.Lock()
	simulator.timer = nil
	simulator.mu.Unlock()

	pick := systemNotificationPool[rand.Intn(len(systemNotificationPool))]
	notification := models.Notification{
		Type:        models.NotificationSystem,
		Title:       pick.Title,
		Description: pick.Description,
		Read:        false,
		TimeLabel:   "Just now",
	}
	if err := simulator.notifications.Prepend(&notification); err != nil {
		log.Printf("notification simulator: prepend failed: %v", err)
	}
}
