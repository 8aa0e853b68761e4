package discord

import (
	"log"
	"sync"
	"time"

	"github.com/Givikap120/lazer-go/app/users"
	"github.com/nattawitc/rich-go/client"
)

const (
	DefaultAppID = "367827983903490050"

	queueSize = 16
)

type presenceClient interface {
	Login(appID string) error
	SetActivity(activity client.Activity) error
	Logout()
}

type richClient struct{}

func (richClient) Login(appID string) error {
	return client.Login(appID)
}

func (richClient) SetActivity(activity client.Activity) error {
	return client.SetActivity(activity)
}

func (richClient) Logout() {
	client.Logout()
}

// Presence mirrors user activities to Discord. Updates are sent from a worker goroutine.
type Presence struct {
	appID  string
	client presenceClient

	mu     sync.Mutex
	mode   users.PresenceMode
	closed bool

	startTime time.Time

	queue chan users.Activity
	wg    sync.WaitGroup
}

func Connect(appID string, mode users.PresenceMode) *Presence {
	return newPresence(appID, mode, richClient{})
}

func newPresence(appID string, mode users.PresenceMode, c presenceClient) *Presence {
	presence := &Presence{
		appID:     appID,
		client:    c,
		mode:      mode,
		startTime: time.Now(),
		queue:     make(chan users.Activity, queueSize),
	}

	presence.wg.Add(1)

	go presence.run()

	return presence
}

func (presence *Presence) run() {
	defer presence.wg.Done()

	connected := false

	for activity := range presence.queue {
		mode := presence.Mode()

		if mode == users.PresenceOff {
			if connected {
				presence.client.Logout()
				connected = false
			}

			continue
		}

		if !connected {
			if err := presence.client.Login(presence.appID); err != nil {
				log.Println("Can't connect to discord:", err)
				continue
			}

			log.Println("Connected to discord!")

			connected = true
		}

		if err := presence.client.SetActivity(presence.toRich(activity, mode)); err != nil {
			log.Println("Can't send activity to discord:", err)
		}
	}

	if connected {
		presence.client.Logout()
	}
}

func (presence *Presence) toRich(activity users.Activity, mode users.PresenceMode) client.Activity {
	startTime := presence.startTime

	return client.Activity{
		State:      activity.Status(),
		Details:    activity.Details(mode),
		LargeImage: "osu_logo_lazer",
		LargeText:  "osu!lazer",
		Timestamps: &client.Timestamps{
			Start: &startTime,
		},
	}
}

func (presence *Presence) SetMode(mode users.PresenceMode) {
	presence.mu.Lock()
	presence.mode = mode
	presence.mu.Unlock()
}

func (presence *Presence) Mode() users.PresenceMode {
	presence.mu.Lock()
	defer presence.mu.Unlock()

	return presence.mode
}

// SetActivity queues the activity, dropping it if the worker is too far behind or already disconnected.
func (presence *Presence) SetActivity(activity users.Activity) {
	presence.mu.Lock()
	defer presence.mu.Unlock()

	if presence.closed {
		return
	}

	select {
	case presence.queue <- activity:
	default:
		log.Println("Discord queue is full, skipping activity:", activity.Status())
	}
}

// Disconnect flushes pending activities and logs out.
func (presence *Presence) Disconnect() {
	presence.mu.Lock()

	if presence.closed {
		presence.mu.Unlock()
		return
	}

	presence.closed = true
	close(presence.queue)

	presence.mu.Unlock()

	presence.wg.Wait()
}
