package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier re-announces an ongoing activity to the chat transport.
type Notifier interface {
	SendAction(chatID int64, action string) error
}

// Handle identifies one running indicator job.
type Handle struct {
	Key string
}

// Controller runs repeating "still working on it" signals. Every job key
// carries a fresh uuid, so two concurrent operations on the same chat
// never cancel each other's indicator.
type Controller struct {
	notifier Notifier
	period   time.Duration
	log      *zap.SugaredLogger

	mu   sync.Mutex
	jobs map[string]context.CancelFunc
}

func NewController(notifier Notifier, period time.Duration, log *zap.SugaredLogger) *Controller {
	return &Controller{
		notifier: notifier,
		period:   period,
		log:      log,
		jobs:     make(map[string]context.CancelFunc),
	}
}

// Start fires the action immediately and then on every period tick until
// Stop is called with the returned handle.
func (c *Controller) Start(chatID int64, action string) *Handle {
	key := fmt.Sprintf("%s_%d_%s", action, chatID, uuid.NewString())
	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.jobs[key] = cancel
	c.mu.Unlock()

	go c.run(ctx, chatID, action, key)
	return &Handle{Key: key}
}

// Stop cancels the job. Safe to call more than once per handle.
func (c *Controller) Stop(h *Handle) {
	if h == nil {
		return
	}
	c.mu.Lock()
	cancel, ok := c.jobs[h.Key]
	if ok {
		delete(c.jobs, h.Key)
	}
	c.mu.Unlock()

	if ok {
		cancel()
	}
}

// Active reports how many indicator jobs are currently registered.
func (c *Controller) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.jobs)
}

func (c *Controller) run(ctx context.Context, chatID int64, action, key string) {
	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	for {
		if err := c.notifier.SendAction(chatID, action); err != nil {
			c.log.Warnw("indicator send fail", "key", key, "err", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
