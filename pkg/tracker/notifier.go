package tracker

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"
)

// Notifier delivers non-blocking offer notifications in the background.
// Contact form submissions must succeed even when the tracker is down,
// so callers enqueue and move on; failures surface on the Errors channel.
type Notifier struct {
	client  *Client
	tasks   chan offerTask
	errs    chan error
	wg      sync.WaitGroup
	closed  bool
	mu      sync.Mutex
	timeout time.Duration
}

type offerTask struct {
	offerID string
	params  url.Values
}

// NewNotifier starts a notifier with the given queue size and worker count.
func NewNotifier(client *Client, buffer, workers int) *Notifier {
	if buffer <= 0 {
		buffer = 64
	}
	if workers <= 0 {
		workers = 1
	}

	n := &Notifier{
		client:  client,
		tasks:   make(chan offerTask, buffer),
		errs:    make(chan error, buffer),
		timeout: 5 * time.Second,
	}
	for i := 0; i < workers; i++ {
		n.wg.Add(1)
		go n.worker()
	}
	return n
}

// NotifyOffer enqueues an offer notification. Returns false when the
// queue is full or the notifier is closed; the submission still counts
// as accepted either way.
func (n *Notifier) NotifyOffer(offerID string, params url.Values) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return false
	}

	select {
	case n.tasks <- offerTask{offerID: offerID, params: params}:
		return true
	default:
		log.Printf("[NOTIFIER] queue full, dropping offer %s notification", offerID)
		return false
	}
}

// Errors exposes delivery failures for logging and metrics. The channel
// is buffered; when nobody drains it, new errors are dropped rather than
// blocking the workers.
func (n *Notifier) Errors() <-chan error {
	return n.errs
}

// Close drains the queue, waits for in-flight deliveries and closes the
// error channel.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.tasks)
	n.wg.Wait()
	close(n.errs)
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for task := range n.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		result := n.client.SendOffer(ctx, task.offerID, task.params)
		cancel()

		if !result.Success {
			log.Printf("[NOTIFIER] offer %s notification failed (non-critical): %s", task.offerID, result.Message)
			select {
			case n.errs <- fmt.Errorf("offer %s notification failed: status %d", task.offerID, result.StatusCode):
			default:
			}
		}
	}
}
