package terminal

import "sync"

// Coalescer keeps at most one queued event-loop task per key. Posting
// again before the task runs replaces its body, so a burst of config
// reloads or resizes costs one pass on the loop.
type Coalescer struct {
	mu      sync.Mutex
	latest  map[string]func()
	post    func(func()) error
	stopped bool
}

// NewCoalescer wraps post, usually App.Post. It panics on a nil post.
func NewCoalescer(post func(func()) error) *Coalescer {
	if post == nil {
		panic("terminal.NewCoalescer: nil post func")
	}
	return &Coalescer{latest: make(map[string]func()), post: post}
}

// Post schedules fn under key. Only the last fn posted for a key before
// the loop gets to it runs.
func (c *Coalescer) Post(key string, fn func()) error {
	if fn == nil {
		return nil
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return nil
	}
	_, queued := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()
	if queued {
		return nil
	}

	if err := c.post(func() { c.run(key) }); err != nil {
		c.mu.Lock()
		delete(c.latest, key)
		c.mu.Unlock()
		return err
	}
	return nil
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	stopped := c.stopped
	c.mu.Unlock()

	if ok && !stopped {
		fn()
	}
}

// Stop drops queued work. Later posts are ignored.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	c.stopped = true
	clear(c.latest)
	c.mu.Unlock()
}
