// Package session holds the single process-wide view of the signed-in
// state. The cache is written only from auth events; every other component
// treats its contents as a hint that the next event may invalidate.
package session

import "sync"

// Session is the identity hint shared across views.
type Session struct {
	LoggedIn bool
	Email    string
	Name     string
}

// Listener receives every session change, including sign-out (zero value
// with LoggedIn false).
type Listener func(Session)

// Cache is the subscription-fed session store.
type Cache struct {
	mu        sync.RWMutex
	current   Session
	listeners map[int]Listener
	nextID    int
}

func NewCache() *Cache {
	return &Cache{listeners: make(map[int]Listener)}
}

// Apply replaces the cached session and notifies subscribers. Only the auth
// event source calls this; nothing else writes the cache.
func (c *Cache) Apply(s Session) {
	c.mu.Lock()
	c.current = s
	listeners := make([]Listener, 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}

// Current returns the last applied session.
func (c *Cache) Current() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Subscribe registers a listener for session changes and returns its
// unsubscribe function.
func (c *Cache) Subscribe(fn Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}
