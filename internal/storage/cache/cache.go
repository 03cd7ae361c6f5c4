package cache

import (
	"sync"

	"github.com/DanRulev/triviabot/internal/service"
)

// Session is the live quiz of one user plus what the bot needs to render it.
type Session struct {
	Attempt     service.Attempt
	ChatID      int64
	MessageID   int
	Recorded    bool
	Unsubscribe func()
}

type Cache struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]*Session),
	}
}

// SetSession stores s and returns the session it replaced, if any.
func (c *Cache) SetSession(userID int64, s *Session) (*Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev, exists := c.sessions[userID]
	c.sessions[userID] = s
	return prev, exists
}

func (c *Cache) GetSession(userID int64) (*Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[userID]
	return s, exists
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}
