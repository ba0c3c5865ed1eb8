package repository

import (
	"sync"
	"time"
)

type cooldownKey struct {
	chatID    int64
	triggerID int64
}

// cooldownRepository records the last admitted fire per (chat, trigger)
// pair. Keys are never evicted; cardinality is bounded by chats × triggers.
type cooldownRepository struct {
	mu        sync.Mutex
	lastFired map[cooldownKey]time.Time
}

func NewCooldownRepository() *cooldownRepository {
	return &cooldownRepository{
		lastFired: make(map[cooldownKey]time.Time),
	}
}

// CanFire reports whether a fire at time at would be admitted. It does not
// record anything; use Admit for the dispatch path.
func (c *cooldownRepository) CanFire(chatID, triggerID int64, cooldown time.Duration, at time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.canFire(cooldownKey{chatID, triggerID}, cooldown, at)
}

// MarkFired records a fire at time at. The recorded time never moves
// backwards, so a late-arriving message with an older timestamp cannot
// shorten the effective window.
func (c *cooldownRepository) MarkFired(chatID, triggerID int64, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.markFired(cooldownKey{chatID, triggerID}, at)
}

// Admit runs the CanFire check and, on success, marks the fire — as a
// single critical section. Two concurrent dispatches for the same
// (chat, trigger) within one window can never both be admitted.
func (c *cooldownRepository) Admit(chatID, triggerID int64, cooldown time.Duration, at time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cooldownKey{chatID, triggerID}
	if !c.canFire(key, cooldown, at) {
		return false
	}
	c.markFired(key, at)
	return true
}

func (c *cooldownRepository) canFire(key cooldownKey, cooldown time.Duration, at time.Time) bool {
	last, ok := c.lastFired[key]
	if !ok {
		return true
	}
	return at.Sub(last) >= cooldown
}

func (c *cooldownRepository) markFired(key cooldownKey, at time.Time) {
	if last, ok := c.lastFired[key]; ok && at.Before(last) {
		return
	}
	c.lastFired[key] = at
}
