package repository

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCooldownCanFire(t *testing.T) {
	base := time.Unix(1700000000, 0)
	cooldown := 60 * time.Second

	tests := []struct {
		name     string
		firedAt  []time.Time
		checkAt  time.Time
		expected bool
	}{
		{
			name:     "never fired",
			checkAt:  base,
			expected: true,
		},
		{
			name:     "inside window",
			firedAt:  []time.Time{base},
			checkAt:  base.Add(30 * time.Second),
			expected: false,
		},
		{
			name:     "one second before window closes",
			firedAt:  []time.Time{base},
			checkAt:  base.Add(59 * time.Second),
			expected: false,
		},
		{
			name:     "exactly at window boundary",
			firedAt:  []time.Time{base},
			checkAt:  base.Add(60 * time.Second),
			expected: true,
		},
		{
			name:     "after window",
			firedAt:  []time.Time{base},
			checkAt:  base.Add(61 * time.Second),
			expected: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := NewCooldownRepository()
			for _, at := range test.firedAt {
				repo.MarkFired(1, 1, at)
			}

			if got := repo.CanFire(1, 1, cooldown, test.checkAt); got != test.expected {
				t.Errorf("CanFire at %v: expected %v, got %v", test.checkAt, test.expected, got)
			}
		})
	}
}

func TestCooldownKeysAreIndependent(t *testing.T) {
	repo := NewCooldownRepository()
	base := time.Unix(1700000000, 0)
	cooldown := 60 * time.Second

	if !repo.Admit(1, 1, cooldown, base) {
		t.Fatal("first fire should be admitted")
	}

	if !repo.CanFire(1, 2, cooldown, base) {
		t.Error("different trigger in the same chat should be unaffected")
	}
	if !repo.CanFire(2, 1, cooldown, base) {
		t.Error("same trigger in a different chat should be unaffected")
	}
	if repo.CanFire(1, 1, cooldown, base.Add(time.Second)) {
		t.Error("fired key should be on cooldown")
	}
}

func TestCooldownMarkFiredNeverMovesBackwards(t *testing.T) {
	repo := NewCooldownRepository()
	base := time.Unix(1700000000, 0)
	cooldown := 60 * time.Second

	repo.MarkFired(1, 1, base)
	// A delayed message with an older timestamp must not shorten the
	// effective window.
	repo.MarkFired(1, 1, base.Add(-30*time.Second))

	if repo.CanFire(1, 1, cooldown, base.Add(45*time.Second)) {
		t.Error("stale mark moved the recorded fire time backwards")
	}
	if !repo.CanFire(1, 1, cooldown, base.Add(60*time.Second)) {
		t.Error("window should still close relative to the newest mark")
	}
}

func TestCooldownConcurrentAdmissions(t *testing.T) {
	repo := NewCooldownRepository()
	base := time.Unix(1700000000, 0)
	cooldown := 60 * time.Second

	const attempts = 100

	var admitted int64
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(i int) {
			defer wg.Done()
			// Nearly identical timestamps racing for the same key.
			at := base.Add(time.Duration(i) * time.Millisecond)
			if repo.Admit(7, 3, cooldown, at) {
				atomic.AddInt64(&admitted, 1)
			}
		}(i)
	}
	wg.Wait()

	if admitted != 1 {
		t.Errorf("expected exactly one admission per window, got %d", admitted)
	}
}
