package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

// clipboardEventBuffer is how many events may queue before new ones are
// dropped.
const clipboardEventBuffer = 16

type clipboardScheduler struct {
	clipboard adapter.Clipboard
	logger    *logger.Logger

	now       func() time.Time
	afterFunc afterFunc

	mu          sync.Mutex
	initialized bool
	disposed    bool
	lastCopied  string
	pending     bool
	// gen identifies the live clear job; a timer carrying an older value
	// was superseded and does nothing.
	gen       uint64
	stopTimer func() bool
	events    chan models.ClipboardEvent
}

// NewClipboardScheduler returns a [ClipboardScheduler] writing to cb. It must
// be initialized with Init before use and released with Dispose.
func NewClipboardScheduler(cb adapter.Clipboard, log *logger.Logger) ClipboardScheduler {
	return &clipboardScheduler{
		clipboard: cb,
		logger:    log.WithComponent("clipboard"),
		now:       time.Now,
		afterFunc: timeAfterFunc,
		events:    make(chan models.ClipboardEvent, clipboardEventBuffer),
	}
}

func (c *clipboardScheduler) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.disposed {
		c.initialized = true
	}
}

func (c *clipboardScheduler) Copy(value string, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.usableLocked(); err != nil {
		return err
	}

	c.cancelLocked()

	if err := c.clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	// Only a copy with a clear job is owned; ForceClearNow and Dispose
	// leave a permanent copy alone.
	c.lastCopied = value
	c.pending = d > 0

	if d <= 0 {
		return nil
	}

	gen := c.gen
	c.stopTimer = c.afterFunc(d, func() { c.onTimer(gen) })

	event := models.ClipboardEvent{DurationMs: d.Milliseconds(), CreatedAt: c.now()}
	select {
	case c.events <- event:
	default:
		c.logger.Debug().Str("func", "clipboardScheduler.Copy").Msg("clipboard event dropped, consumer is lagging")
	}

	return nil
}

func (c *clipboardScheduler) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.pending = false
}

func (c *clipboardScheduler) ForceClearNow() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.usableLocked(); err != nil {
		return err
	}

	c.cancelLocked()
	return c.clearIfUnchangedLocked()
}

func (c *clipboardScheduler) Events() <-chan models.ClipboardEvent {
	return c.events
}

func (c *clipboardScheduler) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.cancelLocked()
	if c.initialized {
		if err := c.clearIfUnchangedLocked(); err != nil {
			c.logger.Warn().Err(err).Str("func", "clipboardScheduler.Dispose").Msg("failed to clear clipboard on dispose")
		}
	}
	c.disposed = true
	c.initialized = false
	close(c.events)
}

func (c *clipboardScheduler) onTimer(gen uint64) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Interface("panic", r).Str("func", "clipboardScheduler.onTimer").Msg("clipboard clear panicked")
		}
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.disposed {
		return
	}
	c.stopTimer = nil

	if err := c.clearIfUnchangedLocked(); err != nil {
		c.logger.Warn().Err(err).Str("func", "clipboardScheduler.onTimer").Msg("failed to clear clipboard")
	}
}

// cancelLocked supersedes the pending clear job, if any.
func (c *clipboardScheduler) cancelLocked() {
	c.gen++
	if c.stopTimer != nil {
		c.stopTimer()
		c.stopTimer = nil
	}
}

// clearIfUnchangedLocked empties the clipboard only if it still holds the
// value this scheduler wrote last.
func (c *clipboardScheduler) clearIfUnchangedLocked() error {
	if !c.pending {
		return nil
	}

	current, err := c.clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}

	c.pending = false
	value := c.lastCopied
	c.lastCopied = ""

	if current != value {
		c.logger.Debug().Str("func", "clipboardScheduler.clearIfUnchangedLocked").Msg("clipboard changed since copy, left untouched")
		return nil
	}

	if err = c.clipboard.WriteAll(""); err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	return nil
}

func (c *clipboardScheduler) usableLocked() error {
	switch {
	case c.disposed:
		return ErrClipboardDisposed
	case !c.initialized:
		return ErrClipboardNotInitialized
	default:
		return nil
	}
}
