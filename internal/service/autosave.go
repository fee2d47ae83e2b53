package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

// DefaultAutoSaveDelay is the debounce window used when none is configured.
const DefaultAutoSaveDelay = time.Second

// SaveNotifier is told about every auto-save attempt.
type SaveNotifier func(section models.SectionKey, err error)

type autoSaver struct {
	config ConfigService
	delay  time.Duration
	notify SaveNotifier
	logger *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	timers  map[models.SectionKey]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

// NewAutoSaver returns an [AutoSaver] saving through config once a section
// has seen no Touch for delay. Saves run under ctx. notify may be nil.
func NewAutoSaver(ctx context.Context, config ConfigService, delay time.Duration, notify SaveNotifier, logger *logger.Logger) AutoSaver {
	if delay <= 0 {
		delay = DefaultAutoSaveDelay
	}

	ctx, cancel := context.WithCancel(ctx)
	return &autoSaver{
		config: config,
		delay:  delay,
		notify: notify,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		timers: make(map[models.SectionKey]*time.Timer),
	}
}

func (a *autoSaver) Touch(section models.SectionKey) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}
	if t, ok := a.timers[section]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(a.delay, func() { a.fire(section, &t) })
	a.timers[section] = t
}

// fire saves section unless the timer at self was replaced by a later Touch
// after it expired.
func (a *autoSaver) fire(section models.SectionKey, self **time.Timer) {
	a.mu.Lock()
	if a.stopped || a.timers[section] != *self {
		a.mu.Unlock()
		return
	}
	delete(a.timers, section)
	a.wg.Add(1)
	a.mu.Unlock()
	defer a.wg.Done()

	err := a.config.SaveSection(a.ctx, section)
	if errors.Is(err, ErrSaveInProgress) {
		// the running save predates the latest edit
		a.Touch(section)
		return
	}

	if err != nil {
		a.logger.Warn().Err(err).Str("section", section.String()).Msg("auto-save failed")
	} else {
		a.logger.Debug().Str("section", section.String()).Msg("auto-saved")
	}
	if a.notify != nil {
		a.notify(section, err)
	}
}

func (a *autoSaver) Stop() {
	a.mu.Lock()
	a.stopped = true
	for section, t := range a.timers {
		t.Stop()
		delete(a.timers, section)
	}
	a.mu.Unlock()

	a.cancel()
	a.wg.Wait()
}
