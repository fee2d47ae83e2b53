package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/mock"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testDelay = 20 * time.Millisecond

type notifications struct {
	mu   sync.Mutex
	seen []models.SectionKey
	errs []error
	ch   chan struct{}
}

func newNotifications() *notifications {
	return &notifications{ch: make(chan struct{}, 16)}
}

func (n *notifications) notify(section models.SectionKey, err error) {
	n.mu.Lock()
	n.seen = append(n.seen, section)
	n.errs = append(n.errs, err)
	n.mu.Unlock()
	n.ch <- struct{}{}
}

func (n *notifications) wait(t *testing.T) {
	t.Helper()
	select {
	case <-n.ch:
	case <-time.After(time.Second):
		t.Fatal("auto-save did not fire")
	}
}

func TestAutoSaver_DebouncesBursts(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := mock.NewMockConfigService(ctrl)
	cfg.EXPECT().SaveSection(gomock.Any(), models.SectionUnits).Return(nil).Times(1)

	n := newNotifications()
	saver := NewAutoSaver(context.Background(), cfg, testDelay, n.notify, logger.Nop())
	defer saver.Stop()

	for range 5 {
		saver.Touch(models.SectionUnits)
		time.Sleep(testDelay / 4)
	}
	n.wait(t)

	// nothing else pending
	time.Sleep(testDelay * 3)
	n.mu.Lock()
	defer n.mu.Unlock()
	assert.Equal(t, []models.SectionKey{models.SectionUnits}, n.seen)
}

func TestAutoSaver_SectionsAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := mock.NewMockConfigService(ctrl)
	cfg.EXPECT().SaveSection(gomock.Any(), models.SectionUnits).Return(nil)
	cfg.EXPECT().SaveSection(gomock.Any(), models.SectionIRIS).Return(errors.New("boom"))

	n := newNotifications()
	saver := NewAutoSaver(context.Background(), cfg, testDelay, n.notify, logger.Nop())
	defer saver.Stop()

	saver.Touch(models.SectionUnits)
	saver.Touch(models.SectionIRIS)
	n.wait(t)
	n.wait(t)

	n.mu.Lock()
	defer n.mu.Unlock()
	assert.ElementsMatch(t, []models.SectionKey{models.SectionUnits, models.SectionIRIS}, n.seen)
}

func TestAutoSaver_RetriesWhileSaveInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := mock.NewMockConfigService(ctrl)
	gomock.InOrder(
		cfg.EXPECT().SaveSection(gomock.Any(), models.SectionSkills).Return(ErrSaveInProgress),
		cfg.EXPECT().SaveSection(gomock.Any(), models.SectionSkills).Return(nil),
	)

	n := newNotifications()
	saver := NewAutoSaver(context.Background(), cfg, testDelay, n.notify, logger.Nop())
	defer saver.Stop()

	saver.Touch(models.SectionSkills)
	n.wait(t)

	n.mu.Lock()
	defer n.mu.Unlock()
	assert.Len(t, n.seen, 1)
	assert.NoError(t, n.errs[0])
}

func TestAutoSaver_StopDropsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := mock.NewMockConfigService(ctrl)

	saver := NewAutoSaver(context.Background(), cfg, testDelay, nil, logger.Nop())
	saver.Touch(models.SectionLocation)
	saver.Stop()

	saver.Touch(models.SectionLocation)
	time.Sleep(testDelay * 3)
}

func TestNewAutoSaver_DefaultDelay(t *testing.T) {
	saver := NewAutoSaver(context.Background(), nil, 0, nil, logger.Nop()).(*autoSaver)
	defer saver.Stop()

	assert.Equal(t, DefaultAutoSaveDelay, saver.delay)
}

func TestAutoSaver_StaleTimerKeepsReplacement(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := mock.NewMockConfigService(ctrl)
	cfg.EXPECT().SaveSection(gomock.Any(), gomock.Any()).Times(0)

	saver := NewAutoSaver(context.Background(), cfg, time.Hour, nil, logger.Nop()).(*autoSaver)
	defer saver.Stop()

	saver.Touch(models.SectionUnits)
	saver.mu.Lock()
	stale := saver.timers[models.SectionUnits]
	saver.mu.Unlock()

	saver.Touch(models.SectionUnits)
	// the replaced timer expiring late must neither save nor drop the new one
	saver.fire(models.SectionUnits, &stale)

	saver.mu.Lock()
	current, ok := saver.timers[models.SectionUnits]
	saver.mu.Unlock()
	assert.True(t, ok)
	assert.NotSame(t, stale, current)
}
