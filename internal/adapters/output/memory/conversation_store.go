package memory

import (
	"sync"
	"time"

	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/output"
	"mindspace-api/pkg/metrics"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure ConversationStore implements ConversationStore interface
var _ output.ConversationStore = (*ConversationStore)(nil)

// ConversationStoreConfig struct
type ConversationStoreConfig struct {
	SystemPrompt    string
	MaxMessages     int
	IdleTimeout     time.Duration
	SweepInterval   time.Duration
	PinSystemPrompt bool
}

// conversationSlot guards a single user's entry. A slot is marked evicted
// under its own lock before it leaves the map, so a turn that fetched the
// slot concurrently retries on a fresh one.
type conversationSlot struct {
	mu      sync.Mutex
	entry   *domain.ConversationEntry
	evicted bool
}

// ConversationStore struct - Output adapter for in-memory conversation history.
// The map is guarded by a short-held mutex; each user's turn holds the
// user's slot lock for its whole duration, completion call included.
type ConversationStore struct {
	mu    sync.Mutex
	slots map[string]*conversationSlot

	systemPrompt  string
	maxMessages   int
	pinSystem     bool
	idleTimeout   time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	schedulerMu sync.Mutex
	scheduler   *cron.Cron
}

// NewConversationStore creates a new in-memory conversation store.
// Zero values in config fall back to the domain defaults.
func NewConversationStore(config ConversationStoreConfig) *ConversationStore {
	if config.SystemPrompt == "" {
		config.SystemPrompt = domain.DefaultSystemPrompt
	}
	if config.MaxMessages <= 0 {
		config.MaxMessages = domain.DefaultMaxMessages
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = domain.DefaultCleanupInterval
	}
	if config.SweepInterval <= 0 {
		config.SweepInterval = config.IdleTimeout
	}

	return &ConversationStore{
		slots:         make(map[string]*conversationSlot),
		systemPrompt:  config.SystemPrompt,
		maxMessages:   config.MaxMessages,
		pinSystem:     config.PinSystemPrompt,
		idleTimeout:   config.IdleTimeout,
		sweepInterval: config.SweepInterval,
		now:           time.Now,
	}
}

// WithEntry runs fn while holding the user's entry. A missing entry is
// created seeded with the system prompt, and LastActivity is set to now
// before fn runs.
func (s *ConversationStore) WithEntry(userID string, fn func(entry *domain.ConversationEntry) error) error {
	for {
		slot := s.slot(userID)
		slot.mu.Lock()
		if slot.evicted {
			// Lost the race against a sweep; the next lookup creates a new slot.
			slot.mu.Unlock()
			continue
		}
		defer slot.mu.Unlock()

		slot.entry.Touch(s.now())
		return fn(slot.entry)
	}
}

// slot returns the user's slot, creating it if absent.
func (s *ConversationStore) slot(userID string) *conversationSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot, ok := s.slots[userID]; ok {
		return slot
	}

	slot := &conversationSlot{
		entry: domain.NewConversationEntry(userID, s.systemPrompt, s.maxMessages, s.pinSystem, s.now()),
	}
	s.slots[userID] = slot
	metrics.ConversationEntries.Set(float64(len(s.slots)))
	logrus.Debugf("Conversation created: userID=%s", userID)
	return slot
}

// Sweep removes entries idle for longer than the idle timeout.
// Entries with a turn in flight are skipped, never waited on.
func (s *ConversationStore) Sweep() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, slot := range s.slots {
		if !slot.mu.TryLock() {
			continue
		}
		if slot.entry.IsIdle(now, s.idleTimeout) {
			slot.evicted = true
			delete(s.slots, userID)
			removed++
		}
		slot.mu.Unlock()
	}

	metrics.ConversationEntries.Set(float64(len(s.slots)))
	if removed > 0 {
		metrics.SweepEvictions.Add(float64(removed))
		logrus.Infof("Conversation sweep removed %d idle entries, %d remaining", removed, len(s.slots))
	}
}

// Start schedules Sweep every sweep interval. Calling Start on a running
// store is a no-op.
func (s *ConversationStore) Start() {
	s.schedulerMu.Lock()
	defer s.schedulerMu.Unlock()

	if s.scheduler != nil {
		return
	}

	logger := cron.PrintfLogger(logrus.StandardLogger())
	s.scheduler = cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	s.scheduler.Schedule(cron.Every(s.sweepInterval), cron.FuncJob(s.Sweep))
	s.scheduler.Start()

	logrus.Infof("Conversation sweeper started: interval=%v, idleTimeout=%v", s.sweepInterval, s.idleTimeout)
}

// Stop halts the sweeper and waits for a running sweep to finish.
func (s *ConversationStore) Stop() {
	s.schedulerMu.Lock()
	defer s.schedulerMu.Unlock()

	if s.scheduler == nil {
		return
	}

	<-s.scheduler.Stop().Done()
	s.scheduler = nil
	logrus.Info("Conversation sweeper stopped")
}
