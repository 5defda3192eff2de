package memory

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mindspace-api/internal/domain"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Default test configuration values
const (
	testTimeout     = 30 * time.Minute
	testMaxMessages = 5
	testPrompt      = "You are a helpful AI therapist answer short and precise."
)

// fakeClock is a settable time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore() (*ConversationStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := NewConversationStore(ConversationStoreConfig{
		SystemPrompt: testPrompt,
		MaxMessages:  testMaxMessages,
		IdleTimeout:  testTimeout,
	})
	store.now = clock.Now
	return store, clock
}

func history(t *testing.T, store *ConversationStore, userID string) []domain.ChatMessage {
	t.Helper()
	var msgs []domain.ChatMessage
	err := store.WithEntry(userID, func(entry *domain.ConversationEntry) error {
		msgs = entry.GetHistory()
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return msgs
}

// TestNewConversationStoreAppliesDefaults tests that zero config values fall back to defaults
func TestNewConversationStoreAppliesDefaults(t *testing.T) {
	store := NewConversationStore(ConversationStoreConfig{})

	if store.idleTimeout != domain.DefaultCleanupInterval {
		t.Errorf("expected idle timeout %v, got %v", domain.DefaultCleanupInterval, store.idleTimeout)
	}
	if store.maxMessages != domain.DefaultMaxMessages {
		t.Errorf("expected max messages %d, got %d", domain.DefaultMaxMessages, store.maxMessages)
	}
	if store.sweepInterval != domain.DefaultCleanupInterval {
		t.Errorf("expected sweep interval to follow idle timeout, got %v", store.sweepInterval)
	}
	if store.systemPrompt != domain.DefaultSystemPrompt {
		t.Errorf("expected default system prompt, got %q", store.systemPrompt)
	}
}

// TestWithEntryCreatesSeededEntry tests lazy creation for an unseen user
func TestWithEntryCreatesSeededEntry(t *testing.T) {
	store, _ := newTestStore()

	if entryCount(store) != 0 {
		t.Fatalf("expected empty store, got %d entries", entryCount(store))
	}

	msgs := history(t, store, "u1")

	if entryCount(store) != 1 {
		t.Errorf("expected exactly 1 entry, got %d", entryCount(store))
	}
	if len(msgs) != 1 || msgs[0].Role != domain.ChatMessageRoleSystem || msgs[0].Content != testPrompt {
		t.Errorf("expected a single seeded system message, got %+v", msgs)
	}
}

// TestWithEntryReusesEntry tests that one entry exists per user
func TestWithEntryReusesEntry(t *testing.T) {
	store, _ := newTestStore()

	var first, second *domain.ConversationEntry
	_ = store.WithEntry("u1", func(entry *domain.ConversationEntry) error {
		first = entry
		entry.Append(domain.ChatMessage{Role: domain.ChatMessageRoleUser, Content: "Hello"})
		return nil
	})
	_ = store.WithEntry("u1", func(entry *domain.ConversationEntry) error {
		second = entry
		return nil
	})

	if first != second {
		t.Error("expected the same entry for the same user")
	}
	if entryCount(store) != 1 {
		t.Errorf("expected 1 entry, got %d", entryCount(store))
	}
	if len(second.Messages) != 2 {
		t.Errorf("expected mutation to persist, got %d messages", len(second.Messages))
	}
}

// TestWithEntryTouchesLastActivity tests that each access records activity
func TestWithEntryTouchesLastActivity(t *testing.T) {
	store, clock := newTestStore()
	_ = history(t, store, "u1")

	clock.Advance(10 * time.Minute)
	var seen time.Time
	_ = store.WithEntry("u1", func(entry *domain.ConversationEntry) error {
		seen = entry.LastActivity
		return nil
	})

	if !seen.Equal(clock.Now()) {
		t.Errorf("expected LastActivity %v, got %v", clock.Now(), seen)
	}
}

// TestWithEntryKeepsMutationOnError tests that a failing turn is not rolled back
func TestWithEntryKeepsMutationOnError(t *testing.T) {
	store, _ := newTestStore()
	boom := errors.New("boom")

	err := store.WithEntry("u1", func(entry *domain.ConversationEntry) error {
		entry.Append(domain.ChatMessage{Role: domain.ChatMessageRoleUser, Content: "Hello"})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error to be returned, got %v", err)
	}

	msgs := history(t, store, "u1")
	if len(msgs) != 2 || msgs[1].Content != "Hello" {
		t.Errorf("expected user message to be retained, got %+v", msgs)
	}
}

// TestSweepRemovesOnlyIdleEntries tests the 31-minute / 5-minute scenario
func TestSweepRemovesOnlyIdleEntries(t *testing.T) {
	store, clock := newTestStore()

	_ = history(t, store, "stale")
	clock.Advance(26 * time.Minute)
	_ = history(t, store, "fresh")
	clock.Advance(5 * time.Minute)

	store.Sweep()

	if entryCount(store) != 1 {
		t.Fatalf("expected 1 entry after sweep, got %d", entryCount(store))
	}
	store.mu.Lock()
	_, staleExists := store.slots["stale"]
	_, freshExists := store.slots["fresh"]
	store.mu.Unlock()

	if staleExists {
		t.Error("expected entry untouched for 31 minutes to be removed")
	}
	if !freshExists {
		t.Error("expected entry touched 5 minutes ago to survive")
	}
}

// TestSweepBoundaryIsExclusive tests that an entry idle exactly for the timeout survives
func TestSweepBoundaryIsExclusive(t *testing.T) {
	store, clock := newTestStore()
	_ = history(t, store, "u1")

	clock.Advance(testTimeout)
	store.Sweep()
	if entryCount(store) != 1 {
		t.Errorf("expected entry idle for exactly the timeout to survive, got %d entries", entryCount(store))
	}

	clock.Advance(time.Second)
	store.Sweep()
	if entryCount(store) != 0 {
		t.Errorf("expected entry to be removed once past the timeout, got %d entries", entryCount(store))
	}
}

// TestSweepSkipsEntryWithTurnInFlight tests that the sweep neither blocks on
// nor removes an entry whose turn is running
func TestSweepSkipsEntryWithTurnInFlight(t *testing.T) {
	store, clock := newTestStore()

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = store.WithEntry("u1", func(entry *domain.ConversationEntry) error {
			close(entered)
			<-release
			return nil
		})
	}()

	<-entered
	clock.Advance(time.Hour)

	swept := make(chan struct{})
	go func() {
		store.Sweep()
		close(swept)
	}()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep blocked on an in-flight turn")
	}

	if entryCount(store) != 1 {
		t.Errorf("expected in-flight entry to survive the sweep, got %d entries", entryCount(store))
	}

	close(release)
	<-done
}

// TestWithEntryRetriesAfterEviction tests that a turn holding a stale slot
// pointer does not write into an evicted entry
func TestWithEntryRetriesAfterEviction(t *testing.T) {
	store, clock := newTestStore()
	_ = history(t, store, "u1")

	store.mu.Lock()
	stale := store.slots["u1"]
	store.mu.Unlock()

	clock.Advance(time.Hour)
	store.Sweep()

	if !stale.evicted {
		t.Fatal("expected swept slot to be marked evicted")
	}

	var got *domain.ConversationEntry
	_ = store.WithEntry("u1", func(entry *domain.ConversationEntry) error {
		got = entry
		return nil
	})

	if got == stale.entry {
		t.Error("expected a fresh entry after eviction")
	}
	if len(got.Messages) != 1 {
		t.Errorf("expected fresh entry to be seeded only, got %d messages", len(got.Messages))
	}
}

// TestWithEntrySerializesSameUser tests that turns of one user never overlap
func TestWithEntrySerializesSameUser(t *testing.T) {
	store, _ := newTestStore()

	var (
		active    int32
		maxActive int32
		wg        sync.WaitGroup
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.WithEntry("u1", func(entry *domain.ConversationEntry) error {
				n := atomic.AddInt32(&active, 1)
				for {
					old := atomic.LoadInt32(&maxActive)
					if n <= old || atomic.CompareAndSwapInt32(&maxActive, old, n) {
						break
					}
				}
				entry.Append(domain.ChatMessage{Role: domain.ChatMessageRoleUser, Content: fmt.Sprintf("msg %d", i)})
				time.Sleep(time.Millisecond)
				entry.Append(domain.ChatMessage{Role: domain.ChatMessageRoleAssistant, Content: fmt.Sprintf("reply %d", i)})
				atomic.AddInt32(&active, -1)
				return nil
			})
		}(i)
	}
	wg.Wait()

	if maxActive != 1 {
		t.Errorf("expected turns of one user to be serialized, saw %d concurrent", maxActive)
	}

	msgs := history(t, store, "u1")
	if len(msgs) != testMaxMessages {
		t.Fatalf("expected %d messages, got %d", testMaxMessages, len(msgs))
	}
	// Serialized turns keep each reply directly after its own user message.
	for i := 0; i+1 < len(msgs); i++ {
		if msgs[i].Role != domain.ChatMessageRoleUser {
			continue
		}
		var n int
		fmt.Sscanf(msgs[i].Content, "msg %d", &n)
		if msgs[i+1].Content != fmt.Sprintf("reply %d", n) {
			t.Errorf("expected reply %d after msg %d, got %q", n, n, msgs[i+1].Content)
		}
	}
}

// TestWithEntryDifferentUsersRunConcurrently tests that one user's slow turn
// does not block another user
func TestWithEntryDifferentUsersRunConcurrently(t *testing.T) {
	store, _ := newTestStore()

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = store.WithEntry("slow", func(entry *domain.ConversationEntry) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	finished := make(chan struct{})
	go func() {
		_ = store.WithEntry("other", func(entry *domain.ConversationEntry) error {
			return nil
		})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("turn for a different user was blocked")
	}

	close(release)
	<-done
}

// TestStartStopSweeper tests that the sweeper goroutine is started and torn down
func TestStartStopSweeper(t *testing.T) {
	store, _ := newTestStore()

	store.Start()
	store.Start() // no-op while running
	if store.scheduler == nil {
		t.Fatal("expected scheduler to be running")
	}

	store.Stop()
	store.Stop() // no-op once stopped
	if store.scheduler != nil {
		t.Error("expected scheduler to be cleared after Stop")
	}
}

// TestSweeperEvictsOnSchedule runs the real scheduler with a one-second interval
func TestSweeperEvictsOnSchedule(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the scheduler")
	}

	store := NewConversationStore(ConversationStoreConfig{
		SystemPrompt:  testPrompt,
		MaxMessages:   testMaxMessages,
		IdleTimeout:   time.Millisecond,
		SweepInterval: time.Second,
	})
	_ = history(t, store, "u1")

	store.Start()
	defer store.Stop()

	deadline := time.Now().Add(5 * time.Second)
	for entryCount(store) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected idle entry to be evicted by the scheduled sweep")
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// entryCount returns the number of live entries
func entryCount(s *ConversationStore) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}
