package presence

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"duoChat/internal/enums"
	"duoChat/internal/interfaces/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct{ name string }

func (f *fakeHandle) Push(event string, payload any) error { return nil }

type recordingBroadcaster struct {
	mu        sync.Mutex
	events    []string
	snapshots [][]string
}

func (b *recordingBroadcaster) Broadcast(event string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	b.snapshots = append(b.snapshots, payload.([]string))
}

func (b *recordingBroadcaster) last() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.snapshots) == 0 {
		return nil
	}
	return b.snapshots[len(b.snapshots)-1]
}

func (b *recordingBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.snapshots)
}

func TestRegistry_RegisterOverwritesAndReturnsPrevious(t *testing.T) {
	b := &recordingBroadcaster{}
	r := NewRegistry(b, nil, time.Minute)
	first := &fakeHandle{"first"}
	second := &fakeHandle{"second"}

	assert.Nil(t, r.Register("alice", first))
	assert.Same(t, first, r.Register("alice", second))

	handle, ok := r.Lookup("alice")
	require.True(t, ok)
	assert.Same(t, second, handle)
	assert.Equal(t, []string{"alice"}, r.OnlineUsers())
	assert.Equal(t, 2, b.count())
	assert.Equal(t, []string{enums.SOCKET_EVENT_GET_ONLINE_USERS, enums.SOCKET_EVENT_GET_ONLINE_USERS}, b.events)
}

func TestRegistry_StaleUnregisterIsNoop(t *testing.T) {
	b := &recordingBroadcaster{}
	r := NewRegistry(b, nil, time.Minute)
	stale := &fakeHandle{"stale"}
	fresh := &fakeHandle{"fresh"}

	r.Register("alice", stale)
	r.Register("alice", fresh)
	before := b.count()

	assert.False(t, r.Unregister("alice", stale))
	assert.Equal(t, before, b.count(), "no broadcast for a no-op")

	handle, ok := r.Lookup("alice")
	require.True(t, ok)
	assert.Same(t, fresh, handle)

	assert.True(t, r.Unregister("alice", fresh))
	_, ok = r.Lookup("alice")
	assert.False(t, ok)
	assert.Empty(t, b.last())
}

func TestRegistry_UnregisterAbsentUser(t *testing.T) {
	b := &recordingBroadcaster{}
	r := NewRegistry(b, nil, time.Minute)

	assert.False(t, r.Unregister("ghost", &fakeHandle{}))
	assert.Equal(t, 0, b.count())
}

func TestRegistry_IgnoresAnonymous(t *testing.T) {
	b := &recordingBroadcaster{}
	r := NewRegistry(b, nil, time.Minute)

	assert.Nil(t, r.Register("", &fakeHandle{}))
	assert.Empty(t, r.OnlineUsers())
	assert.Equal(t, 0, b.count())
}

func TestRegistry_BroadcastMatchesKeySetInRegistrationOrder(t *testing.T) {
	b := &recordingBroadcaster{}
	r := NewRegistry(b, nil, time.Minute)
	handles := map[string]*fakeHandle{"a": {}, "b": {}, "c": {}}

	r.Register("a", handles["a"])
	r.Register("b", handles["b"])
	r.Register("c", handles["c"])
	assert.Equal(t, []string{"a", "b", "c"}, b.last())

	r.Unregister("b", handles["b"])
	assert.Equal(t, []string{"a", "c"}, b.last())

	// re-registering an existing id keeps its place
	r.Register("a", &fakeHandle{})
	assert.Equal(t, []string{"a", "c"}, b.last())
	assert.Equal(t, r.OnlineUsers(), b.last())
}

func TestRegistry_SnapshotIsACopy(t *testing.T) {
	r := NewRegistry(nil, nil, time.Minute)
	r.Register("a", &fakeHandle{})

	ids := r.OnlineUsers()
	ids[0] = "mutated"

	assert.Equal(t, []string{"a"}, r.OnlineUsers())
}

func TestRegistry_ConcurrentOperationsConverge(t *testing.T) {
	b := &recordingBroadcaster{}
	r := NewRegistry(b, nil, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i%5)
			h := &fakeHandle{}
			r.Register(userID, h)
			if i%2 == 0 {
				r.Unregister(userID, h)
			}
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, r.OnlineUsers(), b.last())
	for _, id := range r.OnlineUsers() {
		_, ok := r.Lookup(id)
		assert.True(t, ok)
	}
}

func TestRegistry_MirrorsPresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mirror := mocks.NewMockPresenceMirror(ctrl)
	r := NewRegistry(nil, mirror, 2*time.Minute)
	h := &fakeHandle{}

	gomock.InOrder(
		mirror.EXPECT().SetOnline(gomock.Any(), "alice", 2*time.Minute).Return(nil).Times(1),
		mirror.EXPECT().SetOnline(gomock.Any(), "alice", 2*time.Minute).Return(nil).Times(1),
		mirror.EXPECT().SetOffline(gomock.Any(), "alice").Return(nil).Times(1),
	)

	r.Register("alice", h)
	r.Touch("alice", h)
	r.Touch("alice", &fakeHandle{}) // not current, no write
	r.Unregister("alice", h)
}

func TestRegistry_MirrorFailureDoesNotBlockPresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mirror := mocks.NewMockPresenceMirror(ctrl)
	mirror.EXPECT().SetOnline(gomock.Any(), "alice", time.Minute).Return(errors.New("redis down")).Times(1)

	r := NewRegistry(nil, mirror, time.Minute)
	r.Register("alice", &fakeHandle{})

	_, ok := r.Lookup("alice")
	assert.True(t, ok)
}
