// Package presence tracks which user is reachable over which live connection.
package presence

import (
	"context"
	"sync"
	"time"

	"duoChat/internal/enums"
	"duoChat/internal/interfaces"
	"duoChat/internal/logger"

	"go.uber.org/zap"
)

const mirrorTimeout = 3 * time.Second

// Registry maps a user id to at most one connection handle. Every change is
// followed by a getOnlineUsers broadcast of the full key set, issued while the
// lock is still held so broadcasts leave in mutation order.
type Registry struct {
	mu          sync.Mutex
	entries     map[string]interfaces.Pusher
	order       []string
	broadcaster interfaces.Broadcaster

	mirrorMu sync.Mutex
	mirror   interfaces.PresenceMirror
	ttl      time.Duration
}

// NewRegistry builds an empty registry. mirror may be nil.
func NewRegistry(broadcaster interfaces.Broadcaster, mirror interfaces.PresenceMirror, ttl time.Duration) *Registry {
	return &Registry{
		entries:     make(map[string]interfaces.Pusher),
		broadcaster: broadcaster,
		mirror:      mirror,
		ttl:         ttl,
	}
}

// Register makes handle the connection for userID and returns the handle it
// replaced, if any. The last registration wins.
func (r *Registry) Register(userID string, handle interfaces.Pusher) interfaces.Pusher {
	if userID == "" || handle == nil {
		return nil
	}

	r.mu.Lock()
	previous, existed := r.entries[userID]
	r.entries[userID] = handle
	if !existed {
		r.order = append(r.order, userID)
	}
	r.broadcastLocked()
	r.mu.Unlock()

	r.syncMirror(userID)
	return previous
}

// Unregister removes userID only while handle is still its registered
// connection, so a stale close cannot evict a newer one.
func (r *Registry) Unregister(userID string, handle interfaces.Pusher) bool {
	r.mu.Lock()
	current, ok := r.entries[userID]
	if !ok || current != handle {
		r.mu.Unlock()
		return false
	}
	delete(r.entries, userID)
	for i, id := range r.order {
		if id == userID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.broadcastLocked()
	r.mu.Unlock()

	r.syncMirror(userID)
	return true
}

func (r *Registry) Lookup(userID string) (interfaces.Pusher, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	handle, ok := r.entries[userID]
	return handle, ok
}

// OnlineUsers returns the registered ids in first registration order.
func (r *Registry) OnlineUsers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Touch renews the mirrored TTL while handle is the current connection.
func (r *Registry) Touch(userID string, handle interfaces.Pusher) {
	r.mu.Lock()
	current, ok := r.entries[userID]
	r.mu.Unlock()
	if ok && current == handle {
		r.syncMirror(userID)
	}
}

func (r *Registry) snapshotLocked() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *Registry) broadcastLocked() {
	if r.broadcaster == nil {
		return
	}
	r.broadcaster.Broadcast(enums.SOCKET_EVENT_GET_ONLINE_USERS, r.snapshotLocked())
}

// syncMirror writes the current state of userID, not the state at call time,
// so racing writers converge on what the registry holds.
func (r *Registry) syncMirror(userID string) {
	if r.mirror == nil {
		return
	}
	r.mirrorMu.Lock()
	defer r.mirrorMu.Unlock()

	r.mu.Lock()
	_, online := r.entries[userID]
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()

	var err error
	if online {
		err = r.mirror.SetOnline(ctx, userID, r.ttl)
	} else {
		err = r.mirror.SetOffline(ctx, userID)
	}
	if err != nil {
		logger.Warn("presence mirror write failed", zap.String("user_id", userID), zap.Bool("online", online), zap.Error(err))
	}
}
