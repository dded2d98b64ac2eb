package store

import (
	"context"
	"reflect"
	"sync"
)

// subscription is the hub-side end of one change stream. signal has
// capacity one: a pending notification already implies a fresh query, so
// further notifications are coalesced into it.
type subscription struct {
	kind   string
	userID string
	signal chan struct{}
}

func (s *subscription) matches(c Change) bool {
	if c.Kind != "" && c.Kind != s.kind {
		return false
	}
	return c.UserID == "" || c.UserID == s.userID
}

func (s *subscription) notify() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// hub fans committed changes out to the change streams that observe them.
// It never blocks the writer.
type hub struct {
	mu     sync.Mutex
	subs   map[*subscription]struct{}
	closed chan struct{}
	once   sync.Once
}

func newHub() *hub {
	return &hub{
		subs:   make(map[*subscription]struct{}),
		closed: make(chan struct{}),
	}
}

func (h *hub) subscribe(kind, userID string) *subscription {
	s := &subscription{
		kind:   kind,
		userID: userID,
		signal: make(chan struct{}, 1),
	}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	return s
}

func (h *hub) unsubscribe(s *subscription) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}

func (h *hub) publish(c Change) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subs {
		if s.matches(c) {
			s.notify()
		}
	}
}

// publishAll wakes every subscription. It is used when another process
// changed the store and the affected scope is unknown.
func (h *hub) publishAll() {
	h.publish(Change{})
}

func (h *hub) close() {
	h.once.Do(func() { close(h.closed) })
}

// snapshotFunc produces the current snapshot of one subscription scope.
type snapshotFunc[T any] func(ctx context.Context) ([]T, error)

// stream emits the current snapshot immediately and a new one after every
// committed change that may affect it, until ctx is cancelled or the store
// closes. The subscription is registered before the initial query, so no
// change committed after the stream starts can be missed. Consecutive
// identical snapshots are emitted once.
//
// Query failures are logged and skipped; the next change retries.
func stream[T any](ctx context.Context, m *Manager, kind, userID string, snapshot snapshotFunc[T]) <-chan []T {
	out := make(chan []T)
	sub := m.hub.subscribe(kind, userID)

	go func() {
		defer close(out)
		defer m.hub.unsubscribe(sub)

		var (
			last    []T
			emitted bool
		)

		emit := func() bool {
			items, err := snapshot(ctx)
			if err != nil {
				if ctx.Err() == nil {
					m.logger.Err(err).
						Str("func", "store.stream").
						Str("kind", kind).
						Str("user_id", userID).
						Msg("failed to query change stream snapshot")
				}
				return true
			}
			if items == nil {
				items = []T{}
			}
			if emitted && reflect.DeepEqual(last, items) {
				return true
			}

			select {
			case out <- items:
				last, emitted = items, true
				return true
			case <-ctx.Done():
				return false
			case <-m.hub.closed:
				return false
			}
		}

		if !emit() {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-m.hub.closed:
				return
			case <-sub.signal:
				if !emit() {
					return
				}
			}
		}
	}()

	return out
}
