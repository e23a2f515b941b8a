package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
)

type watchKey struct {
	team, uid, session string
}

// Subscription is a live watch of one member record. Updates delivers the
// latest state of the record each time it changes; it is closed once the
// subscription is cancelled or replaced.
type Subscription struct {
	hub  *watchHub
	key  watchKey
	ch   chan models.Member
	done chan struct{}
	once sync.Once
}

// Updates returns the channel the member record is delivered on.
func (s *Subscription) Updates() <-chan models.Member {
	return s.ch
}

// Done is closed when the subscription ends.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Cancel ends the subscription. It is safe to call more than once.
func (s *Subscription) Cancel() {
	s.hub.remove(s)
}

// deliver replaces any undelivered state with m. The caller holds the hub
// lock.
func (s *Subscription) deliver(m models.Member) {
	select {
	case <-s.ch:
	default:
	}
	s.ch <- m
}

func (s *Subscription) close() {
	s.once.Do(func() {
		close(s.done)
		close(s.ch)
	})
}

// watchHub keeps exactly one subscription per (team, uid, session).
type watchHub struct {
	mu   sync.Mutex
	subs map[watchKey]*Subscription
}

func newWatchHub() *watchHub {
	return &watchHub{subs: map[watchKey]*Subscription{}}
}

func (h *watchHub) add(key watchKey) *Subscription {
	s := &Subscription{
		hub:  h,
		key:  key,
		ch:   make(chan models.Member, 1),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if prev, ok := h.subs[key]; ok {
		prev.close()
	}
	h.subs[key] = s
	return s
}

func (h *watchHub) remove(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cur, ok := h.subs[s.key]; ok && cur == s {
		delete(h.subs, s.key)
	}
	s.close()
}

// deliverTo sends m to s if s is still live.
func (h *watchHub) deliverTo(s *Subscription, m models.Member) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cur, ok := h.subs[s.key]; ok && cur == s {
		s.deliver(m)
	}
}

// notify delivers m to every session watching (m.TeamID, m.UID).
func (h *watchHub) notify(m models.Member) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key, s := range h.subs {
		if key.team == m.TeamID && key.uid == m.UID {
			s.deliver(m)
		}
	}
}

func (h *watchHub) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *watchHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key, s := range h.subs {
		s.close()
		delete(h.subs, key)
	}
}

// WatchMembership watches uid's member record in team. Only one
// subscription exists per session: watching again replaces and cancels the
// previous one. The current record is delivered right away when it exists.
// The subscription ends when ctx is done or Cancel is called.
func (d *Backend) WatchMembership(ctx context.Context, teamID, uid, session string) (*Subscription, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid", proto.ErrMissingField)
	}
	if _, err := d.Team(ctx, teamID); err != nil {
		return nil, err
	}

	sub := d.watchers.add(watchKey{team: teamID, uid: uid, session: session})

	m, err := d.store.GetMember(ctx, d.db, teamID, uid)
	switch {
	case err == nil:
		d.watchers.deliverTo(sub, m)
	case !isNotFound(err):
		sub.Cancel()
		return nil, storeError(err, nil)
	}

	go func() {
		select {
		case <-ctx.Done():
			sub.Cancel()
		case <-sub.done:
		}
	}()

	return sub, nil
}
