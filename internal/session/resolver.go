package session

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Resolver owns session state and publishes a Snapshot on every change.
// The first snapshot is always {Loading:true}; the initial resolution runs
// asynchronously so the UI can mount its loading branch immediately.
//
// All mutation goes through CompleteOnboarding, Login and Logout. The
// routers only ever read snapshots.
type Resolver struct {
	store  *Store
	tokens *TokenService
	log    *zap.Logger

	mu      sync.Mutex
	current Snapshot
	profile *Profile
	subs    map[int]chan Snapshot
	nextSub int
}

// NewResolver wires a resolver over the profile store and token service.
// log may be nil.
func NewResolver(store *Store, tokens *TokenService, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		store:   store,
		tokens:  tokens,
		log:     log,
		current: Snapshot{Loading: true},
		subs:    make(map[int]chan Snapshot),
	}
}

// Subscribe registers a listener. The current snapshot is delivered
// immediately, then one snapshot per change. The returned cancel func must
// be called at teardown.
func (r *Resolver) Subscribe() (<-chan Snapshot, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSub
	r.nextSub++
	ch := make(chan Snapshot, 8)
	r.subs[id] = ch
	ch <- r.current

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if sub, ok := r.subs[id]; ok {
			delete(r.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Start kicks off the initial asynchronous resolution. Call once.
func (r *Resolver) Start() {
	go r.resolve()
}

// resolve reads persisted state and publishes the first real snapshot.
// A broken state file degrades to the login branch, never to a crash and
// never to an authenticated session.
func (r *Resolver) resolve() {
	profile, err := r.store.Load()
	switch {
	case errors.Is(err, ErrNoProfile):
		r.publish(nil, Snapshot{})
		return
	case err != nil:
		r.log.Warn("session resolution failed, forcing login", zap.Error(err))
		r.publish(nil, Snapshot{Onboarded: true})
		return
	}

	if !profile.Onboarded {
		r.publish(profile, Snapshot{})
		return
	}

	userID, err := r.tokens.Verify()
	if err != nil || userID != profile.UserID {
		r.publish(profile, Snapshot{Onboarded: true})
		return
	}
	r.log.Info("restored session from device token", zap.String("user", profile.Name))
	r.publish(profile, Snapshot{Onboarded: true, User: &User{ID: profile.UserID, Name: profile.Name}})
}

// CompleteOnboarding creates the profile with the chosen name and PIN and
// moves the session to the login branch. The new user still signs in with
// their PIN; onboarding never grants an authenticated session by itself.
func (r *Resolver) CompleteOnboarding(name, pin string) error {
	profile, err := r.store.Create(name, pin)
	if err != nil {
		return err
	}
	profile.Onboarded = true
	if err := r.store.Save(profile); err != nil {
		return err
	}
	r.publish(profile, Snapshot{Onboarded: true})
	return nil
}

// Login verifies the PIN, issues a device token and publishes the
// authenticated snapshot.
func (r *Resolver) Login(pin string) error {
	r.mu.Lock()
	profile := r.profile
	r.mu.Unlock()

	if profile == nil {
		var err error
		profile, err = r.store.Load()
		if err != nil {
			return err
		}
	}
	if err := r.store.VerifyPIN(profile, pin); err != nil {
		return err
	}
	if _, err := r.tokens.Issue(profile.UserID); err != nil {
		// The session is still valid for this process; only the shortcut for
		// the next start is lost.
		r.log.Warn("could not persist device token", zap.Error(err))
	}
	r.publish(profile, Snapshot{Onboarded: true, User: &User{ID: profile.UserID, Name: profile.Name}})
	return nil
}

// Logout clears the device token and drops back to the login branch.
func (r *Resolver) Logout() {
	if err := r.tokens.Clear(); err != nil {
		r.log.Warn("logout: clearing device token failed", zap.Error(err))
	}
	r.mu.Lock()
	profile := r.profile
	r.mu.Unlock()
	r.publish(profile, Snapshot{Onboarded: true})
}

// Current returns the latest snapshot.
func (r *Resolver) Current() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *Resolver) publish(profile *Profile, snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = profile
	r.current = snap
	for id, ch := range r.subs {
		select {
		case ch <- snap:
		default:
			// A subscriber that stopped draining loses updates rather than
			// blocking session resolution.
			r.log.Warn("session subscriber not draining", zap.Int("subscriber", id))
		}
	}
}
