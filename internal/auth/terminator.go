package auth

import (
	"time"

	"github.com/shopnext/shopnext/internal/session"
)

// Terminator ends the current session. Termination is purely local: the
// session record is cleared, no server-side call is made, and clearing an
// absent session succeeds.
type Terminator struct {
	store     session.Store
	notifier  Notifier
	navigator Navigator
	navDelay  time.Duration
}

// NewTerminator returns a Terminator that clears sessions from the
// specified store. A navigationDelay of 0 selects the default grace
// period.
func NewTerminator(
	store session.Store,
	notifier Notifier,
	navigator Navigator,
	navigationDelay time.Duration,
) *Terminator {
	if navigationDelay == 0 {
		navigationDelay = defaultNavigationDelay
	}
	return &Terminator{
		store:     store,
		notifier:  notifier,
		navigator: navigator,
		navDelay:  navigationDelay,
	}
}

// Logout clears the session store, then notifies and schedules navigation
// back to the unauthenticated view.
func (t *Terminator) Logout() error {
	if err := t.store.Clear(); err != nil {
		t.notifier.Error(err.Error())
		return err
	}
	t.notifier.Success("User Logged out")
	time.Sleep(t.navDelay)
	t.navigator.Go(DestinationLogin)
	return nil
}
