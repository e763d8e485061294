package auth

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/shopnext/shopnext/internal/session"
	"github.com/shopnext/shopnext/sdk"
)

// Destination identifies a logical view to land on after an operation
// completes.
type Destination string

const (
	// DestinationHome is the authenticated view.
	DestinationHome Destination = "home"
	// DestinationLogin is the unauthenticated view.
	DestinationLogin Destination = "login"
)

// defaultNavigationDelay is the grace period between the outcome
// notification and the follow-up navigation. It gives the user a moment to
// see the notification before the view changes.
const defaultNavigationDelay = time.Second

// Notifier is the surface on which short-lived success/error messages are
// shown to the user. Implementations are fire-and-forget and hold no
// state.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator moves the user to a logical destination view.
type Navigator interface {
	Go(destination Destination)
}

// Submitter orchestrates signup and login attempts: it validates
// credentials locally, submits them to the auth service, and on success
// commits the resulting session. The session store is committed before the
// success notification is shown and before navigation is scheduled; no
// failure path ever touches the store.
type Submitter struct {
	authClient sdk.AuthClient
	store      session.Store
	notifier   Notifier
	navigator  Navigator
	navDelay   time.Duration
	submitting int32
}

// NewSubmitter returns a Submitter that commits successful authentication
// results to the specified store. A navigationDelay of 0 selects the
// default grace period.
func NewSubmitter(
	authClient sdk.AuthClient,
	store session.Store,
	notifier Notifier,
	navigator Navigator,
	navigationDelay time.Duration,
) *Submitter {
	if navigationDelay == 0 {
		navigationDelay = defaultNavigationDelay
	}
	return &Submitter{
		authClient: authClient,
		store:      store,
		notifier:   notifier,
		navigator:  navigator,
		navDelay:   navigationDelay,
	}
}

// Submitting indicates whether a request is currently in flight. Callers
// should decline to start a second attempt while it reports true; the
// Submitter itself does not enforce this.
func (s *Submitter) Submitting() bool {
	return atomic.LoadInt32(&s.submitting) == 1
}

// Login submits the specified credentials to the auth service's login
// endpoint. Exactly one notification is shown per completed attempt.
func (s *Submitter) Login(
	ctx context.Context,
	credentials sdk.LoginCredentials,
) error {
	if credentials.Email == "" || credentials.Password == "" {
		return s.fail(&ErrValidation{
			Reason: "Email and password are required",
		})
	}
	atomic.StoreInt32(&s.submitting, 1)
	resp, err := s.authClient.Login(ctx, credentials)
	atomic.StoreInt32(&s.submitting, 0)
	if err != nil {
		return s.fail(err)
	}
	return s.conclude(resp)
}

// Signup submits the specified credentials to the auth service's signup
// endpoint. Exactly one notification is shown per completed attempt.
func (s *Submitter) Signup(
	ctx context.Context,
	credentials sdk.SignupCredentials,
) error {
	if credentials.Name == "" ||
		credentials.Email == "" ||
		credentials.Password == "" {
		return s.fail(&ErrValidation{
			Reason: "Name, email, and password are required",
		})
	}
	atomic.StoreInt32(&s.submitting, 1)
	resp, err := s.authClient.Signup(ctx, credentials)
	atomic.StoreInt32(&s.submitting, 0)
	if err != nil {
		return s.fail(err)
	}
	return s.conclude(resp)
}

// conclude interprets a structured auth service response. Branch priority:
// success, then a structured error with at least one detail, then the
// response's top-level message.
func (s *Submitter) conclude(resp sdk.AuthResponse) error {
	if resp.Success {
		if err := s.store.Commit(
			session.Session{
				Token: resp.JWTToken,
				Name:  resp.Name,
				Email: resp.Email,
			},
		); err != nil {
			return s.fail(errors.Wrap(err, "error persisting session"))
		}
		s.notifier.Success(resp.Message)
		s.scheduleNavigation(DestinationHome)
		return nil
	}
	if resp.Error != nil && len(resp.Error.Details) > 0 {
		return s.fail(&ErrRejected{
			Reason: resp.Error.Details[0].Message,
		})
	}
	// A structured error block with no details carries no usable message;
	// fall through to the top-level one.
	return s.fail(&ErrFailed{
		Reason: resp.Message,
	})
}

func (s *Submitter) fail(err error) error {
	s.notifier.Error(err.Error())
	return err
}

// scheduleNavigation waits out the grace delay, then navigates. The store
// is already in its final state by the time this is called.
func (s *Submitter) scheduleNavigation(destination Destination) {
	time.Sleep(s.navDelay)
	s.navigator.Go(destination)
}
