package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shopnext/shopnext/internal/session"
	"github.com/shopnext/shopnext/sdk"
)

const (
	testToken = "thisisafaketoken"
	testName  = "Ann"
	testEmail = "a@b.com"

	// Keep the grace period short so tests don't dawdle
	testNavigationDelay = 10 * time.Millisecond
)

type captureNotifier struct {
	successes []string
	errors    []string
}

func (c *captureNotifier) Success(message string) {
	c.successes = append(c.successes, message)
}

func (c *captureNotifier) Error(message string) {
	c.errors = append(c.errors, message)
}

type captureNavigator struct {
	destinations []Destination
	onGo         func(Destination)
}

func (c *captureNavigator) Go(destination Destination) {
	if c.onGo != nil {
		c.onGo(destination)
	}
	c.destinations = append(c.destinations, destination)
}

func newTestSubmitter(
	apiAddress string,
) (*Submitter, *session.MemoryStore, *captureNotifier, *captureNavigator) {
	store := session.NewMemoryStore()
	notifier := &captureNotifier{}
	navigator := &captureNavigator{}
	submitter := NewSubmitter(
		sdk.NewAuthClient(apiAddress, false),
		store,
		notifier,
		navigator,
		testNavigationDelay,
	)
	return submitter, store, notifier, navigator
}

func TestSubmitterLoginSuccess(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(
					w,
					`{"success":true,"message":"Welcome back","jwtToken":%q,`+
						`"name":%q,"email":%q}`,
					testToken,
					testName,
					testEmail,
				)
			},
		),
	)
	defer server.Close()
	submitter, store, notifier, navigator := newTestSubmitter(server.URL)

	// The store must already reflect the new session at the instant
	// navigation happens
	navigator.onGo = func(Destination) {
		s, ok, err := store.Current()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, testToken, s.Token)
	}

	err := submitter.Login(
		context.Background(),
		sdk.LoginCredentials{
			Email:    testEmail,
			Password: "secret",
		},
	)
	require.NoError(t, err)

	s, ok, err := store.Current()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(
		t,
		session.Session{
			Token: testToken,
			Name:  testName,
			Email: testEmail,
		},
		s,
	)
	require.Equal(t, []string{"Welcome back"}, notifier.successes)
	require.Empty(t, notifier.errors)
	require.Equal(t, []Destination{DestinationHome}, navigator.destinations)
	require.False(t, submitter.Submitting())
}

func TestSubmitterSignupSuccess(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/auth/signup", r.URL.Path)
				fmt.Fprintf(
					w,
					`{"success":true,"message":"Signup successful",`+
						`"jwtToken":%q,"name":%q,"email":%q}`,
					testToken,
					testName,
					testEmail,
				)
			},
		),
	)
	defer server.Close()
	submitter, store, notifier, navigator := newTestSubmitter(server.URL)

	err := submitter.Signup(
		context.Background(),
		sdk.SignupCredentials{
			Name:     testName,
			Email:    testEmail,
			Password: "secret",
		},
	)
	require.NoError(t, err)

	_, ok, err := store.Current()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"Signup successful"}, notifier.successes)
	require.Equal(t, []Destination{DestinationHome}, navigator.destinations)
}

func TestSubmitterLoginValidation(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				requestCount++
			},
		),
	)
	defer server.Close()
	submitter, store, notifier, navigator := newTestSubmitter(server.URL)

	err := submitter.Login(
		context.Background(),
		sdk.LoginCredentials{
			Email: testEmail,
		},
	)
	require.Error(t, err)
	require.IsType(t, &ErrValidation{}, err)
	require.Equal(t, "Email and password are required", err.Error())

	// No request was sent and nothing else happened
	require.Zero(t, requestCount)
	_, ok, err := store.Current()
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, notifier.successes)
	require.Equal(t, []string{"Email and password are required"}, notifier.errors)
	require.Empty(t, navigator.destinations)
}

func TestSubmitterSignupValidation(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				requestCount++
			},
		),
	)
	defer server.Close()
	submitter, store, notifier, _ := newTestSubmitter(server.URL)

	err := submitter.Signup(
		context.Background(),
		sdk.SignupCredentials{
			Email:    testEmail,
			Password: "secret",
		},
	)
	require.Error(t, err)
	require.IsType(t, &ErrValidation{}, err)

	require.Zero(t, requestCount)
	_, ok, err := store.Current()
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(
		t,
		[]string{"Name, email, and password are required"},
		notifier.errors,
	)
}

func TestSubmitterLoginRejectedWithDetails(t *testing.T) {
	// The first detail's message wins, regardless of the top-level message
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(
					w,
					`{"success":false,"message":"Auth failed",`+
						`"error":{"details":[{"message":"password is required"},`+
						`{"message":"something else"}]}}`,
				)
			},
		),
	)
	defer server.Close()
	submitter, store, notifier, navigator := newTestSubmitter(server.URL)

	err := submitter.Login(
		context.Background(),
		sdk.LoginCredentials{
			Email:    testEmail,
			Password: "secret",
		},
	)
	require.Error(t, err)
	require.IsType(t, &ErrRejected{}, err)
	require.Equal(t, "password is required", err.Error())

	_, ok, err := store.Current()
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, notifier.successes)
	require.Equal(t, []string{"password is required"}, notifier.errors)
	require.Empty(t, navigator.destinations)
}

func TestSubmitterLoginGenericFailure(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"success":false,"message":"Invalid password"}`)
			},
		),
	)
	defer server.Close()
	submitter, store, notifier, _ := newTestSubmitter(server.URL)

	err := submitter.Login(
		context.Background(),
		sdk.LoginCredentials{
			Email:    testEmail,
			Password: "secret",
		},
	)
	require.Error(t, err)
	require.IsType(t, &ErrFailed{}, err)
	require.Equal(t, "Invalid password", err.Error())

	_, ok, err := store.Current()
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, []string{"Invalid password"}, notifier.errors)
}

func TestSubmitterLoginEmptyDetailsFallsBack(t *testing.T) {
	// A structured error block with an empty details list carries no usable
	// message; the top-level message is surfaced instead
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(
					w,
					`{"success":false,"message":"Auth failed",`+
						`"error":{"details":[]}}`,
				)
			},
		),
	)
	defer server.Close()
	submitter, _, notifier, _ := newTestSubmitter(server.URL)

	err := submitter.Login(
		context.Background(),
		sdk.LoginCredentials{
			Email:    testEmail,
			Password: "secret",
		},
	)
	require.Error(t, err)
	require.IsType(t, &ErrFailed{}, err)
	require.Equal(t, []string{"Auth failed"}, notifier.errors)
}

func TestSubmitterLoginTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // Shut it down before the submitter ever calls it
	submitter, store, notifier, navigator := newTestSubmitter(server.URL)

	err := submitter.Login(
		context.Background(),
		sdk.LoginCredentials{
			Email:    testEmail,
			Password: "secret",
		},
	)
	require.Error(t, err)
	require.IsType(t, &sdk.ErrTransport{}, err)

	_, ok, err := store.Current()
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, notifier.successes)
	require.Len(t, notifier.errors, 1)
	require.Empty(t, navigator.destinations)
}

func TestSubmitterReportsSubmitting(t *testing.T) {
	var submitter *Submitter
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				// The handler runs while the request is in flight
				require.True(t, submitter.Submitting())
				fmt.Fprint(w, `{"success":false,"message":"nope"}`)
			},
		),
	)
	defer server.Close()
	submitter, _, _, _ = newTestSubmitter(server.URL)

	require.False(t, submitter.Submitting())
	submitter.Login( // nolint: errcheck
		context.Background(),
		sdk.LoginCredentials{
			Email:    testEmail,
			Password: "secret",
		},
	)
	require.False(t, submitter.Submitting())
}
