package products

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/shopnext/shopnext/internal/session"
	"github.com/shopnext/shopnext/sdk"
)

// Fetcher retrieves the protected products collection using the current
// session. The token is read from the store at call time, so every fetch
// reflects the latest committed or cleared state.
type Fetcher struct {
	store          session.Store
	productsClient sdk.ProductsClient
}

// NewFetcher returns a Fetcher that reads the session token from the
// specified store.
func NewFetcher(
	store session.Store,
	productsClient sdk.ProductsClient,
) *Fetcher {
	return &Fetcher{
		store:          store,
		productsClient: productsClient,
	}
}

// Fetch issues the authorized request and returns the parsed body,
// whatever its shape. When no session is present the request is still
// attempted with an empty credential; the remote service decides whether
// that is acceptable. Failures are not retried.
func (f *Fetcher) Fetch(ctx context.Context) (json.RawMessage, error) {
	session, _, err := f.store.Current()
	if err != nil {
		return nil, errors.Wrap(err, "error reading current session")
	}
	return f.productsClient.List(ctx, session.Token)
}
