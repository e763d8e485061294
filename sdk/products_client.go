package sdk

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopnext/shopnext/sdk/internal/restmachinery"
)

// ProductsClient is the specialized client for the protected products
// collection.
type ProductsClient interface {
	// List retrieves the product collection using the specified session
	// token. The token is attached as-is, even when empty; the remote
	// service is the authority on whether that is acceptable. The parsed
	// body is returned whatever its shape-- no schema validation is
	// performed. An *ErrTransport is returned if the request could not be
	// completed or the body was not well-formed JSON.
	List(ctx context.Context, token string) (json.RawMessage, error)
}

type productsClient struct {
	*restmachinery.BaseClient
}

// NewProductsClient returns a specialized client for the protected
// products collection.
func NewProductsClient(apiAddress string, allowInsecure bool) ProductsClient {
	return &productsClient{
		BaseClient: restmachinery.NewBaseClient(apiAddress, allowInsecure),
	}
}

func (p *productsClient) List(
	_ context.Context,
	token string,
) (json.RawMessage, error) {
	products := json.RawMessage{}
	if err := p.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "products",
			AuthHeaders: p.TokenAuthHeaders(token),
			RespObj:     &products,
		},
	); err != nil {
		return nil, &ErrTransport{Cause: err}
	}
	return products, nil
}
