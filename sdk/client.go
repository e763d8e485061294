package sdk

// Client is the aggregate client for all shopnext API concerns.
type Client interface {
	// Auth returns a specialized client for authentication.
	Auth() AuthClient
	// Products returns a specialized client for the products collection.
	Products() ProductsClient
}

type client struct {
	// authClient is a specialized client for authentication.
	authClient AuthClient
	// productsClient is a specialized client for the products collection.
	productsClient ProductsClient
}

// NewClient returns an aggregate client for all shopnext API concerns.
func NewClient(apiAddress string, allowInsecure bool) Client {
	return &client{
		authClient:     NewAuthClient(apiAddress, allowInsecure),
		productsClient: NewProductsClient(apiAddress, allowInsecure),
	}
}

func (c *client) Auth() AuthClient {
	return c.authClient
}

func (c *client) Products() ProductsClient {
	return c.productsClient
}
