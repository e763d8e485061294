package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/shopnext/shopnext/internal/auth"
	"github.com/shopnext/shopnext/internal/session"
	"github.com/shopnext/shopnext/sdk"
)

func getClient(c *cli.Context) (sdk.Client, error) {
	address, err := apiAddress(c)
	if err != nil {
		return nil, errors.Wrap(err, "error retrieving API server address")
	}
	return sdk.NewClient(address, c.Bool(flagInsecure)), nil
}

func getSessionStore() (session.Store, error) {
	store, err := session.NewFileStore("")
	if err != nil {
		return nil, errors.Wrap(err, "error getting session store")
	}
	return store, nil
}

func getSubmitter(c *cli.Context) (*auth.Submitter, error) {
	client, err := getClient(c)
	if err != nil {
		return nil, err
	}
	store, err := getSessionStore()
	if err != nil {
		return nil, err
	}
	return auth.NewSubmitter(
		client.Auth(),
		store,
		&terminalNotifier{},
		&viewNavigator{},
		0,
	), nil
}

func getTerminator() (*auth.Terminator, error) {
	store, err := getSessionStore()
	if err != nil {
		return nil, err
	}
	return auth.NewTerminator(
		store,
		&terminalNotifier{},
		&viewNavigator{},
		0,
	), nil
}
