package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const envconfigPrefix = "SHOPNEXT"

// apiConfig represents configuration for connecting to the shopnext API
// server, drawn from the environment.
type apiConfig struct {
	APIAddress string `envconfig:"API_ADDRESS" default:"https://api.shopnext.io"`
}

// apiAddress returns the API server address, preferring the --server flag
// over the environment.
func apiAddress(c *cli.Context) (string, error) {
	if address := c.String(flagServer); address != "" {
		return address, nil
	}
	config := apiConfig{}
	if err := envconfig.Process(envconfigPrefix, &config); err != nil {
		return "", errors.Wrap(
			err,
			"error getting API server address from environment",
		)
	}
	return config.APIAddress, nil
}
