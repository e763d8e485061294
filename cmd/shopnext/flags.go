package main

import "github.com/urfave/cli/v2"

const (
	flagEmail    = "email"
	flagInsecure = "insecure"
	flagName     = "name"
	flagOutput   = "output"
	flagPassword = "password"
	flagServer   = "server"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: "Return output in the specified format; supported formats: " +
			"table, json",
		Value: "table",
	}
)
