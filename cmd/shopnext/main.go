package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/shopnext/shopnext/internal/signals"
	"github.com/shopnext/shopnext/internal/version"
)

func main() {
	app := cli.NewApp()
	app.Name = "shopnext"
	app.Usage = "Shop from your terminal"
	app.Version = fmt.Sprintf(
		"%s -- commit %s",
		version.Version(),
		version.Commit(),
	)
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    flagServer,
			Aliases: []string{"s"},
			Usage: "Connect to the API server at the specified address; " +
				"overrides $SHOPNEXT_API_ADDRESS",
		},
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
	}
	app.Commands = []*cli.Command{
		loginCommand,
		logoutCommand,
		productsCommand,
		signupCommand,
		whoamiCommand,
	}
	fmt.Println()
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
