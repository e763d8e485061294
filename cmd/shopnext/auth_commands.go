package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/shopnext/shopnext/sdk"
)

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Log in to shopnext",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagEmail,
			Aliases: []string{"e"},
			Usage:   "The email address to log in with",
		},
		&cli.StringFlag{
			Name:    flagPassword,
			Aliases: []string{"p"},
			Usage:   "Specify the password non-interactively",
		},
	},
	Action: login,
}

var signupCommand = &cli.Command{
	Name:  "signup",
	Usage: "Create a new shopnext account and log in",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagName,
			Aliases: []string{"n"},
			Usage:   "The name to sign up with",
		},
		&cli.StringFlag{
			Name:    flagEmail,
			Aliases: []string{"e"},
			Usage:   "The email address to sign up with",
		},
		&cli.StringFlag{
			Name:    flagPassword,
			Aliases: []string{"p"},
			Usage:   "Specify the password non-interactively",
		},
	},
	Action: signup,
}

var logoutCommand = &cli.Command{
	Name:   "logout",
	Usage:  "Log out of shopnext",
	Action: logout,
}

var whoamiCommand = &cli.Command{
	Name:   "whoami",
	Usage:  "Show the currently logged in user",
	Action: whoami,
}

func login(c *cli.Context) error {
	email := c.String(flagEmail)
	password := c.String(flagPassword)

	if interactiveTerminal() {
		if email == "" {
			if err := survey.AskOne(
				&survey.Input{Message: "Email"},
				&email,
			); err != nil {
				return errors.Wrap(err, "error reading email from prompt")
			}
		}
		if password == "" {
			if err := survey.AskOne(
				&survey.Password{Message: "Password"},
				&password,
			); err != nil {
				return errors.Wrap(err, "error reading password from prompt")
			}
		}
	}

	submitter, err := getSubmitter(c)
	if err != nil {
		return err
	}
	if err := submitter.Login(
		c.Context,
		sdk.LoginCredentials{
			Email:    email,
			Password: password,
		},
	); err != nil {
		// The submitter has already surfaced the failure
		return cli.Exit("", 1)
	}
	return nil
}

func signup(c *cli.Context) error {
	name := c.String(flagName)
	email := c.String(flagEmail)
	password := c.String(flagPassword)

	if interactiveTerminal() {
		if name == "" {
			if err := survey.AskOne(
				&survey.Input{Message: "Name"},
				&name,
			); err != nil {
				return errors.Wrap(err, "error reading name from prompt")
			}
		}
		if email == "" {
			if err := survey.AskOne(
				&survey.Input{Message: "Email"},
				&email,
			); err != nil {
				return errors.Wrap(err, "error reading email from prompt")
			}
		}
		if password == "" {
			if err := survey.AskOne(
				&survey.Password{Message: "Password"},
				&password,
			); err != nil {
				return errors.Wrap(err, "error reading password from prompt")
			}
		}
	}

	submitter, err := getSubmitter(c)
	if err != nil {
		return err
	}
	if err := submitter.Signup(
		c.Context,
		sdk.SignupCredentials{
			Name:     name,
			Email:    email,
			Password: password,
		},
	); err != nil {
		// The submitter has already surfaced the failure
		return cli.Exit("", 1)
	}
	return nil
}

func logout(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("logout requires no arguments")
	}
	terminator, err := getTerminator()
	if err != nil {
		return err
	}
	if err := terminator.Logout(); err != nil {
		// The terminator has already surfaced the failure
		return cli.Exit("", 1)
	}
	return nil
}

func whoami(c *cli.Context) error {
	store, err := getSessionStore()
	if err != nil {
		return err
	}
	session, ok, err := store.Current()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(
			"you are not logged in; use `shopnext login` to continue",
		)
	}
	fmt.Printf("%s <%s>\n", session.Name, session.Email)
	return nil
}

func interactiveTerminal() bool {
	return terminal.IsTerminal(int(os.Stdin.Fd()))
}
