package main

import (
	"fmt"

	"github.com/shopnext/shopnext/internal/auth"
)

// viewNavigator implements auth.Navigator by rendering the view for the
// destination a session lifecycle operation lands on.
type viewNavigator struct{}

func (v *viewNavigator) Go(destination auth.Destination) {
	switch destination {
	case auth.DestinationHome:
		if err := renderHome(); err != nil {
			fmt.Printf("\n%s\n", err)
		}
	case auth.DestinationLogin:
		fmt.Println("Use `shopnext login` to continue.")
	}
}

// renderHome shows the authenticated view: a greeting for the current
// user.
func renderHome() error {
	store, err := getSessionStore()
	if err != nil {
		return err
	}
	session, ok, err := store.Current()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	fmt.Printf("\nWelcome %s, your email is %s\n", session.Name, session.Email)
	fmt.Println("Use `shopnext products` to browse products.")
	return nil
}
