// Package cli is the interactive terminal front end: a small REPL over the
// auth and vehicle services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"fleetsync/internal/models"
	"fleetsync/internal/services"
)

// App holds the REPL state: the two services and the currently logged-in
// user, if any.
type App struct {
	auth   *services.AuthService
	fleet  *services.VehicleService
	user   *models.User
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(auth *services.AuthService, fleet *services.VehicleService) *App {
	return &App{
		auth:   auth,
		fleet:  fleet,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Name)
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to fleetsync CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}
