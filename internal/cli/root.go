// Package cli implements the carhub command surface. Commands are thin
// invokers of the service layer, the terminal counterpart of the
// storefront's pages: each one parses its flags, calls a service and renders
// the result. No business logic lives here.
package cli

import (
	"errors"

	"carhub/internal/models"
	"carhub/internal/services"

	"github.com/spf13/cobra"
)

// App bundles the services the commands operate on.
type App struct {
	Catalog *services.CatalogService
	Filter  *services.FilterService
	Session *services.SessionService
}

// NewRootCmd builds the carhub command tree over the given app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "carhub",
		Short:         "A local car marketplace storefront",
		Long:          "carhub is a local car marketplace: browse and filter listings,\npurchase a car, and administer the inventory. All state lives in a\nlocal database file.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCarsCmd(app),
		newShowCmd(app),
		newBuyCmd(app),
		newGarageCmd(app),
		newAdminCmd(app),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
	)
	return root
}

// requireUser returns the active session user, or an actionable error when
// nobody is logged in.
func requireUser(app *App) (*models.User, error) {
	user, err := app.Session.Current()
	if err != nil {
		if errors.Is(err, services.ErrNotLoggedIn) {
			return nil, errors.New("you must be logged in first (see 'carhub login')")
		}
		return nil, err
	}
	return user, nil
}

// requireAdmin returns the active session user if they are an admin.
func requireAdmin(app *App) (*models.User, error) {
	user, err := requireUser(app)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, errors.New("admin access required")
	}
	return user, nil
}
