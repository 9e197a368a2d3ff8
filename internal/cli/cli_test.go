package cli_test

import (
	"bytes"
	"testing"

	"carhub/internal/cli"
	"carhub/internal/repositories"
	"carhub/internal/services"
	"carhub/pkg/localstore"
	"carhub/pkg/notify"

	"github.com/stretchr/testify/assert"
)

func newTestApp() *cli.App {
	store := localstore.NewMemoryStore()
	repo := repositories.NewSlotCarRepository(store, "cars", repositories.DefaultCatalog())
	notifier := notify.NewNopNotifier()
	return &cli.App{
		Catalog: services.NewCatalogService(repo, notifier),
		Filter:  services.NewFilterService(),
		Session: services.NewSessionService(store, "carUser", notifier),
	}
}

// run executes one carhub invocation against the app and captures output.
func run(t *testing.T, app *cli.App, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCarsCommandFiltersByPrice(t *testing.T) {
	app := newTestApp()

	out, err := run(t, app, "cars", "--max-price", "25000")
	assert.NoError(t, err)
	assert.Contains(t, out, "Camry")
	assert.Contains(t, out, "Civic")
	assert.NotContains(t, out, "Mustang")
	assert.Contains(t, out, "$25,000")
	assert.Contains(t, out, "Showing 2 of 6 available cars")
}

func TestCarsCommandSearch(t *testing.T) {
	app := newTestApp()

	out, err := run(t, app, "cars", "--search", "muscle")
	assert.NoError(t, err)
	assert.Contains(t, out, "Mustang")
	assert.Contains(t, out, "Showing 1 of 6 available cars")

	out, err = run(t, app, "cars", "--search", "zeppelin")
	assert.NoError(t, err)
	assert.Contains(t, out, "No cars found")
}

func TestBuyRequiresLogin(t *testing.T) {
	app := newTestApp()

	_, err := run(t, app, "buy", "2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logged in")
}

func TestBuyAndGarageFlow(t *testing.T) {
	app := newTestApp()

	_, err := run(t, app, "login", "user@example.com", "--password", "anything")
	assert.NoError(t, err)

	_, err = run(t, app, "buy", "2")
	assert.NoError(t, err)

	out, err := run(t, app, "garage")
	assert.NoError(t, err)
	assert.Contains(t, out, "Civic")

	// The bought car is no longer browsable.
	out, err = run(t, app, "cars")
	assert.NoError(t, err)
	assert.NotContains(t, out, "Civic")
	assert.Contains(t, out, "Showing 5 of 5 available cars")
}

func TestAdminCommandsRequireAdmin(t *testing.T) {
	app := newTestApp()

	_, err := run(t, app, "login", "user@example.com")
	assert.NoError(t, err)

	_, err = run(t, app, "admin", "delete", "1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "admin access required")
}

func TestAdminAddListDelete(t *testing.T) {
	app := newTestApp()

	_, err := run(t, app, "login", "admin@example.com")
	assert.NoError(t, err)

	out, err := run(t, app, "admin", "add",
		"--make", "Mazda", "--model", "MX-5", "--year", "2023", "--price", "28000",
		"--feature", "Convertible", "--feature", "Manual")
	assert.NoError(t, err)
	assert.Contains(t, out, "Added car ")

	out, err = run(t, app, "admin", "list")
	assert.NoError(t, err)
	assert.Contains(t, out, "MX-5")

	_, err = run(t, app, "admin", "delete", "1")
	assert.NoError(t, err)

	out, err = run(t, app, "admin", "list")
	assert.NoError(t, err)
	assert.NotContains(t, out, "Camry")
}

func TestWhoamiAndLogout(t *testing.T) {
	app := newTestApp()

	_, err := run(t, app, "whoami")
	assert.Error(t, err)

	_, err = run(t, app, "login", "admin@example.com")
	assert.NoError(t, err)

	out, err := run(t, app, "whoami")
	assert.NoError(t, err)
	assert.Contains(t, out, "Admin User")
	assert.Contains(t, out, "role: admin")

	_, err = run(t, app, "logout")
	assert.NoError(t, err)

	_, err = run(t, app, "whoami")
	assert.Error(t, err)
}
