package main

import (
	"log"
	"os"

	"carhub/internal/cli"
	"carhub/internal/repositories"
	"carhub/internal/services"
	"carhub/pkg/localstore"
	"carhub/pkg/notify"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	// Viper reads from environment variables with sane local defaults.
	viper.SetDefault("CARHUB_DB", "carhub.db")
	viper.SetDefault("CARHUB_CARS_SLOT", "cars")
	viper.SetDefault("CARHUB_SESSION_SLOT", "carUser")
	viper.SetDefault("CARHUB_QUIET", false)
	viper.AutomaticEnv()

	dbPath := viper.GetString("CARHUB_DB")
	carsSlot := viper.GetString("CARHUB_CARS_SLOT")
	sessionSlot := viper.GetString("CARHUB_SESSION_SLOT")

	// --- Initialize Local Store ---
	// A single SQLite file of named slots; the catalog and the session each
	// live in one slot as a serialized blob.
	store, err := localstore.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	// --- Notifications ---
	// Operation outcomes go to stderr so they never mix with command output.
	var notifier notify.Notifier = notify.NewConsoleNotifier(os.Stderr)
	if viper.GetBool("CARHUB_QUIET") {
		notifier = notify.NewNopNotifier()
	}

	// --- Initialize Repositories ---
	carRepo := repositories.NewSlotCarRepository(store, carsSlot, repositories.DefaultCatalog())

	// --- Initialize Services ---
	catalogService := services.NewCatalogService(carRepo, notifier)
	filterService := services.NewFilterService()
	sessionService := services.NewSessionService(store, sessionSlot, notifier)

	// --- Run CLI ---
	app := &cli.App{
		Catalog: catalogService,
		Filter:  filterService,
		Session: sessionService,
	}
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		log.Fatalf("carhub: %v", err)
	}
}
