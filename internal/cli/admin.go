package cli

import (
	"fmt"

	"carhub/internal/models"

	"github.com/spf13/cobra"
)

// newAdminCmd is the inventory administration table: full catalog listing
// plus add, update and delete. Every subcommand requires an admin session.
func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer the car inventory",
	}
	cmd.AddCommand(
		newAdminListCmd(app),
		newAdminAddCmd(app),
		newAdminUpdateCmd(app),
		newAdminDeleteCmd(app),
	)
	return cmd
}

func newAdminListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the whole catalog, sold cars included",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(app); err != nil {
				return err
			}

			cars, err := app.Catalog.GetAllCars()
			if err != nil {
				return err
			}
			printCarTable(cmd.OutOrStdout(), cars, true)
			return nil
		},
	}
}

func newAdminAddCmd(app *App) *cobra.Command {
	var car models.Car

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a car to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(app); err != nil {
				return err
			}

			added, err := app.Catalog.AddCar(&car)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added car %s\n", added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&car.Make, "make", "", "car make")
	cmd.Flags().StringVar(&car.Model, "model", "", "car model")
	cmd.Flags().IntVar(&car.Year, "year", 0, "model year")
	cmd.Flags().Int64Var(&car.Price, "price", 0, "price")
	cmd.Flags().StringVar(&car.Description, "description", "", "free-text description")
	cmd.Flags().StringVar(&car.ImageURL, "image-url", "", "listing image URL")
	cmd.Flags().StringSliceVar(&car.Features, "feature", nil, "feature, repeatable; order is kept")
	cmd.MarkFlagRequired("make")
	cmd.MarkFlagRequired("model")
	cmd.MarkFlagRequired("year")
	cmd.MarkFlagRequired("price")
	return cmd
}

func newAdminUpdateCmd(app *App) *cobra.Command {
	var (
		update models.Car
		sold   bool
		buyer  string
	)

	cmd := &cobra.Command{
		Use:   "update <car-id>",
		Short: "Update a car in the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(app); err != nil {
				return err
			}

			car, err := app.Catalog.GetCarByID(args[0])
			if err != nil {
				return err
			}

			// Only flags that were actually set override the stored record;
			// the update itself is still a whole-record replacement.
			flags := cmd.Flags()
			if flags.Changed("make") {
				car.Make = update.Make
			}
			if flags.Changed("model") {
				car.Model = update.Model
			}
			if flags.Changed("year") {
				car.Year = update.Year
			}
			if flags.Changed("price") {
				car.Price = update.Price
			}
			if flags.Changed("description") {
				car.Description = update.Description
			}
			if flags.Changed("image-url") {
				car.ImageURL = update.ImageURL
			}
			if flags.Changed("feature") {
				car.Features = update.Features
			}
			if flags.Changed("sold") {
				car.Sold = sold
			}
			if flags.Changed("buyer") {
				car.BuyerID = &buyer
			}

			return app.Catalog.UpdateCar(car)
		},
	}

	cmd.Flags().StringVar(&update.Make, "make", "", "car make")
	cmd.Flags().StringVar(&update.Model, "model", "", "car model")
	cmd.Flags().IntVar(&update.Year, "year", 0, "model year")
	cmd.Flags().Int64Var(&update.Price, "price", 0, "price")
	cmd.Flags().StringVar(&update.Description, "description", "", "free-text description")
	cmd.Flags().StringVar(&update.ImageURL, "image-url", "", "listing image URL")
	cmd.Flags().StringSliceVar(&update.Features, "feature", nil, "feature, repeatable; replaces the stored list")
	cmd.Flags().BoolVar(&sold, "sold", false, "mark the car sold or available")
	cmd.Flags().StringVar(&buyer, "buyer", "", "buyer user ID for a sold car")
	return cmd
}

func newAdminDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <car-id>",
		Short: "Delete a car from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(app); err != nil {
				return err
			}
			return app.Catalog.DeleteCar(args[0])
		},
	}
}
