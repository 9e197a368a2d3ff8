package cli

import (
	"errors"
	"fmt"

	"carhub/internal/models"
	"carhub/internal/repositories"

	"github.com/spf13/cobra"
)

// newCarsCmd is the browsing page: it lists the available catalog narrowed
// by the filter pipeline.
func newCarsCmd(app *App) *cobra.Command {
	var (
		search     string
		makeFilter string
		minPrice   int64
		maxPrice   int64
		minYear    int
		maxYear    int
	)

	cmd := &cobra.Command{
		Use:   "cars",
		Short: "Browse available cars",
		RunE: func(cmd *cobra.Command, args []string) error {
			available, err := app.Catalog.GetAvailableCars()
			if err != nil {
				return err
			}

			criteria := models.Criteria{
				Search: search,
				Make:   makeFilter,
			}

			// Range filters start at the observed bounds, like the
			// storefront's sliders; explicit flags narrow them. An empty
			// catalog has no bounds and no range filters.
			if bounds, ok := app.Filter.PriceBounds(available); ok {
				price := bounds
				if cmd.Flags().Changed("min-price") {
					price.Low = minPrice
				}
				if cmd.Flags().Changed("max-price") {
					price.High = maxPrice
				}
				criteria.Price = &price
			}
			if bounds, ok := app.Filter.YearBounds(available); ok {
				year := bounds
				if cmd.Flags().Changed("min-year") {
					year.Low = minYear
				}
				if cmd.Flags().Changed("max-year") {
					year.High = maxYear
				}
				criteria.Year = &year
			}

			cars := app.Filter.Apply(available, criteria)
			out := cmd.OutOrStdout()
			if len(cars) == 0 {
				fmt.Fprintln(out, "No cars found. Try adjusting your filters or search criteria.")
				return nil
			}

			printCarTable(out, cars, false)
			fmt.Fprintf(out, "\nShowing %d of %d available cars\n", len(cars), len(available))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match against make, model or description")
	cmd.Flags().StringVar(&makeFilter, "make", "", "exact make; empty means all makes")
	cmd.Flags().Int64Var(&minPrice, "min-price", 0, "minimum price, inclusive")
	cmd.Flags().Int64Var(&maxPrice, "max-price", 0, "maximum price, inclusive")
	cmd.Flags().IntVar(&minYear, "min-year", 0, "earliest model year, inclusive")
	cmd.Flags().IntVar(&maxYear, "max-year", 0, "latest model year, inclusive")
	return cmd
}

// newShowCmd is the detail page for a single listing.
func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <car-id>",
		Short: "Show the details of a car",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			car, err := app.Catalog.GetCarByID(args[0])
			if err != nil {
				if errors.Is(err, repositories.ErrCarNotFound) {
					return fmt.Errorf("car %s not found", args[0])
				}
				return err
			}
			printCarDetail(cmd.OutOrStdout(), *car)
			return nil
		},
	}
}

// newBuyCmd purchases a car for the logged-in user.
func newBuyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <car-id>",
		Short: "Purchase a car",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}
			return app.Catalog.PurchaseCar(args[0], user.ID)
		},
	}
}

// newGarageCmd lists the logged-in user's purchases.
func newGarageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "garage",
		Short: "List the cars you have purchased",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}

			purchases, err := app.Catalog.GetUserPurchases(user.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(purchases) == 0 {
				fmt.Fprintln(out, "You have not purchased any cars yet.")
				return nil
			}
			printCarTable(out, purchases, false)
			return nil
		},
	}
}
