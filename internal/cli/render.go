package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"carhub/internal/models"
)

// formatPrice renders an integer amount with thousands separators, e.g.
// "$25,000".
func formatPrice(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// printCarTable renders a listing table. The sold and buyer columns are only
// shown when withStatus is set (the admin view).
func printCarTable(out io.Writer, cars []models.Car, withStatus bool) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if withStatus {
		fmt.Fprintln(w, "ID\tMAKE\tMODEL\tYEAR\tPRICE\tSOLD\tBUYER")
	} else {
		fmt.Fprintln(w, "ID\tMAKE\tMODEL\tYEAR\tPRICE")
	}

	for _, car := range cars {
		if withStatus {
			buyer := "-"
			if car.BuyerID != nil {
				buyer = *car.BuyerID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%t\t%s\n",
				car.ID, car.Make, car.Model, car.Year, formatPrice(car.Price), car.Sold, buyer)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				car.ID, car.Make, car.Model, car.Year, formatPrice(car.Price))
		}
	}
	w.Flush()
}

// printCarDetail renders the full record of a single car.
func printCarDetail(out io.Writer, car models.Car) {
	fmt.Fprintf(out, "%d %s %s\n", car.Year, car.Make, car.Model)
	fmt.Fprintf(out, "ID:       %s\n", car.ID)
	fmt.Fprintf(out, "Price:    %s\n", formatPrice(car.Price))
	if car.Description != "" {
		fmt.Fprintf(out, "About:    %s\n", car.Description)
	}
	if len(car.Features) > 0 {
		fmt.Fprintf(out, "Features: %s\n", strings.Join(car.Features, ", "))
	}
	if car.ImageURL != "" {
		fmt.Fprintf(out, "Image:    %s\n", car.ImageURL)
	}
	if car.Sold {
		fmt.Fprintln(out, "Status:   sold")
	} else {
		fmt.Fprintln(out, "Status:   available")
	}
}
