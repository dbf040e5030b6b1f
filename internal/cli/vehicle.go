package cli

import (
	"context"
	"fmt"
	"strconv"

	"fleetsync/internal/models"
	"fleetsync/internal/services"
)

// getOptionalText is an indirection over GetOptionalText for testing.
var getOptionalText = GetOptionalText

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please login first")
	return false
}

// List prints the local fleet, one vehicle per line, ordered by brand.
func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	fleet, err := a.fleet.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	for _, v := range fleet {
		status := "active"
		if !v.Active {
			status = "inactive"
		}
		image := "-"
		if v.ImageURL != nil {
			image = *v.ImageURL
		} else if v.ImageAssetID != nil {
			image = fmt.Sprintf("asset #%d", *v.ImageAssetID)
		}
		fmt.Fprintf(a.out, "%s  %s %d  %s  $%s/day  %s  %s\n",
			v.Plate, v.Brand, v.Year, v.Color, v.DailyRate.String(), status, image)
	}
	fmt.Fprintf(a.out, "%d vehicles\n", len(fleet))
	return nil
}

// Add prompts for every vehicle field and creates the record.
func (a *App) Add(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	v := &models.Vehicle{Active: true}

	var err error
	if v.Plate, err = getSimpleText(a.reader, "Enter plate (ABC123)", a.out); err != nil {
		return err
	}
	if v.Brand, err = getSimpleText(a.reader, "Enter brand", a.out); err != nil {
		return err
	}
	year, err := getSimpleText(a.reader, "Enter year", a.out)
	if err != nil {
		return err
	}
	if v.Year, err = strconv.Atoi(year); err != nil {
		fmt.Fprintln(a.out, "Invalid year:", year)
		return err
	}
	if v.Color, err = getSimpleText(a.reader, "Enter color", a.out); err != nil {
		return err
	}
	rate, err := getSimpleText(a.reader, "Enter daily rate", a.out)
	if err != nil {
		return err
	}
	if v.DailyRate, err = services.ParseRate(rate); err != nil {
		fmt.Fprintln(a.out, "Invalid daily rate:", rate)
		return err
	}
	image, err := getSimpleText(a.reader, "Enter image path or URL (optional)", a.out)
	if err != nil {
		return err
	}
	if image != "" {
		v.ImageURL = &image
	}

	res := a.fleet.Add(ctx, v)
	fmt.Fprintln(a.out, res.Message)
	return res.Err
}

// Edit loads a vehicle by plate and prompts for new values; an empty answer
// keeps the current one. The plate itself cannot change.
func (a *App) Edit(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	plate, err := getSimpleText(a.reader, "Enter plate to edit", a.out)
	if err != nil {
		return err
	}
	v, err := a.fleet.Get(ctx, plate)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	if v.Brand, err = getOptionalText(a.reader, "Brand", v.Brand, a.out); err != nil {
		return err
	}
	year, err := getOptionalText(a.reader, "Year", strconv.Itoa(v.Year), a.out)
	if err != nil {
		return err
	}
	if v.Year, err = strconv.Atoi(year); err != nil {
		fmt.Fprintln(a.out, "Invalid year:", year)
		return err
	}
	if v.Color, err = getOptionalText(a.reader, "Color", v.Color, a.out); err != nil {
		return err
	}
	rate, err := getOptionalText(a.reader, "Daily rate", v.DailyRate.String(), a.out)
	if err != nil {
		return err
	}
	if v.DailyRate, err = services.ParseRate(rate); err != nil {
		fmt.Fprintln(a.out, "Invalid daily rate:", rate)
		return err
	}
	active, err := getOptionalText(a.reader, "Active (y/n)", boolAnswer(v.Active), a.out)
	if err != nil {
		return err
	}
	v.Active = active == "y" || active == "yes"

	res := a.fleet.Update(ctx, v)
	fmt.Fprintln(a.out, res.Message)
	return res.Err
}

// Delete removes a vehicle by plate after a confirmation prompt.
func (a *App) Delete(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	plate, err := getSimpleText(a.reader, "Enter plate to delete", a.out)
	if err != nil {
		return err
	}
	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s? (y/n)", plate), a.out)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	res := a.fleet.Delete(ctx, plate)
	fmt.Fprintln(a.out, res.Message)
	return res.Err
}

// Sync runs a full reconcile with the cloud.
func (a *App) Sync(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	res := a.fleet.Sync(ctx)
	fmt.Fprintln(a.out, res.Message)
	return res.Err
}

// Migrate uploads pending local vehicle images without a full sync.
func (a *App) Migrate(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	res := a.fleet.MigrateImages(ctx)
	fmt.Fprintln(a.out, res.Message)
	return res.Err
}

func boolAnswer(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
