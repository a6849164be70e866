package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mhofer/farmfinder/internal/client/api"
	"github.com/mhofer/farmfinder/internal/client/models"
)

var weekdays = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Farms lists all farms.
func (a *App) Farms(ctx context.Context) error {
	farms, err := a.client.ListFarms(ctx)
	if err != nil {
		printlnFn("Cannot list farms:", err.Error())
		return err
	}
	printFarms(farms)
	return nil
}

// ShowFarm prints the full details of one farm. The id comes from the
// command arguments.
func (a *App) ShowFarm(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Invalid farm id:", args[0])
		return nil
	}

	farm, err := a.client.GetFarm(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			printlnFn("No farm with id", id)
			return nil
		}
		printlnFn("Cannot load farm:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s (%.5f, %.5f)", farm.ID, farm.Name, farm.Lat, farm.Lon))
	for _, st := range farm.ShopTypes {
		printlnFn(" -", st.Name)
	}
	for _, oh := range farm.OpeningHours {
		printlnFn("  ", formatOpeningHours(oh))
	}
	return nil
}

// FarmsNear lists farms within a radius around a point, the query the map
// view issues when panning.
func (a *App) FarmsNear(ctx context.Context, args []string) error {
	if len(args) != 3 {
		printlnFn("Usage: near <lat> <lon> <radius>")
		return nil
	}

	coords := make([]float64, 3)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			printlnFn("Invalid number:", arg)
			return nil
		}
		coords[i] = v
	}

	farms, err := a.client.FindFarmsNear(ctx, coords[0], coords[1], coords[2])
	if err != nil {
		printlnFn("Cannot search farms:", err.Error())
		return err
	}
	printFarms(farms)
	return nil
}

// CreateFarm prompts for a new farm and creates it. Requires a session and
// the farm-owner privilege server-side.
func (a *App) CreateFarm(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	farm := models.NewFarm{}
	var err error

	if farm.Name, err = getSimpleText(a.reader, "Enter farm name", os.Stdout); err != nil {
		return err
	}
	if farm.Lat, err = getFloat(a.reader, "Enter latitude"); err != nil {
		printlnFn("Invalid latitude")
		return nil
	}
	if farm.Lon, err = getFloat(a.reader, "Enter longitude"); err != nil {
		printlnFn("Invalid longitude")
		return nil
	}

	created, err := a.client.CreateFarm(ctx, farm)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			printlnFn("You are not allowed to create farms")
			return nil
		}
		printlnFn("Cannot create farm:", err.Error())
		return err
	}

	printlnFn("Farm", created.Name, "created")
	return nil
}

// DeleteFarm removes a farm by id.
func (a *App) DeleteFarm(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: delete <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Invalid farm id:", args[0])
		return nil
	}

	if err := a.client.DeleteFarm(ctx, id); err != nil {
		printlnFn("Cannot delete farm:", err.Error())
		return err
	}
	printlnFn("Farm", id, "deleted")
	return nil
}

func getFloat(reader *bufio.Reader, prompt string) (float64, error) {
	text, err := getSimpleText(reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(text, 64)
}

func printFarms(farms []models.Farm) {
	if len(farms) == 0 {
		printlnFn("No farms found")
		return
	}
	for _, f := range farms {
		printlnFn(fmt.Sprintf("%4d  %s", f.ID, f.Name))
	}
}

func formatOpeningHours(oh models.OpeningHours) string {
	day := "?"
	if oh.Weekday >= 0 && oh.Weekday < len(weekdays) {
		day = weekdays[oh.Weekday]
	}
	return fmt.Sprintf("%s %02d:%02d-%02d:%02d", day, oh.Open/100, oh.Open%100, oh.Close/100, oh.Close%100)
}
