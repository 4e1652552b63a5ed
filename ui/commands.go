package ui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"transecta/export"
	"transecta/transect"
)

var (
	errUsage    = errors.New("usage")
	errPosition = errors.New("position out of range")
)

func (app *Application) registerCommands() {
	c := app.commands

	c.Register("add", "add <species> <start> <end>", func(args []string) error {
		if len(args) < 3 {
			return fmt.Errorf("%w: add <species> <start> <end>", errUsage)
		}
		n := len(args)
		start, err := strconv.ParseFloat(args[n-2], 64)
		if err != nil {
			return err
		}
		end, err := strconv.ParseFloat(args[n-1], 64)
		if err != nil {
			return err
		}
		iv, err := app.session.Record(strings.Join(args[:n-2], " "), start, end)
		if err != nil {
			return err
		}
		app.ok(fmt.Sprintf("Recorded %s", iv))
		app.resetRange()
		return nil
	})

	c.Register("undo", "undo", func([]string) error {
		app.undo()
		return nil
	})

	c.Register("clear", "clear", func([]string) error {
		n := app.session.Len()
		app.session.Clear()
		app.resetRange()
		app.ok(fmt.Sprintf("Cleared %d intervals", n))
		return nil
	})

	c.Register("species", "species <name>", func(args []string) error {
		name := strings.Join(args, " ")
		if name == "" {
			return fmt.Errorf("%w: species <name>", errUsage)
		}
		if app.catalog.Add(name) {
			app.ok(fmt.Sprintf("Added %q to the species list", name))
		} else {
			app.ok(fmt.Sprintf("%q is already listed", name))
		}
		app.form.values[speciesField] = name
		return nil
	})

	c.Register("export", "export [csv|text|yaml|json] [path] [normalized]", func(args []string) error {
		format, path, normalized := app.settings.Export.Format, "", false
		for _, a := range args {
			switch {
			case a == "normalized" || a == "-n":
				normalized = true
			case slices.Contains(export.Formats(), a):
				format = a
			default:
				path = a
			}
		}
		if path == "" {
			path = app.exportPath(format)
		}
		if err := export.WriteFile(path, format, app.document(normalized)); err != nil {
			app.log.Error("export failed", zap.String("path", path), zap.Error(err))
			return err
		}
		app.log.Info("exported", zap.String("path", path), zap.String("format", format))
		app.ok("Exported to " + path)
		return nil
	})

	c.Register("site", "site <name>", func(args []string) error {
		app.session.Site.Name = strings.Join(args, " ")
		app.ok("Site: " + app.session.Site.Name)
		return nil
	})

	c.Register("observer", "observer <name>", func(args []string) error {
		app.session.Site.Observer = strings.Join(args, " ")
		app.ok("Observer: " + app.session.Site.Observer)
		return nil
	})

	c.Register("date", "date <YYYY-MM-DD>", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: date <YYYY-MM-DD>", errUsage)
		}
		d, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return err
		}
		app.session.Site.Date = d
		app.ok("Date: " + args[0])
		return nil
	})

	c.Register("coords", "coords <lat> <lon>", func(args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("%w: coords <lat> <lon>", errUsage)
		}
		lat, err := strconv.ParseFloat(strings.TrimSuffix(args[0], ","), 64)
		if err != nil {
			return err
		}
		lon, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		app.session.Site.Latitude, app.session.Site.Longitude = &lat, &lon
		app.ok(fmt.Sprintf("Coordinates: %.6f, %.6f", lat, lon))
		return nil
	})

	c.Register("at", "at <position> | at <start> <end>", func(args []string) error {
		if len(args) != 1 && len(args) != 2 {
			return fmt.Errorf("%w: at <position> | at <start> <end>", errUsage)
		}
		pos := make([]float64, len(args))
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return err
			}
			pos[i] = v
		}

		length := app.session.Length
		var hits []transect.Interval
		if len(pos) == 1 {
			// half-open: nothing lies at the far end of the transect
			if !(pos[0] >= 0 && pos[0] < length) {
				return fmt.Errorf("%w: %s m is outside [0, %s)", errPosition, args[0], formatMetres(length))
			}
			hits = app.session.Index().At(pos[0])
		} else {
			if !(pos[1] > pos[0]) || pos[0] < 0 || pos[1] > length {
				return fmt.Errorf("%w: [%s, %s) must be a non-empty range within [0, %s]", errPosition, args[0], args[1], formatMetres(length))
			}
			hits = app.session.Index().Overlapping(pos[0], pos[1])
		}

		where := strings.Join(args, "-") + " m"
		if len(hits) == 0 {
			app.ok(fmt.Sprintf("%s: %s", where, transect.BareGround))
			return nil
		}
		var names []string
		for _, iv := range hits {
			if !slices.Contains(names, iv.Species) {
				names = append(names, iv.Species)
			}
		}
		app.ok(fmt.Sprintf("%s: %s", where, strings.Join(names, ", ")))
		return nil
	})

	c.Register("help", "help", func([]string) error {
		app.showHelp = !app.showHelp
		return nil
	})

	c.Register("quit", "quit", func([]string) error {
		app.quit = true
		return nil
	})
}
