// Package ui is the interactive terminal screen used in the field: an entry
// line for (species, start, end), the recorded intervals, live coverage and
// a timeline of the transect.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"transecta/commands"
	"transecta/config"
	"transecta/export"
	"transecta/layout"
	"transecta/render"
	"transecta/species"
	"transecta/transect"
)

type Application struct {
	screen   tcell.Screen
	session  *transect.Session
	catalog  *species.Catalog
	commands *commands.Commands
	settings config.Settings
	layout   *layout.Flex
	report   transect.Report

	form        form
	fieldAreas  [fieldCount]layout.Dimensions
	commandMode bool
	cmdline     string
	showHelp    bool
	status      string
	statusStyle tcell.Style
	quit        bool

	log *zap.Logger
}

// New prepares the screen for session. The screen must already be
// initialised; Run does not finalise it.
func New(screen tcell.Screen, session *transect.Session, catalog *species.Catalog, settings config.Settings, log *zap.Logger) *Application {
	if log == nil {
		log = zap.NewNop()
	}
	app := &Application{
		screen:   screen,
		session:  session,
		catalog:  catalog,
		settings: settings,
		commands: commands.New(log),
		log:      log,
	}
	app.form.values[speciesField] = catalog.At(0)
	app.resetRange()
	app.registerCommands()

	app.layout = layout.Column(
		layout.Item(app.formBox, layout.Exact(layout.Abs(3)), nil),
		layout.Item(nil, layout.Max(layout.Rel(1)), layout.Row(
			layout.Item(app.intervalBox, layout.Exact(layout.Rel(0.45)), nil),
			layout.Item(app.summaryBox, layout.Max(layout.Rel(1)), nil),
		)),
		layout.Item(app.timelineBox, layout.Between(layout.Abs(5), layout.Rel(0.35)), nil),
		layout.Item(app.statusBox, layout.Exact(layout.Abs(1)), nil),
	)
	return app
}

// Run draws and handles events until the user quits.
func (app *Application) Run() {
	for !app.quit {
		app.draw()
		ev := app.screen.PollEvent()
		if ev == nil {
			// screen was finalised underneath us
			return
		}
		app.handleEvent(ev)
	}
}

// Reload hands new settings to the event loop. It is safe to call from
// another goroutine, such as a config watcher.
func (app *Application) Reload(s config.Settings) {
	if err := app.screen.PostEvent(tcell.NewEventInterrupt(s)); err != nil {
		app.log.Warn("settings reload dropped", zap.Error(err))
	}
}

func (app *Application) draw() {
	app.screen.Clear()
	app.screen.HideCursor()
	app.report = app.session.Report()
	width, height := app.screen.Size()
	app.layout.Apply(width, height)
	app.screen.Show()
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
	case *tcell.EventInterrupt:
		if s, ok := ev.Data().(config.Settings); ok {
			app.applySettings(s)
		}
	case *tcell.EventKey:
		if app.commandMode {
			app.handleCommandKey(ev)
		} else {
			app.handleEntryKey(ev)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons() == tcell.Button1 && !app.commandMode {
			for f, area := range app.fieldAreas {
				if area.Contains(layout.Point{X: x, Y: y}) {
					app.form.focus = field(f)
				}
			}
		}
	}
}

func (app *Application) handleEntryKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.quit = true
	case tcell.KeyTab:
		app.form.next()
	case tcell.KeyBacktab:
		app.form.prev()
	case tcell.KeyUp:
		app.nudge(1)
	case tcell.KeyDown:
		app.nudge(-1)
	case tcell.KeyEnter:
		app.submit()
	case tcell.KeyCtrlZ:
		app.undo()
	case tcell.KeyCtrlE:
		app.run("export")
	case tcell.KeyCtrlL:
		app.screen.Sync()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		app.form.backspace()
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ':' && (app.form.focus != speciesField || app.form.values[speciesField] == "") {
			app.commandMode, app.cmdline = true, ""
			return
		}
		app.form.insert(r)
	}
}

func (app *Application) handleCommandKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.commandMode = false
	case tcell.KeyEnter:
		app.commandMode = false
		app.run(app.cmdline)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if line := []rune(app.cmdline); len(line) > 0 {
			app.cmdline = string(line[:len(line)-1])
		} else {
			app.commandMode = false
		}
	case tcell.KeyRune:
		app.cmdline += string(ev.Rune())
	}
}

func (app *Application) run(line string) {
	if err := app.commands.Exec(line); err != nil {
		app.fail(err)
	}
}

// nudge cycles the species list or steps a numeric field.
func (app *Application) nudge(dir int) {
	if app.form.focus != speciesField {
		app.form.step(float64(dir)*app.settings.Entry.Step, app.session.Length)
		return
	}
	i := app.catalog.IndexOf(app.form.species())
	if i < 0 && dir < 0 {
		i = 0
	}
	app.form.values[speciesField] = app.catalog.At(i + dir)
}

func (app *Application) submit() {
	start, end := app.form.parse()
	iv, err := app.session.Record(app.form.species(), start, end)
	if err != nil {
		app.fail(err)
		return
	}
	app.ok(fmt.Sprintf("Recorded %s (%s m)", iv, render.Metres(iv.Length())))
	app.resetRange()
	app.form.focus = startField
}

func (app *Application) undo() {
	iv, ok := app.session.Undo()
	if !ok {
		app.ok("Nothing to undo")
		return
	}
	app.ok(fmt.Sprintf("Removed %s", iv))
	app.resetRange()
}

// resetRange proposes the next interval: it starts where the last one
// ended.
func (app *Application) resetRange() {
	start := app.session.SuggestStart()
	app.form.setRange(start, app.session.SuggestEnd(start, app.settings.Entry.DefaultSpan))
}

func (app *Application) applySettings(s config.Settings) {
	// the running session keeps its length, which may come from --length
	if s.Transect.Length != app.settings.Transect.Length {
		app.log.Info("transect length change applies to the next reading",
			zap.Float64("session", app.session.Length),
			zap.Float64("configured", s.Transect.Length))
	}
	app.settings = s
	app.ok("Settings reloaded")
}

func (app *Application) ok(msg string) {
	app.status, app.statusStyle = msg, OKStyle
}

func (app *Application) fail(err error) {
	app.status, app.statusStyle = err.Error(), ErrorStyle
}

func (app *Application) exportPath(format string) string {
	name := app.settings.Export.CSVName
	if format != "csv" {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + export.Extension(format)
	}
	return filepath.Join(app.settings.Export.Dir, name)
}

func (app *Application) document(normalized bool) render.Document {
	return render.Document{
		Site:       app.session.Site,
		SessionID:  app.session.ID,
		Report:     app.session.Report(),
		Normalized: normalized,
	}
}
