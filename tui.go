package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"transecta/ui"
)

func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	catalog := c.newCatalog()
	session := c.newSession(catalog)
	if len(args) == 1 {
		if err := c.importInto(session, cmd.InOrStdin(), cmd.ErrOrStderr(), args); err != nil {
			return err
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	// Restore the terminal before a panic is printed, otherwise the trace
	// is lost in the alternate screen.
	defer func() {
		maybePanic := recover()
		s.Fini()
		if maybePanic != nil {
			panic(maybePanic)
		}
	}()
	s.SetStyle(ui.DefaultStyle)
	s.EnableMouse()
	s.Clear()

	app := ui.New(s, session, catalog, c.settings, c.logger)
	if err := c.cfg.Watch(app.Reload); err != nil {
		c.logger.Warn("config changes will not be picked up", zap.Error(err))
	}
	defer c.cfg.Close()

	c.logger.Info("session started", zap.String("session", session.ID), zap.Float64("length", session.Length))
	app.Run()
	c.logger.Info("session ended", zap.String("session", session.ID), zap.Int("intervals", session.Len()))
	return nil
}
