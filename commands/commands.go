package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrUnknown   = errors.New("unknown command")
	ErrAmbiguous = errors.New("ambiguous command")
)

type Func func(args []string) error

type Command struct {
	Name  string
	Usage string
	Run   Func
}

type Commands struct {
	log      *zap.Logger
	commands map[string]Command
}

func New(log *zap.Logger) *Commands {
	if log == nil {
		log = zap.NewNop()
	}
	return &Commands{log: log, commands: make(map[string]Command)}
}

func (c *Commands) Register(name, usage string, run Func) {
	c.commands[name] = Command{Name: name, Usage: usage, Run: run}
}

// Exec runs a command line such as "add Jarilla 0 10". The first word may
// abbreviate a command name as long as it is unambiguous.
func (c *Commands) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, err := c.Lookup(fields[0])
	if err != nil {
		c.log.Info("command not run", zap.String("line", line), zap.Error(err))
		return err
	}
	c.log.Debug("command", zap.String("name", cmd.Name), zap.Strings("args", fields[1:]))
	if err := cmd.Run(fields[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

// Lookup resolves an exact name first, then a unique prefix.
func (c *Commands) Lookup(prefix string) (Command, error) {
	if cmd, ok := c.commands[prefix]; ok {
		return cmd, nil
	}
	var matches []string
	for name := range c.commands {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return Command{}, fmt.Errorf("%w %q", ErrUnknown, prefix)
	case 1:
		return c.commands[matches[0]], nil
	default:
		slices.Sort(matches)
		return Command{}, fmt.Errorf("%w %q: %s", ErrAmbiguous, prefix, strings.Join(matches, ", "))
	}
}

// Usage lists every command's usage line, sorted by name.
func (c *Commands) Usage() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, c.commands[name].Usage)
	}
	return lines
}
