package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecPrefix(t *testing.T) {
	c := New(nil)
	var got []string
	c.Register("species", "species <name>", func(args []string) error { got = append([]string{"species"}, args...); return nil })
	c.Register("site", "site <name>", func(args []string) error { got = append([]string{"site"}, args...); return nil })
	c.Register("undo", "undo", func(args []string) error { got = []string{"undo"}; return nil })

	require.NoError(t, c.Exec("u"))
	assert.Equal(t, []string{"undo"}, got)

	require.NoError(t, c.Exec("sp Suelo Desnudo"))
	assert.Equal(t, []string{"species", "Suelo", "Desnudo"}, got)

	require.NoError(t, c.Exec("site Lote 4"))
	assert.Equal(t, []string{"site", "Lote", "4"}, got)

	err := c.Exec("s x")
	assert.True(t, errors.Is(err, ErrAmbiguous))
	assert.ErrorContains(t, err, "site, species")

	assert.ErrorIs(t, c.Exec("export"), ErrUnknown)
	assert.NoError(t, c.Exec("   "))
}

func TestExecWrapsCommandError(t *testing.T) {
	c := New(nil)
	boom := errors.New("boom")
	c.Register("clear", "clear", func([]string) error { return boom })

	err := c.Exec("clear")
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "clear: boom")
}

func TestUsageSorted(t *testing.T) {
	c := New(nil)
	c.Register("undo", "undo", nil)
	c.Register("add", "add <species> <start> <end>", nil)
	assert.Equal(t, []string{"add <species> <start> <end>", "undo"}, c.Usage())
}
