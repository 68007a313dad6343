package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Register(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Register("whoami", Literal("jackharper")))

	err := table.Register("whoami", Literal("someone else"))
	assert.ErrorIs(t, err, ErrDuplicateCommand)

	b, ok := table.Lookup("whoami")
	require.True(t, ok)
	assert.Equal(t, KindLiteral, b.Kind())

	assert.Error(t, table.Register("", Literal("x")))
}

func TestTable_NamesAreSorted(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.RegisterCommand(Command{Name: "zeta", Description: "last"}))
	require.NoError(t, table.Register("alpha", Literal("a")))
	require.NoError(t, table.Register("mid", Literal("m")))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, table.Names())

	cmds := table.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, "last", cmds[2].Description)
}

func TestTable_Clone(t *testing.T) {
	table := TableOf(map[string]Binding{"a": Literal("1")})
	clone := table.Clone()
	require.NoError(t, clone.Register("b", Literal("2")))

	assert.Equal(t, 1, table.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestBindingKind_String(t *testing.T) {
	assert.Equal(t, "literal", Literal("x").Kind().String())
	assert.Equal(t, "func", Func(nil).Kind().String())
	assert.Equal(t, "async", Async(nil).Kind().String())
}

func TestMessage_ZeroValueRendersDefault(t *testing.T) {
	var m Message
	assert.True(t, m.IsZero())
	assert.Equal(t, DefaultNotFound, m.Render("x"))
	assert.False(t, StaticMessage("").IsZero())
	assert.Equal(t, DefaultNotFound, MessageFunc(nil).Render("x"))
}

func TestFailureText(t *testing.T) {
	assert.Equal(t, "command failed", FailureText(nil))
	assert.Equal(t, "command failed", FailureText(emptyError{}))
}
