package editor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(e *LineEditor, text string) {
	for _, r := range text {
		e.InsertChar(r)
	}
}

func TestLineEditor_InsertChar(t *testing.T) {
	e := New()
	typeText(e, "whoami")

	assert.Equal(t, "whoami", e.Line())
	assert.Equal(t, 6, e.Caret())
	assert.Equal(t, "whoami", e.Before())
	assert.Equal(t, "", e.After())
}

func TestLineEditor_InsertInMiddle(t *testing.T) {
	e := New()
	typeText(e, "whami")
	e.MoveLeft()
	e.MoveLeft()
	e.MoveLeft()
	e.InsertChar('o')

	assert.Equal(t, "whoami", e.Line())
	assert.Equal(t, 3, e.Caret())
	assert.Equal(t, "who", e.Before())
	assert.Equal(t, "ami", e.After())
}

func TestLineEditor_DeleteBack(t *testing.T) {
	t.Run("removes the character before the caret", func(t *testing.T) {
		e := New()
		typeText(e, "whoami")
		assert.True(t, e.DeleteBack())
		assert.Equal(t, "whoam", e.Line())
		assert.Equal(t, 5, e.Caret())
	})

	t.Run("no-op at the start of the line", func(t *testing.T) {
		e := New()
		typeText(e, "ab")
		e.MoveLeft()
		e.MoveLeft()
		assert.False(t, e.DeleteBack())
		assert.Equal(t, "ab", e.Line())
		assert.Equal(t, 0, e.Caret())
	})

	t.Run("deletes inside the line", func(t *testing.T) {
		e := New()
		typeText(e, "whoxami")
		for i := 0; i < 3; i++ {
			e.MoveLeft()
		}
		e.DeleteBack()
		assert.Equal(t, "whoami", e.Line())
		assert.Equal(t, "who", e.Before())
	})

	t.Run("multibyte characters", func(t *testing.T) {
		e := New()
		typeText(e, "héé")
		e.DeleteBack()
		assert.Equal(t, "hé", e.Line())
		assert.Equal(t, 2, e.Caret())
	})
}

func TestLineEditor_MoveBoundaries(t *testing.T) {
	e := New()
	assert.False(t, e.MoveLeft())
	assert.False(t, e.MoveRight())

	typeText(e, "whoami")
	assert.True(t, e.MoveLeft())
	assert.Equal(t, "whoam", e.Before())
	assert.Equal(t, "i", e.After())

	assert.True(t, e.MoveRight())
	assert.False(t, e.MoveRight())
	assert.Equal(t, "whoami", e.Before())
	assert.Equal(t, "", e.After())
}

func TestLineEditor_ResetAndSetLine(t *testing.T) {
	e := New()
	typeText(e, "whoami")
	e.Reset()
	assert.Equal(t, "", e.Line())
	assert.Equal(t, 0, e.Caret())

	e.SetLine("ls -la")
	assert.Equal(t, "ls -la", e.Line())
	assert.Equal(t, 6, e.Caret())
	assert.Equal(t, "", e.After())
}

func TestLineEditor_ClampsInvalidCaret(t *testing.T) {
	e := New()
	e.SetLine("abc")
	e.caret = 10
	assert.Equal(t, 3, e.Caret())
	e.caret = -4
	assert.Equal(t, "", e.Before())
	assert.Equal(t, "abc", e.After())
}

func TestLineEditor_CaretColumn(t *testing.T) {
	e := New()
	typeText(e, "a世b")
	assert.Equal(t, 4, e.CaretColumn())
	e.MoveLeft()
	assert.Equal(t, 3, e.CaretColumn())
}

func TestLineEditor_LengthInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := New()
	inserts, deletes := 0, 0

	for i := 0; i < 2000; i++ {
		switch rng.Intn(4) {
		case 0, 1:
			e.InsertChar(rune('a' + rng.Intn(26)))
			inserts++
		case 2:
			if e.DeleteBack() {
				deletes++
			}
		case 3:
			if rng.Intn(2) == 0 {
				e.MoveLeft()
			} else {
				e.MoveRight()
			}
		}

		require.Equal(t, inserts-deletes, e.Len())
		require.GreaterOrEqual(t, e.Caret(), 0)
		require.LessOrEqual(t, e.Caret(), e.Len())
		require.Equal(t, e.Line(), e.Before()+e.After())
	}
}
