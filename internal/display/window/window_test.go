package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"termcraft/internal/input"
)

func TestMapKey(t *testing.T) {
	cases := []struct {
		key  glfw.Key
		want input.Key
	}{
		{glfw.KeyX, input.RuneKey('x')},
		{glfw.KeyA, input.RuneKey('a')},
		{glfw.Key5, input.RuneKey('5')},
		{glfw.KeySpace, input.RuneKey(' ')},
		{glfw.KeyUp, input.CodeKey(input.KeyUp)},
		{glfw.KeyEscape, input.CodeKey(input.KeyEscape)},
		{glfw.KeyEnter, input.CodeKey(input.KeyEnter)},
	}
	for _, c := range cases {
		got, ok := mapKey(c.key)
		assert.True(t, ok, "key %v", c.key)
		assert.Equal(t, c.want, got, "key %v", c.key)
	}

	_, ok := mapKey(glfw.KeyF1)
	assert.False(t, ok)
}
