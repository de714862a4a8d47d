package llrbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_nilIsSafe(t *testing.T) {
	var n *Node[int, string]
	assert.True(t, n.IsNil())
	assert.Equal(t, 0, n.Key())
	assert.Equal(t, "", n.Value())
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())
	assert.False(t, n.IsDead())
	assert.True(t, n.IsAlive())
	assert.False(t, n.isRed())
	assert.True(t, n.isBlack())
	assert.Equal(t, Black, n.color())
	assert.Equal(t, byte(Black), n.Glyph())
	assert.Equal(t, 'B', n.GlyphRune())
}

func TestNode_flagsAreIndependent(t *testing.T) {
	n := newNode[int, string](1)
	assert.True(t, n.IsAlive())
	assert.True(t, n.isRed())

	n.setDead()
	assert.True(t, n.IsDead())
	assert.True(t, n.isRed(), "setDead must not touch the color bit")

	n.setColor(Black)
	assert.True(t, n.IsDead(), "setColor must not touch the liveness bit")
	assert.True(t, n.isBlack())

	n.setAlive()
	assert.True(t, n.IsAlive())
	assert.True(t, n.isBlack())
}

func TestNode_Glyph(t *testing.T) {
	tests := map[string]struct {
		color Color
		dead  bool
		glyph byte
		rn    rune
	}{
		"black alive": {Black, false, 0x00, 'B'},
		"black dead":  {Black, true, 0x01, 'b'},
		"red alive":   {Red, false, 0x02, 'R'},
		"red dead":    {Red, true, 0x03, 'r'},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			n := newNode[int, string](1)
			n.setColor(tc.color)
			if tc.dead {
				n.setDead()
			} else {
				n.setAlive()
			}
			assert.Equal(t, tc.glyph, n.Glyph())
			assert.Equal(t, tc.rn, n.GlyphRune())
		})
	}
}

func TestCloneNode(t *testing.T) {
	root := newNode[int, string](5)
	root.value = "five"
	root.left = newNode[int, string](2)
	root.left.setDead()
	root.right = newNode[int, string](8)

	clone := cloneNode(root)
	assert.NotSame(t, root, clone)
	assert.NotSame(t, root.left, clone.left)
	assert.Equal(t, root.key, clone.key)
	assert.Equal(t, root.value, clone.value)
	assert.Equal(t, root.flags, clone.flags)
	assert.True(t, clone.left.IsDead())

	assert.Nil(t, cloneNode[int, string](nil))
}
