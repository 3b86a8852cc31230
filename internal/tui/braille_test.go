package tui

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPixels(b *brailleBuf) int {
	n := 0
	for _, row := range b.m {
		for _, mask := range row {
			n += bits.OnesCount8(mask)
		}
	}
	return n
}

func TestSetPixel(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(2, 1)
	assert.Equal(t, uint8(0x01|0x80), b.m[0][0])
	assert.Equal(t, uint8(0x02), b.m[0][1])

	// out of range is ignored
	b.setPixel(-1, 0)
	b.setPixel(4, 0)
	b.setPixel(0, 4)
	assert.Equal(t, 3, countPixels(b))

	lines := b.toLines()
	require.Len(t, lines, 1)
	assert.Equal(t, string([]rune{0x2800 + 0x81, 0x2800 + 0x02}), lines[0])
}

func TestToLinesBlank(t *testing.T) {
	assert.Equal(t, []string{"   ", "   "}, newBrailleBuf(3, 2).toLines())
}

func TestDrawLineMicro(t *testing.T) {
	b := newBrailleBuf(4, 1)
	b.drawLineMicro(0, 0, 7, 0)
	assert.Equal(t, 8, countPixels(b))

	b = newBrailleBuf(1, 2)
	b.drawLineMicro(0, 7, 0, 0)
	assert.Equal(t, 8, countPixels(b))

	b = newBrailleBuf(2, 1)
	b.drawLineMicro(0, 0, 3, 3)
	assert.Equal(t, 4, countPixels(b))
}

func TestFillTriangle(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 [2]int
		want       int
	}{
		{"right triangle", [2]int{0, 0}, [2]int{3, 0}, [2]int{0, 3}, 10},
		{"reversed winding", [2]int{0, 0}, [2]int{0, 3}, [2]int{3, 0}, 10},
		{"degenerate", [2]int{0, 0}, [2]int{1, 1}, [2]int{3, 3}, 4},
		{"clipped", [2]int{-4, -4}, [2]int{20, -4}, [2]int{-4, 20}, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBrailleBuf(2, 1)
			b.fillTriangle(tt.p0, tt.p1, tt.p2)
			assert.Equal(t, tt.want, countPixels(b))
		})
	}
}
