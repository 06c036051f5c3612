package container

import (
	"fmt"
	"slices"
	"strings"
)

// Glyphs used by Render.
const (
	glyphOptimalWall = '|'
	glyphWall        = '#'
	glyphWater       = '~'
	glyphAir         = ' '
)

// Render draws the walls from the tallest level down to 1 and fills the
// optimal container with water. For heights [3 1 2 3]:
//
//	 3 |~~|
//	 2 |~#|
//	 1 |##|
//	   0123
//
// '|' marks the two optimal walls, '#' other walls, '~' water. The last line
// holds each index modulo 10. Render returns "" when there are no walls.
// Negative heights are drawn as empty columns.
func Render(height []int) string {
	if len(height) == 0 {
		return ""
	}
	top := max(slices.Max(height), 0)
	opt := Optimal(height)
	water := 0
	if opt.Area > 0 {
		water = min(height[opt.Left], height[opt.Right])
	}

	var sb strings.Builder
	for level := top; level >= 1; level-- {
		fmt.Fprintf(&sb, "%2d ", level)
		for i, h := range height {
			switch {
			case h >= level && opt.Area > 0 && (i == opt.Left || i == opt.Right):
				sb.WriteByte(glyphOptimalWall)
			case h >= level:
				sb.WriteByte(glyphWall)
			case i > opt.Left && i < opt.Right && level <= water:
				sb.WriteByte(glyphWater)
			default:
				sb.WriteByte(glyphAir)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for i := range height {
		sb.WriteByte(byte('0' + i%10))
	}
	sb.WriteByte('\n')

	return sb.String()
}
