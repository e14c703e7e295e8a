package assistant

import "strings"

// NextColor returns the color after current in colors, wrapping around.
// An empty current means the first color is selected; an unknown current
// selects the first color. ok is false when there is nothing to rotate to.
func NextColor(colors []string, current string) (next string, ok bool) {
	if len(colors) < 2 {
		return "", false
	}
	idx := -1
	if current == "" {
		idx = 0
	}
	for i, c := range colors {
		if strings.EqualFold(c, current) {
			idx = i
			break
		}
	}
	return colors[(idx+1)%len(colors)], true
}
