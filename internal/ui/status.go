// Package ui draws status information next to the grid.
package ui

import (
	"fmt"

	"gol-torus/internal/scheduler"
)

// StatusLine renders a one-line summary of st.
func StatusLine(st scheduler.Status) string {
	line := fmt.Sprintf("%s | speed %s | gen %d | pop %d", st.Pattern, st.Speed, st.Generation, st.Population)
	if st.Paused {
		line += " | PAUSED"
	}
	return line
}

// KeyHelp lists the key bindings shared by the front ends.
const KeyHelp = "space pause | r restart | up/down speed | n step | 1-3 pattern | q quit"
