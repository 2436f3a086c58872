package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws grids as blocks of text
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	w := r.out()
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] == Alive {
				fmt.Fprint(w, gridPosBlock)
			} else {
				fmt.Fprint(w, gridPosEmpty)
			}
		}
		fmt.Fprintln(w)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	return cmd.Run()
}
