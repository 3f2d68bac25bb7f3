//go:build windows

package plain

import "os"

// Windows consoles have no resize signal; the board is redrawn after each move.
func notifyResize(chan<- os.Signal) {}
