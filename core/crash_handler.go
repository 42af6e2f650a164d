package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer releases the terminal, tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
	crashOut    io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashScreen registers the screen to release before a crash report is printed
func SetCrashScreen(s Finalizer) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that releases the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Restore terminal to sane state before anything hits stderr
	if screen != nil {
		screen.Fini()
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mSLAPPER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
