package main

import (
	"fmt"
	"io"
	"sync"
)

// terminalView renders the page states as lines on a terminal.
type terminalView struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

func newTerminalView(out, errOut io.Writer) *terminalView {
	return &terminalView{out: out, err: errOut}
}

func (v *terminalView) ShowSuccess() {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out, "Thanks! Your download is starting.")
}

func (v *terminalView) HideSuccess() {}

func (v *terminalView) ClearEmail() {}

func (v *terminalView) Alert(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.err, "error:", msg)
}
