package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// RawTextOps shows the extracted document text in the ov pager.
type RawTextOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewRawTextOps creates a new raw text operations instance
func NewRawTextOps() *RawTextOps {
	return &RawTextOps{}
}

// SetProgram sets the program reference used to release the terminal
func (r *RawTextOps) SetProgram(program *tea.Program) {
	r.program = program
}

// ShowInPager shows the content using ov pager
func (r *RawTextOps) ShowInPager(content string) error {
	if r.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := r.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = r.program.RestoreTerminal()
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
