package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"docgrip/internal/config"
	"docgrip/internal/engine"
	"docgrip/internal/eventbus"
	"docgrip/internal/ui"
	"docgrip/internal/viewer/coordinator"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.Parse()

	var docPath string
	if flag.NArg() > 0 {
		var err error
		docPath, err = filepath.Abs(flag.Arg(0))
		if err != nil {
			fmt.Printf("Error resolving path: %v\n", err)
			os.Exit(1)
		}
	}

	// Load configuration before logging so the log destination is configurable
	cfg, err := config.Load(configPath)

	// Set up logging
	logFile, logErr := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if logErr != nil {
		log.Printf("Could not open log file: %v", logErr)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	if err != nil {
		log.Printf("Config error, using defaults: %v", err)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Create the document engine and the coordinator over it
	eng := engine.NewPDF(
		engine.WithBaseColumns(cfg.BaseColumns),
		engine.WithCaseSensitiveSearch(cfg.CaseSensitiveSearch),
	)
	coord := coordinator.New(bus, eng, cfg.ZoomPresets)

	// Open the document if one was given. Failure is reported in the
	// UI, not fatal; the viewer starts in the empty-document state.
	if docPath != "" {
		if err := coord.LoadDocument(docPath); err != nil {
			log.Printf("Could not open %s: %v", docPath, err)
		}
	}

	if err := coord.Zoom.SetZoom(cfg.DefaultZoom); err != nil {
		log.Printf("Bad default_zoom %q: %v", cfg.DefaultZoom, err)
	}

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, coord)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward bus events to the UI
	unsubscribe := bus.SubscribeAll(func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	})
	defer unsubscribe()

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Quit the program when the context is cancelled by a signal
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	if err := coord.Close(); err != nil {
		log.Printf("Close failed: %v", err)
	}
	close(eventChan)
}
