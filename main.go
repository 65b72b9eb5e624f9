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

	"issuegrip/internal/config"
	"issuegrip/internal/eventbus"
	"issuegrip/internal/store"
	"issuegrip/internal/ui"
	"issuegrip/internal/ui/services/events"
)

func main() {
	var dbPath string
	flag.StringVar(&dbPath, "db", "", "Path to the issue database")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("issuegrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
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

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	// Open the issue store
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		fmt.Printf("Error creating data directory: %v\n", err)
		os.Exit(1)
	}
	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.SeedIfEmpty(ctx); err != nil {
		log.Printf("Seeding demo data failed: %v", err)
	}

	// Create UI model
	log.Printf("Creating UI model...")
	uiBus := events.NewBus()
	uiModel := ui.NewModel(bus, uiBus, cfg, st)

	// Create Bubble Tea program
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.MouseEnabled {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	for _, eventType := range []eventbus.EventType{
		eventbus.EventIssuesUpdated,
		eventbus.EventIssuesArchived,
		eventbus.EventIssuesDeleted,
		eventbus.EventIssuesRestored,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
