package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tekstitv/internal/config"
	"tekstitv/internal/eventbus"
	"tekstitv/internal/fetch"
	"tekstitv/internal/teletext"
	"tekstitv/internal/ui"
)

func main() {
	// Set up logging
	zerolog.TimeFieldFormat = time.RFC3339
	logFile, err := os.OpenFile("tekstitv.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Logger = zerolog.Nop()
	} else {
		defer logFile.Close()
		log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
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
	configSvc := config.NewServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Warn().Err(err).Msg("config load failed, using defaults")
		cfg = config.DefaultConfig()
	}

	// Initialize the page service
	client := fetch.NewClient("tekstitv/1.0")
	_ = teletext.NewService(bus, client, cfg.TextBaseURL, cfg.ImageBaseURL)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn().Msg("event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventPageLoaded, forward)
	bus.Subscribe(eventbus.EventPageLoadFailed, forward)

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event, ok := <-eventChan:
				if !ok {
					return
				}
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				p.Quit()
				return
			}
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	uiModel.Stop()

	if err := configSvc.Save(cfg); err != nil {
		log.Warn().Err(err).Msg("config save failed")
	}
}
