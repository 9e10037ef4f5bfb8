package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
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

const userAgent = "tekstitv/1.0"

func main() {
	// Parse command line arguments
	var (
		startPage  int
		reader     string
		configPath string
	)
	flag.IntVar(&startPage, "page", 0, "Page to open at startup (100-899)")
	flag.StringVar(&reader, "reader", "", "Reader variant: text or image")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.Parse()

	// A bare page number argument works too
	if startPage == 0 && flag.NArg() > 0 {
		if n, err := strconv.Atoi(flag.Arg(0)); err == nil {
			startPage = n
		}
	}

	// Set up logging; the terminal belongs to the UI
	zerolog.TimeFieldFormat = time.RFC3339
	logFile, err := os.OpenFile("tekstitv.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Logger = zerolog.Nop()
	} else {
		defer logFile.Close()
		log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewServiceWithBus(bus)
	cfg, err := loadConfig(configSvc, configPath)
	if err != nil {
		log.Warn().Err(err).Msg("config load failed, using defaults")
		cfg = config.DefaultConfig()
	}

	// Command line overrides
	if startPage > 0 {
		cfg.StartPage = startPage
	}
	if reader == "text" || reader == "image" {
		cfg.Reader = reader
	}

	// Initialize the page service
	client := fetch.NewClient(userAgent)
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
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	uiModel.Stop()

	// Persist reader switches and the like
	if err := saveConfig(configSvc, cfg, configPath); err != nil {
		log.Warn().Err(err).Msg("config save failed")
	}
}

func loadConfig(svc config.Service, path string) (*config.Config, error) {
	if path != "" {
		return svc.LoadFromPath(path)
	}
	return svc.Load()
}

func saveConfig(svc config.Service, cfg *config.Config, path string) error {
	if path != "" {
		return svc.SaveToPath(cfg, path)
	}
	return svc.Save(cfg)
}
