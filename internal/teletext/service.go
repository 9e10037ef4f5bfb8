// Package teletext resolves page requests into parsed documents.
package teletext

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tekstitv/internal/domain"
	"tekstitv/internal/eventbus"
	"tekstitv/internal/fetch"
	"tekstitv/internal/parser"
)

// Service turns PageRequested events into PageLoaded/PageLoadFailed
// events: address to URL, transport fetch, parse. Each request runs in
// its own goroutine; requests are fire-and-forget and are ordered at
// the consumer by their generation number.
type Service struct {
	bus          eventbus.EventBus
	client       *fetch.Client
	textBaseURL  string
	imageBaseURL string
}

// NewService creates the page service and subscribes it to the bus.
func NewService(bus eventbus.EventBus, client *fetch.Client, textBaseURL, imageBaseURL string) *Service {
	s := &Service{
		bus:          bus,
		client:       client,
		textBaseURL:  textBaseURL,
		imageBaseURL: imageBaseURL,
	}

	bus.Subscribe(eventbus.EventPageRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageRequestedEvent); ok {
			go s.load(event)
		}
	})

	return s
}

// PageURL maps an address to the full source URL of the given reader.
func (s *Service) PageURL(kind domain.PageKind, addr domain.PageAddress) string {
	if kind == domain.PageKindImage {
		return fmt.Sprintf("%s/json?P=%s", s.imageBaseURL, addr.QueryForm())
	}
	return fmt.Sprintf("%s/%s", s.textBaseURL, addr.URLPath())
}

func (s *Service) load(req domain.PageRequestedEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	url := s.PageURL(req.Kind, req.Address)
	body, err := s.client.Get(ctx, url)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("page fetch failed")
		s.bus.Publish(eventbus.PageLoadFailedEvent{
			Address:    req.Address,
			Generation: req.Generation,
			Err:        err,
		})
		return
	}

	doc, err := parse(req.Kind, body)
	if err != nil {
		log.Warn().Err(err).Str("page", req.Address.String()).Msg("page parse failed")
		s.bus.Publish(eventbus.PageLoadFailedEvent{
			Address:    req.Address,
			Generation: req.Generation,
			Err:        err,
		})
		return
	}

	log.Debug().Str("page", req.Address.String()).Str("kind", req.Kind.String()).Msg("page loaded")
	s.bus.Publish(eventbus.PageLoadedEvent{
		Address:    req.Address,
		Generation: req.Generation,
		Document:   doc,
		Raw:        body,
	})
}

func parse(kind domain.PageKind, body []byte) (domain.Document, error) {
	if kind == domain.PageKindImage {
		img, err := parser.ParseImage(body)
		if err != nil {
			return domain.Document{}, err
		}
		return domain.Document{Kind: domain.PageKindImage, Image: img}, nil
	}

	text, err := parser.ParseText(string(body))
	if err != nil {
		return domain.Document{}, err
	}
	return domain.Document{Kind: domain.PageKindText, Text: text}, nil
}
