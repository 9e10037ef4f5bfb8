package teletext

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tekstitv/internal/domain"
	"tekstitv/internal/eventbus"
	"tekstitv/internal/fetch"
)

const testTextPage = `<html><body><big>YLE TEKSTI-TV</big>` + "\r\n" +
	`<SPAN>Teksti-TV &nbsp;|&nbsp;<a href="101_0001.htm">Uutiset</a>&nbsp;|&nbsp;` +
	`<a href="160_0001.htm">Urheilu</a>&nbsp;|&nbsp;<a href="199_0001.htm">S&auml;&auml;</a></SPAN>` +
	"<pre>\r\nrivi yksi\r\n</pre>" +
	`<p> 1/1 </p>` +
	`<p><a href="101_0001.htm">Uutiset</a><a href="130_0001.htm">Talous</a>` +
	`<a href="160_0001.htm">Urheilu</a><a href="199_0001.htm">S&auml;&auml;</a>` +
	`<a href="300_0001.htm">Ohjelmat</a><a href="800_0001.htm">Info</a></p></body></html>`

func waitFor(t *testing.T, ch <-chan eventbus.DomainEvent) eventbus.DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func newBusWithSink(t *testing.T) (eventbus.EventBus, <-chan eventbus.DomainEvent) {
	t.Helper()
	bus := eventbus.New()
	sink := make(chan eventbus.DomainEvent, 10)
	forward := func(e eventbus.DomainEvent) { sink <- e }
	bus.Subscribe(eventbus.EventPageLoaded, forward)
	bus.Subscribe(eventbus.EventPageLoadFailed, forward)
	return bus, sink
}

func TestServiceLoadsTextPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/100_0001.htm" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(testTextPage))
	}))
	defer srv.Close()

	bus, sink := newBusWithSink(t)
	NewService(bus, fetch.NewClient("test"), srv.URL, srv.URL)

	bus.Publish(eventbus.PageRequestedEvent{
		Address:    domain.NewPageAddress(100),
		Kind:       domain.PageKindText,
		Generation: 7,
	})

	e := waitFor(t, sink)
	loaded, ok := e.(eventbus.PageLoadedEvent)
	require.True(t, ok, "expected a loaded event, got %T", e)
	assert.Equal(t, uint64(7), loaded.Generation)
	assert.Equal(t, domain.NewPageAddress(100), loaded.Address)
	assert.Equal(t, domain.PageKindText, loaded.Document.Kind)
	assert.Equal(t, "YLE TEKSTI-TV", loaded.Document.Title())
	assert.Equal(t, []byte(testTextPage), loaded.Raw)
}

func TestServiceReportsFetchFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	bus, sink := newBusWithSink(t)
	NewService(bus, fetch.NewClient("test"), srv.URL, srv.URL)

	bus.Publish(eventbus.PageRequestedEvent{
		Address:    domain.NewPageAddress(666),
		Kind:       domain.PageKindText,
		Generation: 3,
	})

	e := waitFor(t, sink)
	failure, ok := e.(eventbus.PageLoadFailedEvent)
	require.True(t, ok, "expected a failure event, got %T", e)
	assert.Equal(t, uint64(3), failure.Generation)
	assert.Error(t, failure.Err)
}

func TestServiceReportsParseFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not a teletext page</html>"))
	}))
	defer srv.Close()

	bus, sink := newBusWithSink(t)
	NewService(bus, fetch.NewClient("test"), srv.URL, srv.URL)

	bus.Publish(eventbus.PageRequestedEvent{
		Address:    domain.NewPageAddress(100),
		Kind:       domain.PageKindText,
		Generation: 1,
	})

	e := waitFor(t, sink)
	failure, ok := e.(eventbus.PageLoadFailedEvent)
	require.True(t, ok, "expected a failure event, got %T", e)
	assert.Error(t, failure.Err)
}

func TestPageURLForms(t *testing.T) {
	t.Parallel()

	s := &Service{
		textBaseURL:  "https://yle.fi/tekstitv/txt",
		imageBaseURL: "https://yle.fi/aihe/yle-ttv",
	}

	addr := domain.PageAddress{Page: 100, SubPage: 2}
	assert.Equal(t, "https://yle.fi/tekstitv/txt/100_0002.htm",
		s.PageURL(domain.PageKindText, addr))
	assert.Equal(t, "https://yle.fi/aihe/yle-ttv/json?P=100_0002",
		s.PageURL(domain.PageKindImage, addr))
}
