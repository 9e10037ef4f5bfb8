package parser

import (
	"fmt"
	"html"
	"strings"

	"tekstitv/internal/domain"
)

// Tag is the closed set of tag shapes the page templates emit. Anything
// else classifies as TagUnknown and is handled (or rejected) per phase.
type Tag int

const (
	TagUnknown Tag = iota
	TagP
	TagAnchor
	TagBig
	TagDiv
	TagPre
	TagFont
	TagSpan
	TagCenter
)

// Cursor is a scan position over one immutable page payload. All
// primitives advance the position forward; none of them backtrack.
type Cursor struct {
	rest string
}

// NewCursor starts a cursor at the beginning of the payload.
func NewCursor(data string) *Cursor {
	return &Cursor{rest: data}
}

// Rest returns the unconsumed remainder of the payload.
func (c *Cursor) Rest() string {
	return c.rest
}

func (c *Cursor) missing(what string) error {
	tail := c.rest
	if len(tail) > 24 {
		tail = tail[:24]
	}
	return fmt.Errorf("%w: %s not found at %q", ErrMalformedDocument, what, tail)
}

// SkipPast advances past the next occurrence of literal.
func (c *Cursor) SkipPast(literal string) error {
	idx := strings.Index(c.rest, literal)
	if idx < 0 {
		return c.missing(fmt.Sprintf("literal %q", literal))
	}
	c.rest = c.rest[idx+len(literal):]
	return nil
}

// SkipChar advances past the next occurrence of ch.
func (c *Cursor) SkipChar(ch byte) error {
	idx := strings.IndexByte(c.rest, ch)
	if idx < 0 {
		return c.missing(fmt.Sprintf("character %q", ch))
	}
	c.rest = c.rest[idx+1:]
	return nil
}

// SkipTo advances to (not past) the next occurrence of ch.
func (c *Cursor) SkipTo(ch byte) error {
	idx := strings.IndexByte(c.rest, ch)
	if idx < 0 {
		return c.missing(fmt.Sprintf("character %q", ch))
	}
	c.rest = c.rest[idx:]
	return nil
}

// TextTo returns the text up to the next occurrence of ch and leaves the
// cursor on ch.
func (c *Cursor) TextTo(ch byte) (string, error) {
	idx := strings.IndexByte(c.rest, ch)
	if idx < 0 {
		return "", c.missing(fmt.Sprintf("character %q", ch))
	}
	text := c.rest[:idx]
	c.rest = c.rest[idx:]
	return text, nil
}

// SkipTag advances past the next "<name" (or "</name" when closing) and
// then past the tag's closing '>', ignoring any attributes in between.
func (c *Cursor) SkipTag(name string, closing bool) error {
	var open string
	if closing {
		open = "</" + name
	} else {
		open = "<" + name
	}
	if err := c.SkipPast(open); err != nil {
		return err
	}
	return c.SkipChar('>')
}

// TagAt classifies the tag at the cursor by literal prefix, after an
// optional leading '<'. A bare p matches before pre; no classification
// site in either pipeline needs to tell them apart.
func (c *Cursor) TagAt() Tag {
	s := c.rest
	if strings.HasPrefix(s, "<") {
		s = s[1:]
	}

	switch {
	case strings.HasPrefix(s, "p"):
		return TagP
	case strings.HasPrefix(s, "a"):
		return TagAnchor
	case strings.HasPrefix(s, "big"):
		return TagBig
	case strings.HasPrefix(s, "div"):
		return TagDiv
	case strings.HasPrefix(s, "pre"):
		return TagPre
	case strings.HasPrefix(s, "font"):
		return TagFont
	case strings.HasPrefix(s, "span"):
		return TagSpan
	case strings.HasPrefix(s, "center"):
		return TagCenter
	}

	return TagUnknown
}

// ParseLink consumes an anchor at the cursor: the href attribute becomes
// the URL and the entity-decoded inner text the label. The cursor ends
// past the closing </a> tag.
func (c *Cursor) ParseLink() (domain.Link, error) {
	if err := c.SkipPast(`href="`); err != nil {
		return domain.Link{}, err
	}
	url, err := c.TextTo('"')
	if err != nil {
		return domain.Link{}, err
	}

	// To the end of the opening tag
	if err := c.SkipPast(">"); err != nil {
		return domain.Link{}, err
	}

	label, err := c.TextTo('<')
	if err != nil {
		return domain.Link{}, err
	}

	if err := c.SkipTag("a", true); err != nil {
		return domain.Link{}, err
	}

	return domain.Link{URL: url, Label: decodeEntities(label)}, nil
}

func decodeEntities(s string) string {
	return html.UnescapeString(s)
}
