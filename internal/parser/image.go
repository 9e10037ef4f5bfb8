package parser

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"tekstitv/internal/domain"
)

// The JSON envelope of an image page. Data is an array in the wire
// format but only ever carries one element; phases below read data[0].
type imageEnvelope struct {
	Meta imageMeta   `json:"meta"`
	Data []imageData `json:"data"`
}

type imageMeta struct {
	Code string `json:"code"`
}

type imageData struct {
	Page    imagePageRef `json:"page"`
	Info    imageInfo    `json:"info"`
	Content imageContent `json:"content"`
}

type imagePageRef struct {
	Page    string `json:"page"`
	SubPage string `json:"subpage"`
}

type imageInfo struct {
	Page        imageInfoPage `json:"page"`
	AspectRatio string        `json:"aspect_ratio"`
}

type imageInfoPage struct {
	// e.g. "898"
	Number string `json:"number"`
	// e.g. "898_0003"
	Name string `json:"name"`
	// e.g. "898/3"
	Label string `json:"label"`
	// e.g. "?P=898#3"
	Href string `json:"href"`
}

type imageContent struct {
	// Raw text representation of the rendered page
	Text string `json:"text"`
	// <img> markup with the base64 PNG inline
	Image    string `json:"image"`
	ImageMap string `json:"image_map"`
	// Bottom navigation markup
	Pagination string `json:"pagination"`
}

// ParseImage parses a JSON teletext page: the envelope, the embedded
// PNG and the pagination markup.
func ParseImage(payload []byte) (*domain.ImageDocument, error) {
	var envelope imageEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	if len(envelope.Data) == 0 {
		return nil, fmt.Errorf("%w: empty data array", ErrInvalidEnvelope)
	}
	data := envelope.Data[0]

	image, err := parseInlineImage(data.Content.Image)
	if err != nil {
		return nil, err
	}

	nav, err := parseImageNavigation(data.Content.Pagination)
	if err != nil {
		return nil, err
	}

	return &domain.ImageDocument{
		Title:            data.Info.Page.Label,
		Image:            image,
		BottomNavigation: nav,
	}, nil
}

// parseInlineImage extracts and decodes the base64 PNG from the <img>
// markup fragment.
func parseInlineImage(markup string) ([]byte, error) {
	c := NewCursor(markup)
	if err := c.SkipPast("data:image/png;base64,"); err != nil {
		return nil, err
	}
	encoded, err := c.TextTo('"')
	if err != nil {
		return nil, err
	}
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImageData, err)
	}
	return image, nil
}

// parseImageNavLink reads an anchor of the pagination markup. The page
// name attribute is the link target, and the label is the inner anchor
// text joined with the nested span fragment, whichever side it is on.
func parseImageNavLink(c *Cursor) (domain.Link, error) {
	if err := c.SkipPast(`data-yle-ttv-page-name="`); err != nil {
		return domain.Link{}, err
	}
	url, err := c.TextTo('"')
	if err != nil {
		return domain.Link{}, err
	}

	// To the end of the anchor's opening tag
	if err := c.SkipChar('>'); err != nil {
		return domain.Link{}, err
	}

	var label string
	if strings.HasPrefix(c.rest, "<") {
		// Leading span: its content, then the trailing anchor text.
		if err := c.SkipChar('>'); err != nil {
			return domain.Link{}, err
		}
		spanInner, err := c.TextTo('<')
		if err != nil {
			return domain.Link{}, err
		}
		if err := c.SkipChar('>'); err != nil {
			return domain.Link{}, err
		}
		spanOut, err := c.TextTo('<')
		if err != nil {
			return domain.Link{}, err
		}
		label = strings.TrimSpace(spanInner) + " " + strings.TrimSpace(decodeEntities(spanOut))
	} else {
		// Trailing span: the anchor text first, span content after.
		spanOut, err := c.TextTo('<')
		if err != nil {
			return domain.Link{}, err
		}
		if err := c.SkipChar('>'); err != nil {
			return domain.Link{}, err
		}
		spanInner, err := c.TextTo('<')
		if err != nil {
			return domain.Link{}, err
		}
		label = strings.TrimSpace(decodeEntities(spanOut)) + " " + strings.TrimSpace(spanInner)
	}

	if err := c.SkipTag("a", true); err != nil {
		return domain.Link{}, err
	}

	return domain.Link{URL: url, Label: label}, nil
}

// parseImageNavigation scans the pagination markup tag by tag. A bare
// span is a hidden navigation slot and contributes a nil entry; the
// div-wrapped page number form is not a navigation target and is
// skipped; anchors carry the actual pages. Anything else fails the
// parse.
func parseImageNavigation(markup string) ([]*domain.Link, error) {
	c := NewCursor(markup)

	var nav []*domain.Link
	for c.rest != "" {
		if err := c.SkipChar('<'); err != nil {
			return nil, err
		}
		switch c.TagAt() {
		case TagSpan:
			if err := c.SkipTag("span", true); err != nil {
				return nil, err
			}
			nav = append(nav, nil)
		case TagDiv:
			if err := c.SkipTag("form", true); err != nil {
				return nil, err
			}
			if err := c.SkipTag("div", true); err != nil {
				return nil, err
			}
		case TagAnchor:
			link, err := parseImageNavLink(c)
			if err != nil {
				return nil, err
			}
			nav = append(nav, &link)
		default:
			return nil, c.missing("pagination tag")
		}

		if idx := strings.IndexByte(c.rest, '<'); idx >= 0 {
			c.rest = c.rest[idx:]
		} else {
			c.rest = ""
		}
	}

	return nav, nil
}
