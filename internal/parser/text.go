package parser

import (
	"strings"

	"tekstitv/internal/domain"
)

const (
	topNavigationSize    = 4
	bottomNavigationSize = 6
	// Every page link in the markup is exactly 12 characters
	// ("{page}_{sub}.htm"); anchors with any other href length are
	// decorative and demote to plain text.
	pageLinkSize = 12
)

// MiddleTextMaxLen is the column width of the body area. Body lines never
// exceed it; the view layer centers the page around it.
const MiddleTextMaxLen = 39

// ParseText parses a plain markup teletext page. The phases run in
// template order over one shared cursor and any miss fails the whole
// parse; there is no partial document.
func ParseText(page string) (*domain.TextDocument, error) {
	c := NewCursor(page)

	title, err := parseTitle(c)
	if err != nil {
		return nil, err
	}
	nav, err := parseTopNavigation(c)
	if err != nil {
		return nil, err
	}
	rows, err := parseMiddle(c)
	if err != nil {
		return nil, err
	}
	subPages, err := parseSubPages(c)
	if err != nil {
		return nil, err
	}
	bottom, err := parseBottomNavigation(c)
	if err != nil {
		return nil, err
	}

	return &domain.TextDocument{
		Title:            title,
		PageNavigation:   nav,
		MiddleRows:       rows,
		SubPages:         subPages,
		BottomNavigation: bottom,
	}, nil
}

// parseTitle reads the page title, always between <big></big>.
func parseTitle(c *Cursor) (string, error) {
	if err := c.SkipTag("big", false); err != nil {
		return "", err
	}
	title, err := c.TextTo('<')
	if err != nil {
		return "", err
	}
	return decodeEntities(title), nil
}

// parseTopNavigation reads the four-slot page navigation row. Slots that
// are not anchors are captured as text, so the row always has exactly
// four items.
func parseTopNavigation(c *Cursor) ([]domain.NavigationItem, error) {
	if err := c.SkipTag("SPAN", false); err != nil {
		return nil, err
	}

	navigation := make([]domain.NavigationItem, 0, topNavigationSize)
	for i := 0; i < topNavigationSize; i++ {
		last := i == topNavigationSize-1
		if i != 0 {
			if err := c.SkipPast("&nbsp;"); err != nil {
				return nil, err
			}
		}

		if c.TagAt() == TagAnchor {
			link, err := c.ParseLink()
			if err != nil {
				return nil, err
			}
			navigation = append(navigation, domain.LinkItem(link))
		} else {
			// A non-link slot runs up to the separator entity, or up
			// to the next tag on the last slot.
			end := byte('&')
			if last {
				end = '<'
			}
			text, err := c.TextTo(end)
			if err != nil {
				return nil, err
			}
			navigation = append(navigation, domain.TextItem(text))
			if err := c.SkipChar(end); err != nil {
				return nil, err
			}
		}

		if !last {
			if err := c.SkipPast("nbsp;|"); err != nil {
				return nil, err
			}
		}
	}

	return navigation, nil
}

// parseBodyLine scans one CR-delimited body line, alternating text runs
// and anchors. Anchors whose href is not a page link demote to text with
// the anchor label as content.
func parseBodyLine(line string) ([]domain.NavigationItem, error) {
	var row []domain.NavigationItem
	lc := NewCursor(line)
	for lc.rest != "" {
		if lc.TagAt() == TagAnchor {
			link, err := lc.ParseLink()
			if err != nil {
				return nil, err
			}
			if len(link.URL) == pageLinkSize {
				row = append(row, domain.LinkItem(link))
			} else {
				row = append(row, domain.TextItem(link.Label))
			}
			continue
		}

		idx := strings.IndexByte(lc.rest, '<')
		if idx < 0 {
			// No more links; the rest of the line is text.
			row = append(row, domain.TextItem(decodeEntities(lc.rest)))
			lc.rest = ""
		} else {
			row = append(row, domain.TextItem(decodeEntities(lc.rest[:idx])))
			lc.rest = lc.rest[idx:]
		}
	}
	return row, nil
}

// parseMiddle reads the body rows inside <pre>, one CRLF line each,
// until the closing </pre>. Lines that are empty or start with an
// entity carry no text and parse to an empty row.
func parseMiddle(c *Cursor) ([][]domain.NavigationItem, error) {
	if err := c.SkipTag("pre", false); err != nil {
		return nil, err
	}

	var rows [][]domain.NavigationItem
	for !strings.HasPrefix(c.rest, "</pre>") {
		lineLen := strings.IndexByte(c.rest, '\r')
		if lineLen < 0 || lineLen+2 > len(c.rest) {
			return nil, c.missing("body line terminator")
		}
		line := c.rest[:lineLen]

		if line == "" || strings.HasPrefix(line, "&") {
			rows = append(rows, nil)
		} else {
			row, err := parseBodyLine(line)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}

		c.rest = c.rest[lineLen+2:] // +2 for "\r\n"
	}

	return rows, nil
}

// parseSubPages reads the sub-page selector. Font wrappers are skipped,
// anchors become links with no length filtering, and bare runs of text
// are kept as-is.
func parseSubPages(c *Cursor) ([]domain.NavigationItem, error) {
	if err := c.SkipTag("p", false); err != nil {
		return nil, err
	}

	var subPages []domain.NavigationItem
	for !strings.HasPrefix(c.rest, "</p>") {
		switch c.TagAt() {
		case TagFont:
			if err := c.SkipTag("font", true); err != nil {
				return nil, err
			}
		case TagAnchor:
			link, err := c.ParseLink()
			if err != nil {
				return nil, err
			}
			subPages = append(subPages, domain.LinkItem(link))
		default:
			text, err := c.TextTo('<')
			if err != nil {
				return nil, err
			}
			subPages = append(subPages, domain.TextItem(text))
		}
	}

	return subPages, nil
}

// parseBottomNavigation reads the six bottom links. Fewer than six is a
// parse error.
func parseBottomNavigation(c *Cursor) ([]domain.Link, error) {
	if err := c.SkipTag("p", false); err != nil {
		return nil, err
	}

	links := make([]domain.Link, 0, bottomNavigationSize)
	for i := 0; i < bottomNavigationSize; i++ {
		link, err := c.ParseLink()
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, nil
}
