package domain

// PageKind selects which of the two teletext readers a page belongs to.
type PageKind int

const (
	// PageKindText is the plain markup page ({page}_{sub}.htm).
	PageKindText PageKind = iota
	// PageKindImage is the JSON page with an embedded PNG render.
	PageKindImage
)

func (k PageKind) String() string {
	if k == PageKindImage {
		return "image"
	}
	return "text"
}

// Link is a navigable reference parsed out of the page markup.
type Link struct {
	URL   string
	Label string
}

// ItemKind tags a NavigationItem as plain text or a link.
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemLink
)

// NavigationItem is one element of a navigation row or body row:
// either a run of text or a link. The kind set is closed.
type NavigationItem struct {
	Kind ItemKind
	Text string // set when Kind == ItemText
	Link Link   // set when Kind == ItemLink
}

// TextItem wraps a text run as a navigation item.
func TextItem(text string) NavigationItem {
	return NavigationItem{Kind: ItemText, Text: text}
}

// LinkItem wraps a link as a navigation item.
func LinkItem(link Link) NavigationItem {
	return NavigationItem{Kind: ItemLink, Link: link}
}

// TextDocument is the parsed form of a plain markup teletext page.
type TextDocument struct {
	Title            string
	PageNavigation   []NavigationItem   // always exactly 4 items
	MiddleRows       [][]NavigationItem // body lines, empty slice for blank lines
	SubPages         []NavigationItem
	BottomNavigation []Link // always exactly 6 links
}

// ImageDocument is the parsed form of a JSON teletext page. Nil entries
// in BottomNavigation are hidden navigation slots that render inert.
type ImageDocument struct {
	Title            string
	Image            []byte // decoded PNG
	BottomNavigation []*Link
}

// Document is the closed tagged pair of page variants. Exactly one of
// Text and Image is non-nil, matching Kind.
type Document struct {
	Kind  PageKind
	Text  *TextDocument
	Image *ImageDocument
}

// Title returns the page title regardless of variant.
func (d Document) Title() string {
	switch d.Kind {
	case PageKindImage:
		if d.Image != nil {
			return d.Image.Title
		}
	default:
		if d.Text != nil {
			return d.Text.Title
		}
	}
	return ""
}
