package domain

import (
	"fmt"
	"strconv"
)

// PageAddress identifies a teletext page by page and sub-page number.
type PageAddress struct {
	Page    int
	SubPage int
}

// NewPageAddress creates an address for a page's first sub-page.
func NewPageAddress(page int) PageAddress {
	return PageAddress{Page: page, SubPage: 1}
}

// URLPath is the path form used by the text reader, e.g. "100_0001.htm".
// The page is zero-padded to 3 digits and the sub-page to 4.
func (a PageAddress) URLPath() string {
	return fmt.Sprintf("%03d_%04d.htm", a.Page, a.SubPage)
}

// QueryForm is the query value used by the image reader, e.g. "100_0001".
func (a PageAddress) QueryForm() string {
	return fmt.Sprintf("%d_%04d", a.Page, a.SubPage)
}

func (a PageAddress) String() string {
	return fmt.Sprintf("%03d_%04d", a.Page, a.SubPage)
}

// ParsePageAddress reads the positional form shared by page link targets:
// characters [0:3] are the page and [4:8] the sub-page. Works for both
// "100_0001.htm" link hrefs and bare "100_0001" page names. The format is
// positional, not delimiter scanned; parse failures are returned, never
// defaulted away.
func ParsePageAddress(s string) (PageAddress, error) {
	if len(s) < 8 {
		return PageAddress{}, fmt.Errorf("page address %q too short", s)
	}
	page, err := strconv.Atoi(s[0:3])
	if err != nil {
		return PageAddress{}, fmt.Errorf("page number in %q: %w", s, err)
	}
	sub, err := strconv.Atoi(s[4:8])
	if err != nil {
		return PageAddress{}, fmt.Errorf("sub-page number in %q: %w", s, err)
	}
	return PageAddress{Page: page, SubPage: sub}, nil
}
