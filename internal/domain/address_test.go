package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageAddressForms(t *testing.T) {
	t.Parallel()

	a := NewPageAddress(100)
	assert.Equal(t, 1, a.SubPage, "a fresh address points at the first sub-page")
	assert.Equal(t, "100_0001.htm", a.URLPath())
	assert.Equal(t, "100_0001", a.QueryForm())
	assert.Equal(t, "100_0001", a.String())

	b := PageAddress{Page: 7, SubPage: 12}
	assert.Equal(t, "007_0012.htm", b.URLPath(), "the path form pads the page to three digits")
	assert.Equal(t, "7_0012", b.QueryForm(), "the query form does not pad the page")
}

func TestParsePageAddress(t *testing.T) {
	t.Parallel()

	a, err := ParsePageAddress("201_0003.htm")
	require.NoError(t, err)
	assert.Equal(t, PageAddress{Page: 201, SubPage: 3}, a)

	a, err = ParsePageAddress("898_0001")
	require.NoError(t, err)
	assert.Equal(t, PageAddress{Page: 898, SubPage: 1}, a)
}

func TestParsePageAddressRoundTrip(t *testing.T) {
	t.Parallel()

	for page := 100; page <= 899; page += 133 {
		for sub := 1; sub <= 21; sub += 5 {
			a := PageAddress{Page: page, SubPage: sub}

			fromPath, err := ParsePageAddress(a.URLPath())
			require.NoError(t, err)
			assert.Equal(t, a, fromPath)

			fromQuery, err := ParsePageAddress(a.QueryForm())
			require.NoError(t, err)
			assert.Equal(t, a, fromQuery)
		}
	}
}

func TestParsePageAddressErrors(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"100",
		"100_001",      // too short
		"abc_0001.htm", // page not a number
		"100_zzzz.htm", // sub-page not a number
	}
	for _, s := range cases {
		_, err := ParsePageAddress(s)
		assert.Error(t, err, "input %q", s)
	}
}
