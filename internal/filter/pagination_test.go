package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageDefaults(t *testing.T) {
	t.Parallel()

	page, err := ParsePage(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, DefaultPageSize, page.Size)
	assert.Equal(t, 0, page.Offset())
	assert.Equal(t, DefaultPageSize, page.Limit())
}

func TestParsePageValid(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("page", "3")
	params.Set("page_size", "20")

	page, err := ParsePage(params)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 20, page.Size)
	assert.Equal(t, 40, page.Offset())
}

func TestParsePageClampsOversizedPageSize(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("page_size", "500")

	page, err := ParsePage(params)
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, page.Size)
}

func TestParsePageInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		value     string
		wantParam string
	}{
		{"non-numeric page", "page", "abc", "page"},
		{"zero page", "page", "0", "page"},
		{"negative page", "page", "-1", "page"},
		{"non-numeric page_size", "page_size", "ten", "page_size"},
		{"zero page_size", "page_size", "0", "page_size"},
		{"float page_size", "page_size", "1.5", "page_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := url.Values{}
			params.Set(tt.key, tt.value)

			_, err := ParsePage(params)
			require.Error(t, err)

			var perr *InvalidPaginationError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantParam, perr.Parameter)
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		size  int
		want  int
	}{
		{"exact multiple", 30, 15, 2},
		{"remainder rounds up", 31, 15, 3},
		{"single partial page", 1, 15, 1},
		{"empty result", 0, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Page{Number: 1, Size: tt.size}
			assert.Equal(t, tt.want, page.TotalPages(tt.total))
		})
	}
}
