package egeria

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagesOf serves total elements in pages and records the requested offsets
func pagesOf(total int, starts *[]int) PageFunc {
	return func(_ context.Context, startFrom, pageSize int) ([]Element, error) {
		*starts = append(*starts, startFrom)
		var page []Element
		for i := startFrom; i < min(startFrom+pageSize, total); i++ {
			page = append(page, Element{Header: ElementHeader{GUID: fmt.Sprintf("g%d", i)}})
		}
		return page, nil
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		pageSize   int
		wantStarts []int
	}{
		{name: "empty", total: 0, pageSize: 10, wantStarts: []int{0}},
		{name: "single short page", total: 3, pageSize: 10, wantStarts: []int{0}},
		{name: "exact multiple asks once more", total: 20, pageSize: 10, wantStarts: []int{0, 10, 20}},
		{name: "several pages", total: 25, pageSize: 10, wantStarts: []int{0, 10, 20}},
		{name: "default page size", total: 150, pageSize: 0, wantStarts: []int{0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var starts []int
			all, err := CollectAll(context.Background(), tt.pageSize, pagesOf(tt.total, &starts))
			require.NoError(t, err)
			assert.Len(t, all, tt.total)
			assert.NotNil(t, all)
			assert.Equal(t, tt.wantStarts, starts)
			if tt.total > 0 {
				assert.Equal(t, fmt.Sprintf("g%d", tt.total-1), all[len(all)-1].GUID())
			}
		})
	}
}

func TestPaginate_StopsWhenCallerBreaks(t *testing.T) {
	var starts []int
	seen := 0
	for el, err := range Paginate(context.Background(), 10, pagesOf(1000, &starts)) {
		require.NoError(t, err)
		seen++
		if el.GUID() == "g14" {
			break
		}
	}
	assert.Equal(t, 15, seen)
	assert.Equal(t, []int{0, 10}, starts)
}

func TestPaginate_Error(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fetch := func(_ context.Context, startFrom, pageSize int) ([]Element, error) {
		calls++
		if startFrom > 0 {
			return nil, boom
		}
		return make([]Element, pageSize), nil
	}

	all, err := CollectAll(context.Background(), 5, fetch)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, all)
	assert.Equal(t, 2, calls)
}

func TestPaginate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var starts []int
	_, err := CollectAll(ctx, 10, pagesOf(100, &starts))
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrConnection)
	assert.Empty(t, starts)
}

func TestSearchOptions_Bodies(t *testing.T) {
	opts := SearchOptions{StartsWith: true, StartFrom: 20, LimitResultsByStatus: []string{"ACTIVE"}, MetadataElementTypeName: "Project"}

	search := opts.body("*")
	assert.Equal(t, "", search.SearchString)
	assert.True(t, search.StartsWith)
	assert.Equal(t, 20, search.StartFrom)
	assert.Equal(t, DefaultPageSize, search.PageSize)
	assert.Equal(t, []string{"ACTIVE"}, search.LimitResultsByStatus)
	assert.Equal(t, "Project", search.MetadataElementTypeName)

	assert.Equal(t, "Sustain.*", opts.body("Sustain.*").SearchString)

	filter := SearchOptions{PageSize: 7}.filterBody("Campaign")
	assert.Equal(t, "Campaign", filter.Filter)
	assert.Equal(t, 7, filter.PageSize)

	results := opts.resultsBody()
	assert.Equal(t, 20, results.StartFrom)
	assert.Equal(t, "Project", results.MetadataElementTypeName)
}
