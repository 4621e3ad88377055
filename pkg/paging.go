package egeria

import (
	"context"
	"iter"
)

// DefaultPageSize is used when a caller passes a page size <= 0
const DefaultPageSize = 100

// PageFunc fetches one page of elements starting at startFrom
type PageFunc func(ctx context.Context, startFrom, pageSize int) ([]Element, error)

// Paginate walks every page returned by fetch. Paging stops at the first
// page shorter than pageSize, at the first error, or when the caller stops
// ranging.
func Paginate(ctx context.Context, pageSize int, fetch PageFunc) iter.Seq2[Element, error] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return func(yield func(Element, error) bool) {
		for startFrom := 0; ; startFrom += pageSize {
			if err := ctx.Err(); err != nil {
				yield(Element{}, transportError("", "", err))
				return
			}
			page, err := fetch(ctx, startFrom, pageSize)
			if err != nil {
				yield(Element{}, err)
				return
			}
			for _, el := range page {
				if !yield(el, nil) {
					return
				}
			}
			if len(page) < pageSize {
				return
			}
		}
	}
}

// CollectAll gathers every page into one slice
func CollectAll(ctx context.Context, pageSize int, fetch PageFunc) ([]Element, error) {
	all := []Element{}
	for el, err := range Paginate(ctx, pageSize, fetch) {
		if err != nil {
			return nil, err
		}
		all = append(all, el)
	}
	return all, nil
}

// SearchOptions are the optional knobs of the find operations
type SearchOptions struct {
	StartsWith              bool
	EndsWith                bool
	IgnoreCase              bool
	StartFrom               int
	PageSize                int
	MetadataElementTypeName string
	LimitResultsByStatus    []string
	Effectivity             Effectivity
}

// searchString maps the "everything" wildcard onto the empty search the
// server expects.
func searchString(s string) string {
	if s == "*" {
		return ""
	}
	return s
}

func (o SearchOptions) pageSize() int {
	if o.PageSize <= 0 {
		return DefaultPageSize
	}
	return o.PageSize
}

// body builds the SearchStringRequestBody for a find call
func (o SearchOptions) body(search string) SearchStringRequestBody {
	return SearchStringRequestBody{
		Effectivity: o.Effectivity,
		Paging: Paging{
			StartFrom:            o.StartFrom,
			PageSize:             o.pageSize(),
			LimitResultsByStatus: o.LimitResultsByStatus,
		},
		SearchString:            searchString(search),
		StartsWith:              o.StartsWith,
		EndsWith:                o.EndsWith,
		IgnoreCase:              o.IgnoreCase,
		MetadataElementTypeName: o.MetadataElementTypeName,
	}
}

// filterBody builds the FilterRequestBody for a by-name or by-category call
func (o SearchOptions) filterBody(filter string) FilterRequestBody {
	return FilterRequestBody{
		Effectivity: o.Effectivity,
		Paging: Paging{
			StartFrom:            o.StartFrom,
			PageSize:             o.pageSize(),
			LimitResultsByStatus: o.LimitResultsByStatus,
		},
		Filter:                  filter,
		MetadataElementTypeName: o.MetadataElementTypeName,
	}
}

// resultsBody builds the ResultsRequestBody for a related-elements call
func (o SearchOptions) resultsBody() ResultsRequestBody {
	return ResultsRequestBody{
		Effectivity: o.Effectivity,
		Paging: Paging{
			StartFrom:            o.StartFrom,
			PageSize:             o.pageSize(),
			LimitResultsByStatus: o.LimitResultsByStatus,
		},
		MetadataElementTypeName: o.MetadataElementTypeName,
	}
}

// searchPages turns a find endpoint into a PageFunc
func (c *ServerClient) searchPages(rawURL, search string, opts SearchOptions) PageFunc {
	return func(ctx context.Context, startFrom, pageSize int) ([]Element, error) {
		o := opts
		o.StartFrom = startFrom
		o.PageSize = pageSize
		return c.postForElements(ctx, rawURL, o.body(search))
	}
}
