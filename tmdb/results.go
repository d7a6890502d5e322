package tmdb

// ResultsList is one page of results together with its pagination metadata.
type ResultsList[T any] struct {
	Results      []T `json:"results"`
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// ResultsMap holds keyed results, such as change sets grouped by field.
type ResultsMap[K comparable, V any] struct {
	Results map[K]V `json:"results"`
}

// HasMore reports whether a page after this one exists
func (r *ResultsList[T]) HasMore() bool {
	return r.Page < r.TotalPages
}

type pageInfo struct {
	Page         int
	TotalPages   int
	TotalResults int
}

func newResultsList[T any](items []T, info pageInfo) *ResultsList[T] {
	if items == nil {
		items = []T{}
	}
	return &ResultsList[T]{
		Results:      items,
		Page:         info.Page,
		TotalPages:   info.TotalPages,
		TotalResults: info.TotalResults,
	}
}

// paged is the standard list envelope: {"page":..,"results":[..],"total_pages":..,"total_results":..}
type paged[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

func (p *paged[T]) items() []T { return p.Results }

func (p *paged[T]) pagination() pageInfo {
	return pageInfo{Page: p.Page, TotalPages: p.TotalPages, TotalResults: p.TotalResults}
}

// unpaged reports the pagination of a bare list: one page holding every item
func unpaged(n int) pageInfo {
	return pageInfo{Page: 1, TotalPages: 1, TotalResults: n}
}
