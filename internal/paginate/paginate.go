// Package paginate aggregates paged listing endpoints into complete
// collections.
package paginate

import (
	"context"

	"nathanbeddoewebdev/registrar/internal/apierr"
)

// Page is one page of results together with the cursor for the next one.
type Page[T any, C any] struct {
	Items []T

	// Next is the cursor to request after this page.
	Next C

	// Done reports that the provider signalled there are no further pages.
	Done bool
}

// Fetcher retrieves the page identified by cursor.
type Fetcher[T any, C any] func(ctx context.Context, cursor C) (Page[T, C], error)

// CollectAll calls fetch sequentially, starting at first, and concatenates
// the items of every page in the order received.
//
// It stops after a page that is empty, shorter than pageSize (when pageSize
// is positive), or marked Done. A page exactly pageSize long is always
// followed by one more request. On any failure the error is returned with a
// nil slice; a partial collection is never returned.
func CollectAll[T any, C any](ctx context.Context, first C, pageSize int, fetch Fetcher[T, C]) ([]T, error) {
	all := make([]T, 0)
	cursor := first

	for {
		if err := ctx.Err(); err != nil {
			return nil, apierr.Transport(err)
		}

		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}

		if len(page.Items) == 0 {
			return all, nil
		}
		all = append(all, page.Items...)

		if page.Done || (pageSize > 0 && len(page.Items) < pageSize) {
			return all, nil
		}
		cursor = page.Next
	}
}

// Offset returns a Fetcher for offset-based endpoints: the cursor advances
// by the number of items on each page.
func Offset[T any](fetch func(ctx context.Context, offset int) ([]T, error)) Fetcher[T, int] {
	return func(ctx context.Context, offset int) (Page[T, int], error) {
		items, err := fetch(ctx, offset)
		if err != nil {
			return Page[T, int]{}, err
		}
		return Page[T, int]{Items: items, Next: offset + len(items)}, nil
	}
}

// Numbered returns a Fetcher for page-number endpoints. fetch reports the next
// page number, or 0 when the provider says there is none. A next page that
// does not move forward is treated as the end.
func Numbered[T any](fetch func(ctx context.Context, page int) ([]T, int, error)) Fetcher[T, int] {
	return func(ctx context.Context, page int) (Page[T, int], error) {
		items, next, err := fetch(ctx, page)
		if err != nil {
			return Page[T, int]{}, err
		}
		return Page[T, int]{Items: items, Next: next, Done: next <= page}, nil
	}
}
