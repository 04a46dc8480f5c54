// Package screen holds the per-screen controllers shared by every list
// and editor view: cursor pagination, edit/create submission and the
// login guard.
package screen

import (
	"context"

	"loyalty_admin/internal/cache"
	"loyalty_admin/internal/gql"

	"go.uber.org/zap"
)

// ListFunc issues one list query with the given cursor and search term.
type ListFunc[T any] func(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[T]], error)

// Pager drives cursor pagination for one list screen. The cursor holds
// at most one token; paging replaces the whole value, so moving forward
// discards any backward token and vice versa.
type Pager[T any] struct {
	name   string
	list   ListFunc[T]
	cache  *cache.Store
	logger *zap.Logger

	cursor  gql.Cursor
	search  string
	loading bool
	last    *gql.Result[gql.Page[T]]
	lastGen uint64
}

func NewPager[T any](name string, list ListFunc[T], store *cache.Store, logger *zap.Logger) *Pager[T] {
	return &Pager[T]{
		name:   name,
		list:   list,
		cache:  store,
		logger: logger.Named("pager"),
	}
}

// Fetch issues the list query with the current cursor and search term.
// Every completed fetch, success and error variants alike, invalidates
// the whole cache: a margin edit can change accumulation aggregates, so
// other screens must refetch rather than trust stale results.
func (p *Pager[T]) Fetch(ctx context.Context) (gql.Result[gql.Page[T]], error) {
	p.loading = true
	defer func() { p.loading = false }()

	res, err := p.list(ctx, p.cursor, p.search)
	if err != nil {
		p.logger.Warn("list fetch failed", zap.String("screen", p.name), zap.Error(err))
		return gql.Result[gql.Page[T]]{}, err
	}

	p.last = &res
	p.cache.InvalidateAll()
	p.lastGen = p.cache.Generation()
	if res.OK() {
		p.cache.Put(p.name, res)
	}
	return res, nil
}

// NextPage replaces the cursor with the last envelope's forward token.
// It is a no-op when the last fetch returned an error variant or there
// has been no fetch yet.
func (p *Pager[T]) NextPage() {
	if p.last == nil || !p.last.OK() {
		return
	}
	p.cursor = gql.Cursor{NextCursor: p.last.Value.NextCursor}
}

// PreviousPage is symmetric to NextPage.
func (p *Pager[T]) PreviousPage() {
	if p.last == nil || !p.last.OK() {
		return
	}
	p.cursor = gql.Cursor{PrevCursor: p.last.Value.PrevCursor}
}

// SetSearch replaces the search term and resets the cursor, so the next
// fetch starts from the first page of the new term.
func (p *Pager[T]) SetSearch(search string) {
	p.search = search
	p.cursor = gql.Cursor{}
}

func (p *Pager[T]) Search() string { return p.search }

func (p *Pager[T]) Cursor() gql.Cursor { return p.cursor }

func (p *Pager[T]) Loading() bool { return p.loading }

func (p *Pager[T]) HasNext() bool {
	return p.last != nil && p.last.OK() && p.last.Value.HasNext()
}

func (p *Pager[T]) HasPrevious() bool {
	return p.last != nil && p.last.OK() && p.last.Value.HasPrevious()
}

// Last returns the most recent fetch result, nil before the first fetch.
func (p *Pager[T]) Last() *gql.Result[gql.Page[T]] {
	return p.last
}

// Stale reports whether another screen invalidated the cache after this
// pager's last fetch, meaning the held result should be refetched.
func (p *Pager[T]) Stale() bool {
	return p.last != nil && p.lastGen != p.cache.Generation()
}
