package screen

import (
	"context"
	"errors"
	"testing"

	"loyalty_admin/internal/cache"
	"loyalty_admin/internal/gql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type row struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func pageResult(next, prev string, total int) gql.Result[gql.Page[row]] {
	page := gql.Page[row]{Total: total, Items: []row{{ID: "1", Name: "a"}}}
	if next != "" {
		page.NextCursor = &next
	}
	if prev != "" {
		page.PrevCursor = &prev
	}
	return gql.Result[gql.Page[row]]{Typename: "RowPagination", Value: &page}
}

func generalResult() gql.Result[gql.Page[row]] {
	return gql.Result[gql.Page[row]]{
		Typename: "GeneralError",
		General:  &gql.GeneralError{Code: 500, Message: "boom"},
	}
}

func newPager(t *testing.T, list ListFunc[row]) (*Pager[row], *cache.Store) {
	t.Helper()
	store := cache.NewStore(zap.NewNop())
	return NewPager("rows", list, store, zap.NewNop()), store
}

func TestPager_FetchSendsCursorAndSearch(t *testing.T) {
	var gotCursor gql.Cursor
	var gotSearch string
	p, _ := newPager(t, func(_ context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[row]], error) {
		gotCursor = cursor
		gotSearch = search
		return pageResult("c2", "", 42), nil
	})

	p.SetSearch("ana")
	res, err := p.Fetch(context.Background())
	require.NoError(t, err)
	require.True(t, res.OK())

	assert.True(t, gotCursor.IsZero())
	assert.Equal(t, "ana", gotSearch)
	assert.Equal(t, 42, res.Value.Total)
}

func TestPager_CursorNeverHoldsBothTokens(t *testing.T) {
	p, _ := newPager(t, func(_ context.Context, _ gql.Cursor, _ string) (gql.Result[gql.Page[row]], error) {
		return pageResult("cn", "cp", 10), nil
	})

	steps := []func(){p.NextPage, p.PreviousPage, p.NextPage, p.NextPage, p.PreviousPage}
	for _, step := range steps {
		_, err := p.Fetch(context.Background())
		require.NoError(t, err)
		step()

		c := p.Cursor()
		both := c.NextCursor != nil && c.PrevCursor != nil
		assert.False(t, both)
	}
}

func TestPager_NextPageReplacesPreviousToken(t *testing.T) {
	p, _ := newPager(t, func(_ context.Context, _ gql.Cursor, _ string) (gql.Result[gql.Page[row]], error) {
		return pageResult("cn", "cp", 10), nil
	})

	_, err := p.Fetch(context.Background())
	require.NoError(t, err)

	p.PreviousPage()
	require.NotNil(t, p.Cursor().PrevCursor)

	_, err = p.Fetch(context.Background())
	require.NoError(t, err)
	p.NextPage()

	c := p.Cursor()
	require.NotNil(t, c.NextCursor)
	assert.Equal(t, "cn", *c.NextCursor)
	assert.Nil(t, c.PrevCursor)
}

func TestPager_PagingIsNoOpAfterErrorVariant(t *testing.T) {
	p, _ := newPager(t, func(_ context.Context, _ gql.Cursor, _ string) (gql.Result[gql.Page[row]], error) {
		return generalResult(), nil
	})

	_, err := p.Fetch(context.Background())
	require.NoError(t, err)

	p.NextPage()
	assert.True(t, p.Cursor().IsZero())
	p.PreviousPage()
	assert.True(t, p.Cursor().IsZero())
	assert.False(t, p.HasNext())
	assert.False(t, p.HasPrevious())
}

func TestPager_PagingIsNoOpBeforeFirstFetch(t *testing.T) {
	p, _ := newPager(t, func(_ context.Context, _ gql.Cursor, _ string) (gql.Result[gql.Page[row]], error) {
		return pageResult("cn", "", 1), nil
	})

	p.NextPage()
	p.PreviousPage()
	assert.True(t, p.Cursor().IsZero())
}

func TestPager_SetSearchResetsCursor(t *testing.T) {
	p, _ := newPager(t, func(_ context.Context, _ gql.Cursor, _ string) (gql.Result[gql.Page[row]], error) {
		return pageResult("cn", "", 1), nil
	})

	_, err := p.Fetch(context.Background())
	require.NoError(t, err)
	p.NextPage()
	require.False(t, p.Cursor().IsZero())

	p.SetSearch("new term")
	assert.True(t, p.Cursor().IsZero())
	assert.Equal(t, "new term", p.Search())
}

func TestPager_FetchInvalidatesWholeCache(t *testing.T) {
	list := func(_ context.Context, _ gql.Cursor, _ string) (gql.Result[gql.Page[row]], error) {
		return pageResult("cn", "", 1), nil
	}
	store := cache.NewStore(zap.NewNop())
	a := NewPager("rows-a", list, store, zap.NewNop())
	b := NewPager("rows-b", list, store, zap.NewNop())

	_, err := a.Fetch(context.Background())
	require.NoError(t, err)
	_, err = b.Fetch(context.Background())
	require.NoError(t, err)
	assert.False(t, b.Stale())

	// a's next completion invalidates b's held result too.
	_, err = a.Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, b.Stale())
	assert.False(t, a.Stale())
}

func TestPager_ErrorVariantStillInvalidates(t *testing.T) {
	p, store := newPager(t, func(_ context.Context, _ gql.Cursor, _ string) (gql.Result[gql.Page[row]], error) {
		return generalResult(), nil
	})

	before := store.Generation()
	_, err := p.Fetch(context.Background())
	require.NoError(t, err)
	assert.Greater(t, store.Generation(), before)
}

func TestPager_TransportErrorKeepsState(t *testing.T) {
	fail := errors.New("connection refused")
	calls := 0
	p, store := newPager(t, func(_ context.Context, _ gql.Cursor, _ string) (gql.Result[gql.Page[row]], error) {
		calls++
		if calls == 1 {
			return pageResult("cn", "", 5), nil
		}
		return gql.Result[gql.Page[row]]{}, fail
	})

	_, err := p.Fetch(context.Background())
	require.NoError(t, err)
	gen := store.Generation()

	_, err = p.Fetch(context.Background())
	require.ErrorIs(t, err, fail)
	assert.Equal(t, gen, store.Generation())
	require.NotNil(t, p.Last())
	assert.True(t, p.Last().OK())
	assert.False(t, p.Loading())
}
