package screen

import (
	"context"
	"fmt"

	"loyalty_admin/internal/cache"
	"loyalty_admin/internal/forms"
	"loyalty_admin/internal/gql"

	"go.uber.org/zap"
)

// Outcome is what an editor submission produced. Saved means the backend
// returned the entity variant and the caller should leave the form;
// otherwise Result carries the error variant and the form stays open.
type Outcome[T any] struct {
	Saved  bool
	Result gql.Result[T]
}

// Editor submits one entity form. The mode is keyed solely on the
// identifier: empty id fires the add mutation, non-empty id the update
// mutation. Exactly one mutation fires per submission.
type Editor[T, C, U any] struct {
	name   string
	add    func(ctx context.Context, in C) (gql.Result[T], error)
	update func(ctx context.Context, id string, in U) (gql.Result[T], error)
	cache  *cache.Store
	logger *zap.Logger
}

func NewEditor[T, C, U any](
	name string,
	add func(ctx context.Context, in C) (gql.Result[T], error),
	update func(ctx context.Context, id string, in U) (gql.Result[T], error),
	store *cache.Store,
	logger *zap.Logger,
) *Editor[T, C, U] {
	return &Editor[T, C, U]{
		name:   name,
		add:    add,
		update: update,
		cache:  store,
		logger: logger.Named("editor"),
	}
}

// NewUpdateEditor binds an entity that has no add mutation, such as
// generated benefits: every submission must carry an identifier.
func NewUpdateEditor[T, U any](
	name string,
	update func(ctx context.Context, id string, in U) (gql.Result[T], error),
	store *cache.Store,
	logger *zap.Logger,
) *Editor[T, struct{}, U] {
	return NewEditor[T, struct{}, U](name, nil, update, store, logger)
}

// Update submits in update mode. It exists for update-only editors; the
// add mutation is never touched.
func (e *Editor[T, C, U]) Update(ctx context.Context, id string, input func() U) (Outcome[T], error) {
	if id == "" {
		return Outcome[T]{}, fmt.Errorf("%s: update needs an id", e.name)
	}
	return e.Submit(ctx, id, nil, input)
}

// Submit builds and sends the input for the mode the id selects. The
// input builders are closures so the unused mode's input is never
// materialized. Field rules are checked before anything goes on the
// wire; a rule failure is returned as an error and no mutation fires.
func (e *Editor[T, C, U]) Submit(ctx context.Context, id string, create func() C, update func() U) (Outcome[T], error) {
	var (
		res gql.Result[T]
		err error
	)
	if id == "" {
		in := create()
		if err := forms.Validate(in); err != nil {
			return Outcome[T]{}, err
		}
		res, err = e.add(ctx, in)
	} else {
		in := update()
		if err := forms.Validate(in); err != nil {
			return Outcome[T]{}, err
		}
		res, err = e.update(ctx, id, in)
	}
	if err != nil {
		e.logger.Warn("submit failed", zap.String("screen", e.name), zap.String("id", id), zap.Error(err))
		return Outcome[T]{}, err
	}

	if !res.OK() {
		return Outcome[T]{Result: res}, nil
	}

	e.cache.InvalidateAll()
	return Outcome[T]{Saved: true, Result: res}, nil
}
