package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// endpoint implements the CRUD calls every admin resource shares.
// T is the entity type, C the create payload, U the update (PATCH) payload.
type endpoint[T any, C any, U any] struct {
	c    *Client
	base string // e.g. "/api/admin/guides"
}

func (e endpoint[T, C, U]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := e.c.do(ctx, http.MethodGet, e.base, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e endpoint[T, C, U]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := e.c.do(ctx, http.MethodGet, e.itemPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e endpoint[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	var out T
	if err := e.c.do(ctx, http.MethodPost, e.base, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e endpoint[T, C, U]) Update(ctx context.Context, id string, req U) (*T, error) {
	var out T
	if err := e.c.do(ctx, http.MethodPatch, e.itemPath(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e endpoint[T, C, U]) Delete(ctx context.Context, id string) error {
	return e.c.do(ctx, http.MethodDelete, e.itemPath(id), nil, nil)
}

// action issues a status-style POST under the item path (e.g. /activate).
func (e endpoint[T, C, U]) action(ctx context.Context, id, verb string, body any) (*T, error) {
	var out T
	if err := e.c.do(ctx, http.MethodPost, e.itemPath(id)+"/"+verb, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e endpoint[T, C, U]) itemPath(id string) string {
	return e.base + "/" + url.PathEscape(id)
}
