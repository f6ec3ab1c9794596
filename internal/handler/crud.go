package handler

import (
	"context"
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
)

// collection is the CRUD surface shared by the positioned entities.
type collection[T, In any] interface {
	List(ctx context.Context, filter model.ListFilter) ([]*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, input *In) (*T, error)
	Update(ctx context.Context, id int64, input *In) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type reorderable[T any] interface {
	List(ctx context.Context, filter model.ListFilter) ([]*T, error)
	Reorder(ctx context.Context, ids []int64) error
}

type toggleable[T any] interface {
	ToggleVisibility(ctx context.Context, id int64) (*T, error)
}

// crud serves the admin endpoints of one collection.
type crud[T, In any] struct {
	items collection[T, In]
	responder
}

// List returns every row, hidden ones included.
func (h *crud[T, In]) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.items.List(r.Context(), model.ListFilter{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *crud[T, In]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	row, err := h.items.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *crud[T, In]) Create(w http.ResponseWriter, r *http.Request) {
	var input In
	if err := decodeInput(w, r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	row, err := h.items.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (h *crud[T, In]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var input In
	if err := decodeInput(w, r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	row, err := h.items.Update(r.Context(), id, &input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

// Delete answers 200 whether or not the row existed.
func (h *crud[T, In]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.items.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted{ID: id, Deleted: true})
}

// reorder applies the submitted order and returns the reordered list.
func reorder[T any](h responder, svc reorderable[T], w http.ResponseWriter, r *http.Request) {
	ids, err := decodeReorder(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := svc.Reorder(r.Context(), ids); err != nil {
		h.writeError(w, r, err)
		return
	}

	rows, err := svc.List(r.Context(), model.ListFilter{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func toggle[T any](h responder, svc toggleable[T], w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	row, err := svc.ToggleVisibility(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}
