package model

// ListFilter narrows list queries over positioned entities.
type ListFilter struct {
	// VisibleOnly excludes hidden rows; public listings always set it.
	VisibleOnly bool
}

// PublicFilter is the filter applied to every public listing.
var PublicFilter = ListFilter{VisibleOnly: true}

// UpsertResult tags the outcome of a get-or-create save.
type UpsertResult string

const (
	Created UpsertResult = "created"
	Updated UpsertResult = "updated"
)

// ReorderRequest carries the ids of a collection in their new display order.
type ReorderRequest struct {
	IDs []int64 `json:"ids"`
}
