package models

// Item is a catalog entry. IDs are assigned by the catalog store and
// never reused; Deleted is a soft-delete flag, the row stays behind it.
type Item struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Deleted bool    `json:"deleted"`
}

type ItemRequest struct {
	Name    string   `json:"name" binding:"required"`
	Price   *float64 `json:"price" binding:"required,gte=0"`
	Deleted bool     `json:"deleted"`
}

// ItemPatch carries a partial update; nil means "leave unchanged".
// Bodies are decoded strictly, so unknown fields never reach the store.
type ItemPatch struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}
