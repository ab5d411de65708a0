package models

// CartLineItem is a point-in-time snapshot of a catalog item taken when
// it was first added to the cart. Name and UnitPrice are frozen at copy
// time; Available tracks the item's deletion state via propagation, not
// a live join.
type CartLineItem struct {
	ItemID    int     `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Available bool    `json:"available"`
	UnitPrice float64 `json:"-"` // copy-time price, feeds TotalPrice
}

type Cart struct {
	ID         int            `json:"id"`
	Items      []CartLineItem `json:"items"`
	TotalPrice float64        `json:"total_price"`
}

// TotalQuantity sums line quantities; cart listings filter on it.
func (c Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Items {
		total += line.Quantity
	}
	return total
}
