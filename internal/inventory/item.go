// Package inventory implements the nightly aging of a shop's stock.
package inventory

import "fmt"

// Item is a single stock entry. Name selects the item's category and is not
// a unique identifier.
type Item struct {
	Name    string
	SellIn  int
	Quality int
}

// NewItem constructs an item exactly as given. Quality outside [0, 50] is
// kept until an update step modifies it.
func NewItem(name string, sellIn, quality int) *Item {
	return &Item{
		Name:    name,
		SellIn:  sellIn,
		Quality: quality,
	}
}

// String renders the item as "<name>, <sell_in>, <quality>".
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}
