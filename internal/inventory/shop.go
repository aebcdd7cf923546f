package inventory

// Shop owns the ordered stock for the duration of a simulation.
type Shop struct {
	Items []*Item
}

// NewShop creates a shop holding items in the given order.
func NewShop(items ...*Item) *Shop {
	return &Shop{Items: items}
}

// AdvanceOneDay ages every item in place, in collection order.
func (s *Shop) AdvanceOneDay() {
	for _, item := range s.Items {
		Update(item)
	}
}

// AdvanceDays calls AdvanceOneDay n times. Non-positive n does nothing.
func (s *Shop) AdvanceDays(n int) {
	for range max(n, 0) {
		s.AdvanceOneDay()
	}
}

// Snapshot returns a copy of the current stock.
func (s *Shop) Snapshot() []Item {
	snapshot := make([]Item, 0, len(s.Items))
	for _, item := range s.Items {
		snapshot = append(snapshot, *item)
	}
	return snapshot
}
