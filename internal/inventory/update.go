package inventory

const (
	// MinQuality is the floor for every non-legendary item.
	MinQuality = 0
	// MaxQuality is the ceiling for every non-legendary item.
	MaxQuality = 50

	eventTicketDoubleAt = 10
	eventTicketTripleAt = 5
)

// Update ages a single item by one day according to its category.
func Update(item *Item) {
	switch CategoryOf(item.Name) {
	case Ripening:
		updateRipening(item)
	case EventTicket:
		updateEventTicket(item)
	case Legendary:
		// never sold, never degrades
	default:
		updateGeneric(item)
	}
}

func updateGeneric(item *Item) {
	decreaseQuality(item)
	item.SellIn--
	if item.SellIn < 0 {
		decreaseQuality(item)
	}
}

func updateRipening(item *Item) {
	increaseQuality(item)
	item.SellIn--
	if item.SellIn < 0 {
		increaseQuality(item)
	}
}

// Thresholds are compared against the sell-in left after today's decrement.
func updateEventTicket(item *Item) {
	item.SellIn--
	increaseQuality(item)
	if item.SellIn < eventTicketDoubleAt {
		increaseQuality(item)
	}
	if item.SellIn < eventTicketTripleAt {
		increaseQuality(item)
	}
	if item.SellIn < 0 {
		item.Quality = MinQuality
	}
}

func decreaseQuality(item *Item) {
	item.Quality = max(item.Quality-1, MinQuality)
}

func increaseQuality(item *Item) {
	item.Quality = min(item.Quality+1, MaxQuality)
}
