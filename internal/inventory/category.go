package inventory

// Item names that select a non-generic category.
const (
	AgedBrie         = "Aged Brie"
	BackstagePasses  = "Backstage passes to a TAFKAL80ETC concert"
	Sulfuras         = "Sulfuras, Hand of Ragnaros"
	ConjuredManaCake = "Conjured Mana Cake"
)

// Category is the behavioural class of an item.
type Category int

const (
	Generic Category = iota
	Ripening
	EventTicket
	Legendary
)

// Categories lists every category in dispatch order.
func Categories() []Category {
	return []Category{Generic, Ripening, EventTicket, Legendary}
}

func (c Category) String() string {
	switch c {
	case Generic:
		return "generic"
	case Ripening:
		return "ripening"
	case EventTicket:
		return "event-ticket"
	case Legendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// MatchName returns the item name that selects the category, or "" for
// Generic which is the fallback for every other name.
func (c Category) MatchName() string {
	switch c {
	case Ripening:
		return AgedBrie
	case EventTicket:
		return BackstagePasses
	case Legendary:
		return Sulfuras
	default:
		return ""
	}
}

// CategoryOf maps an item name to its category. Unrecognised names,
// ConjuredManaCake included, fall back to Generic.
func CategoryOf(name string) Category {
	switch name {
	case AgedBrie:
		return Ripening
	case BackstagePasses:
		return EventTicket
	case Sulfuras:
		return Legendary
	default:
		return Generic
	}
}
