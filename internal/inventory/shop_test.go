package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemPerformsNoValidation(t *testing.T) {
	t.Parallel()

	item := NewItem("odd", -7, 120)

	assert.Equal(t, "odd", item.Name)
	assert.Equal(t, -7, item.SellIn)
	assert.Equal(t, 120, item.Quality)
}

func TestItemString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "foo, 0, 0", NewItem("foo", 0, 0).String())
	assert.Equal(t, "Sulfuras, Hand of Ragnaros, -1, 80", NewItem(Sulfuras, -1, 80).String())
}

func TestShopPreservesOrder(t *testing.T) {
	t.Parallel()

	shop := NewShop(
		NewItem("foo", 1, 1),
		NewItem(AgedBrie, 2, 0),
		NewItem(Sulfuras, 0, 80),
	)
	shop.AdvanceOneDay()

	require.Len(t, shop.Items, 3)
	assert.Equal(t, "foo", shop.Items[0].Name)
	assert.Equal(t, AgedBrie, shop.Items[1].Name)
	assert.Equal(t, Sulfuras, shop.Items[2].Name)
}

func TestAdvanceDays(t *testing.T) {
	t.Parallel()

	repeated := NewShop(NewItem(BackstagePasses, 15, 20), NewItem("foo", 3, 6))
	stepped := NewShop(NewItem(BackstagePasses, 15, 20), NewItem("foo", 3, 6))

	repeated.AdvanceDays(12)
	for range 12 {
		stepped.AdvanceOneDay()
	}

	assert.Equal(t, stepped.Snapshot(), repeated.Snapshot())
}

func TestAdvanceDays_NonPositiveIsNoop(t *testing.T) {
	t.Parallel()

	shop := NewShop(NewItem("foo", 3, 6))
	shop.AdvanceDays(0)
	shop.AdvanceDays(-4)

	assert.Equal(t, 3, shop.Items[0].SellIn)
	assert.Equal(t, 6, shop.Items[0].Quality)
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	t.Parallel()

	shop := NewShop(NewItem("foo", 3, 6))
	snapshot := shop.Snapshot()

	shop.AdvanceOneDay()
	snapshot[0].Quality = 99

	assert.Equal(t, 3, snapshot[0].SellIn)
	assert.Equal(t, 5, shop.Items[0].Quality)
}

func TestEmptyShop(t *testing.T) {
	t.Parallel()

	shop := NewShop()
	shop.AdvanceOneDay()

	assert.Empty(t, shop.Snapshot())
}
