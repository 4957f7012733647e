package services

import (
	"backoffice_server/structs"
	"backoffice_server/structs/tables"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildItemsSnapshotsCurrentPrice(t *testing.T) {
	os := &OrderService{}
	orderID := uuid.New()
	productID := uuid.New()

	products := map[uuid.UUID]tables.Product{
		productID: {ID: productID, Price: structs.Money(500)},
	}

	payloads := []structs.OrderItemPayload{
		{Product: productID, Quantity: 5},
	}

	items := os.buildItems(orderID, payloads, nil, products)

	require.Len(t, items, 1)
	assert.Equal(t, orderID, items[0].OrderID)
	assert.Equal(t, productID, items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)

	// Payload carried no price, so the current product price is
	// snapshotted onto the item
	assert.Equal(t, structs.Money(500), items[0].Price)
	assert.Equal(t, structs.Money(2500), items[0].LineTotal())
}

func TestBuildItemsKeepsSnapshotOnUpdate(t *testing.T) {
	os := &OrderService{}
	orderID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()
	created := time.Now().Add(-time.Hour)

	existing := []tables.OrderItem{
		{ID: itemID, OrderID: orderID, ProductID: productID, Quantity: 1, Price: structs.Money(500), CreatedAt: created},
	}
	// The product price has gone up since the order was placed
	products := map[uuid.UUID]tables.Product{
		productID: {ID: productID, Price: structs.Money(900)},
	}

	payloads := []structs.OrderItemPayload{
		{ID: &itemID, Product: productID, Quantity: 3},
	}

	items := os.buildItems(orderID, payloads, existing, products)

	require.Len(t, items, 1)
	assert.Equal(t, itemID, items[0].ID)
	assert.Equal(t, created, items[0].CreatedAt)
	assert.Equal(t, 3, items[0].Quantity)

	// The historical snapshot survives the quantity change
	assert.Equal(t, structs.Money(500), items[0].Price)
}

func TestBuildItemsExplicitPriceWins(t *testing.T) {
	os := &OrderService{}
	productID := uuid.New()

	products := map[uuid.UUID]tables.Product{
		productID: {ID: productID, Price: structs.Money(900)},
	}

	payloads := []structs.OrderItemPayload{
		{Product: productID, Quantity: 1, Price: structs.Money(750)},
	}

	items := os.buildItems(uuid.New(), payloads, nil, products)

	require.Len(t, items, 1)
	assert.Equal(t, structs.Money(750), items[0].Price)
}

func TestBuildItemsUnknownIDBecomesNewItem(t *testing.T) {
	os := &OrderService{}
	productID := uuid.New()
	strayID := uuid.New()

	payloads := []structs.OrderItemPayload{
		{ID: &strayID, Product: productID, Quantity: 2, Price: structs.Money(100)},
	}

	items := os.buildItems(uuid.New(), payloads, nil, nil)

	require.Len(t, items, 1)
	assert.NotEqual(t, strayID, items[0].ID)
	assert.NotEqual(t, uuid.Nil, items[0].ID)
}
