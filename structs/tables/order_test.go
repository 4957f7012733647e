package tables

import (
	"backoffice_server/structs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		assert.True(t, status.IsValid(), "status %q", status)
	}

	assert.False(t, OrderStatus("paid").IsValid())
	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("PENDING").IsValid())
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{Quantity: 5, Price: structs.Money(500)}
	assert.Equal(t, structs.Money(2500), item.LineTotal())
}
