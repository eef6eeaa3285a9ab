package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Đã chuẩn bị", DeliveryPrepared.Label())
	assert.Equal(t, "Đã hủy", DeliveryCancelled.Label())
	assert.Equal(t, "Không xác định", DeliveryStatus(5).Label())
	assert.Equal(t, "Không xác định", DeliveryStatus(-1).Label())

	assert.Equal(t, "Đã thanh toán", PaymentPaid.Label())
	assert.Equal(t, "Không xác định", PaymentStatus(3).Label())

	assert.Len(t, DeliveryStatuses(), 5)
	assert.Len(t, PaymentStatuses(), 3)
}

func TestOrderDecode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		delivery DeliveryStatus
		payment  PaymentStatus
		wantErr  bool
	}{
		{name: "numbers", body: `{"id":1,"deliveryStatus":2,"paymentStatus":1}`, delivery: DeliveryDelivered, payment: PaymentPaid},
		{name: "missing fields default to zero", body: `{"id":1}`, delivery: DeliveryPrepared, payment: PaymentUnpaid},
		{name: "null", body: `{"id":1,"deliveryStatus":null,"paymentStatus":null}`},
		{name: "numeric strings", body: `{"id":1,"deliveryStatus":"3","paymentStatus":"2"}`, delivery: DeliveryFailed, payment: PaymentFailed},
		{name: "fractions truncate", body: `{"id":1,"deliveryStatus":1.9}`, delivery: DeliveryInTransit},
		{name: "unknown values are kept", body: `{"id":1,"deliveryStatus":9}`, delivery: DeliveryStatus(9)},
		{name: "garbage", body: `{"id":1,"deliveryStatus":"soon"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Order
			err := json.Unmarshal([]byte(tt.body), &o)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.delivery, o.DeliveryStatus)
			assert.Equal(t, tt.payment, o.PaymentStatus)
		})
	}
}

func TestOrderDecodeFull(t *testing.T) {
	body := `{
		"id": 42,
		"userName": "lan",
		"address": "12 Lê Lợi",
		"phoneNumber": "0901234567",
		"totalAmount": 1250000,
		"paymentMethod": "COD",
		"cartItemRequests": [{"productId": 3, "quantity": 2, "productType": 1}],
		"deliveryStatus": 1,
		"paymentStatus": 0,
		"shipperId": 2,
		"orderDate": "2024-05-01T10:30:00",
		"amountDiscount": 50000.5,
		"note": "gọi trước"
	}`
	var o Order
	require.NoError(t, json.Unmarshal([]byte(body), &o))

	assert.Equal(t, int64(42), o.ID)
	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(1250000)))
	assert.True(t, o.AmountDiscount.Equal(decimal.RequireFromString("50000.5")))
	require.NotNil(t, o.ShipperID)
	assert.Equal(t, int64(2), *o.ShipperID)
	require.Len(t, o.CartItemRequests, 1)
	assert.Equal(t, "Charm", o.CartItemRequests[0].ProductType.Label())
	assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), o.OrderDate.Time)
}

func TestNeedsAttention(t *testing.T) {
	assert.True(t, Order{DeliveryStatus: DeliveryDelivered}.NeedsAttention())
	assert.True(t, Order{PaymentStatus: PaymentPaid}.NeedsAttention())
	assert.False(t, Order{DeliveryStatus: DeliveryInTransit, PaymentStatus: PaymentFailed}.NeedsAttention())
}

func TestOrderClone(t *testing.T) {
	shipper := int64(1)
	o := Order{ID: 1, ShipperID: &shipper, CartItemRequests: []CartItemRequest{{ProductID: 1, Quantity: 1}}}

	c := o.Clone()
	*c.ShipperID = 9
	c.CartItemRequests[0].Quantity = 5

	assert.Equal(t, int64(1), *o.ShipperID)
	assert.Equal(t, 1, o.CartItemRequests[0].Quantity)
}

func TestStatusUpdateEncoding(t *testing.T) {
	b, err := json.Marshal(StatusUpdate{DeliveryStatus: DeliveryInTransit, PaymentStatus: PaymentUnpaid})
	require.NoError(t, err)
	assert.JSONEq(t, `{"deliveryStatus":1,"paymentStatus":0}`, string(b))
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: `"2024-05-01T10:30:00Z"`, want: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{raw: `"2024-05-01T10:30:00.1234567"`, want: time.Date(2024, 5, 1, 10, 30, 0, 123456700, time.UTC)},
		{raw: `"2024-05-01"`, want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{raw: `null`, want: time.Time{}},
	}
	for _, tt := range tests {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts), tt.raw)
		assert.True(t, tt.want.Equal(ts.Time), tt.raw)
	}

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))

	b, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
