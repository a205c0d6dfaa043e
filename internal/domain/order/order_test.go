package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "rannaghore/internal/domain/order/valueobjects"
)

func validShipping() ShippingDetails {
	return ShippingDetails{
		FirstName: "Rahim",
		LastName:  "Uddin",
		Email:     "rahim@example.com",
		Phone:     "01711111111",
		Address:   "12 Green Road",
		City:      "Dhaka",
		Area:      "Dhanmondi",
		Country:   "Bangladesh",
	}
}

func TestNewOrder_ComputesTotal(t *testing.T) {
	o, err := NewOrder("RP-0001", 1, 7, 1, 500, 60, validShipping(), vo.PaymentCashOnDelivery)
	require.NoError(t, err)

	assert.Equal(t, int64(560), o.Total())
	assert.Equal(t, "RP-0001", o.Number())
	assert.Equal(t, int64(60), o.ShippingFee())
}

func TestNewOrder_Validation(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (*Order, error)
	}{
		{"missing number", func() (*Order, error) {
			return NewOrder("", 1, 7, 1, 500, 60, validShipping(), vo.PaymentCashOnDelivery)
		}},
		{"missing user", func() (*Order, error) {
			return NewOrder("RP-0001", 0, 7, 1, 500, 60, validShipping(), vo.PaymentCashOnDelivery)
		}},
		{"missing product", func() (*Order, error) {
			return NewOrder("RP-0001", 1, 0, 1, 500, 60, validShipping(), vo.PaymentCashOnDelivery)
		}},
		{"zero quantity", func() (*Order, error) {
			return NewOrder("RP-0001", 1, 7, 0, 500, 60, validShipping(), vo.PaymentCashOnDelivery)
		}},
		{"invalid payment method", func() (*Order, error) {
			return NewOrder("RP-0001", 1, 7, 1, 500, 60, validShipping(), vo.PaymentMethod("barter"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			assert.Error(t, err)
		})
	}
}

func TestShippingDetails_CustomerName(t *testing.T) {
	assert.Equal(t, "Rahim Uddin", validShipping().CustomerName())
}

func TestNewPaymentMethod(t *testing.T) {
	m, err := vo.NewPaymentMethod("cash_on_delivery")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentCashOnDelivery, m)

	_, err = vo.NewPaymentMethod("cheque")
	assert.Error(t, err)
}
