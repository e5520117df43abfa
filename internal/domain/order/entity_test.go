package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/order-desk/internal/models"
)

func TestTotal(t *testing.T) {
	cases := []struct {
		qty   int
		price string
		want  string
	}{
		{1, "100", "100.00"},
		{3, "19.99", "59.97"},
		{2, "0.005", "0.01"},
		{7, "0", "0.00"},
	}
	for _, tc := range cases {
		o := &models.Order{Quantity: tc.qty, UnitPrice: decimal.RequireFromString(tc.price)}
		assert.Equal(t, tc.want, Total(o).StringFixed(2))
	}
}

func TestApplyStatusStampsDeliveryOnce(t *testing.T) {
	day1 := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 3)

	o := &models.Order{Status: string(StatusDone)}

	assert.True(t, ApplyStatus(o, StatusDelivered, day1))
	assert.Equal(t, string(StatusDelivered), o.Status)
	assert.Equal(t, day1, *o.DeliveredDate)

	assert.False(t, ApplyStatus(o, StatusDelivered, day2))
	assert.Equal(t, day1, *o.DeliveredDate)
}

func TestApplyStatusKeepsManualDate(t *testing.T) {
	manual := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	o := &models.Order{Status: string(StatusDone), DeliveredDate: &manual}

	assert.False(t, ApplyStatus(o, StatusDelivered, manual.AddDate(0, 0, 5)))
	assert.Equal(t, manual, *o.DeliveredDate)
}

func TestApplyStatusOtherStatusesDoNotStamp(t *testing.T) {
	o := &models.Order{}
	for _, st := range []Status{StatusPending, StatusInProgress, StatusDone, StatusCanceled} {
		assert.False(t, ApplyStatus(o, st, time.Now()))
		assert.Nil(t, o.DeliveredDate)
	}
}

func TestFieldRules(t *testing.T) {
	assert.Error(t, ValidateDescription("abcd"))
	assert.NoError(t, ValidateDescription("Bainha"))
	assert.NoError(t, ValidateDescription("Ajuste é"))

	assert.Error(t, ValidateQuantity(0))
	assert.NoError(t, ValidateQuantity(1))

	assert.Error(t, ValidateUnitPrice(decimal.NewFromInt(-1)))
	assert.NoError(t, ValidateUnitPrice(decimal.Zero))
	assert.NoError(t, ValidateUnitPrice(decimal.RequireFromString("99999999.99")))
	assert.NoError(t, ValidateUnitPrice(decimal.RequireFromString("12.50")))
	assert.NoError(t, ValidateUnitPrice(decimal.RequireFromString("12.500")))
	assert.Error(t, ValidateUnitPrice(decimal.RequireFromString("100000000")))
	assert.Error(t, ValidateUnitPrice(decimal.RequireFromString("0.005")))
}
