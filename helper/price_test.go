package helper

import (
	"testing"

	"movie_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShowtime() model.Showtime {
	return model.Showtime{Price: 100, VipPrice: 150}
}

func TestBaseQuoteRegularSeats(t *testing.T) {
	seats := []model.ShowtimeSeat{
		{Label: "C1"},
		{Label: "C2"},
	}

	quote := BaseQuote(testShowtime(), seats)

	assert.Equal(t, 200.0, quote.Total)
	assert.Equal(t, "Standard booking for 2 seat(s)", quote.Description)
	assert.Empty(t, quote.Layers)
}

func TestBaseQuoteVipSeatsUseVipRate(t *testing.T) {
	seats := []model.ShowtimeSeat{
		{Label: "A1", IsVip: true},
		{Label: "A2", IsVip: true},
	}

	quote := BaseQuote(testShowtime(), seats)

	assert.Equal(t, 300.0, quote.Total)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	base := BaseQuote(testShowtime(), []model.ShowtimeSeat{{Label: "C1"}})

	withParking := base.Apply(ParkingPassLayer())

	assert.Equal(t, 100.0, base.Total)
	assert.Empty(t, base.Layers)
	assert.Equal(t, 108.0, withParking.Total)
	require.Len(t, withParking.Layers, 1)
	assert.Equal(t, "parking pass", withParking.Layers[0].Name)
}

func TestQuoteTotalIsOrderIndependent(t *testing.T) {
	seats := []model.ShowtimeSeat{{Label: "A1", IsVip: true}, {Label: "A2", IsVip: true}}
	food := []model.FoodItem{{Name: "Popcorn", Price: 5}, {Name: "Soft Drink", Price: 3}}

	base := BaseQuote(testShowtime(), seats)

	oneWay := base.Apply(VipExperienceLayer(2)).Apply(FoodLayer(food)).Apply(ParkingPassLayer())
	otherWay := base.Apply(ParkingPassLayer()).Apply(FoodLayer(food)).Apply(VipExperienceLayer(2))

	assert.Equal(t, oneWay.Total, otherWay.Total)
	assert.Equal(t, 300.0+10.0+8.0+8.0, oneWay.Total)
}

func TestDescriptionConcatenatesLayers(t *testing.T) {
	seats := []model.ShowtimeSeat{{Label: "A1", IsVip: true}, {Label: "A2", IsVip: true}}

	quote := BuildQuote(testShowtime(), seats, true, true, nil)

	assert.Equal(t, "Standard booking for 2 seat(s) with VIP experience with parking pass", quote.Description)
	assert.Equal(t, 300.0+10.0+8.0, quote.Total)
}

func TestBuildQuoteSkipsEmptyAddOns(t *testing.T) {
	quote := BuildQuote(testShowtime(), []model.ShowtimeSeat{{Label: "C1"}}, false, false, nil)

	assert.Empty(t, quote.Layers)
	assert.Equal(t, 100.0, quote.Total)
	assert.Equal(t, "Standard booking for 1 seat(s)", quote.Description)
}

func TestFoodLayerSumsItemPrices(t *testing.T) {
	layer := FoodLayer([]model.FoodItem{
		{Name: "Popcorn", Price: 5},
		{Name: "Movie Combo", Price: 9},
	})

	assert.Equal(t, 14.0, layer.Amount)
}
