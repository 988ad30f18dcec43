package helper

import (
	"fmt"

	"movie_booking/model"
)

// Flat add-on rates. Parking is charged once per booking, the VIP experience
// per seat.
const (
	VipExperienceFeePerSeat = 5.0
	ParkingPassFee          = 8.0
)

// PriceLayer is one independent, additive contribution on top of the base
// ticket price. Layers may be applied in any order; the total never depends
// on it.
type PriceLayer struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Quote is the result of composing the base price with zero or more layers.
type Quote struct {
	Base        float64      `json:"base"`
	Layers      []PriceLayer `json:"layers"`
	Total       float64      `json:"total"`
	Description string       `json:"description"`
}

// BaseQuote prices the seat selection alone. Seats in VIP rows use the
// showtime's distinct VIP rate; all others the regular rate.
func BaseQuote(showtime model.Showtime, seats []model.ShowtimeSeat) Quote {
	var base float64
	for _, seat := range seats {
		if seat.IsVip {
			base += showtime.VipPrice
		} else {
			base += showtime.Price
		}
	}
	return Quote{
		Base:        base,
		Total:       base,
		Description: fmt.Sprintf("Standard booking for %d seat(s)", len(seats)),
	}
}

// Apply adds one layer to the quote. Returns a new quote; the input is not
// mutated.
func (q Quote) Apply(layer PriceLayer) Quote {
	layers := make([]PriceLayer, len(q.Layers), len(q.Layers)+1)
	copy(layers, q.Layers)
	layers = append(layers, layer)

	return Quote{
		Base:        q.Base,
		Layers:      layers,
		Total:       q.Total + layer.Amount,
		Description: q.Description + " with " + layer.Name,
	}
}

func VipExperienceLayer(seatCount int) PriceLayer {
	return PriceLayer{
		Name:   "VIP experience",
		Amount: VipExperienceFeePerSeat * float64(seatCount),
	}
}

func ParkingPassLayer() PriceLayer {
	return PriceLayer{
		Name:   "parking pass",
		Amount: ParkingPassFee,
	}
}

func FoodLayer(items []model.FoodItem) PriceLayer {
	var sum float64
	for _, item := range items {
		sum += item.Price
	}
	return PriceLayer{
		Name:   "food and beverages",
		Amount: sum,
	}
}

// BuildQuote composes the full booking price from the seat selection and the
// requested add-ons.
func BuildQuote(showtime model.Showtime, seats []model.ShowtimeSeat, vipExperience bool, parkingPass bool, food []model.FoodItem) Quote {
	quote := BaseQuote(showtime, seats)
	if vipExperience {
		quote = quote.Apply(VipExperienceLayer(len(seats)))
	}
	if len(food) > 0 {
		quote = quote.Apply(FoodLayer(food))
	}
	if parkingPass {
		quote = quote.Apply(ParkingPassLayer())
	}
	return quote
}
