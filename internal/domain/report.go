package domain

// Report is the aggregate over a filtered set of trips.
// Profit is always TotalFreight - (TotalFuel + TotalToll); an empty trip
// set yields the zero Report, which is a valid result, not an error.
type Report struct {
	TripCount    int     `json:"totalViagens"`
	TotalFuel    float64 `json:"totalCombustivel"`
	TotalToll    float64 `json:"totalPedagio"`
	TotalFreight float64 `json:"totalFrete"`
	Profit       float64 `json:"lucro"`
}
