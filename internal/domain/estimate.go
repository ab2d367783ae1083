package domain

// Mode is one of the three fixed travel categories, each with its own
// fare/time linear model.
type Mode string

const (
	ModeSpeed   Mode = "speed_priority"
	ModeCost    Mode = "cost_priority"
	ModeComfort Mode = "comfort_priority"
)

// EstimateRow is one per-mode fare and duration estimate. Prices are in
// yen (no minor unit), durations in whole minutes.
type EstimateRow struct {
	Mode            Mode   `json:"mode"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
	Descriptor      string `json:"descriptor"`
}

// fareModel holds the linear model parameters for one travel mode:
// price = km*ratePerKm + baseFee, duration = km/avgSpeedKmh*60 + overheadMin.
type fareModel struct {
	mode        Mode
	descriptor  string
	ratePerKm   float64
	baseFee     float64
	avgSpeedKmh float64
	overheadMin float64
}

// The per-mode parameter table. Output order is fixed: speed, cost, comfort.
var fareModels = [3]fareModel{
	{mode: ModeSpeed, descriptor: "新幹線/特急", ratePerKm: 40, baseFee: 1000, avgSpeedKmh: 200, overheadMin: 20},
	{mode: ModeCost, descriptor: "電車/バス", ratePerKm: 12, baseFee: 500, avgSpeedKmh: 50, overheadMin: 40},
	{mode: ModeComfort, descriptor: "タクシー", ratePerKm: 350, baseFee: 700, avgSpeedKmh: 40, overheadMin: 0},
}

// EstimateFares computes the three per-mode estimates for a trip of the
// given great-circle distance. Pure and deterministic; distance is assumed
// non-negative. Prices and durations are truncated to integers.
func EstimateFares(distanceKm float64) []EstimateRow {
	rows := make([]EstimateRow, 0, len(fareModels))
	for _, m := range fareModels {
		rows = append(rows, EstimateRow{
			Mode:            m.mode,
			Price:           int(distanceKm*m.ratePerKm + m.baseFee),
			DurationMinutes: int(distanceKm*60/m.avgSpeedKmh + m.overheadMin),
			Descriptor:      m.descriptor,
		})
	}
	return rows
}
