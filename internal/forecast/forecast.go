// Package forecast generates the synthetic daily weather forecasts served by
// the /weatherforecast endpoint.
package forecast

import "math"

const (
	Days            = 5
	MinTemperatureC = -20
	MaxTemperatureC = 55
)

// Summaries is the vocabulary the generator draws from.
var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// Forecast is one simulated day. It is immutable once built.
type Forecast struct {
	date         Date
	temperatureC int
	summary      *string
}

// New does not check summary against Summaries; any text or nil is accepted.
func New(date Date, temperatureC int, summary *string) Forecast {
	return Forecast{
		date:         date,
		temperatureC: temperatureC,
		summary:      summary,
	}
}

func (f Forecast) Date() Date {
	return f.date
}

func (f Forecast) TemperatureC() int {
	return f.temperatureC
}

func (f Forecast) Summary() *string {
	return f.summary
}

func (f Forecast) TemperatureF() int {
	return ToFahrenheit(f.temperatureC)
}

// ToFahrenheit returns round(32 + c*9/5).
func ToFahrenheit(c int) int {
	return 32 + int(math.Round(float64(c)*9/5))
}
