package external

// OpenWeatherResponse is the subset of the current weather answer that is consumed.
// Pointers distinguish missing fields from zero values.
type OpenWeatherResponse struct {
	Name    string                 `json:"name"`
	Main    *OpenWeatherMain       `json:"main"`
	Weather []OpenWeatherCondition `json:"weather"`
	Wind    *OpenWeatherWind       `json:"wind"`
}

type OpenWeatherMain struct {
	Temp     *float64 `json:"temp"`
	Humidity *float64 `json:"humidity"`
}

type OpenWeatherCondition struct {
	Description *string `json:"description"`
}

type OpenWeatherWind struct {
	Speed *float64 `json:"speed"`
}

// OpenWeatherError is the body returned with non 200 answers
type OpenWeatherError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
