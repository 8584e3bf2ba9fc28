package model

// WeatherSnapshot is a single reading returned by the weather provider
type WeatherSnapshot struct {
	TemperatureC float64 `json:"temperatureC"`
	Description  string  `json:"description"`
	WindSpeedMps float64 `json:"windSpeedMps"`
	HumidityPct  float64 `json:"humidityPct"`
}

// WeatherPayload is the body of a weather lookup. Field order is fixed, the ETag is computed on it.
type WeatherPayload struct {
	City        string `json:"ville" example:"Paris"`
	Temperature string `json:"température" example:"15°C"`
	Description string `json:"description" example:"Nuageux"`
	Wind        string `json:"vent" example:"5 m/s"`
	Humidity    string `json:"humidité" example:"80%"`
}

// WeatherResponse bundles the payload with its HTTP caching metadata
type WeatherResponse struct {
	Payload      WeatherPayload
	ETag         string
	CacheControl string
}
