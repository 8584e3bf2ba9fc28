package weather

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"

	"ecogarden-api/internal/domain/model"
)

// Format renders the payload of a lookup along with its ETag and Cache-Control header
func Format(city string, snapshot model.WeatherSnapshot, ttl time.Duration) model.WeatherResponse {
	payload := model.WeatherPayload{
		City:        city,
		Temperature: formatNumber(snapshot.TemperatureC) + "°C",
		Description: upperFirst(snapshot.Description),
		Wind:        formatNumber(snapshot.WindSpeedMps) + " m/s",
		Humidity:    formatNumber(snapshot.HumidityPct) + "%",
	}

	seconds := int64(ttl / time.Second)
	return model.WeatherResponse{
		Payload:      payload,
		ETag:         etag(payload),
		CacheControl: fmt.Sprintf("public, max-age=%d, s-maxage=%d", seconds, seconds),
	}
}

// etag is the quoted md5 of the JSON payload
func etag(payload model.WeatherPayload) string {
	body, err := json.Marshal(payload)
	if err != nil {
		// a struct of strings always marshals
		panic(err)
	}
	sum := md5.Sum(body)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// formatNumber prints the shortest representation, 15 rather than 15.00
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func upperFirst(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return value
	}
	return string(unicode.ToUpper(r)) + value[size:]
}
