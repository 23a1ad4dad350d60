package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeatherLiteral(t *testing.T) {
	w := ParseWeather("72°F, Wind NW 10 mph, Clear")

	require.True(t, w.Temperature.Valid)
	assert.Equal(t, 72.0, w.Temperature.Float64)

	require.True(t, w.WindSpeed.Valid)
	assert.Equal(t, 10.0, w.WindSpeed.Float64)

	require.True(t, w.WindDirection.Valid)
	assert.Equal(t, "NW", w.WindDirection.String)

	require.True(t, w.Conditions.Valid)
	assert.Equal(t, "clear", w.Conditions.String)

	require.True(t, w.Precipitation.Valid)
	assert.Equal(t, "clear", w.Precipitation.String)

	assert.False(t, w.Humidity.Valid)
}

func TestParseWeatherEmpty(t *testing.T) {
	assert.Equal(t, Weather{}, ParseWeather(""))
}

func TestParseWeatherHumidityAndPrecipitation(t *testing.T) {
	w := ParseWeather("Cloudy, light rain, humidity: 85%")

	require.True(t, w.Humidity.Valid)
	assert.Equal(t, 85.0, w.Humidity.Float64)

	assert.Equal(t, "rain", w.Precipitation.String)
	assert.Equal(t, "cloudy", w.Conditions.String)
}

func TestParseWeatherIndoor(t *testing.T) {
	w := ParseWeather("Controlled climate, indoor")
	require.True(t, w.Conditions.Valid)
	assert.Equal(t, "indoor", w.Conditions.String)
	assert.False(t, w.Temperature.Valid)
	assert.False(t, w.WindSpeed.Valid)
}

func TestParseWeatherSnow(t *testing.T) {
	w := ParseWeather("28°F, Wind @ 22 mph, Snow")

	assert.Equal(t, 28.0, w.Temperature.Float64)
	assert.Equal(t, 22.0, w.WindSpeed.Float64)
	assert.False(t, w.WindDirection.Valid)
	assert.Equal(t, "snow", w.Precipitation.String)
}

func TestParseWeatherUnparseable(t *testing.T) {
	w := ParseWeather("N/A")
	assert.False(t, w.Temperature.Valid)
	assert.False(t, w.WindSpeed.Valid)
	assert.False(t, w.Precipitation.Valid)
	assert.False(t, w.Conditions.Valid)
}
