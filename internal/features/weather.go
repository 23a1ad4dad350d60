package features

import (
	"database/sql"
	"regexp"
	"strconv"
	"strings"
)

// Weather is the structured form of a game's free-text weather field.
// Fields a pattern never matched stay invalid.
type Weather struct {
	Temperature   sql.NullFloat64
	WindSpeed     sql.NullFloat64
	WindDirection sql.NullString
	Precipitation sql.NullString
	Humidity      sql.NullFloat64
	Conditions    sql.NullString
}

var (
	temperatureRe = regexp.MustCompile(`(\d+)\s*°?f?`)
	windRe        = regexp.MustCompile(`wind[:\s]+([nesw]+)?\s*@?\s*(\d+)\s*mph`)
	humidityRe    = regexp.MustCompile(`humidity[:\s]+(\d+)%?`)
)

// ParseWeather extracts structured attributes from a vendor weather string
// like "72°F, Wind NW 10 mph, Clear". Unparseable text is not an error;
// whatever fields match are filled and the rest stay null.
func ParseWeather(weather string) Weather {
	var w Weather
	if weather == "" {
		return w
	}

	lower := strings.ToLower(weather)

	if m := temperatureRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			w.Temperature = sql.NullFloat64{Float64: v, Valid: true}
		}
	}

	if m := windRe.FindStringSubmatch(lower); m != nil {
		if m[1] != "" {
			w.WindDirection = sql.NullString{String: strings.ToUpper(m[1]), Valid: true}
		}
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			w.WindSpeed = sql.NullFloat64{Float64: v, Valid: true}
		}
	}

	switch {
	case strings.Contains(lower, "rain"):
		w.Precipitation = sql.NullString{String: "rain", Valid: true}
	case strings.Contains(lower, "snow"):
		w.Precipitation = sql.NullString{String: "snow", Valid: true}
	case strings.Contains(lower, "clear"):
		w.Precipitation = sql.NullString{String: "clear", Valid: true}
	}

	if m := humidityRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			w.Humidity = sql.NullFloat64{Float64: v, Valid: true}
		}
	}

	switch {
	case strings.Contains(lower, "dome") || strings.Contains(lower, "indoor"):
		w.Conditions = sql.NullString{String: "indoor", Valid: true}
	case strings.Contains(lower, "cloudy"):
		w.Conditions = sql.NullString{String: "cloudy", Valid: true}
	case strings.Contains(lower, "clear"):
		w.Conditions = sql.NullString{String: "clear", Valid: true}
	case strings.Contains(lower, "overcast"):
		w.Conditions = sql.NullString{String: "overcast", Valid: true}
	}

	return w
}
