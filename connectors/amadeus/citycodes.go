package amadeus

import "strings"

var cityCodes = map[string]string{
	"new york":      "NYC",
	"nyc":           "NYC",
	"london":        "LON",
	"paris":         "PAR",
	"tokyo":         "TYO",
	"dubai":         "DXB",
	"singapore":     "SIN",
	"hong kong":     "HKG",
	"los angeles":   "LAX",
	"miami":         "MIA",
	"san francisco": "SFO",
	"chicago":       "CHI",
	"rome":          "ROM",
	"barcelona":     "BCN",
	"sydney":        "SYD",
	"maldives":      "MLE",
	"bali":          "DPS",
	"amsterdam":     "AMS",
	"vancouver":     "YVR",
}

// CityCode converts a city name to its IATA city code. Inputs that
// already look like a code pass through; otherwise the first three
// letters are used as a last resort.
func CityCode(location string) string {
	lower := strings.ToLower(strings.TrimSpace(location))
	if code, ok := cityCodes[lower]; ok {
		return code
	}
	if len(location) == 3 && location == strings.ToUpper(location) {
		return location
	}
	trimmed := strings.TrimSpace(location)
	if len(trimmed) >= 3 {
		return strings.ToUpper(trimmed[:3])
	}
	return strings.ToUpper(trimmed)
}
