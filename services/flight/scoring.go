package flight

import "voyager/models"

// priceThresholds are per-cabin price bands for long-haul fares, used
// to grade how good a deal is.
var priceThresholds = map[models.CabinClass]struct {
	Excellent float64
	Good      float64
	Average   float64
}{
	models.CabinBusiness:       {2000, 3000, 4500},
	models.CabinFirst:          {4000, 6000, 9000},
	models.CabinEconomy:        {400, 600, 900},
	models.CabinPremiumEconomy: {800, 1200, 1800},
}

// DealScore grades a fare 1-10 from its price band and stop count.
func DealScore(price float64, cabin models.CabinClass, stops int) int {
	t, ok := priceThresholds[cabin]
	if !ok {
		t = priceThresholds[models.CabinBusiness]
	}

	var base float64
	switch {
	case price <= t.Excellent:
		base = 9
	case price <= t.Good:
		base = 7
	case price <= t.Average:
		base = 5
	default:
		base = 3
	}

	base -= float64(stops) * 0.5

	score := int(base)
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}

// Urgency maps a deal score to an urgency grade.
func Urgency(score int) models.DealUrgency {
	switch {
	case score >= 9:
		return models.UrgencyCritical
	case score >= 7:
		return models.UrgencyHigh
	case score >= 5:
		return models.UrgencyMedium
	default:
		return models.UrgencyLow
	}
}

var airlines = map[string]string{
	"AA": "American Airlines",
	"UA": "United Airlines",
	"DL": "Delta Air Lines",
	"AF": "Air France",
	"BA": "British Airways",
	"LH": "Lufthansa",
	"EK": "Emirates",
	"SQ": "Singapore Airlines",
	"QF": "Qantas",
	"NH": "ANA",
	"JL": "Japan Airlines",
	"CX": "Cathay Pacific",
	"QR": "Qatar Airways",
	"TK": "Turkish Airlines",
	"EY": "Etihad Airways",
	"VS": "Virgin Atlantic",
	"AC": "Air Canada",
	"KL": "KLM",
	"IB": "Iberia",
	"AZ": "ITA Airways",
	"LX": "SWISS",
	"OS": "Austrian",
	"SK": "SAS",
	"AY": "Finnair",
	"KE": "Korean Air",
	"OZ": "Asiana Airlines",
	"CI": "China Airlines",
	"BR": "EVA Air",
	"MH": "Malaysia Airlines",
	"TG": "Thai Airways",
	"GA": "Garuda Indonesia",
	"NZ": "Air New Zealand",
	"LA": "LATAM",
	"AM": "Aeromexico",
	"AS": "Alaska Airlines",
	"WN": "Southwest Airlines",
	"B6": "JetBlue",
	"F9": "Frontier Airlines",
	"NK": "Spirit Airlines",
}

// AirlineName resolves an IATA carrier code to a display name.
func AirlineName(code string) string {
	if name, ok := airlines[code]; ok {
		return name
	}
	return code
}

var destinationImages = map[string]string{
	"CDG": "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800",
	"PAR": "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800",
	"LHR": "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800",
	"LON": "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800",
	"NRT": "https://images.unsplash.com/photo-1536098561742-ca998e48cbcc?w=800",
	"HND": "https://images.unsplash.com/photo-1536098561742-ca998e48cbcc?w=800",
	"TYO": "https://images.unsplash.com/photo-1536098561742-ca998e48cbcc?w=800",
	"DXB": "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800",
	"MIA": "https://images.unsplash.com/photo-1533106497176-45ae19e68ba2?w=800",
	"LAX": "https://images.unsplash.com/photo-1534190760961-74e8c1c5c3da?w=800",
	"SFO": "https://images.unsplash.com/photo-1501594907352-04cda38ebc29?w=800",
	"JFK": "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800",
	"NYC": "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800",
	"SIN": "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?w=800",
	"HKG": "https://images.unsplash.com/photo-1536599018102-9f803c140fc1?w=800",
	"SYD": "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?w=800",
	"FCO": "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=800",
	"ROM": "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=800",
	"BCN": "https://images.unsplash.com/photo-1583422409516-2895a77efded?w=800",
	"AMS": "https://images.unsplash.com/photo-1534351590666-13e3e96b5017?w=800",
	"YVR": "https://images.unsplash.com/photo-1559511260-66a68e5c81b5?w=800",
	"MLE": "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?w=800",
	"DPS": "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800",
}

const defaultDestinationImage = "https://images.unsplash.com/photo-1436491865332-7a61a109cc05?w=800"

// DestinationImage returns a hero image URL for an airport/city code.
func DestinationImage(code string) string {
	if img, ok := destinationImages[code]; ok {
		return img
	}
	return defaultDestinationImage
}
