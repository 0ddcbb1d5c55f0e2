package destination

import "voyager/models"

// curatedGuides is the hand-written guide library, keyed by lowercase city.
var curatedGuides = map[string]models.DestinationGuide{
	"paris": {
		Destination: "Paris",
		Country:     "France",
		Summary:     "The capital of refinement. Haute couture on Avenue Montaigne, three-star tables, and museums that reward a lifetime of visits.",
		BestSeason:  "May to June, September to October",
		Highlights: []string{
			"Private after-hours tour of the Louvre",
			"Sunset champagne cruise on the Seine",
			"Vintage shopping in Le Marais",
		},
		Dining: []string{
			"Le Cinq for a three-star tasting menu",
			"Septime for modern French with natural wine",
		},
		InsiderTip: "Book the first seating at top restaurants; Parisians dine late and the early tables are easier to land.",
		ImageURL:   "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800",
		Source:     "curated",
	},
	"tokyo": {
		Destination: "Tokyo",
		Country:     "Japan",
		Summary:     "Precision and poetry in one city. Omakase counters, silent gardens, and neighborhoods that reinvent themselves block by block.",
		BestSeason:  "March to April for sakura, October to November for autumn color",
		Highlights: []string{
			"Dawn visit to the Toyosu fish auction",
			"Tea ceremony in a Meiji-era garden",
			"Golden Gai bar crawl with a local guide",
		},
		Dining: []string{
			"Sukiyabashi Jiro for the definitive omakase",
			"Den for playful kaiseki",
		},
		InsiderTip: "Many of the best counters only take reservations through a hotel concierge, so route requests through yours.",
		ImageURL:   "https://images.unsplash.com/photo-1536098561742-ca998e48cbcc?w=800",
		Source:     "curated",
	},
	"london": {
		Destination: "London",
		Country:     "United Kingdom",
		Summary:     "Old-world polish with a restless creative edge. Mayfair institutions, West End openings, and the world's best Sunday roast debates.",
		BestSeason:  "May to September",
		Highlights: []string{
			"Private viewing at the National Gallery",
			"Afternoon tea at Claridge's",
			"Borough Market food walk",
		},
		Dining: []string{
			"Restaurant Gordon Ramsay for classic French",
			"Dishoom for Bombay comfort food",
		},
		InsiderTip: "Theatre day seats are released at the box office each morning; a concierge can queue by proxy.",
		ImageURL:   "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800",
		Source:     "curated",
	},
	"dubai": {
		Destination: "Dubai",
		Country:     "United Arab Emirates",
		Summary:     "Spectacle engineered to the millimeter. Desert mornings, beach afternoons, and dinner above the clouds in the same day.",
		BestSeason:  "November to March",
		Highlights: []string{
			"Sunrise hot-air balloon over the dunes",
			"Private yacht charter around Palm Jumeirah",
			"At.mosphere cocktails on the 122nd floor",
		},
		Dining: []string{
			"Ossiano for underwater fine dining",
			"Al Fanar for traditional Emirati cooking",
		},
		InsiderTip: "Friday brunch books out weeks ahead in high season; reserve before you fly.",
		ImageURL:   "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800",
		Source:     "curated",
	},
	"maldives": {
		Destination: "Maldives",
		Country:     "Maldives",
		Summary:     "The benchmark for barefoot luxury. Overwater villas, house reefs a fin-kick away, and resorts that each occupy their own island.",
		BestSeason:  "November to April",
		Highlights: []string{
			"Night snorkeling with manta rays",
			"Sandbank picnic for two",
			"Stargazing with a resident astronomer",
		},
		Dining: []string{
			"Ithaa undersea restaurant",
			"Benjarong for royal Thai over the lagoon",
		},
		InsiderTip: "Seaplane transfers stop at dusk; book arrival flights that land before mid-afternoon.",
		ImageURL:   "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?w=800",
		Source:     "curated",
	},
	"new york": {
		Destination: "New York",
		Country:     "United States",
		Summary:     "The city that sets the tempo. Broadway premieres, gallery openings, and a dining scene that absorbs every cuisine on earth.",
		BestSeason:  "April to June, September to November",
		Highlights: []string{
			"Private gallery tour in Chelsea",
			"Helicopter loop over Manhattan at dusk",
			"Jazz at the Village Vanguard",
		},
		Dining: []string{
			"Le Bernardin for seafood at its peak",
			"Carbone for retro Italian-American glamour",
		},
		InsiderTip: "Tables drop on reservation apps at midnight sharp; set an alarm or let your concierge camp the release.",
		ImageURL:   "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800",
		Source:     "curated",
	},
	"miami": {
		Destination: "Miami",
		Country:     "United States",
		Summary:     "Art deco, Latin heat, and an art scene that outgrew the beach. Winter's answer to the Riviera.",
		BestSeason:  "November to April",
		Highlights: []string{
			"Private cabana day at the Faena beach club",
			"Wynwood Walls street-art tour",
			"Sunset sail across Biscayne Bay",
		},
		Dining: []string{
			"Stubborn Seed for a creative tasting menu",
			"Versailles for Cuban classics",
		},
		InsiderTip: "During Art Basel week, hotel rates triple; either book a year out or come the week after.",
		ImageURL:   "https://images.unsplash.com/photo-1533106497176-45ae19e68ba2?w=800",
		Source:     "curated",
	},
	"whistler": {
		Destination: "Whistler",
		Country:     "Canada",
		Summary:     "North America's largest ski resort, with a pedestrian village that does apres as well as the Alps.",
		BestSeason:  "December to March for snow, July to August for alpine hiking",
		Highlights: []string{
			"Heli-skiing on untouched glaciers",
			"Peak 2 Peak gondola crossing",
			"Scandinave spa after a powder day",
		},
		Dining: []string{
			"Araxi for Pacific Northwest fine dining",
			"Bearfoot Bistro with its champagne sabering cellar",
		},
		InsiderTip: "Book ski valet at a slopeside hotel; carrying skis through the village gets old by day two.",
		ImageURL:   "https://images.unsplash.com/photo-1559511260-66a68e5c81b5?w=800",
		Source:     "curated",
	},
}

var guideImages = map[string]string{
	"rome":      "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=800",
	"barcelona": "https://images.unsplash.com/photo-1583422409516-2895a77efded?w=800",
	"amsterdam": "https://images.unsplash.com/photo-1534351590666-13e3e96b5017?w=800",
	"singapore": "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?w=800",
	"sydney":    "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?w=800",
	"bali":      "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800",
}

const defaultGuideImage = "https://images.unsplash.com/photo-1436491865332-7a61a109cc05?w=800"

func guideImage(city string) string {
	if img, ok := guideImages[city]; ok {
		return img
	}
	return defaultGuideImage
}
