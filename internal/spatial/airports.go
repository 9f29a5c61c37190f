package spatial

import "strings"

// Airport is a reference entry for an IATA airport code
type Airport struct {
	Code      string
	Name      string
	City      string
	Country   string // ISO 3166-1 alpha-2
	Latitude  float64
	Longitude float64
}

var airports = map[string]Airport{
	// United States
	"ATL": {"ATL", "Hartsfield-Jackson Atlanta International Airport", "Atlanta", "US", 33.6407, -84.4277},
	"BOS": {"BOS", "Logan International Airport", "Boston", "US", 42.3656, -71.0096},
	"DCA": {"DCA", "Ronald Reagan Washington National Airport", "Washington", "US", 38.8512, -77.0402},
	"IAD": {"IAD", "Washington Dulles International Airport", "Washington", "US", 38.9531, -77.4565},
	"DEN": {"DEN", "Denver International Airport", "Denver", "US", 39.8561, -104.6737},
	"DFW": {"DFW", "Dallas/Fort Worth International Airport", "Dallas", "US", 32.8998, -97.0403},
	"EWR": {"EWR", "Newark Liberty International Airport", "Newark", "US", 40.6895, -74.1745},
	"HNL": {"HNL", "Daniel K. Inouye International Airport", "Honolulu", "US", 21.3187, -157.9225},
	"OGG": {"OGG", "Kahului Airport", "Kahului", "US", 20.8986, -156.4305},
	"KOA": {"KOA", "Ellison Onizuka Kona International Airport", "Kailua-Kona", "US", 19.7388, -156.0456},
	"IAH": {"IAH", "George Bush Intercontinental Airport", "Houston", "US", 29.9902, -95.3368},
	"JFK": {"JFK", "John F. Kennedy International Airport", "New York", "US", 40.6413, -73.7781},
	"LGA": {"LGA", "LaGuardia Airport", "New York", "US", 40.7769, -73.8740},
	"LAS": {"LAS", "Harry Reid International Airport", "Las Vegas", "US", 36.0840, -115.1537},
	"LAX": {"LAX", "Los Angeles International Airport", "Los Angeles", "US", 33.9416, -118.4085},
	"MCO": {"MCO", "Orlando International Airport", "Orlando", "US", 28.4312, -81.3081},
	"MIA": {"MIA", "Miami International Airport", "Miami", "US", 25.7959, -80.2870},
	"MSP": {"MSP", "Minneapolis-Saint Paul International Airport", "Minneapolis", "US", 44.8848, -93.2223},
	"ORD": {"ORD", "O'Hare International Airport", "Chicago", "US", 41.9742, -87.9073},
	"MDW": {"MDW", "Chicago Midway International Airport", "Chicago", "US", 41.7868, -87.7522},
	"PDX": {"PDX", "Portland International Airport", "Portland", "US", 45.5898, -122.5951},
	"PHL": {"PHL", "Philadelphia International Airport", "Philadelphia", "US", 39.8744, -75.2424},
	"PHX": {"PHX", "Phoenix Sky Harbor International Airport", "Phoenix", "US", 33.4352, -112.0101},
	"SAN": {"SAN", "San Diego International Airport", "San Diego", "US", 32.7338, -117.1933},
	"SEA": {"SEA", "Seattle-Tacoma International Airport", "Seattle", "US", 47.4502, -122.3088},
	"SFO": {"SFO", "San Francisco International Airport", "San Francisco", "US", 37.6213, -122.3790},
	"OAK": {"OAK", "Oakland International Airport", "Oakland", "US", 37.7126, -122.2197},
	"SJC": {"SJC", "San Jose Mineta International Airport", "San Jose", "US", 37.3639, -121.9289},
	"SLC": {"SLC", "Salt Lake City International Airport", "Salt Lake City", "US", 40.7899, -111.9791},
	"AUS": {"AUS", "Austin-Bergstrom International Airport", "Austin", "US", 30.1975, -97.6664},
	"MSY": {"MSY", "Louis Armstrong New Orleans International Airport", "New Orleans", "US", 29.9934, -90.2580},
	"ANC": {"ANC", "Ted Stevens Anchorage International Airport", "Anchorage", "US", 61.1743, -149.9963},

	// Canada and Mexico
	"YYZ": {"YYZ", "Toronto Pearson International Airport", "Toronto", "CA", 43.6777, -79.6248},
	"YVR": {"YVR", "Vancouver International Airport", "Vancouver", "CA", 49.1967, -123.1815},
	"YUL": {"YUL", "Montréal-Trudeau International Airport", "Montreal", "CA", 45.4706, -73.7408},
	"YYC": {"YYC", "Calgary International Airport", "Calgary", "CA", 51.1215, -114.0076},
	"MEX": {"MEX", "Mexico City International Airport", "Mexico City", "MX", 19.4361, -99.0719},
	"CUN": {"CUN", "Cancún International Airport", "Cancun", "MX", 21.0365, -86.8771},

	// Europe
	"LHR": {"LHR", "Heathrow Airport", "London", "GB", 51.4700, -0.4543},
	"LGW": {"LGW", "Gatwick Airport", "London", "GB", 51.1537, -0.1821},
	"STN": {"STN", "London Stansted Airport", "London", "GB", 51.8860, 0.2389},
	"EDI": {"EDI", "Edinburgh Airport", "Edinburgh", "GB", 55.9508, -3.3615},
	"MAN": {"MAN", "Manchester Airport", "Manchester", "GB", 53.3588, -2.2727},
	"DUB": {"DUB", "Dublin Airport", "Dublin", "IE", 53.4264, -6.2499},
	"CDG": {"CDG", "Paris Charles de Gaulle Airport", "Paris", "FR", 49.0097, 2.5479},
	"ORY": {"ORY", "Paris Orly Airport", "Paris", "FR", 48.7262, 2.3652},
	"NCE": {"NCE", "Nice Côte d'Azur Airport", "Nice", "FR", 43.6584, 7.2159},
	"FRA": {"FRA", "Frankfurt Airport", "Frankfurt", "DE", 50.0379, 8.5622},
	"MUC": {"MUC", "Munich Airport", "Munich", "DE", 48.3537, 11.7750},
	"BER": {"BER", "Berlin Brandenburg Airport", "Berlin", "DE", 52.3667, 13.5033},
	"AMS": {"AMS", "Amsterdam Airport Schiphol", "Amsterdam", "NL", 52.3105, 4.7683},
	"BRU": {"BRU", "Brussels Airport", "Brussels", "BE", 50.9010, 4.4856},
	"ZRH": {"ZRH", "Zurich Airport", "Zurich", "CH", 47.4582, 8.5555},
	"GVA": {"GVA", "Geneva Airport", "Geneva", "CH", 46.2381, 6.1090},
	"VIE": {"VIE", "Vienna International Airport", "Vienna", "AT", 48.1103, 16.5697},
	"MAD": {"MAD", "Adolfo Suárez Madrid-Barajas Airport", "Madrid", "ES", 40.4983, -3.5676},
	"BCN": {"BCN", "Josep Tarradellas Barcelona-El Prat Airport", "Barcelona", "ES", 41.2974, 2.0833},
	"LIS": {"LIS", "Humberto Delgado Airport", "Lisbon", "PT", 38.7742, -9.1342},
	"FCO": {"FCO", "Leonardo da Vinci-Fiumicino Airport", "Rome", "IT", 41.8003, 12.2389},
	"MXP": {"MXP", "Milan Malpensa Airport", "Milan", "IT", 45.6301, 8.7255},
	"VCE": {"VCE", "Venice Marco Polo Airport", "Venice", "IT", 45.5053, 12.3519},
	"ATH": {"ATH", "Athens International Airport", "Athens", "GR", 37.9364, 23.9445},
	"HER": {"HER", "Heraklion International Airport", "Heraklion", "GR", 35.3397, 25.1803},
	"JTR": {"JTR", "Santorini International Airport", "Santorini", "GR", 36.3992, 25.4793},
	"JMK": {"JMK", "Mykonos International Airport", "Mykonos", "GR", 37.4351, 25.3481},
	"IST": {"IST", "Istanbul Airport", "Istanbul", "TR", 41.2753, 28.7519},
	"CPH": {"CPH", "Copenhagen Airport", "Copenhagen", "DK", 55.6180, 12.6508},
	"ARN": {"ARN", "Stockholm Arlanda Airport", "Stockholm", "SE", 59.6498, 17.9238},
	"OSL": {"OSL", "Oslo Airport", "Oslo", "NO", 60.1976, 11.1004},
	"HEL": {"HEL", "Helsinki Airport", "Helsinki", "FI", 60.3172, 24.9633},
	"KEF": {"KEF", "Keflavík International Airport", "Reykjavik", "IS", 63.9850, -22.6056},
	"PRG": {"PRG", "Václav Havel Airport Prague", "Prague", "CZ", 50.1008, 14.2600},
	"WAW": {"WAW", "Warsaw Chopin Airport", "Warsaw", "PL", 52.1672, 20.9679},
	"BUD": {"BUD", "Budapest Ferenc Liszt International Airport", "Budapest", "HU", 47.4384, 19.2523},

	// Middle East and Africa
	"DXB": {"DXB", "Dubai International Airport", "Dubai", "AE", 25.2532, 55.3657},
	"DOH": {"DOH", "Hamad International Airport", "Doha", "QA", 25.2731, 51.6081},
	"TLV": {"TLV", "Ben Gurion Airport", "Tel Aviv", "IL", 32.0055, 34.8854},
	"CAI": {"CAI", "Cairo International Airport", "Cairo", "EG", 30.1219, 31.4056},
	"RAK": {"RAK", "Marrakesh Menara Airport", "Marrakesh", "MA", 31.6069, -8.0363},
	"JNB": {"JNB", "O. R. Tambo International Airport", "Johannesburg", "ZA", -26.1392, 28.2460},
	"CPT": {"CPT", "Cape Town International Airport", "Cape Town", "ZA", -33.9715, 18.6021},
	"NBO": {"NBO", "Jomo Kenyatta International Airport", "Nairobi", "KE", -1.3192, 36.9278},

	// Asia Pacific
	"NRT": {"NRT", "Narita International Airport", "Tokyo", "JP", 35.7720, 140.3929},
	"HND": {"HND", "Haneda Airport", "Tokyo", "JP", 35.5494, 139.7798},
	"KIX": {"KIX", "Kansai International Airport", "Osaka", "JP", 34.4320, 135.2304},
	"ICN": {"ICN", "Incheon International Airport", "Seoul", "KR", 37.4602, 126.4407},
	"PEK": {"PEK", "Beijing Capital International Airport", "Beijing", "CN", 40.0799, 116.6031},
	"PVG": {"PVG", "Shanghai Pudong International Airport", "Shanghai", "CN", 31.1443, 121.8083},
	"HKG": {"HKG", "Hong Kong International Airport", "Hong Kong", "HK", 22.3080, 113.9185},
	"SIN": {"SIN", "Singapore Changi Airport", "Singapore", "SG", 1.3644, 103.9915},
	"BKK": {"BKK", "Suvarnabhumi Airport", "Bangkok", "TH", 13.6900, 100.7501},
	"HKT": {"HKT", "Phuket International Airport", "Phuket", "TH", 8.1132, 98.3169},
	"SGN": {"SGN", "Tan Son Nhat International Airport", "Ho Chi Minh City", "VN", 10.8188, 106.6519},
	"HAN": {"HAN", "Noi Bai International Airport", "Hanoi", "VN", 21.2212, 105.8072},
	"DPS": {"DPS", "Ngurah Rai International Airport", "Denpasar", "ID", -8.7482, 115.1672},
	"KUL": {"KUL", "Kuala Lumpur International Airport", "Kuala Lumpur", "MY", 2.7456, 101.7099},
	"MNL": {"MNL", "Ninoy Aquino International Airport", "Manila", "PH", 14.5086, 121.0194},
	"DEL": {"DEL", "Indira Gandhi International Airport", "Delhi", "IN", 28.5562, 77.1000},
	"BOM": {"BOM", "Chhatrapati Shivaji Maharaj International Airport", "Mumbai", "IN", 19.0896, 72.8656},
	"SYD": {"SYD", "Sydney Kingsford Smith Airport", "Sydney", "AU", -33.9399, 151.1753},
	"MEL": {"MEL", "Melbourne Airport", "Melbourne", "AU", -37.6690, 144.8410},
	"BNE": {"BNE", "Brisbane Airport", "Brisbane", "AU", -27.3942, 153.1218},
	"AKL": {"AKL", "Auckland Airport", "Auckland", "NZ", -37.0082, 174.7850},

	// Latin America
	"GRU": {"GRU", "São Paulo/Guarulhos International Airport", "Sao Paulo", "BR", -23.4356, -46.4731},
	"GIG": {"GIG", "Rio de Janeiro/Galeão International Airport", "Rio de Janeiro", "BR", -22.8090, -43.2506},
	"EZE": {"EZE", "Ministro Pistarini International Airport", "Buenos Aires", "AR", -34.8222, -58.5358},
	"SCL": {"SCL", "Arturo Merino Benítez International Airport", "Santiago", "CL", -33.3930, -70.7858},
	"LIM": {"LIM", "Jorge Chávez International Airport", "Lima", "PE", -12.0219, -77.1143},
	"BOG": {"BOG", "El Dorado International Airport", "Bogota", "CO", 4.7016, -74.1469},
	"SJO": {"SJO", "Juan Santamaría International Airport", "San Jose", "CR", 9.9939, -84.2088},
}

// LookupAirport returns the reference entry for an IATA code
func LookupAirport(code string) (Airport, bool) {
	a, ok := airports[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// AirportCountry returns the ISO country for an airport code, or "" when unknown
func AirportCountry(code string) string {
	if a, ok := LookupAirport(code); ok {
		return a.Country
	}
	return ""
}

// AirportCity returns the served city for an airport code, or "" when unknown
func AirportCity(code string) string {
	if a, ok := LookupAirport(code); ok {
		return a.City
	}
	return ""
}
