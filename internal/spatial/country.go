package spatial

import "strings"

// countryAliases maps common spellings to ISO 3166-1 alpha-2 codes
var countryAliases = map[string]string{
	"us": "US", "usa": "US", "u.s.": "US", "u.s.a.": "US", "united states": "US",
	"united states of america": "US", "america": "US",
	"ca": "CA", "can": "CA", "canada": "CA",
	"mx": "MX", "mex": "MX", "mexico": "MX", "méxico": "MX",
	"gb": "GB", "uk": "GB", "u.k.": "GB", "gbr": "GB", "united kingdom": "GB", "great britain": "GB",
	"england": "GB", "scotland": "GB", "wales": "GB",
	"ie": "IE", "irl": "IE", "ireland": "IE",
	"fr": "FR", "fra": "FR", "france": "FR",
	"de": "DE", "deu": "DE", "germany": "DE", "deutschland": "DE",
	"es": "ES", "esp": "ES", "spain": "ES", "españa": "ES",
	"pt": "PT", "prt": "PT", "portugal": "PT",
	"it": "IT", "ita": "IT", "italy": "IT", "italia": "IT",
	"nl": "NL", "nld": "NL", "netherlands": "NL", "the netherlands": "NL", "holland": "NL",
	"be": "BE", "bel": "BE", "belgium": "BE",
	"ch": "CH", "che": "CH", "switzerland": "CH",
	"at": "AT", "aut": "AT", "austria": "AT",
	"gr": "GR", "grc": "GR", "greece": "GR", "hellas": "GR",
	"tr": "TR", "tur": "TR", "turkey": "TR", "türkiye": "TR", "turkiye": "TR",
	"dk": "DK", "dnk": "DK", "denmark": "DK",
	"se": "SE", "swe": "SE", "sweden": "SE",
	"no": "NO", "nor": "NO", "norway": "NO",
	"fi": "FI", "fin": "FI", "finland": "FI",
	"is": "IS", "isl": "IS", "iceland": "IS",
	"pl": "PL", "pol": "PL", "poland": "PL",
	"cz": "CZ", "cze": "CZ", "czech republic": "CZ", "czechia": "CZ",
	"hu": "HU", "hun": "HU", "hungary": "HU",
	"hr": "HR", "hrv": "HR", "croatia": "HR",
	"ae": "AE", "are": "AE", "uae": "AE", "united arab emirates": "AE",
	"qa": "QA", "qat": "QA", "qatar": "QA",
	"il": "IL", "isr": "IL", "israel": "IL",
	"eg": "EG", "egy": "EG", "egypt": "EG",
	"ma": "MA", "mar": "MA", "morocco": "MA",
	"za": "ZA", "zaf": "ZA", "south africa": "ZA",
	"ke": "KE", "ken": "KE", "kenya": "KE",
	"in": "IN", "ind": "IN", "india": "IN",
	"cn": "CN", "chn": "CN", "china": "CN",
	"hk": "HK", "hkg": "HK", "hong kong": "HK",
	"jp": "JP", "jpn": "JP", "japan": "JP",
	"kr": "KR", "kor": "KR", "south korea": "KR", "korea": "KR",
	"sg": "SG", "sgp": "SG", "singapore": "SG",
	"th": "TH", "tha": "TH", "thailand": "TH",
	"vn": "VN", "vnm": "VN", "vietnam": "VN", "viet nam": "VN",
	"id": "ID", "idn": "ID", "indonesia": "ID",
	"my": "MY", "mys": "MY", "malaysia": "MY",
	"ph": "PH", "phl": "PH", "philippines": "PH",
	"au": "AU", "aus": "AU", "australia": "AU",
	"nz": "NZ", "nzl": "NZ", "new zealand": "NZ",
	"br": "BR", "bra": "BR", "brazil": "BR", "brasil": "BR",
	"ar": "AR", "arg": "AR", "argentina": "AR",
	"cl": "CL", "chl": "CL", "chile": "CL",
	"pe": "PE", "per": "PE", "peru": "PE",
	"co": "CO", "col": "CO", "colombia": "CO",
	"cr": "CR", "cri": "CR", "costa rica": "CR",
}

// NormalizeCountry returns a comparable country key.
// Known names and codes map to ISO alpha-2, anything else is upper-cased as is.
func NormalizeCountry(country string) string {
	key := strings.ToLower(strings.TrimSpace(country))
	if key == "" {
		return ""
	}
	if code, ok := countryAliases[key]; ok {
		return code
	}
	return strings.ToUpper(key)
}
