package countries

import "github.com/selivandex/worldmap-intel/pkg/models"

// builtin is the reference table used when no database is configured.
// Coordinates are [lon, lat] as published by the map frontend.
var builtin = []models.CountrySubject{
	{Code: "USA", Name: "United States", CurrencyCode: "USD", WorldBankCode: "US", Longitude: -95.7129, Latitude: 37.0902, Aliases: []string{"America", "American"}},
	{Code: "CHN", Name: "China", CurrencyCode: "CNY", WorldBankCode: "CN", Longitude: 104.1954, Latitude: 35.8617, Aliases: []string{"Chinese", "Beijing"}},
	{Code: "JPN", Name: "Japan", CurrencyCode: "JPY", WorldBankCode: "JP", Longitude: 138.2529, Latitude: 36.2048, Aliases: []string{"Japanese", "Tokyo"}},
	{Code: "DEU", Name: "Germany", CurrencyCode: "EUR", WorldBankCode: "DE", Longitude: 10.4515, Latitude: 51.1657, Aliases: []string{"German", "Berlin"}},
	{Code: "GBR", Name: "United Kingdom", CurrencyCode: "GBP", WorldBankCode: "GB", Longitude: -3.4360, Latitude: 55.3781, Aliases: []string{"Britain", "British", "England"}},
	{Code: "FRA", Name: "France", CurrencyCode: "EUR", WorldBankCode: "FR", Longitude: 2.2137, Latitude: 46.2276, Aliases: []string{"French", "Paris"}},
	{Code: "IND", Name: "India", CurrencyCode: "INR", WorldBankCode: "IN", Longitude: 78.9629, Latitude: 20.5937, Aliases: []string{"Indian", "New Delhi"}},
	{Code: "RUS", Name: "Russia", CurrencyCode: "RUB", WorldBankCode: "RU", Longitude: 105.3188, Latitude: 61.5240, Aliases: []string{"Russian", "Kremlin", "Moscow"}},
	{Code: "BRA", Name: "Brazil", CurrencyCode: "BRL", WorldBankCode: "BR", Longitude: -51.9253, Latitude: -14.2401, Aliases: []string{"Brazilian"}},
	{Code: "CAN", Name: "Canada", CurrencyCode: "CAD", WorldBankCode: "CA", Longitude: -106.3468, Latitude: 56.1304, Aliases: []string{"Canadian", "Ottawa"}},
	{Code: "ITA", Name: "Italy", CurrencyCode: "EUR", WorldBankCode: "IT", Longitude: 12.5674, Latitude: 41.8719, Aliases: []string{"Italian", "Rome"}},
	{Code: "ESP", Name: "Spain", CurrencyCode: "EUR", WorldBankCode: "ES", Longitude: -3.7492, Latitude: 40.4637, Aliases: []string{"Spanish", "Madrid"}},
	{Code: "POL", Name: "Poland", CurrencyCode: "PLN", WorldBankCode: "PL", Longitude: 19.1343, Latitude: 51.9194},
	{Code: "NLD", Name: "Netherlands", CurrencyCode: "EUR", WorldBankCode: "NL", Longitude: 5.2913, Latitude: 52.1326, Aliases: []string{"Dutch", "Holland"}},
	{Code: "BEL", Name: "Belgium", CurrencyCode: "EUR", WorldBankCode: "BE", Longitude: 4.4699, Latitude: 50.5039},
	{Code: "CHE", Name: "Switzerland", CurrencyCode: "CHF", WorldBankCode: "CH", Longitude: 8.2275, Latitude: 46.8182},
	{Code: "AUT", Name: "Austria", CurrencyCode: "EUR", WorldBankCode: "AT", Longitude: 14.5501, Latitude: 47.5162},
	{Code: "SWE", Name: "Sweden", CurrencyCode: "SEK", WorldBankCode: "SE", Longitude: 18.6435, Latitude: 60.1282},
	{Code: "NOR", Name: "Norway", CurrencyCode: "NOK", WorldBankCode: "NO", Longitude: 8.4689, Latitude: 60.4720},
	{Code: "DNK", Name: "Denmark", CurrencyCode: "DKK", WorldBankCode: "DK", Longitude: 9.5018, Latitude: 56.2639},
	{Code: "FIN", Name: "Finland", CurrencyCode: "EUR", WorldBankCode: "FI", Longitude: 25.7482, Latitude: 61.9241},
	{Code: "PRT", Name: "Portugal", CurrencyCode: "EUR", WorldBankCode: "PT", Longitude: -8.2245, Latitude: 39.3999},
	{Code: "GRC", Name: "Greece", CurrencyCode: "EUR", WorldBankCode: "GR", Longitude: 21.8243, Latitude: 39.0742},
	{Code: "CZE", Name: "Czech Republic", CurrencyCode: "CZK", WorldBankCode: "CZ", Longitude: 15.4730, Latitude: 49.8175, Aliases: []string{"Czechia"}},
	{Code: "HUN", Name: "Hungary", CurrencyCode: "HUF", WorldBankCode: "HU", Longitude: 19.5033, Latitude: 47.1625},
	{Code: "ROU", Name: "Romania", CurrencyCode: "RON", WorldBankCode: "RO", Longitude: 24.9668, Latitude: 45.9432},
	{Code: "BGR", Name: "Bulgaria", CurrencyCode: "BGN", WorldBankCode: "BG", Longitude: 25.4858, Latitude: 42.7339},
	{Code: "HRV", Name: "Croatia", CurrencyCode: "EUR", WorldBankCode: "HR", Longitude: 15.2, Latitude: 45.1},
	{Code: "SVN", Name: "Slovenia", CurrencyCode: "EUR", WorldBankCode: "SI", Longitude: 14.9955, Latitude: 46.1512},
	{Code: "SVK", Name: "Slovakia", CurrencyCode: "EUR", WorldBankCode: "SK", Longitude: 19.699, Latitude: 48.669},
	{Code: "EST", Name: "Estonia", CurrencyCode: "EUR", WorldBankCode: "EE", Longitude: 25.0136, Latitude: 58.5953},
	{Code: "LVA", Name: "Latvia", CurrencyCode: "EUR", WorldBankCode: "LV", Longitude: 24.6032, Latitude: 56.8796},
	{Code: "LTU", Name: "Lithuania", CurrencyCode: "EUR", WorldBankCode: "LT", Longitude: 23.8813, Latitude: 55.1694},
	{Code: "IRL", Name: "Ireland", CurrencyCode: "EUR", WorldBankCode: "IE", Longitude: -8.2439, Latitude: 53.4129},
	{Code: "ISL", Name: "Iceland", CurrencyCode: "ISK", WorldBankCode: "IS", Longitude: -19.0208, Latitude: 64.9631},
	{Code: "KOR", Name: "South Korea", CurrencyCode: "KRW", WorldBankCode: "KR", Longitude: 127.7669, Latitude: 35.9078, Aliases: []string{"Korea", "Seoul"}},
	{Code: "AUS", Name: "Australia", CurrencyCode: "AUD", WorldBankCode: "AU", Longitude: 133.7751, Latitude: -25.2744, Aliases: []string{"Australian", "Canberra"}},
	{Code: "NZL", Name: "New Zealand", CurrencyCode: "NZD", WorldBankCode: "NZ", Longitude: 174.8860, Latitude: -40.9006},
	{Code: "SGP", Name: "Singapore", CurrencyCode: "SGD", WorldBankCode: "SG", Longitude: 103.8198, Latitude: 1.3521},
	{Code: "MYS", Name: "Malaysia", CurrencyCode: "MYR", WorldBankCode: "MY", Longitude: 101.9758, Latitude: 4.2105},
	{Code: "THA", Name: "Thailand", CurrencyCode: "THB", WorldBankCode: "TH", Longitude: 100.9925, Latitude: 15.8700},
	{Code: "IDN", Name: "Indonesia", CurrencyCode: "IDR", WorldBankCode: "ID", Longitude: 113.9213, Latitude: -0.7893},
	{Code: "PHL", Name: "Philippines", CurrencyCode: "PHP", WorldBankCode: "PH", Longitude: 121.7740, Latitude: 12.8797},
	{Code: "VNM", Name: "Vietnam", CurrencyCode: "VND", WorldBankCode: "VN", Longitude: 108.2772, Latitude: 14.0583},
	{Code: "TWN", Name: "Taiwan", CurrencyCode: "TWD", WorldBankCode: "TW", Longitude: 120.9605, Latitude: 23.6978},
	{Code: "HKG", Name: "Hong Kong", CurrencyCode: "HKD", WorldBankCode: "HK", Longitude: 114.1694, Latitude: 22.3193},
	{Code: "PAK", Name: "Pakistan", CurrencyCode: "PKR", WorldBankCode: "PK", Longitude: 69.3451, Latitude: 30.3753},
	{Code: "BGD", Name: "Bangladesh", CurrencyCode: "BDT", WorldBankCode: "BD", Longitude: 90.3563, Latitude: 23.6850},
	{Code: "LKA", Name: "Sri Lanka", CurrencyCode: "LKR", WorldBankCode: "LK", Longitude: 80.7718, Latitude: 7.8731},
	{Code: "NPL", Name: "Nepal", CurrencyCode: "NPR", WorldBankCode: "NP", Longitude: 84.1240, Latitude: 28.3949},
	{Code: "SAU", Name: "Saudi Arabia", CurrencyCode: "SAR", WorldBankCode: "SA", Longitude: 45.0792, Latitude: 23.8859, Aliases: []string{"Saudi"}},
	{Code: "ARE", Name: "United Arab Emirates", CurrencyCode: "AED", WorldBankCode: "AE", Longitude: 53.8478, Latitude: 23.4241, Aliases: []string{"UAE", "Emirates"}},
	{Code: "ISR", Name: "Israel", CurrencyCode: "ILS", WorldBankCode: "IL", Longitude: 34.8516, Latitude: 32.4279, Aliases: []string{"Israeli"}},
	{Code: "TUR", Name: "Turkey", CurrencyCode: "TRY", WorldBankCode: "TR", Longitude: 35.2433, Latitude: 38.9637, Aliases: []string{"Turkish", "Turkiye"}},
	{Code: "IRN", Name: "Iran", CurrencyCode: "IRR", WorldBankCode: "IR", Longitude: 53.6880, Latitude: 32.4279, Aliases: []string{"Iranian", "Tehran"}},
	{Code: "IRQ", Name: "Iraq", CurrencyCode: "IQD", WorldBankCode: "IQ", Longitude: 43.6793, Latitude: 33.2232},
	{Code: "KWT", Name: "Kuwait", CurrencyCode: "KWD", WorldBankCode: "KW", Longitude: 47.4818, Latitude: 29.3117},
	{Code: "QAT", Name: "Qatar", CurrencyCode: "QAR", WorldBankCode: "QA", Longitude: 51.1839, Latitude: 25.3548},
	{Code: "BHR", Name: "Bahrain", CurrencyCode: "BHD", WorldBankCode: "BH", Longitude: 50.6344, Latitude: 26.0667},
	{Code: "OMN", Name: "Oman", CurrencyCode: "OMR", WorldBankCode: "OM", Longitude: 55.9754, Latitude: 21.4735},
	{Code: "JOR", Name: "Jordan", CurrencyCode: "JOD", WorldBankCode: "JO", Longitude: 36.2384, Latitude: 30.5852},
	{Code: "LBN", Name: "Lebanon", CurrencyCode: "LBP", WorldBankCode: "LB", Longitude: 35.8623, Latitude: 33.8547},
	{Code: "SYR", Name: "Syria", CurrencyCode: "SYP", WorldBankCode: "SY", Longitude: 38.9968, Latitude: 34.8021},
	{Code: "YEM", Name: "Yemen", CurrencyCode: "YER", WorldBankCode: "YE", Longitude: 48.5164, Latitude: 15.5527},
	{Code: "ZAF", Name: "South Africa", CurrencyCode: "ZAR", WorldBankCode: "ZA", Longitude: 22.9375, Latitude: -30.5595},
	{Code: "NGA", Name: "Nigeria", CurrencyCode: "NGN", WorldBankCode: "NG", Longitude: 8.6753, Latitude: 9.0820},
	{Code: "EGY", Name: "Egypt", CurrencyCode: "EGP", WorldBankCode: "EG", Longitude: 30.8025, Latitude: 26.8206},
	{Code: "KEN", Name: "Kenya", CurrencyCode: "KES", WorldBankCode: "KE", Longitude: 37.9062, Latitude: -0.0236},
	{Code: "ETH", Name: "Ethiopia", CurrencyCode: "ETB", WorldBankCode: "ET", Longitude: 40.4897, Latitude: 9.1450},
	{Code: "GHA", Name: "Ghana", CurrencyCode: "GHS", WorldBankCode: "GH", Longitude: -1.0232, Latitude: 7.9465},
	{Code: "MAR", Name: "Morocco", CurrencyCode: "MAD", WorldBankCode: "MA", Longitude: -7.0926, Latitude: 31.7917},
	{Code: "TUN", Name: "Tunisia", CurrencyCode: "TND", WorldBankCode: "TN", Longitude: 9.5375, Latitude: 33.8869},
	{Code: "DZA", Name: "Algeria", CurrencyCode: "DZD", WorldBankCode: "DZ", Longitude: 1.6596, Latitude: 28.0339},
	{Code: "LBY", Name: "Libya", CurrencyCode: "LYD", WorldBankCode: "LY", Longitude: 17.2283, Latitude: 26.3351},
	{Code: "SEN", Name: "Senegal", CurrencyCode: "XOF", WorldBankCode: "SN", Longitude: -14.4524, Latitude: 14.4974},
	{Code: "CMR", Name: "Cameroon", CurrencyCode: "XAF", WorldBankCode: "CM", Longitude: 12.3547, Latitude: 7.3697},
	{Code: "UGA", Name: "Uganda", CurrencyCode: "UGX", WorldBankCode: "UG", Longitude: 32.2903, Latitude: 1.3733},
	{Code: "TZA", Name: "Tanzania", CurrencyCode: "TZS", WorldBankCode: "TZ", Longitude: 34.8888, Latitude: -6.3690},
	{Code: "ZWE", Name: "Zimbabwe", CurrencyCode: "ZWL", WorldBankCode: "ZW", Longitude: 29.1549, Latitude: -19.0154},
	{Code: "ZMB", Name: "Zambia", CurrencyCode: "ZMW", WorldBankCode: "ZM", Longitude: 27.8546, Latitude: -13.1339},
	{Code: "BWA", Name: "Botswana", CurrencyCode: "BWP", WorldBankCode: "BW", Longitude: 24.6849, Latitude: -22.3285},
	{Code: "NAM", Name: "Namibia", CurrencyCode: "NAD", WorldBankCode: "NA", Longitude: 18.4241, Latitude: -22.9576},
	{Code: "MDG", Name: "Madagascar", CurrencyCode: "MGA", WorldBankCode: "MG", Longitude: 46.8691, Latitude: -18.7669},
	{Code: "MUS", Name: "Mauritius", CurrencyCode: "MUR", WorldBankCode: "MU", Longitude: 57.5522, Latitude: -20.3484},
	{Code: "MEX", Name: "Mexico", CurrencyCode: "MXN", WorldBankCode: "MX", Longitude: -102.5528, Latitude: 23.6345, Aliases: []string{"Mexican"}},
	{Code: "ARG", Name: "Argentina", CurrencyCode: "ARS", WorldBankCode: "AR", Longitude: -63.6167, Latitude: -38.4161},
	{Code: "CHL", Name: "Chile", CurrencyCode: "CLP", WorldBankCode: "CL", Longitude: -71.5430, Latitude: -35.6751},
	{Code: "COL", Name: "Colombia", CurrencyCode: "COP", WorldBankCode: "CO", Longitude: -74.2973, Latitude: 4.5709},
	{Code: "PER", Name: "Peru", CurrencyCode: "PEN", WorldBankCode: "PE", Longitude: -75.0152, Latitude: -9.1900},
	{Code: "VEN", Name: "Venezuela", CurrencyCode: "VES", WorldBankCode: "VE", Longitude: -66.5897, Latitude: 6.4238},
	{Code: "ECU", Name: "Ecuador", CurrencyCode: "USD", WorldBankCode: "EC", Longitude: -78.1834, Latitude: -1.8312},
	{Code: "URY", Name: "Uruguay", CurrencyCode: "UYU", WorldBankCode: "UY", Longitude: -55.7658, Latitude: -32.5228},
	{Code: "PRY", Name: "Paraguay", CurrencyCode: "PYG", WorldBankCode: "PY", Longitude: -58.4438, Latitude: -23.4425},
	{Code: "BOL", Name: "Bolivia", CurrencyCode: "BOB", WorldBankCode: "BO", Longitude: -63.5887, Latitude: -16.2902},
	{Code: "CRI", Name: "Costa Rica", CurrencyCode: "CRC", WorldBankCode: "CR", Longitude: -83.7534, Latitude: 9.7489},
	{Code: "PAN", Name: "Panama", CurrencyCode: "PAB", WorldBankCode: "PA", Longitude: -80.7821, Latitude: 8.5380},
	{Code: "GTM", Name: "Guatemala", CurrencyCode: "GTQ", WorldBankCode: "GT", Longitude: -90.2308, Latitude: 15.7835},
	{Code: "HND", Name: "Honduras", CurrencyCode: "HNL", WorldBankCode: "HN", Longitude: -86.2419, Latitude: 15.2000},
	{Code: "SLV", Name: "El Salvador", CurrencyCode: "USD", WorldBankCode: "SV", Longitude: -88.8965, Latitude: 13.7942},
	{Code: "NIC", Name: "Nicaragua", CurrencyCode: "NIO", WorldBankCode: "NI", Longitude: -85.2072, Latitude: 12.8654},
	{Code: "CUB", Name: "Cuba", CurrencyCode: "CUP", WorldBankCode: "CU", Longitude: -77.7812, Latitude: 21.5218},
	{Code: "DOM", Name: "Dominican Republic", CurrencyCode: "DOP", WorldBankCode: "DO", Longitude: -70.1627, Latitude: 18.7357},
	{Code: "JAM", Name: "Jamaica", CurrencyCode: "JMD", WorldBankCode: "JM", Longitude: -77.2975, Latitude: 18.1096},
	{Code: "PRK", Name: "North Korea", CurrencyCode: "KPW", WorldBankCode: "KP", Longitude: 127.5101, Latitude: 40.3399, Aliases: []string{"North Korea", "Pyongyang"}},
	{Code: "AFG", Name: "Afghanistan", CurrencyCode: "AFN", WorldBankCode: "AF", Longitude: 67.7090, Latitude: 33.9391},
	{Code: "KAZ", Name: "Kazakhstan", CurrencyCode: "KZT", WorldBankCode: "KZ", Longitude: 66.9237, Latitude: 48.0196},
	{Code: "UZB", Name: "Uzbekistan", CurrencyCode: "UZS", WorldBankCode: "UZ", Longitude: 64.5853, Latitude: 41.3775},
	{Code: "UKR", Name: "Ukraine", CurrencyCode: "UAH", WorldBankCode: "UA", Longitude: 31.1656, Latitude: 48.3794, Aliases: []string{"Ukrainian", "Kyiv"}},
	{Code: "BLR", Name: "Belarus", CurrencyCode: "BYN", WorldBankCode: "BY", Longitude: 27.9534, Latitude: 53.7098},
	{Code: "GEO", Name: "Georgia", CurrencyCode: "GEL", WorldBankCode: "GE", Longitude: 43.3569, Latitude: 42.3154},
	{Code: "ARM", Name: "Armenia", CurrencyCode: "AMD", WorldBankCode: "AM", Longitude: 45.0382, Latitude: 40.0691},
	{Code: "AZE", Name: "Azerbaijan", CurrencyCode: "AZN", WorldBankCode: "AZ", Longitude: 47.5769, Latitude: 40.1431},
}
