package defaults

import "strings"

// info：内置国家的简介文本，按 alpha-3 代码索引
var info = map[string]string{
	"CHN": "China is the world's most populous country and the third-largest by area. It has a rich history spanning over 5,000 years and is known for its diverse culture, cuisine, and technological advancements.",
	"TWN": "Taiwan is an island nation in East Asia, known for its vibrant democracy, high-tech industry, and beautiful natural landscapes including mountains and coastlines.",
	"HKG": "Hong Kong is a Special Administrative Region of China, famous as a global financial hub, international trade center, and gateway between East and West.",
	"SGP": "Singapore is a city-state in Southeast Asia, renowned for its efficient infrastructure, multicultural society, and status as a major global financial center.",
	"JPN": "Japan is an island nation in East Asia, famous for its unique culture, advanced technology, delicious cuisine, and beautiful cherry blossoms.",
	"KOR": "South Korea is a country in East Asia, known for its K-pop culture, technological innovation, delicious food, and rapid economic development.",
	"IND": "India is the world's second-most populous country, known for its diverse culture, rich history, Bollywood cinema, and growing tech industry.",
	"IDN": "Indonesia is the world's largest archipelago nation, famous for its beautiful beaches, diverse wildlife, rich culture, and volcanic landscapes.",
	"PHL": "The Philippines is an archipelago in Southeast Asia, known for its beautiful beaches, friendly people, and rich cultural heritage.",
	"TUR": "Turkey is a transcontinental country bridging Europe and Asia, famous for its rich history, delicious cuisine, and unique blend of cultures.",
	"CHE": "Switzerland is a landlocked country in Central Europe, renowned for its stunning Alpine scenery, precision engineering, and banking sector.",
	"DEU": "Germany is the most populous country in the European Union, known for its engineering excellence, rich history, and cultural contributions.",
	"BEL": "Belgium is a small country in Western Europe, famous for its chocolate, beer, waffles, and as the headquarters of the European Union.",
	"FRA": "France is one of the world's most visited countries, known for its art, culture, cuisine, fashion, and iconic landmarks like the Eiffel Tower.",
	"NLD": "The Netherlands is a country in Northwestern Europe, famous for its windmills, tulips, cycling culture, and progressive social policies.",
	"GBR": "The United Kingdom is an island nation in Northwestern Europe, known for its rich history, royal family, and cultural influence worldwide.",
	"DNK": "Denmark is a Nordic country in Northern Europe, famous for its high quality of life, design, and the concept of 'hygge'.",
	"SWE": "Sweden is the largest Nordic country, known for its innovation, social welfare system, and beautiful natural landscapes.",
	"GEO": "Georgia is a country at the intersection of Europe and Asia, known for its ancient history, wine culture, and stunning mountain scenery.",
	"RUS": "Russia is the world's largest country by area, spanning Eastern Europe and Northern Asia, known for its rich history and cultural heritage.",
	"UKR": "Ukraine is the second-largest country in Europe, known for its fertile farmland, rich cultural heritage, and historical significance.",
	"NZL": "New Zealand is an island country in the southwestern Pacific Ocean, famous for its stunning natural beauty and outdoor adventure activities.",
	"PER": "Peru is a country in South America, known for its ancient Incan civilization, diverse geography, and delicious cuisine including ceviche.",
	"BRA": "Brazil is the largest country in South America, famous for its Amazon rainforest, vibrant culture, soccer, and Carnival celebrations.",
	"USA": "The United States is a diverse nation spanning North America, known for its innovation, cultural influence, and varied landscapes.",
	"ARG": "Argentina is the second-largest country in South America, famous for tango, beef, wine, and its stunning natural landscapes including Patagonia.",
	"AUS": "Australia is the world's largest island and smallest continent, known for its unique wildlife, beautiful beaches, and laid-back lifestyle.",
	"CHL": "Chile is a long, narrow country in South America, famous for its wine, copper mining, and diverse landscapes from desert to glaciers.",
	"ISR": "Israel is a country in the Middle East, known for its historical and religious significance, innovation in technology, and diverse culture.",
	"MEX": "Mexico is a country in North America, famous for its rich culture, delicious cuisine, ancient civilizations, and vibrant festivals.",
}

// Describe：返回代码对应的内置简介；未收录时返回空串
func Describe(code string) string {
	return info[strings.ToUpper(strings.TrimSpace(code))]
}

func init() {
	for i := range builtin {
		if builtin[i].Description == "" {
			builtin[i].Description = info[builtin[i].Code]
		}
	}
}
