package countrycode

// entry：alpha-3、alpha-2、数字代码与常见名称（已规范化：小写、单空格、去变音符）
type entry struct {
	a3    string
	a2    string
	num   string
	names []string
}

// 静态对照表：名称覆盖地图数据源的缩写写法与表格中常见的别称
var table = []entry{
	// 亚洲
	{"CHN", "CN", "156", []string{"china", "people's republic of china", "prc", "mainland china"}},
	{"TWN", "TW", "158", []string{"taiwan", "republic of china", "taiwan, province of china", "chinese taipei"}},
	{"HKG", "HK", "344", []string{"hong kong", "hong kong sar", "hong kong s.a.r."}},
	{"MAC", "MO", "446", []string{"macau", "macao", "macao sar", "macao s.a.r"}},
	{"MNG", "MN", "496", []string{"mongolia"}},
	{"JPN", "JP", "392", []string{"japan"}},
	{"KOR", "KR", "410", []string{"south korea", "republic of korea", "korea, republic of", "korea, south", "korea (south)"}},
	{"PRK", "KP", "408", []string{"north korea", "dem. rep. korea", "democratic people's republic of korea", "korea, dem. people's rep.", "korea, north", "dprk"}},
	{"SGP", "SG", "702", []string{"singapore"}},
	{"MYS", "MY", "458", []string{"malaysia"}},
	{"IDN", "ID", "360", []string{"indonesia"}},
	{"PHL", "PH", "608", []string{"philippines", "the philippines"}},
	{"THA", "TH", "764", []string{"thailand"}},
	{"VNM", "VN", "704", []string{"vietnam", "viet nam"}},
	{"LAO", "LA", "418", []string{"laos", "lao pdr", "lao people's democratic republic"}},
	{"KHM", "KH", "116", []string{"cambodia"}},
	{"MMR", "MM", "104", []string{"myanmar", "burma"}},
	{"BRN", "BN", "096", []string{"brunei", "brunei darussalam"}},
	{"TLS", "TL", "626", []string{"timor-leste", "east timor"}},
	{"IND", "IN", "356", []string{"india"}},
	{"PAK", "PK", "586", []string{"pakistan"}},
	{"BGD", "BD", "050", []string{"bangladesh"}},
	{"LKA", "LK", "144", []string{"sri lanka"}},
	{"NPL", "NP", "524", []string{"nepal"}},
	{"BTN", "BT", "064", []string{"bhutan"}},
	{"MDV", "MV", "462", []string{"maldives"}},
	{"AFG", "AF", "004", []string{"afghanistan"}},
	{"KAZ", "KZ", "398", []string{"kazakhstan"}},
	{"UZB", "UZ", "860", []string{"uzbekistan"}},
	{"TKM", "TM", "795", []string{"turkmenistan"}},
	{"KGZ", "KG", "417", []string{"kyrgyzstan", "kyrgyz republic"}},
	{"TJK", "TJ", "762", []string{"tajikistan"}},
	{"IRN", "IR", "364", []string{"iran", "islamic republic of iran", "iran, islamic republic of"}},
	{"IRQ", "IQ", "368", []string{"iraq"}},
	{"SYR", "SY", "760", []string{"syria", "syrian arab republic"}},
	{"LBN", "LB", "422", []string{"lebanon"}},
	{"JOR", "JO", "400", []string{"jordan"}},
	{"ISR", "IL", "376", []string{"israel"}},
	{"PSE", "PS", "275", []string{"palestine", "state of palestine", "palestinian territories"}},
	{"SAU", "SA", "682", []string{"saudi arabia"}},
	{"ARE", "AE", "784", []string{"united arab emirates", "uae"}},
	{"QAT", "QA", "634", []string{"qatar"}},
	{"KWT", "KW", "414", []string{"kuwait"}},
	{"BHR", "BH", "048", []string{"bahrain"}},
	{"OMN", "OM", "512", []string{"oman"}},
	{"YEM", "YE", "887", []string{"yemen"}},
	{"TUR", "TR", "792", []string{"turkey", "turkiye", "republic of turkiye"}},
	{"GEO", "GE", "268", []string{"georgia"}},
	{"ARM", "AM", "051", []string{"armenia"}},
	{"AZE", "AZ", "031", []string{"azerbaijan"}},
	{"CYP", "CY", "196", []string{"cyprus"}},
	// 欧洲
	{"GBR", "GB", "826", []string{"united kingdom", "great britain", "britain", "uk", "england", "united kingdom of great britain and northern ireland"}},
	{"IRL", "IE", "372", []string{"ireland", "republic of ireland"}},
	{"FRA", "FR", "250", []string{"france"}},
	{"DEU", "DE", "276", []string{"germany", "deutschland"}},
	{"NLD", "NL", "528", []string{"netherlands", "the netherlands", "holland"}},
	{"BEL", "BE", "056", []string{"belgium"}},
	{"LUX", "LU", "442", []string{"luxembourg"}},
	{"CHE", "CH", "756", []string{"switzerland"}},
	{"AUT", "AT", "040", []string{"austria"}},
	{"LIE", "LI", "438", []string{"liechtenstein"}},
	{"ITA", "IT", "380", []string{"italy"}},
	{"ESP", "ES", "724", []string{"spain"}},
	{"PRT", "PT", "620", []string{"portugal"}},
	{"AND", "AD", "020", []string{"andorra"}},
	{"MCO", "MC", "492", []string{"monaco"}},
	{"SMR", "SM", "674", []string{"san marino"}},
	{"VAT", "VA", "336", []string{"vatican", "vatican city", "holy see"}},
	{"MLT", "MT", "470", []string{"malta"}},
	{"DNK", "DK", "208", []string{"denmark"}},
	{"SWE", "SE", "752", []string{"sweden"}},
	{"NOR", "NO", "578", []string{"norway"}},
	{"FIN", "FI", "246", []string{"finland"}},
	{"ISL", "IS", "352", []string{"iceland"}},
	{"EST", "EE", "233", []string{"estonia"}},
	{"LVA", "LV", "428", []string{"latvia"}},
	{"LTU", "LT", "440", []string{"lithuania"}},
	{"POL", "PL", "616", []string{"poland"}},
	{"CZE", "CZ", "203", []string{"czechia", "czech republic", "czech rep."}},
	{"SVK", "SK", "703", []string{"slovakia"}},
	{"HUN", "HU", "348", []string{"hungary"}},
	{"SVN", "SI", "705", []string{"slovenia"}},
	{"HRV", "HR", "191", []string{"croatia"}},
	{"BIH", "BA", "070", []string{"bosnia and herzegovina", "bosnia and herz.", "bosnia"}},
	{"SRB", "RS", "688", []string{"serbia"}},
	{"MNE", "ME", "499", []string{"montenegro"}},
	{"MKD", "MK", "807", []string{"north macedonia", "macedonia"}},
	{"ALB", "AL", "008", []string{"albania"}},
	{"XKX", "XK", "", []string{"kosovo"}},
	{"GRC", "GR", "300", []string{"greece"}},
	{"BGR", "BG", "100", []string{"bulgaria"}},
	{"ROU", "RO", "642", []string{"romania"}},
	{"MDA", "MD", "498", []string{"moldova", "republic of moldova"}},
	{"UKR", "UA", "804", []string{"ukraine"}},
	{"BLR", "BY", "112", []string{"belarus"}},
	{"RUS", "RU", "643", []string{"russia", "russian federation"}},
	// 北美
	{"USA", "US", "840", []string{"united states", "united states of america", "usa", "us", "america"}},
	{"CAN", "CA", "124", []string{"canada"}},
	{"MEX", "MX", "484", []string{"mexico"}},
	{"GRL", "GL", "304", []string{"greenland"}},
	{"GTM", "GT", "320", []string{"guatemala"}},
	{"BLZ", "BZ", "084", []string{"belize"}},
	{"HND", "HN", "340", []string{"honduras"}},
	{"SLV", "SV", "222", []string{"el salvador"}},
	{"NIC", "NI", "558", []string{"nicaragua"}},
	{"CRI", "CR", "188", []string{"costa rica"}},
	{"PAN", "PA", "591", []string{"panama"}},
	{"CUB", "CU", "192", []string{"cuba"}},
	{"JAM", "JM", "388", []string{"jamaica"}},
	{"HTI", "HT", "332", []string{"haiti"}},
	{"DOM", "DO", "214", []string{"dominican republic", "dominican rep."}},
	{"PRI", "PR", "630", []string{"puerto rico"}},
	{"BHS", "BS", "044", []string{"bahamas", "the bahamas"}},
	{"TTO", "TT", "780", []string{"trinidad and tobago"}},
	// 南美
	{"BRA", "BR", "076", []string{"brazil"}},
	{"ARG", "AR", "032", []string{"argentina"}},
	{"CHL", "CL", "152", []string{"chile"}},
	{"PER", "PE", "604", []string{"peru"}},
	{"COL", "CO", "170", []string{"colombia"}},
	{"VEN", "VE", "862", []string{"venezuela"}},
	{"ECU", "EC", "218", []string{"ecuador"}},
	{"BOL", "BO", "068", []string{"bolivia"}},
	{"PRY", "PY", "600", []string{"paraguay"}},
	{"URY", "UY", "858", []string{"uruguay"}},
	{"GUY", "GY", "328", []string{"guyana"}},
	{"SUR", "SR", "740", []string{"suriname"}},
	// 大洋洲
	{"AUS", "AU", "036", []string{"australia"}},
	{"NZL", "NZ", "554", []string{"new zealand"}},
	{"PNG", "PG", "598", []string{"papua new guinea"}},
	{"FJI", "FJ", "242", []string{"fiji"}},
	{"SLB", "SB", "090", []string{"solomon islands", "solomon is."}},
	{"VUT", "VU", "548", []string{"vanuatu"}},
	{"NCL", "NC", "540", []string{"new caledonia"}},
	{"WSM", "WS", "882", []string{"samoa"}},
	{"TON", "TO", "776", []string{"tonga"}},
	// 非洲
	{"EGY", "EG", "818", []string{"egypt"}},
	{"LBY", "LY", "434", []string{"libya"}},
	{"TUN", "TN", "788", []string{"tunisia"}},
	{"DZA", "DZ", "012", []string{"algeria"}},
	{"MAR", "MA", "504", []string{"morocco"}},
	{"ESH", "EH", "732", []string{"western sahara", "w. sahara"}},
	{"SDN", "SD", "729", []string{"sudan"}},
	{"SSD", "SS", "728", []string{"south sudan", "s. sudan"}},
	{"ETH", "ET", "231", []string{"ethiopia"}},
	{"ERI", "ER", "232", []string{"eritrea"}},
	{"DJI", "DJ", "262", []string{"djibouti"}},
	{"SOM", "SO", "706", []string{"somalia"}},
	{"KEN", "KE", "404", []string{"kenya"}},
	{"UGA", "UG", "800", []string{"uganda"}},
	{"TZA", "TZ", "834", []string{"tanzania", "united republic of tanzania"}},
	{"RWA", "RW", "646", []string{"rwanda"}},
	{"BDI", "BI", "108", []string{"burundi"}},
	{"COD", "CD", "180", []string{"democratic republic of the congo", "dem. rep. congo", "dr congo", "congo, dem. rep."}},
	{"COG", "CG", "178", []string{"republic of the congo", "congo", "congo, rep."}},
	{"GAB", "GA", "266", []string{"gabon"}},
	{"GNQ", "GQ", "226", []string{"equatorial guinea", "eq. guinea"}},
	{"CMR", "CM", "120", []string{"cameroon"}},
	{"CAF", "CF", "140", []string{"central african republic", "central african rep."}},
	{"TCD", "TD", "148", []string{"chad"}},
	{"NER", "NE", "562", []string{"niger"}},
	{"NGA", "NG", "566", []string{"nigeria"}},
	{"BEN", "BJ", "204", []string{"benin"}},
	{"TGO", "TG", "768", []string{"togo"}},
	{"GHA", "GH", "288", []string{"ghana"}},
	{"CIV", "CI", "384", []string{"cote d'ivoire", "ivory coast"}},
	{"BFA", "BF", "854", []string{"burkina faso"}},
	{"MLI", "ML", "466", []string{"mali"}},
	{"MRT", "MR", "478", []string{"mauritania"}},
	{"SEN", "SN", "686", []string{"senegal"}},
	{"GMB", "GM", "270", []string{"gambia", "the gambia"}},
	{"GNB", "GW", "624", []string{"guinea-bissau"}},
	{"GIN", "GN", "324", []string{"guinea"}},
	{"SLE", "SL", "694", []string{"sierra leone"}},
	{"LBR", "LR", "430", []string{"liberia"}},
	{"AGO", "AO", "024", []string{"angola"}},
	{"ZMB", "ZM", "894", []string{"zambia"}},
	{"MWI", "MW", "454", []string{"malawi"}},
	{"MOZ", "MZ", "508", []string{"mozambique"}},
	{"ZWE", "ZW", "716", []string{"zimbabwe"}},
	{"BWA", "BW", "072", []string{"botswana"}},
	{"NAM", "NA", "516", []string{"namibia"}},
	{"ZAF", "ZA", "710", []string{"south africa"}},
	{"LSO", "LS", "426", []string{"lesotho"}},
	{"SWZ", "SZ", "748", []string{"eswatini", "swaziland"}},
	{"MDG", "MG", "450", []string{"madagascar"}},
	{"MUS", "MU", "480", []string{"mauritius"}},
	// 极地与其他
	{"ATA", "AQ", "010", []string{"antarctica"}},
	{"ATF", "TF", "260", []string{"french southern and antarctic lands", "fr. s. antarctic lands"}},
	{"FLK", "FK", "238", []string{"falkland islands", "falkland is."}},
}
