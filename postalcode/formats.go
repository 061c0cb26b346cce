package postalcode

// formatData maps a country code to the postal code templates in use there.
//
// Template alphabet:
//
//	#  one digit 0-9
//	@  one letter a-z or A-Z
//	CC the country's own code, expanded when the table is built
//
// Any other character is matched literally. An empty list means the country
// has no known format and every code is accepted.
//
// Rows are generated by `zipzap extract` and reviewed by hand before landing here.
var formatData = map[string][]string{
	"AD": {"CC###"},               // Andorra
	"AE": {},                      // United Arab Emirates
	"AF": {"####"},                // Afghanistan
	"AG": {},                      // Antigua and Barbuda
	"AI": {"@I-2640"},             // Anguilla
	"AL": {"####"},                // Albania
	"AM": {"####"},                // Armenia
	"AO": {},                      // Angola
	"AQ": {"BIQQ 1ZZ"},            // British Antarctic Territory
	"AR": {"####", "@####@@@"},    // Argentina
	"AS": {"#####", "#####-####"}, // American Samoa
	"AT": {"####"},                // Austria
	"AU": {"####"},                // Australia
	"AW": {},                      // Aruba
	"AX": {"#####", "CC-#####"},   // Åland Islands
	"AZ": {"CC####"},              // Azerbaijan

	"BA": {"#####"},          // Bosnia and Herzegovina
	"BB": {"CC#####"},        // Barbados
	"BD": {"####"},           // Bangladesh
	"BE": {"####"},           // Belgium
	"BF": {},                 // Burkina Faso
	"BG": {"####"},           // Bulgaria
	"BH": {"###", "####"},    // Bahrain
	"BI": {},                 // Burundi
	"BJ": {},                 // Benin
	"BL": {"97133"},          // Saint Barthélemy
	"BM": {"@@ ##", "@@ @@"}, // Bermuda
	"BN": {"@@####"},         // Brunei
	"BO": {},                 // Bolivia
	"BQ": {},                 // Bonaire, Sint Eustatius and Saba
	"BR": {"#####-###"},      // Brazil
	"BS": {},                 // Bahamas
	"BT": {"#####"},          // Bhutan
	"BV": {},                 // Bouvet Island
	"BW": {},                 // Botswana
	"BY": {"######"},         // Belarus
	"BZ": {},                 // Belize

	"CA": {"@#@ #@#"},             // Canada
	"CC": {"####"},                // Cocos (Keeling) Island
	"CD": {},                      // Congo, Democratic Republic
	"CF": {},                      // Central African Republic
	"CG": {},                      // Congo (Brazzaville)
	"CH": {"####"},                // Switzerland
	"CI": {},                      // Côte d'Ivoire (Ivory Coast)
	"CK": {},                      // Cook Islands
	"CL": {"#######", "###-####"}, // Chile
	"CM": {},                      // Cameroon
	"CN": {"######"},              // China
	"CO": {"######"},              // Colombia
	"CR": {"#####", "#####-####"}, // Costa Rica
	"CU": {"#####"},               // Cuba
	"CV": {"####"},                // Cape Verde
	"CW": {},                      // Curaçao
	"CX": {"####"},                // Christmas Island
	"CY": {"####"},                // Cyprus
	"CZ": {"### ##"},              // Czech Republic

	"DE": {"#####"}, // Germany
	"DJ": {},        // Djibouti
	"DK": {"####"},  // Denmark
	"DM": {},        // Dominica
	"DO": {"#####"}, // Dominican Republic
	"DZ": {"#####"}, // Algeria

	"EC": {"######"}, // Ecuador
	"EE": {"#####"},  // Estonia
	"EG": {"#####"},  // Egypt
	"EH": {},         // Western Sahara
	"ER": {},         // Eritrea
	"ES": {"#####"},  // Spain
	"ET": {"####"},   // Ethiopia

	"FI": {"#####"},               // Finland
	"FJ": {},                      // Fiji
	"FK": {"FIQQ 1ZZ"},            // Falkland Islands
	"FM": {"#####", "#####-####"}, // Micronesia
	"FO": {"###"},                 // Faroe Islands
	"FR": {"#####"},               // France

	"GA": {},                                                                                                                               // Gabon
	"GB": {"@#", "@##", "@@#", "@@##", "@#@", "@@#@", "@@@", "@# #@@", "@## #@@", "@@# #@@", "@@## #@@", "@#@ #@@", "@@#@ #@@", "@@@ #@@"}, // United Kingdom
	"GD": {},                                                                                                                               // Grenada
	"GE": {"####"},                                                                                                                         // Georgia
	"GF": {"973##"},                                                                                                                        // French Guiana
	"GG": {"@@# #@@", "@@## #@@"},                                                                                                          // Guernsey
	"GH": {},                                                                                                                               // Ghana
	"GI": {"GX11 1@@"},                                                                                                                     // Gibraltar
	"GL": {"####"},                                                                                                                         // Greenland
	"GM": {},                                                                                                                               // Gambia
	"GN": {"###"},                                                                                                                          // Guinea
	"GP": {"971##"},                                                                                                                        // Guadeloupe
	"GQ": {},                                                                                                                               // Equatorial Guinea
	"GR": {"### ##"},                                                                                                                       // Greece
	"GS": {"SIQQ 1ZZ"},                                                                                                                     // South Georgia and the South Sandwich Islands
	"GT": {"#####"},                                                                                                                        // Guatemala
	"GU": {"#####", "#####-####"},                                                                                                          // Guam
	"GW": {"####"},                                                                                                                         // Guinea Bissau
	"GY": {},                                                                                                                               // Guyana

	"HK": {},          // Hong Kong
	"HM": {},          // Heard and McDonald Islands
	"HN": {"CC#####"}, // Honduras
	"HR": {"#####"},   // Croatia
	"HT": {"####"},    // Haiti
	"HU": {"####"},    // Hungary

	"ID": {"#####"},                                                                // Indonesia
	"IE": {"@## @#@#", "@## @@##", "@## @#@@", "@#W @#@#", "@#W @@##", "@#W @#@@"}, // Ireland
	"IL": {"#######"},                                                              // Israel
	"IM": {"CC# #@@", "CC## #@@"},                                                  // Isle of Man
	"IN": {"######", "## ###"},                                                     // India
	"IO": {"BB#D 1ZZ"},                                                             // British Indian Ocean Territory
	"IQ": {"#####"},                                                                // Iraq
	"IR": {"##########"},                                                           // Iran
	"IS": {"###"},                                                                  // Iceland
	"IT": {"#####"},                                                                // Italy

	"JE": {"CC# #@@", "CC## #@@"}, // Jersey
	"JM": {"##"},                  // Jamaica
	"JO": {"#####"},               // Jordan
	"JP": {"###-####"},            // Japan

	"KE": {"#####"},    // Kenya
	"KG": {"######"},   // Kyrgyzstan
	"KH": {"#####"},    // Cambodia
	"KI": {},           // Kiribati
	"KM": {},           // Comoros
	"KN": {},           // Saint Kitts and Nevis
	"KP": {},           // Korea, North
	"KR": {"#####"},    // Korea, South
	"KW": {"#####"},    // Kuwait
	"KY": {"CC#-####"}, // Cayman Islands
	"KZ": {"######"},   // Kazakhstan

	"LA": {"#####"},              // Laos
	"LB": {"#####", "#### ####"}, // Lebanon
	"LC": {"LC##  ###"},          // Saint Lucia
	"LI": {"####"},               // Liechtenstein
	"LK": {"#####"},              // Sri Lanka
	"LR": {"####"},               // Liberia
	"LS": {"###"},                // Lesotho
	"LT": {"CC-#####"},           // Lithuania
	"LU": {"####"},               // Luxembourg
	"LV": {"CC-####"},            // Latvia
	"LY": {},                     // Libya

	"MA": {"#####"},               // Morocco
	"MC": {"980##"},               // Monaco
	"MD": {"CC####", "CC-####"},   // Moldova
	"ME": {"#####"},               // Montenegro
	"MF": {"97150"},               // Saint Martin
	"MG": {"###"},                 // Madagascar
	"MH": {"#####", "#####-####"}, // Marshall Islands
	"MK": {"####"},                // Macedonia
	"ML": {},                      // Mali
	"MM": {"#####"},               // Myanmar
	"MN": {"######"},              // Mongolia
	"MO": {},                      // Macau
	"MP": {"#####", "#####-####"}, // Northern Mariana Islands
	"MQ": {"972##"},               // Martinique
	"MR": {},                      // Mauritania
	"MS": {"MSR 1110-1350"},       // Montserrat
	"MT": {"@@@ ####"},            // Malta
	"MU": {"#####"},               // Mauritius
	"MV": {"#####"},               // Maldives
	"MW": {},                      // Malawi
	"MX": {"#####"},               // Mexico
	"MY": {"#####"},               // Malaysia
	"MZ": {"####"},                // Mozambique

	"NA": {},          // Namibia
	"NC": {"988##"},   // New Caledonia
	"NE": {"####"},    // Niger
	"NF": {"####"},    // Norfolk Island
	"NG": {"######"},  // Nigeria
	"NI": {"#####"},   // Nicaragua
	"NL": {"#### @@"}, // Netherlands
	"NO": {"####"},    // Norway
	"NP": {"#####"},   // Nepal
	"NR": {},          // Nauru
	"NU": {},          // Niue
	"NZ": {"####"},    // New Zealand

	"OM": {"###"}, // Oman

	"PA": {"####"},                // Panama
	"PE": {"#####", "CC ####"},    // Peru
	"PF": {"987##"},               // French Polynesia
	"PG": {"###"},                 // Papua New Guinea
	"PH": {"####"},                // Philippines
	"PK": {"#####"},               // Pakistan
	"PL": {"##-###"},              // Poland
	"PM": {"97500"},               // Saint Pierre and Miquelon
	"PN": {"PCR# 1ZZ"},            // Pitcairn Islands
	"PR": {"#####", "#####-####"}, // Puerto Rico
	"PS": {"###"},                 // Palestine
	"PT": {"####-###", "####"},    // Portugal
	"PW": {"#####", "#####-####"}, // Palau
	"PY": {"####"},                // Paraguay

	"QA": {}, // Qatar

	"RE": {"974##"},  // Réunion
	"RO": {"######"}, // Romania
	"RS": {"#####"},  // Serbia
	"RU": {"######"}, // Russia
	"RW": {},         // Rwanda

	"SA": {"#####-####", "#####"}, // Saudi Arabia
	"SB": {},                      // Solomon Islands
	"SC": {},                      // Seychelles
	"SD": {"#####"},               // Sudan
	"SE": {"### ##"},              // Sweden
	"SG": {"######"},              // Singapore
	"SH": {"@@@@ 1ZZ"},            // Saint Helena, Ascension and Tristan da Cunha
	"SI": {"####", "CC-####"},     // Slovenia
	"SJ": {"####"},                // Svalbard and Jan Mayen
	"SK": {"### ##"},              // Slovakia
	"SL": {},                      // Sierra Leone
	"SM": {"4789#"},               // San Marino
	"SN": {"#####"},               // Senegal
	"SO": {"@@ #####"},            // Somalia
	"SR": {},                      // Suriname
	"SS": {},                      // South Sudan
	"ST": {},                      // Sao Tome and Principe
	"SV": {"####"},                // El Salvador
	"SX": {},                      // Sint Maarten
	"SY": {},                      // Syria
	"SZ": {"@###"},                // Swaziland

	"TC": {"TKC@ 1ZZ"},      // Turks and Caicos Islands
	"TD": {},                // Chad
	"TF": {},                // French Southern and Antarctic Territories
	"TG": {},                // Togo
	"TH": {"#####"},         // Thailand
	"TJ": {"######"},        // Tajikistan
	"TK": {},                // Tokelau
	"TL": {},                // East Timor
	"TM": {"######"},        // Turkmenistan
	"TN": {"####"},          // Tunisia
	"TO": {},                // Tonga
	"TR": {"#####"},         // Turkey
	"TT": {"######"},        // Trinidad and Tobago
	"TV": {},                // Tuvalu
	"TW": {"###", "###-##"}, // Taiwan
	"TZ": {"#####"},         // Tanzania

	"UA": {"#####"},               // Ukraine
	"UG": {},                      // Uganda
	"UM": {},                      // United States Minor Outlying Islands
	"US": {"#####", "#####-####"}, // United States
	"UY": {"#####"},               // Uruguay
	"UZ": {"######"},              // Uzbekistan

	"VA": {"00120"},               // Vatican
	"VC": {"CC####"},              // Saint Vincent and the Grenadines
	"VE": {"####", "####-@"},      // Venezuela
	"VG": {"CC####"},              // British Virgin Islands
	"VI": {"#####", "#####-####"}, // U.S. Virgin Islands
	"VN": {"######"},              // Vietnam
	"VU": {},                      // Vanuatu

	"WF": {"986##"},  // Wallis and Futuna
	"WS": {"CC####"}, // Samoa

	"XK": {"#####"}, // Kosovo

	"YE": {},        // Yemen
	"YT": {"976##"}, // Mayotte

	"ZA": {"####"},  // South Africa
	"ZM": {"#####"}, // Zambia
	"ZW": {},        // Zimbabwe
}
