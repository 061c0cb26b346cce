package postalcode

// DefaultDisplayName is returned for countries without a local name for postal codes.
const DefaultDisplayName = "Postal Code"

// NameInfo is the local name of a postal code and, for acronyms, what it stands for.
type NameInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

var displayNames = map[string]NameInfo{
	"BR": {Name: "CEP", Description: "Código de endereçamento postal (Postal Addressing Code)"},
	"CA": {Name: "Postal Code"},
	"CH": {Name: "NPA", Description: "numéro postal d'acheminement in French-speaking Switzerland and numero postale di avviamento in Italian-speaking Switzerland"},
	"DE": {Name: "PLZ", Description: "Postleitzahl (Postal Routing Number)"},
	"IE": {Name: "Eircode"},
	"IN": {Name: "PIN code", Description: "postal index number"},
	"IT": {Name: "CAP", Description: "Codice di Avviamento Postale (Postal Expedition Code)"},
	"NL": {Name: "Postcode"},
	"US": {Name: "ZIP code", Description: "Zone Improvement Plan"},
}
