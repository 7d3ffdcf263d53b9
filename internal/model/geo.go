package model

// Country represents a country record from the reference dataset
type Country struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	ISO3           string            `json:"iso3"`
	ISO2           string            `json:"iso2"`
	NumericCode    string            `json:"numericCode"`
	PhoneCode      string            `json:"phoneCode"`
	Capital        string            `json:"capital"`
	Currency       string            `json:"currency"`
	CurrencyName   string            `json:"currencyName"`
	CurrencySymbol string            `json:"currencySymbol"`
	TLD            string            `json:"tld"`
	Native         string            `json:"native"`
	Region         string            `json:"region"`
	RegionID       *int              `json:"regionId,omitempty"`
	Subregion      string            `json:"subregion"`
	SubregionID    *int              `json:"subregionId,omitempty"`
	Nationality    string            `json:"nationality,omitempty"`
	Timezones      []Timezone        `json:"timezones"`
	Translations   map[string]string `json:"translations"`
	// Latitude/Longitude are kept as decimal strings to preserve the
	// precision and formatting of the source dataset
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Emoji     string `json:"emoji"`
	EmojiU    string `json:"emojiU"`
}

// Timezone represents a timezone entry attached to a country
type Timezone struct {
	ZoneName      string `json:"zoneName"`
	GmtOffset     int    `json:"gmtOffset"`
	GmtOffsetName string `json:"gmtOffsetName"`
	Abbreviation  string `json:"abbreviation"`
	TzName        string `json:"tzName"`
}

// State represents a state/province record. CountryCode and CountryName
// are denormalized copies of the parent country's fields
type State struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	CountryID   int     `json:"countryId"`
	CountryCode string  `json:"countryCode"`
	CountryName string  `json:"countryName"`
	StateCode   string  `json:"stateCode"`
	Type        *string `json:"type"`
	Latitude    string  `json:"latitude"`
	Longitude   string  `json:"longitude"`
}

// City represents a city record. State and country fields are denormalized
// from the parent state and grandparent country, either in the source data
// itself or by the store when the compact encoding is loaded
type City struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	StateID     int    `json:"stateId"`
	StateCode   string `json:"stateCode"`
	StateName   string `json:"stateName"`
	CountryID   int    `json:"countryId"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
	// WikiDataID is an optional external identifier, empty string if absent
	WikiDataID string `json:"wikiDataId"`
}

// Currency is a distinct currency derived from the country collection
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Stats holds the true sizes of the three collections
type Stats struct {
	Countries int `json:"countries"`
	States    int `json:"states"`
	Cities    int `json:"cities"`
}
