package model

// Address is the mailing address record of one employee. StreetNumberName
// holds both address lines joined together; the screen splits them but the
// consumers never did.
type Address struct {
	StreetNumberName string `yaml:"street"      json:"street"`
	City             string `yaml:"city"        json:"city"`
	Province         string `yaml:"province"    json:"province"`
	PostalCode       string `yaml:"postal_code" json:"postal_code"`
}
