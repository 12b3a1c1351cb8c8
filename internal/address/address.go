// Package address splits free-form address lines into the parts required by
// the Packet API.
package address

import (
	"regexp"
	"strings"
)

var streetPattern = regexp.MustCompile(`^(.*[^0-9]+) (([1-9][0-9]*)/)?([1-9][0-9]*[a-cA-C]?)$`)

// ParseStreet splits an address line into the street and the house number.
// A line without a trailing house number is returned whole with a nil house
// number.
func ParseStreet(line string) (string, *string) {
	line = strings.TrimSpace(line)
	match := streetPattern.FindStringSubmatch(line)
	if match == nil {
		return line, nil
	}

	houseNumber := match[4]
	if match[3] != "" {
		houseNumber = match[3] + "/" + match[4]
	}
	return match[1], &houseNumber
}

// Address is a recipient address as sent to the carrier.
type Address struct {
	Street      string  `json:"street"`
	HouseNumber *string `json:"house_number,omitempty"`
	City        string  `json:"city"`
	Zip         string  `json:"zip"`
	Country     string  `json:"country"`
}

// FromLine builds an address whose street and house number are parsed from
// line unless houseNumber is already known.
func FromLine(line, houseNumber, city, zip, country string) Address {
	a := Address{City: city, Zip: zip, Country: strings.ToUpper(country)}
	if houseNumber != "" {
		a.Street = strings.TrimSpace(line)
		a.HouseNumber = &houseNumber
		return a
	}
	a.Street, a.HouseNumber = ParseStreet(line)
	return a
}
