package address

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var ErrInvalidCountry = errors.New("invalid country code")

// NormalizeCountry validates an ISO 3166-1 alpha-2 country code and returns
// it upper-cased.
func NormalizeCountry(code string) (string, error) {
	code = strings.TrimSpace(code)
	if len(code) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountry, code)
	}
	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountry, code)
	}
	return region.String(), nil
}
