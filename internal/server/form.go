package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var errMissingSession = errors.New("session_id is required")

type formValues struct {
	r    *http.Request
	errs []error
}

func parseForm(r *http.Request) (*formValues, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form body: %w", err)
	}
	return &formValues{r: r}, nil
}

func (f *formValues) str(name string) string {
	return strings.TrimSpace(f.r.PostForm.Get(name))
}

func (f *formValues) optionalFloat(name string) *float64 {
	raw := f.str(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		f.errs = append(f.errs, fmt.Errorf("%s: not a number", name))
		return nil
	}
	return &v
}

func (f *formValues) float(name string) float64 {
	if v := f.optionalFloat(name); v != nil {
		return *v
	}
	return 0
}

func (f *formValues) optionalDecimal(name string) decimal.NullDecimal {
	raw := f.str(name)
	if raw == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		f.errs = append(f.errs, fmt.Errorf("%s: not a decimal", name))
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func (f *formValues) bool(name string) bool {
	switch strings.ToLower(f.str(name)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func (f *formValues) err() error {
	return errors.Join(f.errs...)
}

func sessionID(f *formValues) (string, error) {
	id := f.str("session_id")
	if id == "" {
		if c, err := f.r.Cookie(sessionCookie); err == nil {
			id = c.Value
		}
	}
	if id == "" {
		return "", errMissingSession
	}
	return id, nil
}

// validationMessage flattens validator errors into "field: tag" pairs.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
