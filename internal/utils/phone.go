package utils

import (
	"fmt"
	"strings"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone parses a phone number, national or international, and
// returns it in E.164 form. National numbers are read in defaultRegion.
func NormalizePhone(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", models.ErrInvalidPhone)
	}
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidPhone, raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
