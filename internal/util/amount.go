package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencyTokens = strings.NewReplacer(
	"₹", "", "$", "", "£", "", "€", "",
	"Rs.", "", "Rs", "", "INR", "",
	"`", "", " ", " ",
)

func NormalizeAmount(raw string) string {
	s := strings.TrimSpace(currencyTokens.Replace(raw))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return strings.TrimSpace(raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return d.StringFixed(2)
}
