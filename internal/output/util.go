package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func optFixed(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func optRate(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
