package presentvalue

import (
	"math"

	"github.com/iwvelando/rehab-plan/pkg/constants"
	"github.com/shopspring/decimal"
)

// leibnizTable holds the cumulative Leibniz coefficients, 5% per year
// compounded monthly, indexed by the number of months.
var leibnizTable = [...]string{
	"0.0000", "0.9959", "1.9876", "2.9752", "3.9587", "4.9381", "5.9135", "6.8848", "7.8521", "8.8153",
	"9.7746", "10.7299", "11.6812", "12.6286", "13.5721", "14.5116", "15.4472", "16.3790", "17.3069", "18.2309",
	"19.1511", "20.0675", "20.9801", "21.8889", "22.7939", "23.6952", "24.5927", "25.4865", "26.3766", "27.2630",
	"28.1457", "29.0248", "29.9002", "30.7720", "31.6402", "32.5047", "33.3657", "34.2231", "35.0770", "35.9273",
	"36.7740", "37.6173", "38.4571", "39.2933", "40.1261", "40.9555", "41.7814", "42.6039", "43.4230", "44.2386",
	"45.0509", "45.8598", "46.6654", "47.4676", "48.2665", "49.0621", "49.8544", "50.6433", "51.4290", "52.2115",
	"52.9907", "53.7667", "54.5394", "55.3090", "56.0753", "56.8385", "57.5985", "58.3554", "59.1091", "59.8597",
}

var coefficients = func() []decimal.Decimal {
	table := make([]decimal.Decimal, len(leibnizTable))
	for i, v := range leibnizTable {
		table[i] = decimal.RequireFromString(v)
	}
	return table
}()

// Coefficient returns the cumulative Leibniz coefficient for months. Values
// past the table are computed as (1 - (1+r)^-n) / r with r = 5% / 12 and
// rounded to four decimals. Months below 1 yield 0.
func Coefficient(months int) decimal.Decimal {
	if months <= 0 {
		return decimal.Zero
	}
	if months < len(coefficients) {
		return coefficients[months]
	}
	r := constants.LeibnizAnnualRate / constants.MonthsPerYear
	value := (1 - math.Pow(1+r, -float64(months))) / r
	return decimal.NewFromFloat(value).Round(4)
}
