package output

import "github.com/shopspring/decimal"

// FormatAmount formats a portfolio value with whole-dollar precision.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatAmount(amount decimal.Decimal) string { return "$" + amount.StringFixed(0) }

// FormatPercentage formats a decimal as a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }
