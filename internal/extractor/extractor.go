package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Ranakb/ai-document-system/pkg/types"
)

// Fields holds the structured values extracted for one document. Missing
// fields are present with a nil value so every report entry has the same
// shape per category.
type Fields map[string]interface{}

// Extraction patterns. Currency amounts accept an optional symbol prefix,
// thousands separators, and two decimal places.
var (
	currencyPattern = `(?:USD|Rs\.?|₹|\$)?\s?\d+(?:,\d{3})*(?:\.\d{2})?`

	invoiceNumberRe = regexp.MustCompile(`(?i)(INV[-_ ]?\d+)`)
	dateRe          = regexp.MustCompile(`(\d{4}[-/]\d{2}[-/]\d{2})`)
	companyRe       = regexp.MustCompile(`Company[: ]+([A-Z][A-Za-z0-9 &]+)`)
	totalAmountRe   = regexp.MustCompile(`Total[: ]+` + currencyPattern)

	emailRe     = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phoneRe     = regexp.MustCompile(`\+?\d[\d\s\-()]{8,}`)
	expYearsRe  = regexp.MustCompile(`(?i)(\d+)\s+years?`)
	accountRe   = regexp.MustCompile(`(?i)(Account[-_ ]?\d+)`)
	usageKWhRe  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s?kWh`)
	amountDueRe = regexp.MustCompile(`Amount[: ]+` + currencyPattern)
)

// ExtractFields dispatches field extraction on the exact category label.
// Unrecognized labels, Other, and Unclassifiable yield an empty field set,
// never an error.
func ExtractFields(category types.Category, text string) Fields {
	switch category {
	case types.CategoryInvoice:
		return extractInvoice(text)
	case types.CategoryResume:
		return extractResume(text)
	case types.CategoryUtilityBill:
		return extractUtilityBill(text)
	default:
		return Fields{}
	}
}

func extractInvoice(text string) Fields {
	fields := Fields{
		"invoice_number": nil,
		"date":           nil,
		"company":        nil,
		"total_amount":   nil,
	}

	if m := invoiceNumberRe.FindStringSubmatch(text); m != nil {
		fields["invoice_number"] = m[1]
	}
	if m := dateRe.FindStringSubmatch(text); m != nil {
		fields["date"] = m[1]
	}
	if m := companyRe.FindStringSubmatch(text); m != nil {
		fields["company"] = strings.TrimSpace(m[1])
	}
	if m := totalAmountRe.FindString(text); m != "" {
		fields["total_amount"] = m
	}
	return fields
}

func extractResume(text string) Fields {
	fields := Fields{
		"name":             nil,
		"email":            nil,
		"phone":            nil,
		"experience_years": nil,
	}

	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			fields["name"] = line
			break
		}
	}
	if m := emailRe.FindString(text); m != "" {
		fields["email"] = m
	}
	if m := phoneRe.FindString(text); m != "" {
		phone := strings.NewReplacer("\n", "", "\r", "").Replace(m)
		fields["phone"] = strings.TrimSpace(phone)
	}
	if m := expYearsRe.FindStringSubmatch(text); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			fields["experience_years"] = years
		}
	}
	return fields
}

func extractUtilityBill(text string) Fields {
	fields := Fields{
		"account_number": nil,
		"date":           nil,
		"usage_kwh":      nil,
		"amount_due":     nil,
	}

	if m := accountRe.FindStringSubmatch(text); m != nil {
		fields["account_number"] = m[1]
	}
	if m := dateRe.FindStringSubmatch(text); m != nil {
		fields["date"] = m[1]
	}
	if m := usageKWhRe.FindStringSubmatch(text); m != nil {
		if usage, err := strconv.ParseFloat(m[1], 64); err == nil {
			fields["usage_kwh"] = usage
		}
	}
	if m := amountDueRe.FindString(text); m != "" {
		fields["amount_due"] = m
	}
	return fields
}
