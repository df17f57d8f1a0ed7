package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ranakb/ai-document-system/pkg/types"
)

func TestExtractFields_Invoice(t *testing.T) {
	text := `Invoice INV-2024
Date: 2024-03-15
Company: Acme Corp
Total: $1,250.00`

	fields := ExtractFields(types.CategoryInvoice, text)
	assert.Equal(t, "INV-2024", fields["invoice_number"])
	assert.Equal(t, "2024-03-15", fields["date"])
	assert.Equal(t, "Acme Corp", fields["company"])
	assert.Equal(t, "Total: $1,250.00", fields["total_amount"])
}

func TestExtractFields_InvoiceVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		want interface{}
	}{
		{"underscore invoice number", "ref inv_77 attached", "invoice_number", "inv_77"},
		{"spaced invoice number", "INV 123", "invoice_number", "INV 123"},
		{"slash date", "Date: 2023/12/01", "date", "2023/12/01"},
		{"missing company", "Invoice INV-1", "company", nil},
		{"total without symbol", "Total: 300.00", "total_amount", "Total: 300.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ExtractFields(types.CategoryInvoice, tt.text)
			assert.Equal(t, tt.want, fields[tt.key])
		})
	}
}

func TestExtractFields_Resume(t *testing.T) {
	text := `Jane Doe
Email: jane.doe@example.com
Phone: +1 555-010-2030
8 years of experience in backend development`

	fields := ExtractFields(types.CategoryResume, text)
	assert.Equal(t, "Jane Doe", fields["name"])
	assert.Equal(t, "jane.doe@example.com", fields["email"])
	assert.Equal(t, 8, fields["experience_years"])

	phone, ok := fields["phone"].(string)
	require.True(t, ok)
	assert.Contains(t, phone, "555-010-2030")
}

func TestExtractFields_ResumeMissingFields(t *testing.T) {
	fields := ExtractFields(types.CategoryResume, "\n\nAda Lovelace")
	assert.Equal(t, "Ada Lovelace", fields["name"])
	assert.Nil(t, fields["email"])
	assert.Nil(t, fields["phone"])
	assert.Nil(t, fields["experience_years"])
}

func TestExtractFields_UtilityBill(t *testing.T) {
	text := `City Power and Light
Account-55102
Billing Date: 2024-02-01
Usage: 342.5 kWh
Amount: $96.40`

	fields := ExtractFields(types.CategoryUtilityBill, text)
	assert.Equal(t, "Account-55102", fields["account_number"])
	assert.Equal(t, "2024-02-01", fields["date"])
	assert.Equal(t, 342.5, fields["usage_kwh"])
	assert.Equal(t, "Amount: $96.40", fields["amount_due"])
}

func TestExtractFields_UnknownCategory(t *testing.T) {
	assert.Empty(t, ExtractFields(types.CategoryOther, "any text"))
	assert.Empty(t, ExtractFields(types.CategoryUnclassifiable, "any text"))
	assert.Empty(t, ExtractFields(types.Category("Memo"), "any text"))
}

func TestExtractFields_SchemaStable(t *testing.T) {
	// Every invoice extraction carries the full field schema, with nil for
	// anything missing.
	fields := ExtractFields(types.CategoryInvoice, "nothing matches here")
	require.Len(t, fields, 4)
	for _, key := range []string{"invoice_number", "date", "company", "total_amount"} {
		v, ok := fields[key]
		assert.True(t, ok, "missing key %s", key)
		assert.Nil(t, v)
	}
}
