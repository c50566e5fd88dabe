package entity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	receiptTimeLayout = "2006-01-02 15:04:05"
	receiptDateLayout = "2006-01-02"
	emptyReceiptValue = "-"
)

// ReceiptField is one "label: value" line of a receipt.
type ReceiptField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReceiptEvent asks the notifier to email a rendered receipt.
type ReceiptEvent struct {
	To             string         `json:"to"`
	Title          string         `json:"title"`
	Fields         []ReceiptField `json:"fields"`
	AttachmentName string         `json:"attachmentName"`
}

// Field builds a receipt field, formatting the value for display.
func Field(label string, value any) ReceiptField {
	return ReceiptField{Label: label, Value: FormatReceiptValue(value)}
}

// DateField builds a receipt field holding only the calendar date.
func DateField(label string, value time.Time) ReceiptField {
	if value.IsZero() {
		return ReceiptField{Label: label, Value: emptyReceiptValue}
	}

	return ReceiptField{Label: label, Value: value.Format(receiptDateLayout)}
}

// FormatReceiptValue renders booleans as Yes/No, money with two decimals,
// times in UTC and absent values as "-".
func FormatReceiptValue(value any) string {
	switch v := value.(type) {
	case nil:
		return emptyReceiptValue
	case string:
		return v
	case bool:
		if v {
			return "Yes"
		}

		return "No"
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case decimal.Decimal:
		return v.StringFixed(2)
	case *decimal.Decimal:
		if v == nil {
			return emptyReceiptValue
		}

		return v.StringFixed(2)
	case time.Time:
		if v.IsZero() {
			return emptyReceiptValue
		}

		return v.UTC().Format(receiptTimeLayout)
	case *time.Time:
		if v == nil {
			return emptyReceiptValue
		}

		return FormatReceiptValue(*v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
