package receipt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal/internal/domain/entity"
)

func makeFields(n int) []entity.ReceiptField {
	fields := make([]entity.ReceiptField, n)
	for i := range fields {
		fields[i] = entity.ReceiptField{Label: fmt.Sprintf("Field %d", i), Value: "value"}
	}

	return fields
}

func TestLayout_SinglePage(t *testing.T) {
	doc := Layout("Maintenance Receipt", []entity.ReceiptField{
		{Label: "ID", Value: "1"},
		{Label: "Note", Value: "leaky faucet"},
		{Label: "Status", Value: "Pending"},
	}, A4())

	require.Len(t, doc.Pages, 1)
	assert.Equal(t, 4, doc.LineCount())
	assert.Empty(t, doc.PageBreaks())

	lines := doc.Pages[0].Lines
	assert.Equal(t, Line{Text: "Maintenance Receipt", X: 20, Y: 20, Title: true}, lines[0])
	assert.Equal(t, Line{Text: "ID: 1", X: 20, Y: 32}, lines[1])
	assert.Equal(t, Line{Text: "Note: leaky faucet", X: 20, Y: 40}, lines[2])
	assert.Equal(t, Line{Text: "Status: Pending", X: 20, Y: 48}, lines[3])
}

func TestLayout_Pagination(t *testing.T) {
	tests := []struct {
		name   string
		fields int
		pages  int
		breaks []int
	}{
		{"no fields", 0, 1, []int{}},
		{"first page full", 31, 1, []int{}},
		{"spills one line", 32, 2, []int{31}},
		{"second page full", 63, 2, []int{31}},
		{"third page", 64, 3, []int{31, 63}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Layout("Receipt", makeFields(tt.fields), A4())

			assert.Len(t, doc.Pages, tt.pages)
			assert.Equal(t, tt.fields+1, doc.LineCount())
			assert.Equal(t, tt.breaks, doc.PageBreaks())

			for _, page := range doc.Pages {
				for _, line := range page.Lines {
					assert.LessOrEqual(t, line.Y, 297.0-20.0)
				}
			}
		})
	}
}

func TestLayout_ContinuationPageStartsAtTopMargin(t *testing.T) {
	doc := Layout("Receipt", makeFields(32), A4())

	require.Len(t, doc.Pages, 2)
	assert.Equal(t, 272.0, doc.Pages[0].Lines[31].Y)
	assert.Equal(t, Line{Text: "Field 31: value", X: 20, Y: 20}, doc.Pages[1].Lines[0])
}

func TestLayout_ClipsLongLines(t *testing.T) {
	long := strings.Repeat("é", 200)

	doc := Layout("Receipt", []entity.ReceiptField{{Label: "Note", Value: long}}, A4())

	text := doc.Pages[0].Lines[1].Text
	assert.Equal(t, 110, len([]rune(text)))
	assert.True(t, strings.HasPrefix(text, "Note: éé"))
}

func TestLayout_Deterministic(t *testing.T) {
	fields := makeFields(70)

	assert.Equal(t, Layout("Receipt", fields, A4()), Layout("Receipt", fields, A4()))
}
