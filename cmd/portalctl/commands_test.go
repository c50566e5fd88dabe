package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal/internal/domain/entity"
)

func TestParseFields(t *testing.T) {
	fields, err := parseFields([]string{"Description=Rent", " Note =a=b", "Empty="})
	require.NoError(t, err)
	assert.Equal(t, []entity.ReceiptField{
		{Label: "Description", Value: "Rent"},
		{Label: "Note", Value: "a=b"},
		{Label: "Empty", Value: ""},
	}, fields)

	for _, bad := range []string{"no separator", "=value"} {
		_, err := parseFields([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRenderReceiptCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "receipt.pdf")

	var stdout bytes.Buffer
	cmd := renderReceiptCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--title", "Payment Receipt",
		"--field", "Amount=1200.50",
		"--link", "https://portal.example/receipt/payment/1.pdf",
		"--out", out,
	})

	require.NoError(t, cmd.Execute())

	pdf, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Contains(t, stdout.String(), "Wrote "+out)
}
