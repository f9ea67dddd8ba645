package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runforua/donorboard/internal/domain/invoice"
	"github.com/runforua/donorboard/internal/testutil"
)

func TestWriteInvoicesCSV(t *testing.T) {
	rows, err := InvoiceRows([]invoice.Invoice{
		testutil.NewInvoiceFixture("inv-1", "2FUA-RUN4UA", testutil.WithAmountPaid("1,234.50")),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteInvoicesCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	assert.Equal(t, strings.Split(InvoiceCSVHeader, ","), header)

	record := records[1]
	require.Len(t, record, len(header))
	byColumn := make(map[string]string, len(header))
	for i, name := range header {
		byColumn[name] = record[i]
	}

	assert.Equal(t, "inv-1", byColumn["id"])
	assert.Equal(t, "PAID", byColumn["status"])
	assert.Equal(t, "2022-04-10T18:17:53Z", byColumn["registered_at"])
	assert.Equal(t, "2022-04-10", byColumn["registered_at_date"])
	assert.Equal(t, "1234.5", byColumn["amount_paid"])
	assert.Equal(t, "Olena Honcharenko", byColumn["customer_name"])
	assert.Equal(t, "Slava Ukraini!", byColumn["comment"])
	assert.Equal(t, "Ukraine", byColumn["address_country"])

	// optional columns render as empty cells, not literal "nil"
	assert.Equal(t, "", byColumn["last_sent_at"])
	assert.Equal(t, "", byColumn["company"])
	assert.Equal(t, "", byColumn["utm_campaign"])
}

func TestWriteItemsCSV(t *testing.T) {
	rows, err := ItemRows([]invoice.Invoice{
		testutil.NewInvoiceFixture("inv-1", "2FUA-RUN4UA", testutil.WithItems(
			testutil.NewLineItemFixture("5K Run", "2", "25.00"),
			testutil.NewLineItemFixture("T-Shirt", "1", "15.00"),
		)),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteItemsCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, strings.Split(ItemCSVHeader, ","), header)

	last := records[2]
	require.Len(t, last, len(header))
	assert.Equal(t, "1", last[len(last)-5])
	assert.Equal(t, "T-Shirt", last[len(last)-1])
	// item rows replicate the invoice columns
	assert.Equal(t, "inv-1", last[0])
}

func TestWriteInvoicesCSVEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInvoicesCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "an empty table still carries the header")
}
