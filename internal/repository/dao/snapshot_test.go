package dao

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotDAOMissingFile(t *testing.T) {
	d := NewSnapshotDAO(filepath.Join(t.TempDir(), "customers.jsonl"))

	records, err := d.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Nil(t, records)
}

func TestSnapshotDAORoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "customers.jsonl")
	d := NewSnapshotDAO(path)

	records := []Customer{
		{
			ID: 10, Name: "Ana", Age: 30,
			Tickets: []Ticket{
				{
					Class: "vip", Match: "BRCHL", Seat: "vA1", Code: "vA1 BRCHL", Validated: true,
					Invoices: []Invoice{
						{
							Restaurant: "Grill",
							Products: []Product{
								{Name: "Beer", Unit: "330ml", Price: 8.5, Stock: 10, Attribute: "alcoholic"},
							},
						},
					},
				},
			},
		},
		{ID: 11, Name: "Luis", Age: 17},
	}

	require.NoError(t, d.WriteAll(context.Background(), records))

	got, err := d.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)

	// One line per customer.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(string(data), "\n"), "\n"), 2)
}

func TestSnapshotDAOReplacesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.jsonl")
	d := NewSnapshotDAO(path)

	require.NoError(t, d.WriteAll(context.Background(), []Customer{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Luis"}}))
	require.NoError(t, d.WriteAll(context.Background(), []Customer{{ID: 1, Name: "Ana"}}))

	got, err := d.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
}

func TestSnapshotDAOSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.jsonl")
	content := `{"id": 10, "name": "Ana", "age": 30}
not json at all
{"id": 11, "name": "Luis", "age": 17}

`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewSnapshotDAO(path).ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].ID)
	assert.Equal(t, 11, got[1].ID)
}
