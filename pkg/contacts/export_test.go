package contacts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/barracuda-partners/backend/ent/enttest"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	_ "github.com/mattn/go-sqlite3"
)

func TestExportCSVFormat(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	service := NewService(client)
	ctx := context.Background()

	c, err := service.Create(ctx, CreateInput{
		Email:          "csv@example.com",
		Type:           "affiliate",
		Name:           "Ana Gomez",
		Company:        "Acme Media",
		Messenger:      "telegram",
		Username:       "@ana",
		AffiliateID:    "42",
		Sub1:           "campaign-a",
		TrackingSource: "contact_form",
		CampaignID:     "summer",
	})
	require.NoError(t, err)
	require.NoError(t, service.MarkFTD(ctx, c.ID, 150))

	rows, err := service.All(ctx, models.ContactFilter{})
	require.NoError(t, err)

	out := string(ExportCSV(rows))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2, "header plus one data row")

	assert.Equal(t, "Name,Email,Company,Type,Status,Messenger,Username,Affiliate ID,Sub1,Traffic Source,Campaign ID,FTD,FTD Amount,FTD Date,Created At", lines[0])

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 15)
	assert.Equal(t, `"Ana Gomez"`, fields[0])
	assert.Equal(t, `"csv@example.com"`, fields[1])
	assert.Equal(t, `"affiliate"`, fields[3])
	assert.Equal(t, "Yes", fields[11])
	assert.Equal(t, "150", fields[12])
	assert.NotEmpty(t, fields[13])
}

func TestExportCSVEmpty(t *testing.T) {
	out := string(ExportCSV(nil))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Name,Email,"))
}

func TestExportXLSX(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	service := NewService(client)
	ctx := context.Background()

	_, err := service.Create(ctx, CreateInput{
		Email: "xlsx@example.com", Type: "user", Name: "Bob",
	})
	require.NoError(t, err)

	rows, err := service.All(ctx, models.ContactFilter{})
	require.NoError(t, err)

	data, err := ExportXLSX(rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(strings.NewReader(string(data)))
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, "Name", cells[0][0])
	assert.Equal(t, "xlsx@example.com", cells[1][1])
}

func TestExportFilename(t *testing.T) {
	name := ExportFilename("csv")
	assert.True(t, strings.HasPrefix(name, "contacts-"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
	assert.Contains(t, name, time.Now().UTC().Format("2006-01-02"))
}
