package contacts

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/barracuda-partners/backend/ent"
	"github.com/xuri/excelize/v2"
)

// exportHeaders is the fixed column order of contact exports.
var exportHeaders = []string{
	"Name", "Email", "Company", "Type", "Status", "Messenger", "Username",
	"Affiliate ID", "Sub1", "Traffic Source", "Campaign ID",
	"FTD", "FTD Amount", "FTD Date", "Created At",
}

// ExportCSV renders contacts as CSV. String fields are wrapped in double
// quotes but embedded quotes are not escaped; consumers of this feed
// expect the format as-is.
func ExportCSV(rows []*ent.Contact) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(exportHeaders, ","))

	for _, c := range rows {
		buf.WriteByte('\n')
		buf.WriteString(strings.Join([]string{
			quote(c.Name),
			quote(c.Email),
			quote(c.Company),
			quote(string(c.Type)),
			quote(string(c.Status)),
			quote(c.Messenger),
			quote(c.Username),
			quote(c.AffiliateID),
			quote(c.Sub1),
			quote(c.TrackingSource),
			quote(c.CampaignID),
			yesNo(c.Ftd),
			amountCell(c.FtdAmount),
			dateCell(c.FtdDate),
			c.CreatedAt.UTC().Format(time.RFC3339),
		}, ","))
	}

	return buf.Bytes()
}

// ExportXLSX renders the same columns as a spreadsheet.
func ExportXLSX(rows []*ent.Contact) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Contacts"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, c := range rows {
		row := i + 2
		values := []interface{}{
			c.Name, c.Email, c.Company, string(c.Type), string(c.Status),
			c.Messenger, c.Username, c.AffiliateID, c.Sub1,
			c.TrackingSource, c.CampaignID, yesNo(c.Ftd),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		if c.FtdAmount > 0 {
			cell, _ := excelize.CoordinatesToCellName(13, row)
			f.SetCellValue(sheet, cell, c.FtdAmount)
		}
		if c.FtdDate != nil {
			cell, _ := excelize.CoordinatesToCellName(14, row)
			f.SetCellValue(sheet, cell, c.FtdDate.UTC().Format(time.RFC3339))
		}
		cell, _ := excelize.CoordinatesToCellName(15, row)
		f.SetCellValue(sheet, cell, c.CreatedAt.UTC().Format(time.RFC3339))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFilename names an export file after today's date.
func ExportFilename(format string) string {
	return fmt.Sprintf("contacts-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
}

func quote(s string) string {
	return `"` + s + `"`
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func amountCell(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func dateCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
