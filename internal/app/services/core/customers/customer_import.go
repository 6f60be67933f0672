package customers

import (
	"bytes"
	"errors"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var errEmptySpreadsheet = errors.New("spreadsheet has no sheets")

// parseCustomerSheet reads the first sheet of an xlsx workbook. The first row
// is the header, later rows map onto customers by column name.
func parseCustomerSheet(content []byte) ([]models.Customer, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, errEmptySpreadsheet
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columns[strings.TrimSpace(header)] = i
	}

	var customers []models.Customer
	for _, row := range rows[1:] {
		cell := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		if cell(constvars.ImportColumnName) == "" && cell(constvars.ImportColumnEmail) == "" {
			continue
		}

		customer := models.Customer{
			Name:        cell(constvars.ImportColumnName),
			Email:       cell(constvars.ImportColumnEmail),
			Phone:       cell(constvars.ImportColumnPhone),
			Birthday:    parseSheetDate(cell(constvars.ImportColumnBirthday)),
			PaymentType: paymentTypeFromSheet(cell(constvars.ImportColumnPaymentType)),
			SessionRate: parseSheetAmount(cell(constvars.ImportColumnSessionRate)),
			MonthlyRate: parseSheetAmount(cell(constvars.ImportColumnMonthlyRate)),
			BalanceDue:  parseSheetAmount(cell(constvars.ImportColumnBalanceDue)),
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// paymentTypeFromSheet maps the spreadsheet labels onto payment types. Any
// other label yields "" and the row is rejected by the import.
func paymentTypeFromSheet(value string) string {
	switch {
	case strings.EqualFold(value, constvars.ImportPaymentTypeMonthly):
		return constvars.PaymentTypeMonthly
	case strings.EqualFold(value, constvars.ImportPaymentTypePerSession):
		return constvars.PaymentTypePerSession
	default:
		return ""
	}
}

// parseSheetAmount accepts "150", "150.5", "150,50" and "1.234,56"; anything
// else is 0.
func parseSheetAmount(value string) float64 {
	if value == "" {
		return 0
	}
	if strings.Contains(value, ",") {
		value = strings.ReplaceAll(value, ".", "")
		value = strings.ReplaceAll(value, ",", ".")
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return 0
	}
	return amount.InexactFloat64()
}

// parseSheetDate accepts the text layouts of ParseFlexibleDate and raw Excel
// date serials. Unreadable values leave the birthday empty.
func parseSheetDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	if parsed, err := utils.ParseFlexibleDate(value); err == nil {
		return &parsed
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
			local := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local)
			return &local
		}
	}
	return nil
}
