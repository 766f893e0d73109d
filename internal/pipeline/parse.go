package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"salon-analytics/internal/model"
	"salon-analytics/pkg/utils"
)

// ParseCSV turns CSV text into records. The first row is the header; cells
// are matched to record fields by a normalized header key, so "Client name",
// "client_name" and "ClientName" all land in the same field. Quoted fields
// and embedded commas are handled by encoding/csv.
func ParseCSV(text string) ([]model.Record, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.ReplaceAll(h, `"`, ""))
	}

	var out []model.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed rows are skipped, not fatal.
			continue
		}
		if isBlankRow(row) {
			continue
		}
		rec := model.Record{}
		for i, header := range headers {
			if i >= len(row) {
				break // short row leaves trailing columns absent
			}
			assignField(&rec, header, utils.ParseValue(row[i]))
		}
		out = append(out, rec)
	}
	return out, nil
}

// ParseJSON deserializes an array of flat objects. Anything that is not an
// array is a structural error surfaced to the caller.
func ParseJSON(data []byte) ([]model.Record, error) {
	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("file must contain a JSON array of records: %w", err)
	}
	out := make([]model.Record, 0, len(raw))
	for _, m := range raw {
		rec := model.Record{}
		for key, val := range m {
			assignField(&rec, key, val)
		}
		out = append(out, rec)
	}
	return out, nil
}

// assignField routes one loosely-typed column value into the record. Column
// names are matched after stripping case, spaces and punctuation; anything
// unrecognized is preserved in Extra.
func assignField(rec *model.Record, header string, value interface{}) {
	switch key := normalizeHeader(header); key {
	case "clientname", "client", "customername":
		rec.ClientName = utils.Text(value)
	case "acquisitionchannel", "channel":
		rec.AcquisitionChannel = utils.Text(value)
	case "bookingdate":
		rec.BookingDate = utils.Text(value)
	case "transactiondate", "date":
		rec.TransactionDate = utils.Text(value)
	case "consumedservice", "service":
		rec.Service = utils.Text(value)
	case "servicecategory", "category":
		rec.ServiceCategory = utils.Text(value)
	case "paymentmethod":
		rec.PaymentMethod = utils.Text(value)
	case "confirmationstatus", "status":
		rec.ConfirmationStatus = utils.Text(value)
	case "offersapplicability", "offerapplicability", "offer":
		rec.OfferApplicability = utils.Text(value)
	case "loyaltystage":
		rec.LoyaltyStage = utils.Text(value)
	case "loyaltypoints":
		rec.LoyaltyPoints = utils.Numeric(value)
	case "employee", "staff":
		rec.Employee = utils.Text(value)
	case "starttime":
		rec.StartTime = utils.Text(value)
	case "endtime":
		rec.EndTime = utils.Text(value)
	case "currency", "currencycode":
		rec.SetExtra("currency", utils.Text(value))
	default:
		if strings.HasPrefix(key, "price") || key == "amount" || key == "revenue" {
			rec.Price = utils.Numeric(value)
			// Headers like "Price ( MAD )" carry the currency code.
			if cur := currencyFromHeader(header); cur != "" {
				rec.SetExtra("currency", cur)
			}
			return
		}
		if key != "" {
			rec.SetExtra(header, value)
		}
	}
}

func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// currencyFromHeader extracts the code from a "Price ( MAD )" style header.
func currencyFromHeader(header string) string {
	open := strings.Index(header, "(")
	closing := strings.Index(header, ")")
	if open < 0 || closing <= open {
		return ""
	}
	return strings.TrimSpace(header[open+1 : closing])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
