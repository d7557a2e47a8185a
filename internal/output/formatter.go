// Package output renders Whoxy API responses as human-readable text
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gnomegl/whoxy/pkg/models"
)

const separatorWidth = 60

// TextFormatter renders a decoded API response according to the request kind
// and mode. It is pure: one response in, one text rendering out.
type TextFormatter struct {
	style Style
}

// NewTextFormatter creates a formatter with the given style.
func NewTextFormatter(style Style) *TextFormatter {
	return &TextFormatter{style: style}
}

// Format returns the formatted response as a string.
func (f *TextFormatter) Format(resp *models.APIResponse, req models.SearchRequest) (string, error) {
	var sb strings.Builder
	if err := f.Write(&sb, resp, req); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write writes the formatted response to the writer. Records are rendered in
// the array order the service returned; no sorting or deduplication.
func (f *TextFormatter) Write(w io.Writer, resp *models.APIResponse, req models.SearchRequest) error {
	if req.Kind == models.KindHistory {
		return f.writeHistory(w, resp)
	}
	return f.writeSearch(w, resp, req)
}

func (f *TextFormatter) writeHistory(w io.Writer, resp *models.APIResponse) error {
	fmt.Fprintln(w, f.style.Header(fmt.Sprintf("WHOIS History: %s", resp.DomainName)))
	fmt.Fprintf(w, "Total records: %s | Total pages: %s\n", orZero(resp.TotalResult), orZero(resp.TotalPages))

	separator := strings.Repeat("-", separatorWidth)
	for _, record := range resp.WhoisRecords {
		fmt.Fprintln(w, separator)
		if record.QueryTime != "" {
			fmt.Fprintf(w, "Query time: %s\n", record.QueryTime)
		}
		f.writeContact(w, record.RegistrantContact, "Registrant")
		f.writeContact(w, record.AdministrativeContact, "Administrative")
	}
	return nil
}

func (f *TextFormatter) writeSearch(w io.Writer, resp *models.APIResponse, req models.SearchRequest) error {
	fmt.Fprintln(w, f.style.Header(fmt.Sprintf("Reverse WHOIS (%s): %s", req.Kind, req.Value)))
	fmt.Fprintf(w, "Total results: %s | Page %s of %s\n",
		orZero(resp.TotalResult), orZero(resp.CurrentPage), orZero(resp.TotalPages))

	switch req.Mode {
	case models.ModeDomains:
		for _, record := range resp.SearchResult {
			fmt.Fprintln(w, record.DomainName)
		}
	case models.ModeMicro:
		for _, record := range resp.SearchResult {
			fmt.Fprintln(w, f.style.Domain(record.DomainName))
			writeField(w, "Created", record.CreateDate)
			writeField(w, "Updated", record.UpdateDate)
			writeField(w, "Expires", record.ExpireDate)
		}
	case models.ModeMini:
		for _, record := range resp.SearchResult {
			fmt.Fprintln(w, f.style.Domain(record.DomainName))
			if record.RegistrantContact != nil {
				writeField(w, "Registrant", record.RegistrantContact.FullName)
				writeField(w, "Email", record.RegistrantContact.EmailAddress)
				writeField(w, "Company", record.RegistrantContact.CompanyName)
			}
		}
	default:
		separator := strings.Repeat("-", separatorWidth)
		for _, record := range resp.SearchResult {
			fmt.Fprintln(w, separator)
			fmt.Fprintln(w, f.style.Domain(record.DomainName))
			if dates := joinDates(record); dates != "" {
				fmt.Fprintf(w, "Dates: %s\n", dates)
			}
			f.writeContact(w, record.RegistrantContact, "Registrant")
			f.writeContact(w, record.AdministrativeContact, "Administrative")
		}
	}
	return nil
}

// writeContact renders one labeled contact block. Absent fields produce no
// line at all. The composite address line joins the present components with
// ", " in the fixed order street, city, state, zip, country.
func (f *TextFormatter) writeContact(w io.Writer, contact *models.Contact, label string) {
	if contact == nil {
		return
	}
	fmt.Fprintln(w, f.style.Label(label+" Contact:"))
	writeField(w, "Name", contact.FullName)
	writeField(w, "Company", contact.CompanyName)
	writeField(w, "Email", contact.EmailAddress)
	writeField(w, "Phone", contact.PhoneNumber)
	if address := joinAddress(contact); address != "" {
		fmt.Fprintf(w, "  Address: %s\n", address)
	}
}

// WriteBalance renders the account credit summary.
func (f *TextFormatter) WriteBalance(w io.Writer, resp *models.BalanceResponse) error {
	fmt.Fprintln(w, f.style.Header("Whoxy account balance"))
	fmt.Fprintf(w, "  Live WHOIS:    %s\n", orZero(resp.LiveWhoisBalance))
	fmt.Fprintf(w, "  WHOIS history: %s\n", orZero(resp.WhoisHistoryBalance))
	fmt.Fprintf(w, "  Reverse WHOIS: %s\n", orZero(resp.ReverseWhoisBalance))
	return nil
}

// WriteRawJSON pretty-prints the response body without interpreting it.
func WriteRawJSON(w io.Writer, body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		// Body is not valid JSON; emit it untouched.
		_, werr := w.Write(body)
		return werr
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func writeField(w io.Writer, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "  %s: %s\n", name, value)
}

func joinDates(record models.DomainRecord) string {
	parts := make([]string, 0, 3)
	if record.CreateDate != "" {
		parts = append(parts, "Created "+record.CreateDate)
	}
	if record.UpdateDate != "" {
		parts = append(parts, "Updated "+record.UpdateDate)
	}
	if record.ExpireDate != "" {
		parts = append(parts, "Expires "+record.ExpireDate)
	}
	return strings.Join(parts, ", ")
}

func joinAddress(contact *models.Contact) string {
	parts := make([]string, 0, 5)
	for _, part := range []string{
		contact.StreetAddress,
		contact.CityName,
		contact.StateName,
		contact.ZipCode,
		contact.CountryName,
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func orZero(v models.FlexString) string {
	if v == "" {
		return "0"
	}
	return string(v)
}
