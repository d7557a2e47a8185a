package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gnomegl/whoxy/pkg/models"
)

func historyRequest() models.SearchRequest {
	return models.SearchRequest{Kind: models.KindHistory, Value: "example.com", Page: 1, Mode: models.ModeNormal}
}

func searchRequest(mode models.Mode) models.SearchRequest {
	return models.SearchRequest{Kind: models.KindKeyword, Value: "example", Page: 1, Mode: mode}
}

func TestHistoryFormatting(t *testing.T) {
	resp := &models.APIResponse{
		DomainName:  "example.com",
		TotalResult: "2",
		TotalPages:  "1",
		WhoisRecords: []models.WhoisRecord{
			{
				QueryTime: "2020-01-01",
				RegistrantContact: &models.Contact{
					FullName:     "Alice Example",
					EmailAddress: "alice@example.com",
				},
			},
			{
				QueryTime: "2021-01-01",
				AdministrativeContact: &models.Contact{
					FullName: "Bob Admin",
				},
			},
		},
	}

	formatter := NewTextFormatter(Style{})
	got, err := formatter.Format(resp, historyRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []string{
		"WHOIS History: example.com",
		"Total records: 2",
		"Total pages: 1",
		"Query time: 2020-01-01",
		"Query time: 2021-01-01",
		"Registrant Contact:",
		"Administrative Contact:",
		"Name: Alice Example",
		"Email: alice@example.com",
		"Name: Bob Admin",
	}
	for _, check := range checks {
		if !strings.Contains(got, check) {
			t.Errorf("output should contain %q\n%s", check, got)
		}
	}
}

func TestHistoryPreservesRecordOrder(t *testing.T) {
	resp := &models.APIResponse{
		DomainName: "example.com",
		WhoisRecords: []models.WhoisRecord{
			{QueryTime: "2020-01-01"},
			{QueryTime: "2021-01-01"},
		},
	}

	formatter := NewTextFormatter(Style{})
	got, err := formatter.Format(resp, historyRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := strings.Index(got, "2020-01-01")
	second := strings.Index(got, "2021-01-01")
	if first == -1 || second == -1 {
		t.Fatalf("both query times should appear in output:\n%s", got)
	}
	if first > second {
		t.Error("records must render in server order")
	}
}

func TestSearchHeader(t *testing.T) {
	resp := &models.APIResponse{
		TotalResult: "42",
		TotalPages:  "5",
		CurrentPage: "2",
	}
	req := models.SearchRequest{Kind: models.KindName, Value: "John Doe", Page: 2, Mode: models.ModeNormal}

	formatter := NewTextFormatter(Style{})
	got, err := formatter.Format(resp, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []string{
		"Reverse WHOIS (name): John Doe",
		"Total results: 42",
		"Page 2 of 5",
	}
	for _, check := range checks {
		if !strings.Contains(got, check) {
			t.Errorf("output should contain %q\n%s", check, got)
		}
	}
}

func TestDomainsMode(t *testing.T) {
	resp := &models.APIResponse{
		TotalResult: "2",
		SearchResult: []models.DomainRecord{
			{DomainName: "example.com"},
			{DomainName: "example.org"},
		},
	}

	formatter := NewTextFormatter(Style{})
	got, err := formatter.Format(resp, searchRequest(models.ModeDomains))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	// Header, counts, then one line per domain
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), got)
	}
	if lines[2] != "example.com" || lines[3] != "example.org" {
		t.Errorf("domains should be listed one per line in order:\n%s", got)
	}
}

func TestMicroModeSuppressesAbsentDates(t *testing.T) {
	resp := &models.APIResponse{
		SearchResult: []models.DomainRecord{
			{DomainName: "bare.com"},
			{DomainName: "dated.com", CreateDate: "2020-05-05", ExpireDate: "2025-05-05"},
		},
	}

	formatter := NewTextFormatter(Style{})
	got, err := formatter.Format(resp, searchRequest(models.ModeMicro))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "bare.com") {
		t.Error("domain without dates should still be listed")
	}
	if strings.Count(got, "Created:") != 1 {
		t.Errorf("expected exactly one Created line:\n%s", got)
	}
	if strings.Contains(got, "Updated:") {
		t.Errorf("absent update date must not produce a line:\n%s", got)
	}
	if !strings.Contains(got, "Expires: 2025-05-05") {
		t.Errorf("present expire date should be rendered:\n%s", got)
	}
}

func TestMiniModeSuppressesAbsentFields(t *testing.T) {
	resp := &models.APIResponse{
		SearchResult: []models.DomainRecord{
			{
				DomainName: "example.com",
				RegistrantContact: &models.Contact{
					EmailAddress: "owner@example.com",
				},
			},
			{DomainName: "anon.com"},
		},
	}

	formatter := NewTextFormatter(Style{})
	got, err := formatter.Format(resp, searchRequest(models.ModeMini))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "Email: owner@example.com") {
		t.Errorf("present email should be rendered:\n%s", got)
	}
	if strings.Contains(got, "Registrant:") {
		t.Errorf("absent registrant name must not produce a line:\n%s", got)
	}
	if !strings.Contains(got, "anon.com") {
		t.Error("record without a contact should still list the domain")
	}
}

func TestNormalModeAggregatesDates(t *testing.T) {
	resp := &models.APIResponse{
		SearchResult: []models.DomainRecord{
			{
				DomainName: "example.com",
				CreateDate: "2020-01-01",
				ExpireDate: "2026-01-01",
				RegistrantContact: &models.Contact{
					FullName:    "Alice Example",
					CompanyName: "Example LLC",
				},
			},
		},
	}

	formatter := NewTextFormatter(Style{})
	got, err := formatter.Format(resp, searchRequest(models.ModeNormal))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "Dates: Created 2020-01-01, Expires 2026-01-01") {
		t.Errorf("dates line should aggregate only present values:\n%s", got)
	}
	if !strings.Contains(got, "Registrant Contact:") {
		t.Errorf("contact block missing:\n%s", got)
	}
}

func TestNormalModeOmitsDatesLineWhenNonePresent(t *testing.T) {
	resp := &models.APIResponse{
		SearchResult: []models.DomainRecord{{DomainName: "example.com"}},
	}

	formatter := NewTextFormatter(Style{})
	got, err := formatter.Format(resp, searchRequest(models.ModeNormal))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "Dates:") {
		t.Errorf("record without dates must not get a Dates line:\n%s", got)
	}
}

func TestContactBlockOnlyEmail(t *testing.T) {
	formatter := NewTextFormatter(Style{})
	var buf bytes.Buffer
	formatter.writeContact(&buf, &models.Contact{EmailAddress: "only@example.com"}, "Registrant")

	got := buf.String()
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected label plus one field line, got %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "Registrant Contact:" {
		t.Errorf("unexpected label line %q", lines[0])
	}
	if !strings.Contains(lines[1], "Email: only@example.com") {
		t.Errorf("unexpected field line %q", lines[1])
	}
	if strings.Contains(got, "Address:") {
		t.Error("no address components means no Address line")
	}
}

func TestContactBlockAddressJoining(t *testing.T) {
	formatter := NewTextFormatter(Style{})
	var buf bytes.Buffer
	formatter.writeContact(&buf, &models.Contact{
		StreetAddress: "1 Main St",
		CityName:      "Springfield",
		ZipCode:       "12345",
		CountryName:   "US",
	}, "Administrative")

	got := buf.String()
	if !strings.Contains(got, "Address: 1 Main St, Springfield, 12345, US") {
		t.Errorf("address components should be comma-joined in order with no trailing separator:\n%s", got)
	}
}

func TestContactBlockNilContact(t *testing.T) {
	formatter := NewTextFormatter(Style{})
	var buf bytes.Buffer
	formatter.writeContact(&buf, nil, "Registrant")
	if buf.Len() != 0 {
		t.Errorf("nil contact should render nothing, got %q", buf.String())
	}
}

func TestMinimalResponseRoundTrip(t *testing.T) {
	resp := &models.APIResponse{
		DomainName:   "example.com",
		WhoisRecords: []models.WhoisRecord{{}},
	}

	formatter := NewTextFormatter(Style{})
	got, err := formatter.Format(resp, historyRequest())
	if err != nil {
		t.Fatalf("minimal well-formed response must not fail: %v", err)
	}
	if !strings.Contains(got, "WHOIS History: example.com") {
		t.Errorf("mandatory header missing:\n%s", got)
	}
}

func TestWriteBalance(t *testing.T) {
	resp := &models.BalanceResponse{
		LiveWhoisBalance:    "100",
		WhoisHistoryBalance: "50",
	}

	formatter := NewTextFormatter(Style{})
	var buf bytes.Buffer
	if err := formatter.WriteBalance(&buf, resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, check := range []string{"Live WHOIS:    100", "WHOIS history: 50", "Reverse WHOIS: 0"} {
		if !strings.Contains(got, check) {
			t.Errorf("output should contain %q\n%s", check, got)
		}
	}
}

func TestWriteRawJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRawJSON(&buf, []byte(`{"a":1,"b":[2,3]}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "\n  \"a\": 1") {
		t.Errorf("expected indented JSON, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestWriteRawJSONInvalidBody(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRawJSON(&buf, []byte("not json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "not json" {
		t.Errorf("invalid JSON should pass through untouched, got %q", buf.String())
	}
}
