// Package models contains shared data structures used across the application
package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SearchKind identifies which Whoxy lookup a request performs. The string
// value doubles as the API query parameter name for reverse searches.
type SearchKind string

const (
	KindHistory SearchKind = "history"
	KindName    SearchKind = "name"
	KindEmail   SearchKind = "email"
	KindCompany SearchKind = "company"
	KindKeyword SearchKind = "keyword"
)

// ParseSearchKind converts a CLI subcommand name into a SearchKind.
func ParseSearchKind(s string) (SearchKind, bool) {
	switch SearchKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindHistory:
		return KindHistory, true
	case KindName:
		return KindName, true
	case KindEmail:
		return KindEmail, true
	case KindCompany:
		return KindCompany, true
	case KindKeyword:
		return KindKeyword, true
	default:
		return "", false
	}
}

// Mode selects the output granularity for reverse-WHOIS results. It only
// affects rendering, never the data the API returns.
type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeMini    Mode = "mini"
	ModeMicro   Mode = "micro"
	ModeDomains Mode = "domains"
)

// ParseMode converts the --mode flag value into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeNormal, "":
		return ModeNormal, true
	case ModeMini:
		return ModeMini, true
	case ModeMicro:
		return ModeMicro, true
	case ModeDomains:
		return ModeDomains, true
	default:
		return "", false
	}
}

// SearchRequest describes one API lookup.
type SearchRequest struct {
	Kind  SearchKind
	Value string
	Page  int
	Mode  Mode
}

// FlexString decodes a JSON string, number, or null into a plain string.
// The Whoxy API is inconsistent about quoting numeric fields.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Contact holds the registrant or administrative contact of a record.
// Empty strings mean the field was absent or null in the payload.
type Contact struct {
	FullName      string `json:"full_name,omitempty"`
	CompanyName   string `json:"company_name,omitempty"`
	EmailAddress  string `json:"email_address,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	CityName      string `json:"city_name,omitempty"`
	StateName     string `json:"state_name,omitempty"`
	CountryName   string `json:"country_name,omitempty"`
	ZipCode       string `json:"zip_code,omitempty"`
}

// WhoisRecord is one historical WHOIS snapshot of a domain.
type WhoisRecord struct {
	QueryTime             string   `json:"query_time,omitempty"`
	RegistrantContact     *Contact `json:"registrant_contact,omitempty"`
	AdministrativeContact *Contact `json:"administrative_contact,omitempty"`
}

// DomainRecord is one reverse-WHOIS search hit.
type DomainRecord struct {
	DomainName            string   `json:"domain_name,omitempty"`
	CreateDate            string   `json:"create_date,omitempty"`
	UpdateDate            string   `json:"update_date,omitempty"`
	ExpireDate            string   `json:"expire_date,omitempty"`
	RegistrantContact     *Contact `json:"registrant_contact,omitempty"`
	AdministrativeContact *Contact `json:"administrative_contact,omitempty"`
}

// APIResponse covers both response shapes the API returns. History lookups
// populate DomainName and WhoisRecords; reverse searches populate CurrentPage
// and SearchResult. The status envelope is present on every response.
type APIResponse struct {
	StatusCode   FlexString `json:"status_code,omitempty"`
	StatusReason string     `json:"status_reason,omitempty"`

	DomainName   string         `json:"domain_name,omitempty"`
	TotalResult  FlexString     `json:"total_result,omitempty"`
	TotalPages   FlexString     `json:"total_pages,omitempty"`
	CurrentPage  FlexString     `json:"current_page,omitempty"`
	WhoisRecords []WhoisRecord  `json:"whois_records,omitempty"`
	SearchResult []DomainRecord `json:"search_result,omitempty"`
}

// BalanceResponse is the account=balance endpoint payload.
type BalanceResponse struct {
	StatusCode   FlexString `json:"status_code,omitempty"`
	StatusReason string     `json:"status_reason,omitempty"`

	LiveWhoisBalance    FlexString `json:"live_whois_balance,omitempty"`
	WhoisHistoryBalance FlexString `json:"whois_history_balance,omitempty"`
	ReverseWhoisBalance FlexString `json:"reverse_whois_balance,omitempty"`
}
