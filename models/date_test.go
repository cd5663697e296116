package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 15 {
		t.Errorf("parsed = %v", d)
	}

	for _, bad := range []string{"15-03-2026", "2026/03/15", "not a date", "2026-13-01"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("2026-03-15")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2026-03-15"` {
		t.Errorf("marshaled = %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip: %v != %v", back, d)
	}
}

func TestDateJSONNullable(t *testing.T) {
	// Perk'te expiry *Date — JSON null alanı hatasız atlanmalı.
	var perk struct {
		ExpiryDate *Date `json:"expiryDate"`
	}
	if err := json.Unmarshal([]byte(`{"expiryDate":null}`), &perk); err != nil {
		t.Fatalf("null expiry: %v", err)
	}
	if perk.ExpiryDate != nil {
		t.Errorf("expiry = %v, want nil", perk.ExpiryDate)
	}

	if err := json.Unmarshal([]byte(`{"expiryDate":"2026-01-02"}`), &perk); err != nil {
		t.Fatalf("valid expiry: %v", err)
	}
	if perk.ExpiryDate == nil || perk.ExpiryDate.String() != "2026-01-02" {
		t.Errorf("expiry = %v", perk.ExpiryDate)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan("2026-03-15"); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if d.String() != "2026-03-15" {
		t.Errorf("scanned = %v", d)
	}

	var fromBytes Date
	if err := fromBytes.Scan([]byte("2025-12-31")); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if fromBytes.String() != "2025-12-31" {
		t.Errorf("scanned = %v", fromBytes)
	}

	var fromNil Date
	if err := fromNil.Scan(nil); err != nil {
		t.Errorf("Scan nil: %v", err)
	}

	var fromInt Date
	if err := fromInt.Scan(42); err == nil {
		t.Error("Scan int should fail")
	}
}

func TestTodayIsMidnightUTC(t *testing.T) {
	today := Today()
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("Today = %v, want midnight", today.Time)
	}
	if today.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", today.Location())
	}
}
