package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout, perk son kullanma tarihlerinin wire formatı.
const dateLayout = "2006-01-02"

// Date, saat bilgisi olmayan bir takvim günüdür.
// JSON'da ve DB'de "YYYY-MM-DD" string'i olarak taşınır.
// time.Time embed edilir — Before/After/Equal gibi metodlar bedavaya gelir.
type Date struct {
	time.Time
}

// ParseDate, "YYYY-MM-DD" string'inden Date oluşturur.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// Today, sunucunun yerel tarihini gün hassasiyetinde döner.
// Karşılaştırmalar UTC gece yarısına normalize edilir — ParseDate ile simetrik.
func Today() Date {
	now := time.Now()
	return Date{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value, database/sql yazma tarafı — TEXT kolon olarak saklanır.
func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

// Scan, database/sql okuma tarafı.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		*d = Date{Time: v}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
