// Package format renders timestamps and sizes for command output.
package format

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Getter looks up a config value. config.Get and domain.ConfigProvider.Get
// both satisfy it.
type Getter func(key string) (string, bool)

// Formatter formats values according to the display_* config keys.
type Formatter struct {
	get Getter
}

// New returns a Formatter reading display settings from get. A nil get
// uses the built-in formats.
func New(get Getter) Formatter {
	if get == nil {
		get = func(string) (string, bool) { return "", false }
	}
	return Formatter{get: get}
}

// DateTime formats date and time, e.g. "Jan 23 15:04" or "01/23/2024 3:04 PM".
func (f Formatter) DateTime(t time.Time) string {
	return f.Date(t) + " " + f.Time(t)
}

// Date formats the date portion, e.g. "Jan 23", "23/01/2024" or "2024-01-23".
func (f Formatter) Date(t time.Time) string {
	return t.Format(f.dateLayout())
}

// DateShort formats the date without a year.
func (f Formatter) DateShort(t time.Time) string {
	return t.Format(f.dateLayoutShort())
}

// Time formats the time portion, e.g. "15:04" or "3:04 PM".
func (f Formatter) Time(t time.Time) string {
	if f.value("display_time", "24h") == "12h" {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

// Ago formats t relative to now, e.g. "3 days ago".
func (f Formatter) Ago(t time.Time) string {
	return humanize.Time(t)
}

// Size formats a byte count, e.g. "1.2 GB". Zero renders as "0 B".
func Size(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.Bytes(uint64(bytes))
}

// Quota formats usage against a quota in gigabytes, e.g. "1.2 GB of 50 GB (2%)".
func Quota(usedBytes int64, quotaGB int) string {
	if quotaGB <= 0 {
		return Size(usedBytes)
	}
	total := uint64(quotaGB) * 1000 * 1000 * 1000
	pct := float64(max(usedBytes, 0)) / float64(total) * 100
	return Size(usedBytes) + " of " + humanize.Bytes(total) + " (" + humanize.FtoaWithDigits(pct, 1) + "%)"
}

func (f Formatter) value(key, fallback string) string {
	if v, ok := f.get(key); ok && v != "" {
		return v
	}
	return fallback
}

// dateLayout maps display_date presets to Go layouts. Anything else is
// taken as a Go layout.
func (f Formatter) dateLayout() string {
	switch v := f.value("display_date", "Jan 02"); v {
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		return v
	}
}

func (f Formatter) dateLayoutShort() string {
	switch v := f.value("display_date", "Jan 02"); v {
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	default:
		short := v
		for _, year := range []string{"2006", "/06", "-06", " 06"} {
			short = strings.ReplaceAll(short, year, "")
		}
		short = strings.Trim(strings.TrimSpace(short), "/-")
		if short == "" {
			return "Jan 02"
		}
		return short
	}
}
