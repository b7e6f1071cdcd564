package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 23, 15, 4, 5, 0, time.UTC)

func withConfig(values map[string]string) Formatter {
	return New(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	})
}

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    string
	}{
		{"default format", "", "Jan 23"},
		{"mm/dd/yyyy", "mm/dd/yyyy", "01/23/2024"},
		{"yyyy-mm-dd", "yyyy-mm-dd", "2024-01-23"},
		{"dd/mm/yyyy", "dd/mm/yyyy", "23/01/2024"},
		{"custom Go format", "2006/01/02", "2024/01/23"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := withConfig(map[string]string{"display_date": tt.display})
			require.Equal(t, tt.want, f.Date(testTime))
		})
	}
}

func TestDateShort(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    string
	}{
		{"default format", "", "Jan 23"},
		{"mm/dd/yyyy", "mm/dd/yyyy", "01/23"},
		{"yyyy-mm-dd", "yyyy-mm-dd", "01-23"},
		{"dd/mm/yyyy", "dd/mm/yyyy", "23/01"},
		{"custom format loses its year", "02 Jan 2006", "23 Jan"},
		{"year only falls back", "2006", "Jan 23"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := withConfig(map[string]string{"display_date": tt.display})
			require.Equal(t, tt.want, f.DateShort(testTime))
		})
	}
}

func TestTime(t *testing.T) {
	require.Equal(t, "15:04", New(nil).Time(testTime))
	require.Equal(t, "15:04", withConfig(map[string]string{"display_time": "24h"}).Time(testTime))
	require.Equal(t, "3:04 PM", withConfig(map[string]string{"display_time": "12h"}).Time(testTime))
}

func TestDateTime(t *testing.T) {
	f := withConfig(map[string]string{"display_date": "mm/dd/yyyy", "display_time": "12h"})
	require.Equal(t, "01/23/2024 3:04 PM", f.DateTime(testTime))
	require.Equal(t, "Jan 23 15:04", New(nil).DateTime(testTime))
}

func TestAgo(t *testing.T) {
	require.Equal(t, "now", New(nil).Ago(time.Now()))
	require.Contains(t, New(nil).Ago(time.Now().Add(-72*time.Hour)), "days ago")
}

func TestSize(t *testing.T) {
	require.Equal(t, "0 B", Size(0))
	require.Equal(t, "0 B", Size(-5))
	require.Equal(t, "1.2 GB", Size(1_200_000_000))
	require.Equal(t, "512 B", Size(512))
}

func TestQuota(t *testing.T) {
	require.Equal(t, "1.0 GB of 50 GB (2%)", Quota(1_000_000_000, 50))
	require.Equal(t, "5.0 GB of 10 GB (50%)", Quota(5_000_000_000, 10))
	require.Equal(t, "1.0 kB", Quota(1000, 0))
}
