package docnum

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	date := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		prefix string
		seq    int
		want   string
	}{
		{PrefixGRN, 1, "GRN-20240101-0001"},
		{PrefixGRN, 42, "GRN-20240101-0042"},
		{PrefixStockTxn, 12345, "STE-20240101-12345"},
		{PrefixPO, 7, "PO-20240101-0007"},
	}

	for _, tt := range tests {
		if got := Format(tt.prefix, date, tt.seq); got != tt.want {
			t.Errorf("Format(%s, %d) = %s, want %s", tt.prefix, tt.seq, got, tt.want)
		}
	}
}

func TestDayPrefix(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if got := DayPrefix(PrefixGRN, date); got != "GRN-20240315-" {
		t.Errorf("DayPrefix = %s, want GRN-20240315-", got)
	}
}

// Format and Seq must round-trip so the next number can always be derived
// from the last issued one.
func TestSeq(t *testing.T) {
	tests := []struct {
		no      string
		want    int
		wantErr bool
	}{
		{"GRN-20240101-0001", 1, false},
		{"GRN-20240101-0042", 42, false},
		{"STE-20240101-12345", 12345, false},
		{"SAL-ORD-20240101-0007", 7, false},
		{"garbage", 0, true},
		{"GRN-20240101-", 0, true},
	}

	for _, tt := range tests {
		got, err := Seq(tt.no)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Seq(%s): expected error, got %d", tt.no, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Seq(%s): unexpected error: %v", tt.no, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Seq(%s) = %d, want %d", tt.no, got, tt.want)
		}
	}

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	no := Format(PrefixGRN, date, 17)
	seq, err := Seq(no)
	if err != nil || seq != 17 {
		t.Errorf("Seq(Format(..., 17)) = %d, %v, want 17", seq, err)
	}
}
