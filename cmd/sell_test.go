package cmd

import "testing"

func TestParseItem(t *testing.T) {
	tests := []struct {
		in      string
		sku     string
		qty     int
		wantErr bool
	}{
		{"SP-550", "SP-550", 1, false},
		{"SP-550:3", "SP-550", 3, false},
		{"RT-DB:1", "RT-DB", 1, false},
		{"SP-550:0", "", 0, true},
		{"SP-550:-2", "", 0, true},
		{"SP-550:many", "", 0, true},
		{":3", "", 0, true},
		{"", "", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			sku, qty, err := parseItem(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseItem(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if sku != tc.sku || qty != tc.qty {
				t.Errorf("parseItem(%q) = %q, %d, want %q, %d", tc.in, sku, qty, tc.sku, tc.qty)
			}
		})
	}
}
