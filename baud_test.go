package portrunner

import (
	"errors"
	"testing"
)

func TestLookupBaudRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    int
		wantErr bool
	}{
		{"B50", 50, false},
		{"B9600", 9600, false},
		{"B115200", 115200, false},
		{"B4000000", 4000000, false},
		{"b115200", 115200, false}, // case-insensitive
		{"B115200 ", 0, true},      // no trimming
		{"B1", 0, true},            // prefix of B110/B1200/... is not a match
		{"B11520", 0, true},
		{"115200", 0, true}, // the B prefix is part of the name
		{"B123", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := LookupBaudRate(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookupBaudRate(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBaudRate) {
				t.Errorf("LookupBaudRate(%q) error = %v, want ErrInvalidBaudRate", tt.name, err)
			}
			if rate != tt.rate {
				t.Errorf("LookupBaudRate(%q) = %d, want %d", tt.name, rate, tt.rate)
			}
		})
	}
}

func TestBaudRateNamesAllResolve(t *testing.T) {
	names := BaudRateNames()
	if len(names) != len(baudRates) {
		t.Fatalf("BaudRateNames returned %d names, table has %d", len(names), len(baudRates))
	}

	last := 0
	for _, name := range names {
		rate, err := LookupBaudRate(name)
		if err != nil {
			t.Errorf("LookupBaudRate(%q) failed: %v", name, err)
			continue
		}
		if rate <= last {
			t.Errorf("BaudRateNames not in ascending rate order at %q", name)
		}
		last = rate

		// Every named rate must also map to a termios constant.
		if _, err := getBaudRate(rate); err != nil {
			t.Errorf("getBaudRate(%d) failed: %v", rate, err)
		}
	}
}

func TestGetBaudRateRejectsUnknownRates(t *testing.T) {
	for _, rate := range []int{0, -1, 12345, 128000} {
		if _, err := getBaudRate(rate); !errors.Is(err, ErrInvalidBaudRate) {
			t.Errorf("getBaudRate(%d) error = %v, want ErrInvalidBaudRate", rate, err)
		}
	}
}
