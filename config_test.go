package portrunner

import "testing"

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BaudRate != 115200 {
		t.Errorf("Expected BaudRate 115200, got %d", config.BaudRate)
	}

	if config.Direction != DirectionReceive {
		t.Errorf("Expected Direction receive, got %v", config.Direction)
	}

	if config.ReadTimeoutTenths != 2 {
		t.Errorf("Expected ReadTimeoutTenths 2, got %d", config.ReadTimeoutTenths)
	}
}

func TestWithBaudRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    int
		wantErr bool
	}{
		{"9600 (valid)", 9600, false},
		{"115200 (valid)", 115200, false},
		{"4000000 (max)", 4000000, false},
		{"0 (invalid)", 0, true},
		{"12345 (not a standard rate)", 12345, true},
		{"-9600 (negative)", -9600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			err := WithBaudRate(tt.rate)(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithBaudRate(%d) error = %v, wantErr %v", tt.rate, err, tt.wantErr)
			}
			if err == nil && config.BaudRate != tt.rate {
				t.Errorf("BaudRate = %d, want %d", config.BaudRate, tt.rate)
			}
		})
	}
}

func TestWithDirection(t *testing.T) {
	config := DefaultConfig()

	if err := WithDirection(DirectionTransmit)(&config); err != nil {
		t.Errorf("WithDirection(transmit) failed: %v", err)
	}
	if config.Direction != DirectionTransmit {
		t.Errorf("Direction = %v, want transmit", config.Direction)
	}

	if err := WithDirection(Direction(42))(&config); err == nil {
		t.Error("WithDirection(42) should have failed")
	}
}

func TestWithReadTimeout(t *testing.T) {
	tests := []struct {
		name    string
		tenths  int
		wantErr bool
	}{
		{"0 (no wait)", 0, false},
		{"2 (200ms)", 2, false},
		{"255 (max)", 255, false},
		{"256 (exceeds max)", 256, true},
		{"-1 (negative)", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			err := WithReadTimeout(tt.tenths)(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithReadTimeout(%d) error = %v, wantErr %v", tt.tenths, err, tt.wantErr)
			}
			if err == nil && config.ReadTimeoutTenths != tt.tenths {
				t.Errorf("ReadTimeoutTenths = %d, want %d", config.ReadTimeoutTenths, tt.tenths)
			}
		})
	}
}
