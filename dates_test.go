package dnssec

import "testing"

func fixedClock(now int32) Clock {
	return Clock{Override: &now}
}

func TestCheckDates(t *testing.T) {
	tests := []struct {
		name                  string
		now                   int32
		inception, expiration int32
		wantErr               error
	}{
		{"within window", 1000, 500, 1500, nil},
		{"at inception", 500, 500, 1500, nil},
		{"at expiration", 1500, 500, 1500, nil},
		{"before inception", 499, 500, 1500, ErrNotYetValid},
		{"after expiration", 1501, 500, 1500, ErrExpired},
		{"inception after expiration", 1000, 1500, 500, ErrInceptionAfterExpiry},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkDates(fixedClock(tc.now), tc.expiration, tc.inception)
			if err != tc.wantErr {
				t.Errorf("checkDates() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCheckDates_SerialWraparound(t *testing.T) {
	// RFC 1982 serial arithmetic: expiration just after a 32-bit wrap from
	// inception must still compare as "after", not as an enormous negative
	// gap, because the subtraction is done in int32 and only the sign bit is
	// inspected.
	inception := int32(2000000000)
	expiration := int32(-2000000000) // wraps to a value "after" inception
	now := int32(-2000000050)

	if err := checkDates(fixedClock(now), expiration, inception); err != nil {
		t.Errorf("checkDates() = %v, want nil for a value inside the wrapped window", err)
	}
}

func TestCheckDates_ClockSkewFudge(t *testing.T) {
	old := ClockSkewFudge
	ClockSkewFudge = 100
	defer func() { ClockSkewFudge = old }()

	// now is 50s before inception and 50s after expiration respectively;
	// both fall inside a 100s fudge on each side but outside the bare window.
	if err := checkDates(fixedClock(450), 1500, 500); err != nil {
		t.Errorf("checkDates() = %v, want nil when now is within the fudged pre-inception window", err)
	}
	if err := checkDates(fixedClock(1550), 1500, 500); err != nil {
		t.Errorf("checkDates() = %v, want nil when now is within the fudged post-expiration window", err)
	}
	if err := checkDates(fixedClock(399), 1500, 500); err != ErrNotYetValid {
		t.Errorf("checkDates() = %v, want ErrNotYetValid outside the fudged window", err)
	}
}

func TestReadDates(t *testing.T) {
	rd := make([]byte, rdlenSize+rrsigFixedLen)
	// expiration at rdlenSize+8
	rd[rdlenSize+8], rd[rdlenSize+9], rd[rdlenSize+10], rd[rdlenSize+11] = 0x00, 0x00, 0x00, 0x64
	// inception at rdlenSize+12
	rd[rdlenSize+12], rd[rdlenSize+13], rd[rdlenSize+14], rd[rdlenSize+15] = 0x00, 0x00, 0x00, 0x0A

	expiration, inception := readDates(rd)
	if expiration != 100 {
		t.Errorf("expiration = %d, want 100", expiration)
	}
	if inception != 10 {
		t.Errorf("inception = %d, want 10", inception)
	}
}
