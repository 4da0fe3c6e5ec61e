package dnssec

import "encoding/binary"

// checkDates validates that inception <= now <= expiration under RFC 1982
// serial-number arithmetic (32-bit signed difference), giving a 68-year
// sliding window (spec.md §4.4). Grounded 1:1 on val_sigcrypt.c's
// check_dates: three discrete signed subtractions, kept separate (rather than
// collapsed into one range check) so each failure mode gets its own
// diagnostic, per spec.md §7.
func checkDates(clock Clock, expiration, inception int32) error {
	if inception-expiration > 0 {
		return ErrInceptionAfterExpiry
	}
	now := clock.Now()
	if (inception-ClockSkewFudge)-now > 0 {
		return ErrNotYetValid
	}
	if now-(expiration+ClockSkewFudge) > 0 {
		return ErrExpired
	}
	return nil
}

// readDates reads the big-endian sig_expiration and sig_inception fields out
// of RRSIG rdata starting at the fixed-prefix offset (relative to the start
// of rdata, i.e. including the rdlen prefix: expiration is at rdlen+8,
// inception at rdlen+12). The caller must already have length-checked rd.
func readDates(rd []byte) (expiration, inception int32) {
	expiration = int32(binary.BigEndian.Uint32(rd[rdlenSize+8:]))
	inception = int32(binary.BigEndian.Uint32(rd[rdlenSize+12:]))
	return
}
