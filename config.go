package dnssec

// EnforceZSKFlag gates the requirement that a DNSKEY used to verify an RRSIG has
// the Zone Key flag set (RFC 4034 §2.1.1 bit 7 / 0x0100 host order). RFC 4035
// §5.3.1 only says validators SHOULD check this; the source this package is
// grounded on treats it as a MUST (spec.md §9). We preserve that as the default,
// but keep it a single-point switch rather than a hard-coded check, in case a
// caller's policy needs to relax it.
var EnforceZSKFlag = true

// DefaultClockSkewFudge is the number of seconds checkDates widens the
// [inception, expiration] window by on each side, to absorb clock drift
// between the signer and the validator. The source this package is grounded
// on applies no such fudge; this is a SPEC_FULL ambient addition, off by
// default so the default behaviour matches the source exactly.
const DefaultClockSkewFudge int32 = 0

// ClockSkewFudge is the live value checkDates consults; seeded from
// DefaultClockSkewFudge, overridable per spec.md §9's single-point policy
// switch pattern.
var ClockSkewFudge = DefaultClockSkewFudge

// Logger is the injectable logging hook shape, following the teacher's
// dnssec/config.go pattern. Callers assign their own sink; by default every
// hook black-holes its input, since logging is an external collaborator this
// package intentionally knows nothing about (spec.md §1). No function in this
// package calls Debug, Info or Warn; diagnostics reach the caller only as the
// error returned alongside each Verdict.
type Logger func(string)

var (
	Debug Logger = func(string) {}
	Info  Logger = func(string) {}
	Warn  Logger = func(string) {}
)
