package dnssec

import "errors"

// Diagnostic errors returned alongside a Bogus or Unchecked Verdict. These are
// for logging only; callers must never branch on anything but the Verdict value
// itself (spec.md §7).
var (
	ErrNoSignatures          = errors.New("rrset has no signatures")
	ErrNoAppropriateKey      = errors.New("no dnskey matched the signature's algorithm and keytag")
	ErrSignatureTooShort     = errors.New("rrsig rdata too short to hold a signature")
	ErrDNSKEYNotZSK          = errors.New("dnskey does not have the zone-key flag set")
	ErrMalformedSignerName   = errors.New("rrsig signer name is not a valid wire dname")
	ErrSignerNameMismatch    = errors.New("rrsig signer name does not match dnskey owner name")
	ErrTypeCoveredMismatch   = errors.New("rrsig type_covered does not match rrset type")
	ErrAlgorithmMismatch     = errors.New("rrsig algorithm does not match dnskey algorithm")
	ErrKeytagMismatch        = errors.New("rrsig keytag does not match the dnskey's calculated keytag")
	ErrLabelCountOutOfRange  = errors.New("rrsig labels exceeds the rrset owner's label count")
	ErrInceptionAfterExpiry  = errors.New("rrsig inception is after its expiration")
	ErrNotYetValid           = errors.New("current time is before rrsig inception")
	ErrExpired               = errors.New("current time is after rrsig expiration")
	ErrCanonicalizationError = errors.New("failed to build the canonical signed byte stream")
	ErrBadSignature          = errors.New("cryptographic signature verification failed")
	ErrUnsupportedAlgorithm  = errors.New("signing algorithm not supported by the crypto backend")
	ErrBackendInternal       = errors.New("crypto backend reported an internal error")
	ErrDSDigestAlgoUnsupported = errors.New("ds digest algorithm not supported")
	ErrDSDigestLengthMismatch  = errors.New("ds digest length does not match the algorithm's expected digest size")
	ErrDSDigestMismatch        = errors.New("ds digest does not match the computed dnskey digest")
)
