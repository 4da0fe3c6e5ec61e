package dnssec

import (
	"github.com/nsmithuk/dnssec-sigcore/wire"
)

// DNSKEYVerifyRRsetSig checks one RRSIG (at sigIdx within rrset) against one
// DNSKEY (at keyIdx within dnskeySet), returning Secure only if every
// structural precondition holds and the cryptographic check itself succeeds.
//
// The preconditions are checked in the fixed order val_sigcrypt.c's
// dnskey_verify_rrset_sig applies them, each one a distinct Bogus diagnostic
// rather than a single collapsed check (spec.md §4.5, §7):
//
//  1. the RRSIG rdata is long enough to hold a signature at all, checked
//     again once the signer name's actual length is known (a non-empty
//     signature must follow it);
//  2. the DNSKEY has the Zone Key flag set, unless EnforceZSKFlag is false;
//  3. the RRSIG's signer name is a well-formed wire dname;
//  4. the signer name matches the DNSKEY's owner name (case-insensitive);
//  5. the RRSIG's type_covered matches the RRset's type;
//  6. the RRSIG's algorithm matches the DNSKEY's algorithm;
//  7. the RRSIG's keytag matches the DNSKEY's calculated keytag;
//  8. the RRSIG's labels field does not exceed the RRset owner's label count;
//  9. the current time falls within [inception, expiration] (RFC 1982).
//
// Unlike val_sigcrypt.c's dnskey_verify_rrset_sig, which the source material
// leaves stubbed out before ever calling into a crypto primitive (spec.md §9:
// "this is not a bug to preserve"), this builds the canonical signed stream
// and calls through to env.Crypto.Verify to reach a real Secure/Bogus
// decision.
func DNSKEYVerifyRRsetSig(env *Env, rrset *RRset, sigIdx int, dnskeySet *RRset, keyIdx int) (Verdict, error) {
	sigRd := rrset.sigRdata(sigIdx)
	if len(sigRd) < rdlenSize+rrsigFixedLen+1 {
		return Bogus, ErrSignatureTooShort
	}

	if EnforceZSKFlag && dnskeySet.DNSKEYFlags(keyIdx)&flagZoneKey == 0 {
		return Bogus, ErrDNSKEYNotZSK
	}

	signer := sigRd[rdlenSize+rrsigFixedLen:]
	signerLen := wire.Valid(signer)
	if signerLen == 0 {
		return Bogus, ErrMalformedSignerName
	}
	signer = signer[:signerLen]

	if len(sigRd) < rdlenSize+rrsigFixedLen+signerLen+1 {
		return Bogus, ErrSignatureTooShort
	}

	if !wire.Equal(signer, dnskeySet.OwnerName) {
		return Bogus, ErrSignerNameMismatch
	}

	typeCovered := uint16(sigRd[rdlenSize])<<8 | uint16(sigRd[rdlenSize+1])
	if typeCovered != rrset.Type {
		return Bogus, ErrTypeCoveredMismatch
	}

	sigAlgo := rrset.sigAlgorithm(sigIdx)
	if sigAlgo != dnskeySet.DNSKEYAlgorithm(keyIdx) {
		return Bogus, ErrAlgorithmMismatch
	}

	if rrset.sigKeytag(sigIdx) != dnskeySet.DNSKEYKeytag(keyIdx) {
		return Bogus, ErrKeytagMismatch
	}

	sigLabels := int(sigRd[rdlenSize+3])
	if sigLabels > wire.LabelCount(rrset.OwnerName) {
		return Bogus, ErrLabelCountOutOfRange
	}

	expiration, inception := readDates(sigRd)
	if err := checkDates(env.Clock, expiration, inception); err != nil {
		return Bogus, err
	}

	sigHeader := sigRd[rdlenSize : rdlenSize+rrsigFixedLen+signerLen]
	if err := canonicalize(env.Scratch, rrset, sigHeader); err != nil {
		return Bogus, err
	}
	signedData := append([]byte(nil), env.Scratch.Bytes()...)

	pubkey := dnskeySet.dnskeyPublicKey(keyIdx)
	signature := sigRd[rdlenSize+rrsigFixedLen+signerLen:]

	switch env.Crypto.Verify(sigAlgo, pubkey, signedData, signature) {
	case VerifyOK:
		return Secure, nil
	case VerifyBadSignature:
		return Bogus, ErrBadSignature
	case VerifyUnsupported:
		return Unchecked, ErrUnsupportedAlgorithm
	default:
		return Unchecked, ErrBackendInternal
	}
}
