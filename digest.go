package dnssec

import (
	"crypto/subtle"

	"github.com/nsmithuk/dnssec-sigcore/wire"
)

// constantTimeEqual compares two digests without leaking timing information
// about where they first differ (spec.md §4.3 step 5).
func constantTimeEqual(a, b []byte) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare(a, b) == 1
}

// dnskeyAlgoIDSupported is the fixed predicate spec.md §4.3 names: the set of
// DNSKEY signing algorithms a DS/DNSKEY record is allowed to claim, regardless
// of whether the crypto backend actually implements verification for it: the
// five legacy ids (RSA/MD5, DSA, DSA-NSEC3-SHA1, RSA/SHA-1, RSASHA1-NSEC3-SHA1)
// plus the ids cryptobackend's StdProvider verifies (RSA/SHA-256,
// RSA/SHA-512, ECDSA P-256 and P-384, Ed25519). RSA-
// MD5 is included even though the crypto backend refuses to verify it (it is
// deprecated, RFC 6725) because "supported" here means "a recognised
// algorithm id," not "this backend can cryptographically check it" — the two
// questions are kept separate per spec.md §4.3's closing sentence ("support
// predicates are exposed to the caller so it may skip unsupported material
// without triggering Bogus").
func dnskeyAlgoIDSupported(id uint8) bool {
	switch id {
	case AlgorithmRSAMD5, AlgorithmDSA, AlgorithmDSANSEC3SHA1,
		AlgorithmRSASHA1, AlgorithmRSASHA1NSEC3SHA1,
		AlgorithmRSASHA256, AlgorithmRSASHA512,
		AlgorithmECDSAP256SHA256, AlgorithmECDSAP384SHA384, AlgorithmED25519:
		return true
	default:
		return false
	}
}

// DNSKEYAlgorithmSupported reports whether the DNSKEY at idx uses a
// recognised signing algorithm. Grounded on val_sigcrypt.c's
// dnskey_algo_is_supported.
func (r *RRset) DNSKEYAlgorithmSupported(idx int) bool {
	return dnskeyAlgoIDSupported(r.DNSKEYAlgorithm(idx))
}

// DSKeyAlgorithmSupported reports whether the DS record at idx claims a
// recognised DNSKEY signing algorithm for the key it authenticates. Grounded
// on val_sigcrypt.c's ds_key_algo_is_supported.
func (r *RRset) DSKeyAlgorithmSupported(idx int) bool {
	return dnskeyAlgoIDSupported(r.DSKeyAlgorithm(idx))
}

// DSDigestAlgorithmSupported reports whether the given CryptoProvider can
// compute digests under the DS digest algorithm at idx. Grounded on
// val_sigcrypt.c's ds_digest_algo_is_supported.
func (r *RRset) DSDigestAlgorithmSupported(crypto CryptoProvider, idx int) bool {
	return crypto.DigestSize(r.dsDigestAlgorithm(idx)) != 0
}

// DSDigestMatchesDNSKEY authenticates the DNSKEY at dnskeyIdx in dnskeyRRset
// against the DS record at dsIdx in dsRRset: it computes
// hash(lowercased(DNSKEY owner name) | DNSKEY RDATA without the rdlen
// prefix) under the DS's digest algorithm, and constant-time-compares the
// result against the DS digest. Grounded 1:1 on val_sigcrypt.c's
// ds_digest_match_dnskey / ds_create_dnskey_digest.
func DSDigestMatchesDNSKEY(env *Env, dnskeyRRset *RRset, dnskeyIdx int, dsRRset *RRset, dsIdx int) bool {
	digestLen := env.Crypto.DigestSize(dsRRset.dsDigestAlgorithm(dsIdx))
	if digestLen == 0 {
		return false // unsupported, or DS RR format error
	}

	dsDigest := dsRRset.dsDigest(dsIdx)
	if dsDigest == nil || len(dsDigest) != digestLen {
		return false // DS algorithm and digest length do not match
	}

	rd := dnskeyRRset.rdata(dnskeyIdx)
	if len(rd) < rdlenSize {
		return false
	}

	env.Scratch.Clear()
	owner := env.Scratch.Reserve(len(dnskeyRRset.OwnerName))
	copy(owner, dnskeyRRset.OwnerName)
	wire.ToLower(owner)
	env.Scratch.Write(rd[rdlenSize:])
	env.Scratch.Flip()

	computed := env.Crypto.Hash(dsRRset.dsDigestAlgorithm(dsIdx), env.Scratch.Bytes())
	if computed == nil {
		return false
	}

	return constantTimeEqual(computed, dsDigest)
}
