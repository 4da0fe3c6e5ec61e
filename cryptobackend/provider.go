// Package cryptobackend implements the cryptographic primitive provider the
// verification core consumes as a capability object (spec.md §6, §9): one-shot
// digests for DS authentication, and algorithm-appropriate public-key
// signature verification for RRSIGs.
//
// It is grounded on other_examples/monoidic-dns__dnssec.go's RRSIG.Verify and
// its DNSKEY public-key decoders (publicKeyRSA, publicKeyECDSA,
// publicKeyED25519), adapted from operating on parsed dns.RR values to
// operating on raw RDATA byte slices, per spec.md's byte-level design.
package cryptobackend

import (
	"crypto"
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"math/big"

	"github.com/nsmithuk/dnssec-sigcore"
)

// StdProvider is a dnssec.CryptoProvider backed entirely by the Go standard
// library's crypto packages.
type StdProvider struct{}

// New returns a ready-to-use StdProvider.
func New() StdProvider {
	return StdProvider{}
}

var supportedAlgorithms = map[uint8]bool{
	dnssec.AlgorithmRSAMD5:           true,
	dnssec.AlgorithmDSA:              true,
	dnssec.AlgorithmRSASHA1:          true,
	dnssec.AlgorithmDSANSEC3SHA1:     true,
	dnssec.AlgorithmRSASHA1NSEC3SHA1: true,
	dnssec.AlgorithmRSASHA256:        true,
	dnssec.AlgorithmRSASHA512:        true,
	dnssec.AlgorithmECDSAP256SHA256:  true,
	dnssec.AlgorithmECDSAP384SHA384:  true,
	dnssec.AlgorithmED25519:          true,
}

// Supports reports whether this provider can verify signatures made with the
// given DNSKEY/RRSIG algorithm id.
func (StdProvider) Supports(algorithm uint8) bool {
	return supportedAlgorithms[algorithm]
}

// DigestSize returns the digest size in bytes of the given DS digest
// algorithm id, or 0 if unsupported (spec.md §4.3 step 1).
func (StdProvider) DigestSize(digestAlgorithm uint8) int {
	switch digestAlgorithm {
	case dnssec.DigestSHA1:
		return sha1.Size
	case dnssec.DigestSHA256:
		return sha256.Size
	case dnssec.DigestSHA384:
		return sha512.Size384
	default:
		return 0
	}
}

// Hash computes the one-shot digest of input under the given DS digest
// algorithm id.
func (StdProvider) Hash(digestAlgorithm uint8, input []byte) []byte {
	switch digestAlgorithm {
	case dnssec.DigestSHA1:
		sum := sha1.Sum(input)
		return sum[:]
	case dnssec.DigestSHA256:
		sum := sha256.Sum256(input)
		return sum[:]
	case dnssec.DigestSHA384:
		sum := sha512.Sum384(input)
		return sum[:]
	default:
		return nil
	}
}

// Verify checks signature over message using the raw DNSKEY public-key bytes
// pubkey, dispatching on algorithm exactly as
// other_examples/monoidic-dns__dnssec.go's RRSIG.Verify does.
func (StdProvider) Verify(algorithm uint8, pubkey, message, signature []byte) dnssec.VerifyOutcome {
	switch algorithm {
	case dnssec.AlgorithmRSAMD5, dnssec.AlgorithmRSASHA1, dnssec.AlgorithmRSASHA1NSEC3SHA1,
		dnssec.AlgorithmRSASHA256, dnssec.AlgorithmRSASHA512:
		return verifyRSA(algorithm, pubkey, message, signature)
	case dnssec.AlgorithmDSA, dnssec.AlgorithmDSANSEC3SHA1:
		return verifyDSA(pubkey, message, signature)
	case dnssec.AlgorithmECDSAP256SHA256, dnssec.AlgorithmECDSAP384SHA384:
		return verifyECDSA(algorithm, pubkey, message, signature)
	case dnssec.AlgorithmED25519:
		return verifyEd25519(pubkey, message, signature)
	default:
		return dnssec.VerifyUnsupported
	}
}

func hashForAlgorithm(algorithm uint8) (crypto.Hash, func([]byte) []byte) {
	switch algorithm {
	case dnssec.AlgorithmRSAMD5:
		return crypto.MD5, nil
	case dnssec.AlgorithmRSASHA1, dnssec.AlgorithmDSA, dnssec.AlgorithmDSANSEC3SHA1,
		dnssec.AlgorithmRSASHA1NSEC3SHA1:
		return crypto.SHA1, func(b []byte) []byte { s := sha1.Sum(b); return s[:] }
	case dnssec.AlgorithmRSASHA256, dnssec.AlgorithmECDSAP256SHA256:
		return crypto.SHA256, func(b []byte) []byte { s := sha256.Sum256(b); return s[:] }
	case dnssec.AlgorithmRSASHA512:
		return crypto.SHA512, func(b []byte) []byte { s := sha512.Sum512(b); return s[:] }
	case dnssec.AlgorithmECDSAP384SHA384:
		return crypto.SHA384, func(b []byte) []byte { s := sha512.Sum384(b); return s[:] }
	default:
		return 0, nil
	}
}

// verifyRSA decodes an RSA public key from RFC 3110 wire format (exponent
// length prefix, exponent, modulus) and checks a PKCS#1v1.5 signature.
func verifyRSA(algorithm uint8, pubkeyRaw, message, signature []byte) dnssec.VerifyOutcome {
	if algorithm == dnssec.AlgorithmRSAMD5 {
		// Deprecated (RFC 6725); not exercised by the hash table below, so
		// treat it as an internal/unsupported failure rather than guessing.
		return dnssec.VerifyUnsupported
	}
	pub := decodeRSAPublicKey(pubkeyRaw)
	if pub == nil {
		return dnssec.VerifyInternalError
	}
	hash, sum := hashForAlgorithm(algorithm)
	if sum == nil {
		return dnssec.VerifyUnsupported
	}
	digest := sum(message)
	if err := rsa.VerifyPKCS1v15(pub, hash, digest, signature); err != nil {
		return dnssec.VerifyBadSignature
	}
	return dnssec.VerifyOK
}

func decodeRSAPublicKey(keybuf []byte) *rsa.PublicKey {
	if len(keybuf) < 1+1+64 {
		return nil
	}
	explen := uint16(keybuf[0])
	keyoff := 1
	if explen == 0 {
		if len(keybuf) < 3 {
			return nil
		}
		explen = uint16(keybuf[1])<<8 | uint16(keybuf[2])
		keyoff = 3
	}
	if explen == 0 || explen > 4 || keyoff+int(explen) > len(keybuf) {
		return nil
	}
	modoff := keyoff + int(explen)
	modlen := len(keybuf) - modoff
	if modlen < 64 {
		return nil
	}

	var expo uint64
	for _, b := range keybuf[keyoff:modoff] {
		expo = expo<<8 | uint64(b)
	}
	if expo == 0 || expo > 1<<31-1 {
		return nil
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(keybuf[modoff:]),
		E: int(expo),
	}
}

// verifyECDSA decodes a P-256/P-384 public key from RFC 6605 wire format (raw
// concatenated X||Y, no point-compression prefix) and checks a raw r||s
// signature.
func verifyECDSA(algorithm uint8, pubkeyRaw, message, signature []byte) dnssec.VerifyOutcome {
	var curve elliptic.Curve
	switch algorithm {
	case dnssec.AlgorithmECDSAP256SHA256:
		curve = elliptic.P256()
	case dnssec.AlgorithmECDSAP384SHA384:
		curve = elliptic.P384()
	}
	half := len(pubkeyRaw) / 2
	if half == 0 || len(pubkeyRaw)%2 != 0 {
		return dnssec.VerifyInternalError
	}
	pub := &ecdsa.PublicKey{
		Curve: curve,
		X:     new(big.Int).SetBytes(pubkeyRaw[:half]),
		Y:     new(big.Int).SetBytes(pubkeyRaw[half:]),
	}

	sigHalf := len(signature) / 2
	if sigHalf == 0 || len(signature)%2 != 0 {
		return dnssec.VerifyBadSignature
	}
	r := new(big.Int).SetBytes(signature[:sigHalf])
	s := new(big.Int).SetBytes(signature[sigHalf:])

	_, sum := hashForAlgorithm(algorithm)
	if sum == nil {
		return dnssec.VerifyUnsupported
	}
	digest := sum(message)

	if ecdsa.Verify(pub, digest, r, s) {
		return dnssec.VerifyOK
	}
	return dnssec.VerifyBadSignature
}

// verifyEd25519 decodes a raw 32-byte Ed25519 public key (RFC 8080) and
// checks the signature. Ed25519 does the message hashing internally; no
// pre-hash is applied.
func verifyEd25519(pubkeyRaw, message, signature []byte) dnssec.VerifyOutcome {
	if len(pubkeyRaw) != ed25519.PublicKeySize {
		return dnssec.VerifyInternalError
	}
	if ed25519.Verify(ed25519.PublicKey(pubkeyRaw), message, signature) {
		return dnssec.VerifyOK
	}
	return dnssec.VerifyBadSignature
}

// verifyDSA decodes an RFC 2536 DSA public key (T, Q, P, G, Y) and checks an
// RFC 2536 §3 20-byte-R||20-byte-S signature, preceded by a one-byte T value.
// DSA/DSA-NSEC3-SHA1 are in the required-supported algorithm set (spec.md
// §4.3) even though virtually no current zone uses them; crypto/dsa is the
// only library in the ecosystem that implements raw DSA verification over
// arbitrary r/s byte blocks (see DESIGN.md).
func verifyDSA(pubkeyRaw, message, signature []byte) dnssec.VerifyOutcome {
	if len(pubkeyRaw) < 1+8+20 {
		return dnssec.VerifyInternalError
	}
	t := int(pubkeyRaw[0])
	size := 64 + t*8

	off := 1
	q := pubkeyRaw[off : off+20]
	off += 20
	if off+size > len(pubkeyRaw) {
		return dnssec.VerifyInternalError
	}
	p := pubkeyRaw[off : off+size]
	off += size
	if off+size > len(pubkeyRaw) {
		return dnssec.VerifyInternalError
	}
	g := pubkeyRaw[off : off+size]
	off += size
	if off+size > len(pubkeyRaw) {
		return dnssec.VerifyInternalError
	}
	y := pubkeyRaw[off : off+size]

	pub := &dsa.PublicKey{
		Parameters: dsa.Parameters{
			P: new(big.Int).SetBytes(p),
			Q: new(big.Int).SetBytes(q),
			G: new(big.Int).SetBytes(g),
		},
		Y: new(big.Int).SetBytes(y),
	}

	if len(signature) != 41 {
		return dnssec.VerifyBadSignature
	}
	// signature = T(1) | R(20) | S(20), per RFC 2536 §3.
	r := new(big.Int).SetBytes(signature[1:21])
	s := new(big.Int).SetBytes(signature[21:41])

	sum := sha1.Sum(message)
	if dsa.Verify(pub, sum[:], r, s) {
		return dnssec.VerifyOK
	}
	return dnssec.VerifyBadSignature
}
