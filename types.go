package dnssec

// Verdict is the three-valued security outcome this package returns from every
// entry point (spec.md §3).
type Verdict uint8

const (
	// Unchecked means an unrecoverable internal error occurred (allocation,
	// unsupported algorithm reached after commit). Callers should treat this as
	// "try again / do not cache."
	Unchecked Verdict = iota
	// Bogus means a structural or cryptographic failure occurred. Semantically
	// equivalent to "insecure" for this package's purposes.
	Bogus
	// Secure means at least one signature verified end-to-end.
	Secure
)

func (v Verdict) String() string {
	switch v {
	case Secure:
		return "Secure"
	case Bogus:
		return "Bogus"
	case Unchecked:
		return "Unchecked"
	default:
		return "Unchecked"
	}
}

// RRset is an immutable, borrowed view over a DNS resource-record set and the
// RRSIGs covering it, laid out exactly as on the wire (spec.md §3). Entries
// [0, Count) are data RRs; entries [Count, Count+RRSIGCount) are RRSIGs. Each
// entry is `<u16 rdlen><rdata bytes>` exactly as received; this package never
// mutates rrData's backing bytes.
type RRset struct {
	// OwnerName is the owner name in wire form (length-prefixed labels,
	// terminated by a zero-length root label). Never mutated in place.
	OwnerName []byte
	Type      uint16
	Class     uint16

	// Count is the number of data RRs. RRSIGCount is the number of RRSIG RRs
	// covering this set. rrData must have exactly Count+RRSIGCount entries.
	Count      int
	RRSIGCount int

	// rrData[i] is the raw `<u16 rdlen><rdata>` wire bytes of entry i.
	rrData [][]byte
}

// NewRRset builds an RRset view over pre-parsed wire-format RR entries. data
// holds the Count data-RR entries; sigs holds the RRSIGCount RRSIG entries that
// cover them. Every entry must be at least 2 bytes (the rdlen prefix) per
// spec.md §3's invariant; shorter entries are accepted here (accessors sentinel
// on a short read rather than this constructor faulting).
func NewRRset(owner []byte, rrtype, class uint16, data, sigs [][]byte) *RRset {
	rrData := make([][]byte, 0, len(data)+len(sigs))
	rrData = append(rrData, data...)
	rrData = append(rrData, sigs...)
	return &RRset{
		OwnerName:  owner,
		Type:       rrtype,
		Class:      class,
		Count:      len(data),
		RRSIGCount: len(sigs),
		rrData:     rrData,
	}
}

// Clock is the injectable time source consumed by the date check (spec.md §4.4,
// §6, §9). Override, when non-nil, replaces Now() completely — used for
// deterministic testing and operational pinning.
type Clock struct {
	Override *int32
}

// Now returns the current time as a signed 32-bit seconds-since-epoch value,
// honouring Override verbatim when set.
func (c Clock) Now() int32 {
	if c.Override != nil {
		return *c.Override
	}
	return int32(nowUnix())
}

// Env bundles the collaborators the verification core depends on but does not
// define (spec.md §6): a scratch buffer borrowed for the duration of one
// top-level call, a clock, and a cryptographic primitive provider. Env is not
// safe for concurrent use by two calls at once; each concurrent caller must
// supply a disjoint Env (spec.md §5).
type Env struct {
	Scratch *Buffer
	Clock   Clock
	Crypto  CryptoProvider
}

// NewEnv builds an Env with a fresh scratch buffer of the given initial
// capacity and the real wall clock.
func NewEnv(crypto CryptoProvider, scratchCap int) *Env {
	return &Env{
		Scratch: NewBuffer(scratchCap),
		Crypto:  crypto,
	}
}

// CryptoProvider is the capability object spec.md §9 describes: the core never
// hard-codes a crypto library, it asks the provider what it supports and hands
// it bytes to hash or verify.
type CryptoProvider interface {
	// Supports reports whether the provider can verify signatures made with the
	// given DNSKEY/RRSIG algorithm id.
	Supports(algorithm uint8) bool
	// DigestSize returns the output size in bytes of the given DS digest
	// algorithm id, or 0 if unsupported.
	DigestSize(digestAlgorithm uint8) int
	// Hash computes the one-shot digest of input under the given DS digest
	// algorithm id and returns it. Returns nil if unsupported.
	Hash(digestAlgorithm uint8, input []byte) []byte
	// Verify checks signature over message using the public key material
	// pubkey (raw DNSKEY public-key bytes) under the given algorithm id.
	Verify(algorithm uint8, pubkey, message, signature []byte) VerifyOutcome
}

// VerifyOutcome is the result a CryptoProvider reports for one Verify call
// (spec.md §6).
type VerifyOutcome uint8

const (
	VerifyOK VerifyOutcome = iota
	VerifyBadSignature
	VerifyUnsupported
	VerifyInternalError
)
