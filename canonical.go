package dnssec

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/nsmithuk/dnssec-sigcore/wire"
)

// canonicalSortedIndices returns the indices of r's data RRs (not RRSIGs) in
// RFC 4034 §6.3 canonical order — RDATA compared as unsigned byte strings,
// duplicates (bitwise-equal RDATA) removed — without ever touching the
// underlying wire bytes. Grounded on val_sigcrypt.c's canonical_sort, whose
// body spec.md §9 explicitly flags as a no-op stub that "a faithful
// implementation MUST implement"; this is that implementation.
func (r *RRset) canonicalSortedIndices() []int {
	idx := make([]int, r.Count)
	for i := range idx {
		idx[i] = i
	}
	rdataOf := func(i int) []byte {
		if len(r.rrData[i]) < rdlenSize {
			return nil
		}
		return r.rrData[i][rdlenSize:]
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return bytes.Compare(rdataOf(idx[a]), rdataOf(idx[b])) < 0
	})

	deduped := idx[:0:0]
	for i, j := range idx {
		if i == 0 || !bytes.Equal(r.rrData[j], r.rrData[idx[i-1]]) {
			deduped = append(deduped, j)
		}
	}
	return deduped
}

// lowerSignerName lower-cases the signer-name portion of the sig header that
// has already been written verbatim into buf at offset headerOff, in place
// within the scratch buffer only. Grounded on val_sigcrypt.c's
// rrset_canonical: "query_dname_tolower(sig+18)", applied once to the
// scratch copy before any data RR is appended (spec.md supplemented feature
// #5 in SPEC_FULL.md).
func lowerSignerName(buf *Buffer, headerOff int) {
	signer := buf.At(headerOff + rrsigFixedLen)
	wire.ToLower(signer)
}

// canonicalOwner computes the canonical owner name for an RRset being
// canonicalized under one RRSIG, per RFC 4034 §6 and spec.md §4.2 step 3. sig
// is the RRSIG's fixed prefix (sig[3] is the labels field); owner is the
// RRset's wire-format owner name. It returns the canonical owner bytes
// (allocated fresh, lower-cased) and true, or nil and false on the fatal
// L_sig > L_own structural error.
func canonicalOwner(sig []byte, owner []byte) ([]byte, bool) {
	sigLabels := int(sig[3])
	ownLabels := wire.LabelCount(owner)

	if sigLabels == ownLabels {
		lowered := append([]byte(nil), owner...)
		wire.ToLower(lowered)
		return lowered, true
	}

	if sigLabels > ownLabels {
		return nil, false
	}

	suffix := wire.RemoveLeftmostLabels(owner, ownLabels-sigLabels)
	if suffix == nil {
		return nil, false
	}

	canon := make([]byte, 2+len(suffix))
	canon[0] = 1
	canon[1] = '*'
	copy(canon[2:], suffix)
	wire.ToLower(canon[2:])
	return canon, true
}

// lowercaseTextField lower-cases a length-prefixed character-string in place
// (the length byte itself is untouched). Grounded on val_sigcrypt.c's
// lowercase_text_field.
func lowercaseTextField(p []byte) {
	n := int(p[0])
	for i := 1; i <= n && i < len(p); i++ {
		c := p[i]
		if c >= 'A' && c <= 'Z' {
			p[i] = c + ('a' - 'A')
		}
	}
}

// canonicalizeRdata lower-cases embedded DNS names within rdata (the RR's
// full `<rdlen><rdata>` wire bytes, already appended to the scratch buffer at
// rdataSlice) for RR types RFC 4034 §6.2 lists, in place within the scratch
// buffer. Every offset is range-checked against the surviving length before
// being read; an out-of-range offset is treated as "nothing to canonicalize"
// rather than an error, mirroring the source's defensive, permissive
// handling of malformed-but-parsed RRs (spec.md §4.2's canonicalization
// table and its trailing bullet on bounds-checking). Grounded 1:1 on
// val_sigcrypt.c's canonicalize_rdata.
func canonicalizeRdata(rtype uint16, rdataSlice []byte) {
	if len(rdataSlice) < rdlenSize {
		return
	}
	datstart := rdataSlice[rdlenSize:]
	rdlen := len(datstart)

	switch rtype {
	case typeNXT, typeNSEC, typeNS, typeMD, typeMF, typeCNAME, typeMB, typeMG, typeMR, typePTR, typeDNAME:
		wire.ToLower(datstart)

	case typeMINFO, typeRP, typeSOA:
		// The first name is lowered unconditionally, even if malformed —
		// wire.ToLower stops safely at the first bad label. wire.Valid is
		// used only to locate where the second name begins; the second
		// name's lowering stays conditional on the first having parsed.
		wire.ToLower(datstart)
		n := wire.Valid(datstart)
		if n > 0 && n < len(datstart) {
			wire.ToLower(datstart[n:])
		}

	case typeHINFO:
		if rdlen < 1 || rdlen < int(datstart[0])+1 {
			return
		}
		lowercaseTextField(datstart)
		skip := int(datstart[0]) + 1
		if rdlen < skip+1 {
			return
		}
		lowercaseTextField(datstart[skip:])

	case typeRT, typeAFSDB, typeKX, typeMX:
		if rdlen < 2+1 {
			return
		}
		wire.ToLower(datstart[2:])

	case typeSIG, typeRRSIG:
		if rdlen < rrsigFixedLen+1 {
			return
		}
		wire.ToLower(datstart[rrsigFixedLen:])

	case typePX:
		if rdlen < 2+1 {
			return
		}
		rest := datstart[2:]
		// As with MINFO/RP/SOA above: the first name is lowered
		// unconditionally; wire.Valid only locates the second name.
		wire.ToLower(rest)
		n := wire.Valid(rest)
		if n > 0 && n < len(rest) {
			wire.ToLower(rest[n:])
		}

	case typeNAPTR:
		if rdlen < 4 {
			return
		}
		p := datstart[4:]
		for i := 0; i < 3; i++ {
			if len(p) < 1 {
				return
			}
			skip := int(p[0]) + 1
			if len(p) < skip {
				return
			}
			p = p[skip:]
		}
		if len(p) < 1 {
			return
		}
		wire.ToLower(p)

	case typeSRV:
		if rdlen < 6+1 {
			return
		}
		wire.ToLower(datstart[6:])

	default:
		// Nothing to do for unknown/unlisted types.
	}
}

// canonicalize builds the byte sequence signed by the RRSIG at sigIdx in buf,
// per RFC 4034 §6 (spec.md §4.2). It returns an error rather than writing to
// buf if the RRSIG's labels field exceeds the RRset owner's label count — the
// one fatal structural condition at this stage (spec.md §4.2 step 3). The
// RRSIG's fixed prefix and signer name must already be validated by the
// caller; sigHeader is exactly those bytes: 18 + signer_len.
//
// Grounded on val_sigcrypt.c's rrset_canonical/insert_can_owner.
func canonicalize(buf *Buffer, rrset *RRset, sigHeader []byte) error {
	owner, ok := canonicalOwner(sigHeader, rrset.OwnerName)
	if !ok {
		return ErrLabelCountOutOfRange
	}

	buf.Clear()
	headerOff := buf.Len()
	buf.Write(sigHeader)
	lowerSignerName(buf, headerOff)

	typeBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(typeBytes, rrset.Type)
	classBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(classBytes, rrset.Class)
	origTTL := sigHeader[6:10] // orig_ttl sits at offset 6 within the 18-byte fixed prefix

	for _, i := range rrset.canonicalSortedIndices() {
		buf.Write(owner)
		buf.Write(typeBytes)
		buf.Write(classBytes)
		buf.Write(origTTL)

		rrOff := buf.Len()
		buf.Write(rrset.rrData[i])
		canonicalizeRdata(rrset.Type, buf.At(rrOff))
	}

	buf.Flip()
	return nil
}
