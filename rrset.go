package dnssec

import "encoding/binary"

// rdata returns the raw `<u16 rdlen><rdata>` wire bytes of entry idx, or nil
// if idx is out of range. Grounded on val_sigcrypt.c's rrset_get_rdata.
func (r *RRset) rdata(idx int) []byte {
	if idx < 0 || idx >= len(r.rrData) {
		return nil
	}
	return r.rrData[idx]
}

// sigCount returns the number of RRSIGs covering this set. Grounded on
// val_sigcrypt.c's rrset_get_sigcount.
func (r *RRset) sigCount() int {
	return r.RRSIGCount
}

// sigIndex maps a signature index (0-based within the RRSIG partition) to its
// absolute slot in rrData.
func (r *RRset) sigIndex(sigIdx int) int {
	return r.Count + sigIdx
}

// sigRdata returns the raw RRSIG rdata at sigIdx, or nil on an out-of-range
// index.
func (r *RRset) sigRdata(sigIdx int) []byte {
	if sigIdx < 0 || sigIdx >= r.RRSIGCount {
		return nil
	}
	return r.rdata(r.sigIndex(sigIdx))
}

// sigKeytag reads the keytag field of RRSIG sigIdx. Returns 0 on a short
// read, per spec.md §4.1 ("on any short read it returns a sentinel").
// Grounded on val_sigcrypt.c's rrset_get_sig_keytag.
func (r *RRset) sigKeytag(sigIdx int) uint16 {
	rd := r.sigRdata(sigIdx)
	if len(rd) < rdlenSize+rrsigFixedLen {
		return 0
	}
	return binary.BigEndian.Uint16(rd[rdlenSize+16:])
}

// sigAlgorithm reads the algorithm field of RRSIG sigIdx. Returns 0 on a
// short read. Grounded on val_sigcrypt.c's rrset_get_sig_algo.
func (r *RRset) sigAlgorithm(sigIdx int) uint8 {
	rd := r.sigRdata(sigIdx)
	if len(rd) < rdlenSize+3 {
		return 0
	}
	return rd[rdlenSize+2]
}

// DNSKEYFlags reads the flags field of the DNSKEY at idx. Returns 0 on a
// short read. Grounded on val_sigcrypt.c's dnskey_get_flags.
func (r *RRset) DNSKEYFlags(idx int) uint16 {
	rd := r.rdata(idx)
	if len(rd) < rdlenSize+2 {
		return 0
	}
	return binary.BigEndian.Uint16(rd[rdlenSize:])
}

// DNSKEYAlgorithm reads the algorithm field of the DNSKEY at idx. Returns 0
// on a short read. Grounded on val_sigcrypt.c's dnskey_get_algo.
func (r *RRset) DNSKEYAlgorithm(idx int) uint8 {
	rd := r.rdata(idx)
	if len(rd) < rdlenSize+4 {
		return 0
	}
	return rd[rdlenSize+3]
}

// dnskeyPublicKey returns the public-key field of the DNSKEY at idx (the
// rdata bytes after flags/protocol/algorithm), or nil on a short read.
func (r *RRset) dnskeyPublicKey(idx int) []byte {
	rd := r.rdata(idx)
	if len(rd) < rdlenSize+dnskeyFixedLen {
		return nil
	}
	return rd[rdlenSize+dnskeyFixedLen:]
}

// DSKeyAlgorithm reads the algorithm field of the DS record at idx (the
// signing algorithm of the key the DS authenticates, not the digest
// algorithm). Returns 0 on a short read. Grounded on val_sigcrypt.c's
// ds_get_key_algo.
func (r *RRset) DSKeyAlgorithm(idx int) uint8 {
	rd := r.rdata(idx)
	if len(rd) < rdlenSize+3 {
		return 0
	}
	return rd[rdlenSize+2]
}

// dsDigestAlgorithm reads the digest_type field of the DS record at idx.
// Returns 0 on a short read. Grounded on val_sigcrypt.c's ds_get_digest_algo.
func (r *RRset) dsDigestAlgorithm(idx int) uint8 {
	rd := r.rdata(idx)
	if len(rd) < rdlenSize+4 {
		return 0
	}
	return rd[rdlenSize+3]
}

// DSKeytag reads the key_tag field of the DS record at idx. Returns 0 on a
// short read. Grounded on val_sigcrypt.c's ds_get_keytag.
func (r *RRset) DSKeytag(idx int) uint16 {
	rd := r.rdata(idx)
	if len(rd) < rdlenSize+2 {
		return 0
	}
	return binary.BigEndian.Uint16(rd[rdlenSize:])
}

// dsDigest returns the digest field of the DS record at idx, or nil if the
// record is too short to hold even a single digest byte. Grounded on
// val_sigcrypt.c's ds_get_sigdata, which requires rdlen >= 2+5 (key_tag +
// algorithm + digest_type + at least one digest byte).
func (r *RRset) dsDigest(idx int) []byte {
	rd := r.rdata(idx)
	if len(rd) < rdlenSize+dsFixedLen+1 {
		return nil
	}
	return rd[rdlenSize+dsFixedLen:]
}
