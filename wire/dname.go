// Package wire implements the small set of DNS-name ("dname") operations the
// DNSSEC verification core depends on but does not define itself (spec.md §6:
// "DNS name ops: lowercase-in-place, label count, label removal, equality
// compare, validity check returning length"). Every function here operates on
// a borrowed wire-format byte slice — length-prefixed labels terminated by a
// zero-length root label, with no message-level compression (RRSIG signer
// names and RR owner names inside RDATA never carry compression pointers).
//
// These are grounded on the dname.c helpers the unbound validator this package
// is otherwise modelled on uses: query_dname_tolower, dname_signame_label_count,
// dname_remove_label, query_dname_compare, dname_valid.
package wire

// maxLabelLen is the maximum length of a single DNS label (RFC 1035 §3.1).
const maxLabelLen = 63

// maxNameLen is the maximum total length of a wire-format DNS name, including
// every length byte and the terminating root label (RFC 1035 §3.1).
const maxNameLen = 255

// Valid checks that name begins with a well-formed wire-format dname: a
// sequence of length-prefixed labels (1-63 bytes each, no compression
// pointers) terminated by a zero-length root label, all within len(name) and
// within the 255-byte total-name limit. It returns the number of bytes the
// name occupies (including the terminating root label), or 0 if name is
// truncated, malformed, or oversized.
func Valid(name []byte) int {
	total := 0
	i := 0
	for {
		if i >= len(name) {
			return 0
		}
		l := int(name[i])
		if l&0xC0 != 0 {
			// Compression pointer, or a reserved/extended label type. Neither
			// is valid inside an isolated RDATA byte slice.
			return 0
		}
		if l == 0 {
			total += 1
			i += 1
			if total > maxNameLen {
				return 0
			}
			return total
		}
		if l > maxLabelLen {
			return 0
		}
		if i+1+l > len(name) {
			return 0
		}
		total += 1 + l
		if total > maxNameLen {
			return 0
		}
		i += 1 + l
	}
}

// LabelCount returns the number of labels in a valid wire-format dname,
// excluding the terminating root label and, per the RFC 4034 §3.1.7/RFC 4035
// §5.3.2 convention this package follows for RRSIG Labels-field comparisons,
// excluding a leading wildcard label ("*") as well. name must already be
// valid (as per Valid); LabelCount does not itself re-validate length bytes
// beyond what it needs to walk labels, and returns 0 on an obviously
// malformed input.
func LabelCount(name []byte) int {
	count := 0
	i := 0
	first := true
	for i < len(name) {
		l := int(name[i])
		if l&0xC0 != 0 {
			return 0
		}
		if l == 0 {
			break
		}
		if i+1+l > len(name) {
			return 0
		}
		if !(first && l == 1 && name[i+1] == '*') {
			count++
		}
		first = false
		i += 1 + l
	}
	return count
}

// RemoveLeftmostLabels returns the suffix of name with its n leftmost labels
// stripped off (e.g. removing 1 label from "www.example.com." wire bytes
// yields the wire bytes for "example.com."). It returns nil if name is
// malformed or has fewer than n non-root labels.
func RemoveLeftmostLabels(name []byte, n int) []byte {
	i := 0
	for ; n > 0; n-- {
		if i >= len(name) {
			return nil
		}
		l := int(name[i])
		if l&0xC0 != 0 || l == 0 {
			return nil
		}
		if i+1+l > len(name) {
			return nil
		}
		i += 1 + l
	}
	return name[i:]
}

// ToLower lower-cases the ASCII letters within every label of a wire-format
// dname, in place. Length bytes are left untouched. The caller is responsible
// for ensuring name lives in a scratch buffer it is permitted to mutate;
// ToLower never touches the caller's original input bytes.
func ToLower(name []byte) {
	i := 0
	for i < len(name) {
		l := int(name[i])
		if l&0xC0 != 0 || l == 0 {
			return
		}
		if i+1+l > len(name) {
			return
		}
		for j := i + 1; j < i+1+l; j++ {
			if name[j] >= 'A' && name[j] <= 'Z' {
				name[j] += 'a' - 'A'
			}
		}
		i += 1 + l
	}
}

// Equal reports whether a and b are the same wire-format dname under a
// case-insensitive ASCII comparison of label content (length bytes must match
// exactly). Both must be exactly one valid name long; trailing bytes after the
// first name in either slice are not considered.
func Equal(a, b []byte) bool {
	la := Valid(a)
	lb := Valid(b)
	if la == 0 || lb == 0 || la != lb {
		return false
	}
	for i := 0; i < la; i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
