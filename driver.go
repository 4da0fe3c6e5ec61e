package dnssec

// DNSKEYVerifyRRset tries every RRSIG covering rrset against the single
// DNSKEY at keyIdx, returning Secure as soon as one signature verifies.
// Bogus/Unchecked verdicts from earlier signatures are discarded once a
// later signature succeeds; if none succeed, the verdict and error from the
// last signature tried are returned (spec.md §4.5's "try every signature"
// rule, §8 invariant 1: trying signatures in any order reaches the same
// final Secure/not-Secure outcome). Grounded on val_sigcrypt.c's
// dnskey_verify_rrset, generalized from "one key, the caller's chosen
// signature" to "one key, every signature".
func DNSKEYVerifyRRset(env *Env, rrset *RRset, dnskeySet *RRset, keyIdx int) (Verdict, error) {
	if rrset.sigCount() == 0 {
		return Bogus, ErrNoSignatures
	}

	var verdict Verdict
	var err error
	for sigIdx := 0; sigIdx < rrset.sigCount(); sigIdx++ {
		verdict, err = DNSKEYVerifyRRsetSig(env, rrset, sigIdx, dnskeySet, keyIdx)
		if verdict == Secure {
			return Secure, nil
		}
	}
	return verdict, err
}

// DNSKEYSetVerifyRRsetSig tries the RRSIG at sigIdx against every DNSKEY in
// dnskeySet, returning Secure as soon as one key verifies it. Grounded on
// val_sigcrypt.c's dnskeyset_verify_rrset_sig.
func DNSKEYSetVerifyRRsetSig(env *Env, rrset *RRset, sigIdx int, dnskeySet *RRset) (Verdict, error) {
	if dnskeySet.Count == 0 {
		return Bogus, ErrNoAppropriateKey
	}

	var verdict Verdict
	var err error
	matchedAnyKey := false
	for keyIdx := 0; keyIdx < dnskeySet.Count; keyIdx++ {
		if rrset.sigKeytag(sigIdx) != dnskeySet.DNSKEYKeytag(keyIdx) ||
			rrset.sigAlgorithm(sigIdx) != dnskeySet.DNSKEYAlgorithm(keyIdx) {
			continue
		}
		matchedAnyKey = true
		verdict, err = DNSKEYVerifyRRsetSig(env, rrset, sigIdx, dnskeySet, keyIdx)
		if verdict == Secure {
			return Secure, nil
		}
	}
	if !matchedAnyKey {
		return Bogus, ErrNoAppropriateKey
	}
	return verdict, err
}

// DNSKEYSetVerifyRRset is the top-level entry point (spec.md §4.5, §6): it
// tries every RRSIG covering rrset against every matching DNSKEY in
// dnskeySet, short-circuiting on the first Secure result (spec.md §8
// invariant 1). With no signatures, or no DNSKEY whose algorithm and keytag
// could plausibly match any signature, the result is Bogus rather than
// Unchecked — an rrset with nothing capable of authenticating it is exactly
// as insecure as one that failed cryptographically. Grounded on
// val_sigcrypt.c's dnskeyset_verify_rrset.
func DNSKEYSetVerifyRRset(env *Env, rrset *RRset, dnskeySet *RRset) (Verdict, error) {
	if rrset.sigCount() == 0 {
		return Bogus, ErrNoSignatures
	}
	if dnskeySet.Count == 0 {
		return Bogus, ErrNoAppropriateKey
	}

	var verdict Verdict
	var err error
	for sigIdx := 0; sigIdx < rrset.sigCount(); sigIdx++ {
		verdict, err = DNSKEYSetVerifyRRsetSig(env, rrset, sigIdx, dnskeySet)
		if verdict == Secure {
			return Secure, nil
		}
	}
	return verdict, err
}
