// Package dnssec_test mints real signed DNSSEC fixtures with
// github.com/miekg/dns, exactly as the teacher's dnssec/setup_test.go does,
// but goes one step further: since this package verifies raw wire-format
// RDATA rather than dns.RR values, every fixture is immediately packed down
// to `<rdlen><rdata>` bytes with wireRdata before being handed to NewRRset.
// miekg/dns never appears outside _test.go files; it lives in the external
// dnssec_test package specifically so the production dnssec package never
// has to import it.
package dnssec_test

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"time"

	"github.com/miekg/dns"

	dnssec "github.com/nsmithuk/dnssec-sigcore"
	"github.com/nsmithuk/dnssec-sigcore/cryptobackend"
)

const testZone = "example.com."

// flagZoneKey mirrors RFC 4034 §2.1.1's Zone Key flag bit; the production
// package keeps its own unexported copy, this is the test fixtures' copy.
const flagZoneKey = 1 << 8

// wireRdata packs rr and strips everything but the trailing `<rdlen><rdata>`
// bytes RRset entries are made of, by forcing the owner name to the root
// label before packing so the fixed header ahead of rdlen is always 9 bytes
// (1-byte root name, 2-byte type, 2-byte class, 4-byte ttl).
func wireRdata(rr dns.RR) []byte {
	rr = dns.Copy(rr)
	rr.Header().Name = "."
	rr.Header().Class = dns.ClassINET

	buf := make([]byte, dns.Len(rr)+1)
	n, err := dns.PackRR(rr, buf, 0, nil, false)
	if err != nil {
		panic(err)
	}
	return buf[9:n]
}

// wireName encodes name as a wire-format dname by packing a throwaway A
// record under it and slicing off everything packed after the name.
func wireName(name string) []byte {
	name = dns.Fqdn(name)
	rr := &dns.A{Hdr: dns.RR_Header{Name: name, Rrtype: dns.TypeA, Class: dns.ClassINET}, A: []byte{0, 0, 0, 0}}
	buf := make([]byte, dns.Len(rr)+1)
	n, err := dns.PackRR(rr, buf, 0, nil, false)
	if err != nil {
		panic(err)
	}
	// type(2) class(2) ttl(4) rdlen(2) rdata(4, an A record's address) follow
	// the name; strip those trailing 14 bytes.
	return buf[:n-14]
}

type testKey struct {
	dnskey *dns.DNSKEY
	signer crypto.Signer
}

func mustRSAKey(algorithm uint8, bits int) *testKey {
	dnskey := &dns.DNSKEY{
		Hdr:       dns.RR_Header{Name: testZone, Rrtype: dns.TypeDNSKEY, Class: dns.ClassINET, Ttl: 300},
		Flags:     flagZoneKey,
		Protocol:  3,
		Algorithm: algorithm,
	}
	secret, err := dnskey.Generate(bits)
	if err != nil {
		panic(err)
	}
	signer, _ := secret.(*rsa.PrivateKey)
	return &testKey{dnskey: dnskey, signer: signer}
}

func mustECKey(algorithm uint8) *testKey {
	dnskey := &dns.DNSKEY{
		Hdr:       dns.RR_Header{Name: testZone, Rrtype: dns.TypeDNSKEY, Class: dns.ClassINET, Ttl: 300},
		Flags:     flagZoneKey,
		Protocol:  3,
		Algorithm: algorithm,
	}
	bits := 256
	if algorithm == dnssec.AlgorithmECDSAP384SHA384 {
		bits = 384
	}
	secret, err := dnskey.Generate(bits)
	if err != nil {
		panic(err)
	}
	signer, _ := secret.(*ecdsa.PrivateKey)
	return &testKey{dnskey: dnskey, signer: signer}
}

func mustEd25519Key() *testKey {
	dnskey := &dns.DNSKEY{
		Hdr:       dns.RR_Header{Name: testZone, Rrtype: dns.TypeDNSKEY, Class: dns.ClassINET, Ttl: 300},
		Flags:     flagZoneKey,
		Protocol:  3,
		Algorithm: dns.ED25519,
	}
	secret, err := dnskey.Generate(256)
	if err != nil {
		panic(err)
	}
	signer, _ := secret.(ed25519.PrivateKey)
	return &testKey{dnskey: dnskey, signer: signer}
}

// sign signs rrs (all owned by the same name as k.dnskey) and returns the
// resulting RRSIG. A zero inception/expiration picks a 48-hour window
// centred on now (24 hours either side).
func (k *testKey) sign(rrs []dns.RR, inception, expiration uint32) *dns.RRSIG {
	if inception == 0 {
		inception = uint32(time.Now().Add(-24 * time.Hour).Unix())
	}
	if expiration == 0 {
		expiration = uint32(time.Now().Add(24 * time.Hour).Unix())
	}
	rrsig := &dns.RRSIG{
		Hdr:        dns.RR_Header{Name: k.dnskey.Hdr.Name, Rrtype: dns.TypeRRSIG, Class: dns.ClassINET, Ttl: k.dnskey.Hdr.Ttl},
		Inception:  inception,
		Expiration: expiration,
		KeyTag:     k.dnskey.KeyTag(),
		SignerName: k.dnskey.Hdr.Name,
		Algorithm:  k.dnskey.Algorithm,
		Labels:     uint8(dns.CountLabel(k.dnskey.Hdr.Name)),
	}
	if err := rrsig.Sign(k.signer, rrs); err != nil {
		panic(err)
	}
	return rrsig
}

// buildRRset wires up an RRset view over data (all sharing owner/type/class)
// covered by sigs.
func buildRRset(owner []byte, rrtype, class uint16, data []dns.RR, sigs []*dns.RRSIG) *dnssec.RRset {
	dataRdata := make([][]byte, len(data))
	for i, rr := range data {
		dataRdata[i] = wireRdata(rr)
	}
	sigRdata := make([][]byte, len(sigs))
	for i, sig := range sigs {
		sigRdata[i] = wireRdata(sig)
	}
	return dnssec.NewRRset(owner, rrtype, class, dataRdata, sigRdata)
}

func testEnv() *dnssec.Env {
	return dnssec.NewEnv(cryptobackend.New(), 4096)
}
