// Package pck parses the Provisioning Certification Key (PCK) certificate chain embedded in DCAP quotes.
//
// The package only decodes certificates. It does not validate the chain or any signature.
package pck

import (
	"bytes"
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"fmt"
)

// sgxExtensionOID is the OID for Intel's custom x509 SGX extension.
var sgxExtensionOID = asn1.ObjectIdentifier{1, 2, 840, 113741, 1, 13, 1}

// Extensions are the SGX extensions of a PCK certificate.
type Extensions struct {
	PPID               [16]byte
	TCB                TCB
	PCEID              [2]byte
	FMSPC              [6]byte
	SGXType            int // 0 standard, 1 scalable, 2 scalable with integrity
	PlatformInstanceID []byte
	Configuration      Configuration
}

// TCB describes the TCB level a PCK certificate was issued for.
type TCB struct {
	CompSVN [16]int
	PCESVN  int
	CPUSVN  [16]byte
}

// Configuration describes the platform configuration of multi package platforms.
type Configuration struct {
	DynamicPlatform bool
	CachedKeys      bool
	SMTEnabled      bool
}

// ParsePEMCertificateChain parses a certificate chain from a PEM-encoded byte slice.
// Trailing NUL bytes, as found in quote certification data, are ignored.
func ParsePEMCertificateChain(certChainPEM []byte) ([]*x509.Certificate, error) {
	rest := bytes.TrimRight(certChainPEM, "\x00")

	var chain []*x509.Certificate
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parsing certificate from PEM: %w", err)
		}
		chain = append(chain, cert)
	}
	if len(chain) == 0 {
		return nil, errors.New("no certificates found in PEM data")
	}
	return chain, nil
}

// oidEntry is a single element of the SGX extension: an OID followed by a value of varying type.
type oidEntry struct {
	OID   asn1.ObjectIdentifier
	Value asn1.RawValue
}

// ParseExtensions parses the SGX extensions of a PCK certificate.
func ParseExtensions(cert *x509.Certificate) (Extensions, error) {
	var raw []byte
	for _, ext := range cert.Extensions {
		if ext.Id.Equal(sgxExtensionOID) {
			raw = ext.Value
			break
		}
	}
	if len(raw) == 0 {
		return Extensions{}, errors.New("no SGX extension found in certificate")
	}

	entries, err := unmarshalEntries(raw)
	if err != nil {
		return Extensions{}, fmt.Errorf("unmarshaling SGX extension: %w", err)
	}

	var ext Extensions
	seen := map[int]bool{}
	for _, e := range entries {
		id, ok := childID(sgxExtensionOID, e.OID)
		if !ok {
			continue
		}
		seen[id] = true

		switch id {
		case 1:
			err = octets(e.Value, ext.PPID[:], "PPID")
		case 2:
			ext.TCB, err = parseTCB(e.Value)
		case 3:
			err = octets(e.Value, ext.PCEID[:], "PCEID")
		case 4:
			err = octets(e.Value, ext.FMSPC[:], "FMSPC")
		case 5:
			var t asn1.Enumerated
			_, err = asn1.Unmarshal(e.Value.FullBytes, &t)
			ext.SGXType = int(t)
		case 6:
			if len(e.Value.Bytes) != 16 {
				err = fmt.Errorf("invalid PlatformInstanceID length: %d", len(e.Value.Bytes))
			}
			ext.PlatformInstanceID = e.Value.Bytes
		case 7:
			ext.Configuration, err = parseConfiguration(e.Value)
		}
		if err != nil {
			return Extensions{}, err
		}
	}

	for id, name := range map[int]string{1: "PPID", 2: "TCB", 3: "PCEID", 4: "FMSPC", 5: "SGXType"} {
		if !seen[id] {
			return Extensions{}, fmt.Errorf("SGX extension is missing %s", name)
		}
	}
	return ext, nil
}

func parseTCB(v asn1.RawValue) (TCB, error) {
	entries, err := unmarshalEntries(v.FullBytes)
	if err != nil {
		return TCB{}, fmt.Errorf("unmarshaling TCB: %w", err)
	}
	tcbOID := append(asn1.ObjectIdentifier{}, sgxExtensionOID...)
	tcbOID = append(tcbOID, 2)

	var tcb TCB
	for _, e := range entries {
		id, ok := childID(tcbOID, e.OID)
		if !ok {
			continue
		}
		switch {
		case id >= 1 && id <= 16:
			if _, err := asn1.Unmarshal(e.Value.FullBytes, &tcb.CompSVN[id-1]); err != nil {
				return TCB{}, fmt.Errorf("unmarshaling TCB component %d: %w", id, err)
			}
		case id == 17:
			if _, err := asn1.Unmarshal(e.Value.FullBytes, &tcb.PCESVN); err != nil {
				return TCB{}, fmt.Errorf("unmarshaling PCESVN: %w", err)
			}
		case id == 18:
			if err := octets(e.Value, tcb.CPUSVN[:], "CPUSVN"); err != nil {
				return TCB{}, err
			}
		}
	}
	return tcb, nil
}

func parseConfiguration(v asn1.RawValue) (Configuration, error) {
	entries, err := unmarshalEntries(v.FullBytes)
	if err != nil {
		return Configuration{}, fmt.Errorf("unmarshaling configuration: %w", err)
	}
	configOID := append(asn1.ObjectIdentifier{}, sgxExtensionOID...)
	configOID = append(configOID, 7)

	var cfg Configuration
	for _, e := range entries {
		id, ok := childID(configOID, e.OID)
		if !ok {
			continue
		}
		var dst *bool
		switch id {
		case 1:
			dst = &cfg.DynamicPlatform
		case 2:
			dst = &cfg.CachedKeys
		case 3:
			dst = &cfg.SMTEnabled
		default:
			continue
		}
		if _, err := asn1.Unmarshal(e.Value.FullBytes, dst); err != nil {
			return Configuration{}, fmt.Errorf("unmarshaling configuration option %d: %w", id, err)
		}
	}
	return cfg, nil
}

func unmarshalEntries(der []byte) ([]oidEntry, error) {
	var entries []oidEntry
	rest, err := asn1.Unmarshal(der, &entries)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("unexpected trailing data (%d bytes)", len(rest))
	}
	return entries, nil
}

// childID returns the last arc of oid if oid is a direct child of parent.
func childID(parent, oid asn1.ObjectIdentifier) (int, bool) {
	if len(oid) != len(parent)+1 {
		return 0, false
	}
	for i := range parent {
		if parent[i] != oid[i] {
			return 0, false
		}
	}
	return oid[len(parent)], true
}

func octets(v asn1.RawValue, dst []byte, name string) error {
	if v.Tag != asn1.TagOctetString {
		return fmt.Errorf("%s is not an octet string (tag %d)", name, v.Tag)
	}
	if len(v.Bytes) != len(dst) {
		return fmt.Errorf("invalid %s length: %d", name, len(v.Bytes))
	}
	copy(dst, v.Bytes)
	return nil
}
