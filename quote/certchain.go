package quote

import (
	"crypto/x509"
	"fmt"

	"github.com/edgelesssys/go-dcap-quote/pck"
)

// PCKCertChain parses the PEM encoded PCK certificate chain held by the certification data.
// The chain is ordered leaf first. It is parsed only, not verified.
func (c CertificationData) PCKCertChain() ([]*x509.Certificate, error) {
	if c.Type != CertificationDataPCKCertificateChain {
		return nil, fmt.Errorf("certification data does not hold a PCK certificate chain (expected type %d, got %s)", CertificationDataPCKCertificateChain, c.Type)
	}
	return pck.ParsePEMCertificateChain(c.Data)
}

// PCKExtensions parses the SGX extensions of the quote's PCK leaf certificate.
func (q *Quote) PCKExtensions() (pck.Extensions, error) {
	chain, err := q.PCKCertificationData().PCKCertChain()
	if err != nil {
		return pck.Extensions{}, err
	}
	return pck.ParseExtensions(chain[0])
}
