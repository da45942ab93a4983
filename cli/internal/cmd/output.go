package cmd

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/edgelesssys/go-dcap-quote/quote"
	"github.com/edgelesssys/go-dcap-quote/tdxproto"
	"github.com/fatih/color"
	"github.com/fxamacker/cbor/v2"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"
)

// render encodes the quote in the given output format.
func render(q *quote.Quote, format string) ([]byte, error) {
	switch format {
	case formatText:
		var buf bytes.Buffer
		printQuote(&buf, q)
		return buf.Bytes(), nil
	case formatJSON:
		out, err := json.MarshalIndent(quote.ToHexProjection(q), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case formatYAML:
		return yaml.Marshal(quote.ToHexProjection(q))
	case formatCBOR:
		return cbor.Marshal(quote.ToHexProjection(q))
	case formatProtoJSON:
		msg, err := tdxproto.FromQuote(q)
		if err != nil {
			return nil, fmt.Errorf("converting quote: %w", err)
		}
		out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

var (
	sectionColor = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

// printQuote writes a human readable summary of the quote.
func printQuote(out io.Writer, q *quote.Quote) {
	h := q.Header
	sectionColor.Fprintln(out, "Header")
	printField(out, "Version", h.Version)
	printField(out, "Attestation key type", h.AttestationKeyType)
	printField(out, "TEE", fmt.Sprintf("%s (0x%x)", q.TEE(), h.TEEType))
	printField(out, "QE SVN", h.QESVN)
	printField(out, "PCE SVN", h.PCESVN)
	printField(out, "QE vendor ID", quote.ToHex(h.QEVendorID[:]))
	printField(out, "User data", quote.ToHex(h.UserData[:]))
	if d := q.BodyDescriptor; d != nil {
		printField(out, "Body type", d.Type)
		printField(out, "Body size", d.Size)
	}

	switch body := q.Report.(type) {
	case *quote.EnclaveReport:
		sectionColor.Fprintln(out, "SGX enclave report")
		printEnclaveReport(out, body)
	case *quote.TDReport10:
		sectionColor.Fprintln(out, "TD report 1.0")
		printTDReport10(out, body)
	case *quote.TDReport15:
		sectionColor.Fprintln(out, "TD report 1.5")
		printTDReport10(out, &body.TDReport10)
		printField(out, "TEE TCB SVN 2", quote.ToHex(body.TEETCBSVN2[:]))
		printField(out, "MRSERVICETD", quote.ToHex(body.MRSERVICETD[:]))
	}

	sectionColor.Fprintln(out, "Signature")
	printField(out, "Signed data size", q.SignedDataSize)
	if q.AuthData == nil {
		return
	}
	qeCert := q.AuthData.QEReportCertificationData()
	printField(out, "QE MRSIGNER", quote.ToHex(qeCert.QEReport.MRSIGNER[:]))
	printField(out, "QE ISV prod ID", qeCert.QEReport.ISVProdID)
	printField(out, "QE ISV SVN", qeCert.QEReport.ISVSVN)
	printField(out, "QE auth data size", qeCert.QEAuthData.Size)
	printField(out, "Certification data", fmt.Sprintf("%s (%d bytes)", qeCert.CertificationData.Type, qeCert.CertificationData.Size))

	if qeCert.CertificationData.Type == quote.CertificationDataPCKCertificateChain {
		printPCK(out, q)
	}
}

func printEnclaveReport(out io.Writer, er *quote.EnclaveReport) {
	printField(out, "CPU SVN", quote.ToHex(er.CPUSVN[:]))
	printField(out, "Misc select", fmt.Sprintf("0x%08x", er.MiscSelect))
	printField(out, "Attributes", quote.ToHex(er.Attributes[:]))
	printField(out, "MRENCLAVE", quote.ToHex(er.MRENCLAVE[:]))
	printField(out, "MRSIGNER", quote.ToHex(er.MRSIGNER[:]))
	printField(out, "ISV prod ID", er.ISVProdID)
	printField(out, "ISV SVN", er.ISVSVN)
	printField(out, "Report data", quote.ToHex(er.ReportData[:]))
}

func printTDReport10(out io.Writer, td *quote.TDReport10) {
	printField(out, "TEE TCB SVN", quote.ToHex(td.TEETCBSVN[:]))
	printField(out, "MRSEAM", quote.ToHex(td.MRSEAM[:]))
	printField(out, "MRSIGNERSEAM", quote.ToHex(td.MRSIGNERSEAM[:]))
	printField(out, "SEAM attributes", quote.ToHex(td.SEAMAttributes[:]))
	printField(out, "TD attributes", fmt.Sprintf("0x%016x", binary.LittleEndian.Uint64(td.TDAttributes[:])))
	printField(out, "XFAM", fmt.Sprintf("0x%016x", binary.LittleEndian.Uint64(td.XFAM[:])))
	printField(out, "MRTD", quote.ToHex(td.MRTD[:]))
	printField(out, "MRCONFIGID", quote.ToHex(td.MRCONFIGID[:]))
	printField(out, "MROWNER", quote.ToHex(td.MROWNER[:]))
	printField(out, "MROWNERCONFIG", quote.ToHex(td.MROWNERCONFIG[:]))
	for i, rtmr := range td.RTMR {
		printField(out, fmt.Sprintf("RTMR%d", i), quote.ToHex(rtmr[:]))
	}
	printField(out, "Report data", quote.ToHex(td.ReportData[:]))
}

func printPCK(out io.Writer, q *quote.Quote) {
	chain, err := q.PCKCertificationData().PCKCertChain()
	if err != nil {
		warnColor.Fprintf(out, "Unable to parse PCK certificate chain: %s\n", err)
		return
	}

	sectionColor.Fprintln(out, "PCK certificate chain")
	for i, cert := range chain {
		printField(out, fmt.Sprintf("Certificate %d", i), cert.Subject.CommonName)
	}

	ext, err := q.PCKExtensions()
	if err != nil {
		warnColor.Fprintf(out, "Unable to parse PCK certificate extensions: %s\n", err)
		return
	}
	printField(out, "FMSPC", quote.ToHex(ext.FMSPC[:]))
	printField(out, "PCE ID", quote.ToHex(ext.PCEID[:]))
	printField(out, "PCE SVN", ext.TCB.PCESVN)
	printField(out, "CPU SVN", quote.ToHex(ext.TCB.CPUSVN[:]))
	printField(out, "SGX type", ext.SGXType)
}

func printField(out io.Writer, name string, value any) {
	fmt.Fprintf(out, "  %-22s %v\n", name+":", value)
}
