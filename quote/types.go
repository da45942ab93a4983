/*
# DCAP Quote Data Types

This package contains the data types and decoding functions for Intel DCAP attestation quotes
(SGX and TDX, quote versions 3, 4 and 5).

Decoding is a pure function of the input: nothing is verified, nothing is logged and no state is kept between calls.

## Quote Format

	To give a *rough* understanding of how a quote is formed see the graphic below.
	Every quote starts with the same 48 byte header. Version 5 quotes carry a body descriptor
	selecting the report body, version 3 and 4 quotes select it by version and TEE type.


	            Quote                                 AuthDataV4                            QEReportCertificationData
	          DecodeBytes                           decodeAuthDataV4                       decodeQEReportCertificationData
	┌─────────────────────────┐           ┌───────────────────────────────────┐          ┌─────────────────────────────────────┐
	│         Header          │           │          ECDSA Signature          │          │                                     │
	│       (48 bytes)        │           │            (64 bytes)             │          │        EnclaveReport (QE report)    │
	├─────────────────────────┤           ├───────────────────────────────────┤          │             (384 bytes)             │
	│     BodyDescriptor      │           │      ECDSA Attestation Key        │          │                                     │
	│  (6 bytes, v5 only)     │           │            (64 bytes)             │          ├─────────────────────────────────────┤
	├─────────────────────────┤           ├───────────────────────────────────┤          │        QE Report Signature          │
	│                         │           │   CertificationDataType == 6      │          │             (64 bytes)              │
	│       ReportBody        │           │            (2 bytes)              │          ├─────────────────────────────────────┤
	│  EnclaveReport   (384)  │           ├───────────────────────────────────┤          │    QEAuthData size (2 bytes)        │
	│  TDReport10      (584)  │           │   CertificationDataSize (4 bytes) │          │    QEAuthData data  (variable)      │
	│  TDReport15      (648)  │           ├───────────────────────────────────┤          ├─────────────────────────────────────┤
	│                         │           │                                   │          │    CertificationData type (2 bytes) │
	├─────────────────────────┤           │    QEReportCertificationData      ├─────────>│    CertificationData size (4 bytes) │
	│     SignedDataSize      │           │            (variable)             │          │    CertificationData data           │
	│        (4 bytes)        │           │                                   │          │    (type 5: PEM PCK chain,          │
	├─────────────────────────┤           └───────────────────────────────────┘          │     terminated with \0 byte)        │
	│                         │                           ^                              └─────────────────────────────────────┘
	│        AuthData         ├───────────────────────────┘
	│  (SignedDataSize bytes) │           AuthDataV3 (version 3) has no type/size prefix:
	│                         │           the QEReportCertificationData block follows
	└─────────────────────────┘           the attestation key directly.

Byte fields are opaque measurement or attribute values.
Only SVN counters, product IDs, sizes and type tags are read as little-endian integers.
*/
package quote
