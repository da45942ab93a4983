package blobs

// PCKCertChainPEM is a PCK certificate chain (leaf, platform CA, root CA) of a test PKI.
// The leaf carries an SGX extension with FMSPC 00806f050000, PCEID 0000, PCESVN 13,
// CPUSVN 0102..10, component SVNs 1..16, SGX type 0 and PPID 00112233445566778899aabbccddeeff.
const PCKCertChainPEM = `-----BEGIN CERTIFICATE-----
MIIDuzCCA2GgAwIBAgIUY/0477bN2HiAw7jnzzaBjUx62BAwCgYIKoZIzj0EAwIw
PjEhMB8GA1UEAwwYVGVzdCBTR1ggUENLIFBsYXRmb3JtIENBMRkwFwYDVQQKDBBU
ZXN0IENvcnBvcmF0aW9uMCAXDTI2MTAxODEwMzM0NVoYDzIxMjYwOTI0MTAzMzQ1
WjA+MSEwHwYDVQQDDBhUZXN0IFNHWCBQQ0sgQ2VydGlmaWNhdGUxGTAXBgNVBAoM
EFRlc3QgQ29ycG9yYXRpb24wWTATBgcqhkjOPQIBBggqhkjOPQMBBwNCAATG0fcw
JPl67dbI53idkfk6N1uR4zUyM9oneKdkElVx60+hYSNHEA9MO9REZpiK5ct8GdXB
WScAkeRedY9w6mqZo4ICOTCCAjUwDAYDVR0TAQH/BAIwADAOBgNVHQ8BAf8EBAMC
BsAwggHTBgkqhkiG+E0BDQEEggHEMIIBwDAeBgoqhkiG+E0BDQEBBBAAESIzRFVm
d4iZqrvM3e7/MIIBYwYKKoZIhvhNAQ0BAjCCAVMwEAYLKoZIhvhNAQ0BAgECAQEw
EAYLKoZIhvhNAQ0BAgICAQIwEAYLKoZIhvhNAQ0BAgMCAQMwEAYLKoZIhvhNAQ0B
AgQCAQQwEAYLKoZIhvhNAQ0BAgUCAQUwEAYLKoZIhvhNAQ0BAgYCAQYwEAYLKoZI
hvhNAQ0BAgcCAQcwEAYLKoZIhvhNAQ0BAggCAQgwEAYLKoZIhvhNAQ0BAgkCAQkw
EAYLKoZIhvhNAQ0BAgoCAQowEAYLKoZIhvhNAQ0BAgsCAQswEAYLKoZIhvhNAQ0B
AgwCAQwwEAYLKoZIhvhNAQ0BAg0CAQ0wEAYLKoZIhvhNAQ0BAg4CAQ4wEAYLKoZI
hvhNAQ0BAg8CAQ8wEAYLKoZIhvhNAQ0BAhACARAwEAYLKoZIhvhNAQ0BAhECAQ0w
HwYLKoZIhvhNAQ0BAhIEEAECAwQFBgcICQoLDA0ODxAwEAYKKoZIhvhNAQ0BAwQC
AAAwFAYKKoZIhvhNAQ0BBAQGAIBvBQAAMA8GCiqGSIb4TQENAQUKAQAwHQYDVR0O
BBYEFGJXARaWBL3YCsoVutgAtN3T9hYDMB8GA1UdIwQYMBaAFP67syPKm/X1Hu1m
DXkbQKXZ3UbXMAoGCCqGSM49BAMCA0gAMEUCIQCruifEnKhePHY26POsbWPW+HP5
zNN2J+A3eLiM4CZm9AIgRpzBGCH8wDLsqFFQldAyRQl6+6/U4H5FLuZZZsdlMIE=
-----END CERTIFICATE-----
-----BEGIN CERTIFICATE-----
MIIB3jCCAYSgAwIBAgIUKib4YWtqRJ5lW/Xx88VV3x8fi08wCgYIKoZIzj0EAwIw
NjEZMBcGA1UEAwwQVGVzdCBTR1ggUm9vdCBDQTEZMBcGA1UECgwQVGVzdCBDb3Jw
b3JhdGlvbjAgFw0yNjEwMTgxMDMzNDVaGA8yMTI2MDkyNDEwMzM0NVowPjEhMB8G
A1UEAwwYVGVzdCBTR1ggUENLIFBsYXRmb3JtIENBMRkwFwYDVQQKDBBUZXN0IENv
cnBvcmF0aW9uMFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAE0viaaZmCcAeBDso3
Y9Bno2Npk7bW6EOXxPLBZv+cBbsCIljFTFLETuSIhYvqOeF4BSV0B3VDo5MZR+zq
VyYCB6NmMGQwEgYDVR0TAQH/BAgwBgEB/wIBADAOBgNVHQ8BAf8EBAMCAQYwHQYD
VR0OBBYEFP67syPKm/X1Hu1mDXkbQKXZ3UbXMB8GA1UdIwQYMBaAFGx2IBtwAFyp
QIAQWTj5yIvzxGW7MAoGCCqGSM49BAMCA0gAMEUCIAwKmTwcyxp7t4Zk3GbDDDwK
zFSOaU9v24tsSgQ1T4lwAiEA2Ogxb2Vs7UzIV8gOKOBivw7TocHSX5H72rZSRvv9
RRc=
-----END CERTIFICATE-----
-----BEGIN CERTIFICATE-----
MIIB0zCCAXmgAwIBAgIUbQQo2DqiOIWs+ZCV8Wa+EqSjZTEwCgYIKoZIzj0EAwIw
NjEZMBcGA1UEAwwQVGVzdCBTR1ggUm9vdCBDQTEZMBcGA1UECgwQVGVzdCBDb3Jw
b3JhdGlvbjAgFw0yNjEwMTgxMDMzNDRaGA8yMTI2MDkyNDEwMzM0NFowNjEZMBcG
A1UEAwwQVGVzdCBTR1ggUm9vdCBDQTEZMBcGA1UECgwQVGVzdCBDb3Jwb3JhdGlv
bjBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABK7NjPTPuMPjc04Zvc67vI58yyRU
zHnHeCk9WchAgUcz4QAawO2GMX5mEH93Hes6lH7LDvUNvBD6FK9Jz/+Gu7yjYzBh
MB0GA1UdDgQWBBRsdiAbcABcqUCAEFk4+ciL88RluzAfBgNVHSMEGDAWgBRsdiAb
cABcqUCAEFk4+ciL88RluzAPBgNVHRMBAf8EBTADAQH/MA4GA1UdDwEB/wQEAwIB
BjAKBggqhkjOPQQDAgNIADBFAiALUHSCFDF1y8Qf9qZImTEaN6BcPMNKTtVgDeVh
NHgsugIhAPJB9hYxYFd3J2q4ogPfZv+/zrzGKUrpQ85TDrcfBzcW
-----END CERTIFICATE-----
`
