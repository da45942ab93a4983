package tdxproto

import (
	"errors"
	"testing"

	"github.com/edgelesssys/go-dcap-quote/blobs"
	"github.com/edgelesssys/go-dcap-quote/quote"
	"github.com/google/go-tdx-guest/abi"
	pb "github.com/google/go-tdx-guest/proto/tdx"
	"github.com/google/go-tdx-guest/testing/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func TestFromQuote(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	q, err := quote.DecodeBytes(blobs.TDXQuoteV4())
	require.NoError(err)

	msg, err := FromQuote(q)
	require.NoError(err)

	assert.EqualValues(4, msg.GetHeader().GetVersion())
	assert.EqualValues(quote.TEETypeTDX, msg.GetHeader().GetTeeType())
	assert.Equal([]byte{13, 0}, msg.GetHeader().GetPceSvn())
	assert.Equal(blobs.Pattern(48, blobs.SeedMRTD), msg.GetTdQuoteBody().GetMrTd())
	require.Len(msg.GetTdQuoteBody().GetRtmrs(), 4)
	assert.Equal(blobs.Pattern(48, blobs.SeedRTMR0+0x30), msg.GetTdQuoteBody().GetRtmrs()[3])
	assert.Equal(q.SignedDataSize, msg.GetSignedDataSize())

	qeCertData := msg.GetSignedData().GetCertificationData().GetQeReportCertificationData()
	assert.EqualValues(6, msg.GetSignedData().GetCertificationData().GetCertificateDataType())
	assert.EqualValues(2, qeCertData.GetQeReport().GetIsvProdId())
	assert.Equal(blobs.QEAuthData(), qeCertData.GetQeAuthData().GetData())
	assert.EqualValues(32, qeCertData.GetQeAuthData().GetParsedDataSize())
	assert.EqualValues(5, qeCertData.GetPckCertificateChainData().GetCertificateDataType())
	assert.Equal(append([]byte(blobs.PCKCertChainPEM), 0x0), qeCertData.GetPckCertificateChainData().GetPckCertChain())
}

func TestFromQuoteProtoJSON(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	q, err := quote.DecodeBytes(blobs.TDXQuoteV4())
	require.NoError(err)
	msg, err := FromQuote(q)
	require.NoError(err)

	raw, err := protojson.Marshal(msg)
	require.NoError(err)

	var decoded pb.QuoteV4
	require.NoError(protojson.Unmarshal(raw, &decoded))
	assert.True(proto.Equal(msg, &decoded))
}

func TestFromQuoteUnsupported(t *testing.T) {
	testCases := map[string][]byte{
		"SGX v3":     blobs.SGXQuoteV3(),
		"SGX v4":     blobs.SGXQuoteV4(),
		"TDX v5":     blobs.TDXQuoteV5(),
		"TDX 1.5 v5": blobs.TD15QuoteV5(),
	}

	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			q, err := quote.DecodeBytes(raw)
			require.NoError(err)

			msg, err := FromQuote(q)
			assert.Nil(msg)
			var unsupportedErr *quote.UnsupportedVersionError
			assert.True(errors.As(err, &unsupportedErr))
		})
	}
}

// intelQuoteSize is the size of the production quote in testdata.RawQuote.
// The file carries 39 bytes of test padding after it.
const intelQuoteSize = 4935

func TestFromQuoteIntelQuote(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	require.Len(testdata.RawQuote, intelQuoteSize+39)

	_, err := quote.DecodeBytes(testdata.RawQuote)
	var layoutErr *quote.InvalidLayoutError
	require.True(errors.As(err, &layoutErr), "got %v", err)
	assert.Equal("quote", layoutErr.Field)

	rawQuote := testdata.RawQuote[:intelQuoteSize]
	q, err := quote.DecodeBytes(rawQuote)
	require.NoError(err)
	assert.EqualValues(4, q.Header.Version)
	assert.Equal("TDX", q.TEE())

	marshaled, err := q.MarshalBinary()
	require.NoError(err)
	assert.Equal(rawQuote, marshaled)

	msg, err := FromQuote(q)
	require.NoError(err)
	want, err := abi.QuoteToProto(rawQuote)
	require.NoError(err)
	require.IsType(&pb.QuoteV4{}, want)
	assert.True(proto.Equal(want.(*pb.QuoteV4), msg))

	view := quote.ToHexProjection(q)
	require.NotNil(view.Report.TD10)
	assert.Len(view.Report.TD10.MrTd, 96)
	require.NotNil(view.AuthData.V4)
	assert.Equal("2000", view.AuthData.V4.QEReportCertification.QEAuthDataSize)
	assert.Len(view.AuthData.V4.QEReportCertification.QEAuthData, 64)

	chain, err := q.PCKCertificationData().PCKCertChain()
	require.NoError(err)
	assert.Len(chain, 3)

	ext, err := q.PCKExtensions()
	require.NoError(err)
	assert.Equal("50806f000000", quote.ToHex(ext.FMSPC[:]))
	assert.Equal("0000", quote.ToHex(ext.PCEID[:]))
	assert.Equal(1, ext.SGXType)
	assert.Len(ext.PlatformInstanceID, 16)
}
