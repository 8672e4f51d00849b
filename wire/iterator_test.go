package wire

import (
	"encoding/binary"
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-stub/domain"
)

// buildResponse packs a response with one question, two A answers, one
// NS authority entry and one glue A record in the additional section.
func buildResponse(t *testing.T) []byte {
	t.Helper()
	m := new(dns.Msg)
	m.SetQuestion("example.com.", dns.TypeA)
	m.Response = true
	m.Id = 0x1234
	m.Answer = []dns.RR{
		&dns.A{
			Hdr: dns.RR_Header{Name: "example.com.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 300},
			A:   net.IPv4(192, 0, 2, 1).To4(),
		},
		&dns.A{
			Hdr: dns.RR_Header{Name: "example.com.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 120},
			A:   net.IPv4(192, 0, 2, 2).To4(),
		},
	}
	m.Ns = []dns.RR{
		&dns.NS{
			Hdr: dns.RR_Header{Name: "example.com.", Rrtype: dns.TypeNS, Class: dns.ClassINET, Ttl: 3600},
			Ns:  "ns1.example.com.",
		},
	}
	m.Extra = []dns.RR{
		&dns.A{
			Hdr: dns.RR_Header{Name: "ns1.example.com.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 3600},
			A:   net.IPv4(192, 0, 2, 53).To4(),
		},
	}
	packed, err := m.Pack()
	require.NoError(t, err)
	return packed
}

func TestMessageIterator_WalksAllSections(t *testing.T) {
	msg := buildResponse(t)
	it, err := NewMessageIterator(msg)
	require.NoError(t, err)

	h := it.Header()
	assert.Equal(t, uint16(0x1234), h.ID)
	assert.True(t, h.Flags.IsResponse())
	assert.Equal(t, uint16(1), h.QDCount)
	assert.Equal(t, uint16(2), h.ANCount)
	assert.Equal(t, uint16(1), h.NSCount)
	assert.Equal(t, uint16(1), h.ARCount)

	q, ok, err := it.NextQuestion()
	require.NoError(t, err)
	require.True(t, ok)
	eq, err := q.Name.EqualName("example.com")
	require.NoError(t, err)
	assert.True(t, eq)
	assert.Equal(t, domain.RRTypeA, q.Type)
	assert.Equal(t, domain.RRClassIN, q.Class)

	_, ok, err = it.NextQuestion()
	require.NoError(t, err)
	assert.False(t, ok)

	var ttls []uint32
	var rdata [][]byte
	for {
		rh, ok, err := it.NextRecord(SectionAnswer)
		require.NoError(t, err)
		if !ok {
			break
		}
		assert.Equal(t, domain.RRTypeA, rh.Type)
		assert.Equal(t, 4, rh.RDataLength())
		ttls = append(ttls, rh.TTL)
		rdata = append(rdata, rh.RData())
	}
	assert.Equal(t, []uint32{300, 120}, ttls)
	assert.Equal(t, [][]byte{{192, 0, 2, 1}, {192, 0, 2, 2}}, rdata)

	rh, ok, err := it.NextRecord(SectionAuthority)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.RRTypeNS, rh.Type)

	_, ok, err = it.NextRecord(SectionAuthority)
	require.NoError(t, err)
	assert.False(t, ok)

	rh, ok, err = it.NextRecord(SectionAdditional)
	require.NoError(t, err)
	require.True(t, ok)
	eq, err = rh.Name.EqualName("ns1.example.com")
	require.NoError(t, err)
	assert.True(t, eq)

	require.NoError(t, it.Finish())
}

func TestMessageIterator_SkipsEarlierSections(t *testing.T) {
	msg := buildResponse(t)
	it, err := NewMessageIterator(msg)
	require.NoError(t, err)

	// jump straight to the additional section; questions, answers and
	// authority entries are skipped and validated on the way
	rh, ok, err := it.NextRecord(SectionAdditional)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.RRTypeA, rh.Type)

	_, ok, err = it.NextRecord(SectionAdditional)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, it.Finish())
}

func TestMessageIterator_SectionOrderEnforced(t *testing.T) {
	msg := buildResponse(t)
	it, err := NewMessageIterator(msg)
	require.NoError(t, err)

	_, _, err = it.NextRecord(SectionAdditional)
	require.NoError(t, err)

	_, _, err = it.NextRecord(SectionAnswer)
	assert.ErrorIs(t, err, domain.ErrBadParam)
}

func TestMessageIterator_UnknownSection(t *testing.T) {
	it, err := NewMessageIterator(buildResponse(t))
	require.NoError(t, err)
	_, _, err = it.NextRecord(Section(7))
	assert.ErrorIs(t, err, domain.ErrBadParam)
}

func TestMessageIterator_CountMismatch(t *testing.T) {
	msg := buildResponse(t)
	// advertise one more additional record than the buffer holds
	binary.BigEndian.PutUint16(msg[10:], binary.BigEndian.Uint16(msg[10:])+1)

	it, err := NewMessageIterator(msg)
	require.NoError(t, err)

	_, ok, err := it.NextRecord(SectionAdditional)
	require.NoError(t, err)
	require.True(t, ok)

	// the second advertised record is not there
	_, _, err = it.NextRecord(SectionAdditional)
	assert.Error(t, err)
}

func TestMessageIterator_QuestionCountMismatch(t *testing.T) {
	msg := buildResponse(t)
	binary.BigEndian.PutUint16(msg[4:], 2) // QDCOUNT=2, buffer has one

	it, err := NewMessageIterator(msg)
	require.NoError(t, err)

	_, ok, err := it.NextQuestion()
	require.NoError(t, err)
	require.True(t, ok)

	// the "second question" starts on answer record bytes and cannot
	// decode as one, or runs past the section counts downstream
	_, _, err = it.NextRecord(SectionAnswer)
	assert.Error(t, err)
}

func TestMessageIterator_TrailingBytes(t *testing.T) {
	msg := append(buildResponse(t), 0xAA)
	it, err := NewMessageIterator(msg)
	require.NoError(t, err)
	err = it.Finish()
	assert.ErrorIs(t, err, domain.ErrMalformedMessage)
}

func TestMessageIterator_ShortHeader(t *testing.T) {
	_, err := NewMessageIterator([]byte{0x12, 0x34})
	assert.ErrorIs(t, err, domain.ErrMalformedMessage)
}
