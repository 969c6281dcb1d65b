package barcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestDecoder(cfg Config) *Decoder {
	return NewDecoder(cfg).WithClock(func() time.Time { return fixedNow })
}

func TestDecodeLocation(t *testing.T) {
	tests := []struct {
		name    string
		barcode string
		want    Location
	}{
		{
			name:    "Pillar without socket form",
			barcode: "PN12340V5",
			want:    Location{Barcode: "PN12340V5", Kind: KindPillar, Code: "12N34", Prefix: "P-", Form: "", Voltage: "0V5"},
		},
		{
			name:    "Pillar with socket form",
			barcode: "PE56782S240",
			want:    Location{Barcode: "PE56782S240", Kind: KindPillar, Code: "56E78", Prefix: "P-", Form: "2S", Voltage: "240"},
		},
		{
			name:    "Pillar with long socket form",
			barcode: "PW0001FORM12S120",
			want:    Location{Barcode: "PW0001FORM12S120", Kind: KindPillar, Code: "00W01", Prefix: "P-", Form: "FORM12S", Voltage: "120"},
		},
		{
			name:    "Pillar lower case input",
			barcode: " ps9876abc \n",
			want:    Location{Barcode: "PS9876ABC", Kind: KindPillar, Code: "98S76", Prefix: "P-", Form: "", Voltage: "ABC"},
		},
		{
			name:    "Porta pillar",
			barcode: "PMM3000",
			want:    Location{Barcode: "PMM3000", Kind: KindPortaPillar, Code: "3", Prefix: "PP-"},
		},
		{
			name:    "Storage",
			barcode: "S42",
			want:    Location{Barcode: "S42", Kind: KindStorage, Code: "4", Prefix: "S-"},
		},
	}

	d := newTestDecoder(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.DecodeLocation(tt.barcode)
			require.NoError(t, err)

			want := tt.want
			want.ReadAt = fixedNow
			assert.Equal(t, &want, got)
		})
	}
}

func TestDecodeLocation_PillarCodeIgnoresTrailer(t *testing.T) {
	d := newTestDecoder(Config{})
	trailers := []string{"0V5", "2S240", "12S120", "XYZ", "9S-480"}

	for _, trailer := range trailers {
		got, err := d.DecodeLocation("PN1234" + trailer)
		require.NoError(t, err, trailer)
		assert.Equal(t, "12N34", got.Code, trailer)
		assert.Len(t, got.Code, 5)
		assert.Equal(t, trailer[len(trailer)-3:], got.Voltage)
	}
}

func TestDecodeLocation_Unrecognized(t *testing.T) {
	d := newTestDecoder(Config{})
	barcodes := []string{
		"",
		"PN1234",         // no voltage suffix
		"PX12340V5",      // not a compass letter
		"PN12A40V5",      // non digit
		"PMM30000",       // porta pillar with too many zeros
		"PMM3001",        // porta pillar without zero anchor
		"S4",             // storage too short
		"S423",           // storage too long
		"Lab Stock Area", // lab pattern disabled
		"0123456789",     // device barcode
	}

	for _, b := range barcodes {
		got, err := d.DecodeLocation(b)
		assert.ErrorIs(t, err, ErrUnrecognizedLocation, b)
		assert.Nil(t, got, b)
	}
}

func TestDecodeLocation_LabStock(t *testing.T) {
	d := newTestDecoder(Config{LabStock: true})

	got, err := d.DecodeLocation("Lab Stock Area")
	require.NoError(t, err)
	assert.Equal(t, KindLab, got.Kind)
	assert.Equal(t, LabLocationCode, got.Code)
	assert.Equal(t, "L-", got.Prefix)
	assert.Empty(t, got.Form)
	assert.Empty(t, got.Voltage)

	// Enabling the lab pattern does not change pillar decoding
	got, err = d.DecodeLocation("PN12340V5")
	require.NoError(t, err)
	assert.Equal(t, KindPillar, got.Kind)
}

func TestDecodeLocation_StampsReadTime(t *testing.T) {
	before := time.Now()
	got, err := NewDecoder(Config{}).DecodeLocation("S42")
	require.NoError(t, err)
	assert.False(t, got.ReadAt.Before(before))
}

func TestKind_Prefix(t *testing.T) {
	assert.Equal(t, "P-", KindPillar.Prefix())
	assert.Equal(t, "PP-", KindPortaPillar.Prefix())
	assert.Equal(t, "S-", KindStorage.Prefix())
	assert.Equal(t, "L-", KindLab.Prefix())
	assert.Equal(t, "", Kind("roof").Prefix())
}
