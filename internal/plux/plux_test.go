package plux

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildArchive(t *testing.T, indexXML string, recipe string, layerData map[string][]byte) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("index.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(indexXML))
	require.NoError(t, err)

	if recipe != "" {
		w, err = zw.Create("recipe.txt")
		require.NoError(t, err)
		_, err = w.Write([]byte(recipe))
		require.NoError(t, err)
	}

	for name, data := range layerData {
		w, err = zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, zw.Close())
	return bytes.NewReader(buf.Bytes())
}

func encodeFloat32LE(vals []float32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

const sampleIndex = `<?xml version="1.0"?>
<xml>
  <GENERAL>
    <IMAGE_SIZE_X>2</IMAGE_SIZE_X>
    <IMAGE_SIZE_Y>2</IMAGE_SIZE_Y>
    <FOV_X>10</FOV_X>
    <FOV_Y>10</FOV_Y>
    <AUTHOR>tester</AUTHOR>
    <DATE>2026-01-01</DATE>
  </GENERAL>
  <LAYER_0>
    <FILENAME_Z>layer0.raw</FILENAME_Z>
    <POSITION_X>1.5</POSITION_X>
  </LAYER_0>
  <INFO>
    <ITEM_0>
      <NAME>scan_rate</NAME>
      <VALUE>1.2</VALUE>
    </ITEM_0>
  </INFO>
</xml>
`

func TestDecodeWellFormedArchive(t *testing.T) {
	data := encodeFloat32LE([]float32{1, 2, 3, float32(math.NaN())})
	ra := buildArchive(t, sampleIndex, "Scan Mode: contact\n", map[string][]byte{"layer0.raw": data})

	arc, err := OpenArchive(ra, int64(ra.Len()))
	require.NoError(t, err)

	doc, err := Decode(arc)
	require.NoError(t, err)

	assert.Equal(t, 2, doc.XRes)
	assert.Equal(t, 2, doc.YRes)
	assert.InDelta(t, 2*10*1e-6, doc.XReal, 1e-12)
	require.Len(t, doc.Layers, 1)

	layer := doc.Layers[0]
	assert.Equal(t, 0, layer.ID)
	assert.InDelta(t, 1.5, layer.PosX, 1e-9)
	assert.True(t, layer.NaNMask[3])
	assert.InDelta(t, 1e-6, layer.Data[0], 1e-12)

	assert.Equal(t, "tester", doc.Metadata["author"])
	assert.Equal(t, "1.2", doc.Metadata["info.scan_rate"])
	assert.Equal(t, "contact", doc.Metadata["recipe.scan_mode"])
}

func TestDecodeMissingRequiredKey(t *testing.T) {
	badIndex := `<xml><GENERAL><IMAGE_SIZE_X>2</IMAGE_SIZE_X></GENERAL></xml>`
	ra := buildArchive(t, badIndex, "", nil)
	arc, err := OpenArchive(ra, int64(ra.Len()))
	require.NoError(t, err)
	_, err = Decode(arc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestDecodeSizeMismatch(t *testing.T) {
	data := encodeFloat32LE([]float32{1, 2, 3}) // one float short of 2x2
	ra := buildArchive(t, sampleIndex, "", map[string][]byte{"layer0.raw": data})
	arc, err := OpenArchive(ra, int64(ra.Len()))
	require.NoError(t, err)
	_, err = Decode(arc)
	require.Error(t, err)
	var sizeErr *SizeMismatchError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 16, sizeErr.Want)
	assert.Equal(t, 12, sizeErr.Got)
}

func TestDecodeZeroFOVDefaultsPositive(t *testing.T) {
	zeroFOV := `<xml><GENERAL>
    <IMAGE_SIZE_X>2</IMAGE_SIZE_X>
    <IMAGE_SIZE_Y>2</IMAGE_SIZE_Y>
    <FOV_X>0</FOV_X>
    <FOV_Y>0</FOV_Y>
  </GENERAL></xml>`
	ra := buildArchive(t, zeroFOV, "", nil)
	arc, err := OpenArchive(ra, int64(ra.Len()))
	require.NoError(t, err)
	doc, err := Decode(arc)
	require.NoError(t, err)
	assert.Equal(t, 1.0, doc.XReal)
	assert.Equal(t, 1.0, doc.YReal)
	assert.NotEmpty(t, doc.Warnings)
}

func TestParseIndexStripsBOMAndCRLF(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<a>\r\n<b>hi</b>\r\n</a>")...)
	idx, err := ParseIndex(raw)
	require.NoError(t, err)
	assert.Equal(t, "hi", idx["/a/b"])
}

func TestParseRecipe(t *testing.T) {
	recipe, err := ParseRecipe([]byte("# comment\nKey One: value one\nKey=Two\n"))
	require.NoError(t, err)
	assert.Equal(t, "value one", recipe["Key One"])
	assert.Equal(t, "Two", recipe["Key"])
}
