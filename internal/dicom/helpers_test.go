package dicom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

func mustElement(t *testing.T, tg tag.Tag, values []string) *dicom.Element {
	t.Helper()
	elem, err := dicom.NewElement(tg, values)
	require.NoError(t, err)
	return elem
}

// newDataset builds an in-memory dataset wrapper straight from elements,
// bypassing the byte layer.
func newDataset(elements ...*dicom.Element) *Dataset {
	return &Dataset{Data: dicom.Dataset{Elements: elements}}
}

func metaElements(t *testing.T) []*dicom.Element {
	t.Helper()
	return []*dicom.Element{
		mustElement(t, tag.MediaStorageSOPClassUID, []string{"1.2.840.10008.5.1.4.1.1.7"}),
		mustElement(t, tag.MediaStorageSOPInstanceUID, []string{"1.2.3.4.5.6.7"}),
		mustElement(t, tag.TransferSyntaxUID, []string{"1.2.840.10008.1.2.1"}),
	}
}

// encodeDICOM serializes elements into a complete DICOM byte stream
// (preamble, magic, file meta group, data elements).
func encodeDICOM(t *testing.T, elements ...*dicom.Element) []byte {
	t.Helper()
	ds := dicom.Dataset{Elements: append(metaElements(t), elements...)}
	var buf bytes.Buffer
	require.NoError(t, dicom.Write(&buf, ds))
	return buf.Bytes()
}
