package sfxtree

import (
	"sync"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

var (
	exportCodecOnce sync.Once
	exportCodec     dtcbor.CBORCodec
	exportCodecErr  error
)

// exportEncoder returns a codec with deterministic encoding options. Map keys
// are sorted so the same tree always encodes to the same bytes.
func exportEncoder() (*dtcbor.CBORCodec, error) {
	exportCodecOnce.Do(func() {
		exportCodec, exportCodecErr = dtcbor.NewCBORCodec(
			dtcbor.NewDeterministicEncOpts(),
			dtcbor.NewDeterministicDecOpts(),
		)
	})
	return &exportCodec, exportCodecErr
}

// EncodeExportCBOR encodes a LabelMap rendering as deterministic CBOR.
func EncodeExportCBOR(m map[string]any) ([]byte, error) {
	codec, err := exportEncoder()
	if err != nil {
		return nil, err
	}
	return codec.MarshalCBOR(m)
}
