package serde

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/feltrun/array"
	"github.com/consensys/feltrun/felt"
	"github.com/consensys/feltrun/logger"
)

// formatVersion tags the binary envelope; bump on layout changes.
const formatVersion = 1

// envelope is the CBOR layout of a marshaled felt sequence. Each element
// is the 32-byte big-endian canonical representative.
type envelope struct {
	Version uint32   `cbor:"1,keyasint"`
	Felts   [][]byte `cbor:"2,keyasint"`
}

// Marshal encodes a felt sequence into a deterministic binary envelope.
// The array is read, not consumed.
func Marshal(a *array.Array[felt.Element]) ([]byte, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}

	env := envelope{
		Version: formatVersion,
		Felts:   make([][]byte, a.Len()),
	}
	for i := 0; i < a.Len(); i++ {
		b := a.At(i).Bytes()
		env.Felts[i] = b[:]
	}
	return em.Marshal(&env)
}

// Unmarshal decodes a binary envelope produced by Marshal. Every element
// must be a canonical field representative; out-of-field values are
// rejected rather than reduced.
func Unmarshal(data []byte) (*array.Array[felt.Element], error) {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := dm.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("serde: decode envelope: %w", err)
	}
	if env.Version != formatVersion {
		return nil, fmt.Errorf("serde: unsupported format version %d", env.Version)
	}

	out := array.New[felt.Element]()
	var v big.Int
	for i, b := range env.Felts {
		if len(b) != felt.Bytes {
			return nil, fmt.Errorf("serde: element %d: expected %d bytes, got %d", i, felt.Bytes, len(b))
		}
		v.SetBytes(b)
		if v.Cmp(felt.Modulus()) >= 0 {
			return nil, fmt.Errorf("serde: element %d exceeds the field modulus", i)
		}
		out.Append(felt.FromBigInt(&v))
	}

	log := logger.With("serde")
	log.Debug().Int("felts", out.Len()).Msg("decoded felt sequence")
	return out, nil
}
