package valueset

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Digest fingerprints a record stream with SHAKE-256. Re-running the same
// sweep must reproduce the digest byte for byte, which is how the sweep
// tooling checks determinism across runs.
func Digest(records []Record) [32]byte {
	h := sha3.NewShake256()
	var buf [8]byte
	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	for _, r := range records {
		writeU64(r.P)
		writeU64(r.A)
		writeU64(uint64(r.N))
		writeU64(uint64(r.Cardinality))
		if r.IsPermutation {
			writeU64(1)
		} else {
			writeU64(0)
		}
		writeU64(uint64(len(r.Values)))
		for _, v := range r.Values {
			writeU64(v)
		}
	}
	var out [32]byte
	h.Read(out[:])
	return out
}
