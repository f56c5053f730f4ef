package fenwick

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const treeEncoding int32 = 1

// AsBytes serializes an int64 sum tree into a compact byte form: an
// encoding version, the element count, then each backing slot as a
// zigzag varint. The backing array is written as-is, so FromBytes
// restores the tree without rebuilding it.
func AsBytes(t *Tree[int64]) ([]byte, error) {
	buffer := new(bytes.Buffer)

	err := binary.Write(buffer, binary.BigEndian, treeEncoding)
	if err != nil {
		return nil, err
	}

	err = binary.Write(buffer, binary.BigEndian, int32(t.Len()))
	if err != nil {
		return nil, err
	}

	for i := 1; i <= t.Len(); i++ {
		err = encodeInt(buffer, t.tree[i])
		if err != nil {
			return nil, err
		}
	}

	return buffer.Bytes(), nil
}

// FromBytes reads a tree serialized with AsBytes.
func FromBytes(buf *bytes.Reader) (*Tree[int64], error) {
	var encoding int32
	err := binary.Read(buf, binary.BigEndian, &encoding)
	if err != nil {
		return nil, err
	}

	if encoding != treeEncoding {
		return nil, fmt.Errorf("unsupported encoding version: %d", encoding)
	}

	var numElements int32
	err = binary.Read(buf, binary.BigEndian, &numElements)
	if err != nil {
		return nil, err
	}

	if numElements < 0 {
		return nil, fmt.Errorf("invalid element count: %d", numElements)
	}

	t := New[int64](Sum[int64]{}, int(numElements))
	for i := 1; i <= int(numElements); i++ {
		t.tree[i], err = decodeInt(buf)
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}

// encodeInt writes n as a zigzag-folded varint so small magnitudes of
// either sign stay small on the wire.
func encodeInt(buf *bytes.Buffer, n int64) error {
	z := uint64(n<<1) ^ uint64(n>>63)
	k := 0
	for z > 0x7f {
		if err := buf.WriteByte(byte(0x80 | (0x7f & z))); err != nil {
			return err
		}
		z >>= 7
		k++
		if k >= 10 {
			return fmt.Errorf("tried encoding a number that's too big")
		}
	}
	return buf.WriteByte(byte(z))
}

func decodeInt(buf *bytes.Reader) (int64, error) {
	v, err := buf.ReadByte()
	if err != nil {
		return 0, err
	}
	z := uint64(0x7f & v)
	shift := uint(7)
	for v&0x80 != 0 {
		if shift > 63 {
			return 0, fmt.Errorf("something wrong, this number looks too big")
		}
		v, err = buf.ReadByte()
		if err != nil {
			return 0, err
		}
		z |= uint64(0x7f&v) << shift
		shift += 7
	}
	return int64(z>>1) ^ -int64(z&1), nil
}
