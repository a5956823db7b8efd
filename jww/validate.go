package jww

import (
	"encoding/binary"

	"jwwconv/jww/jheader"
)

// Validate reports whether the buffer starts with a supported signature.
// It looks at 7 bytes at most and never fails.
func Validate(bs []byte) bool {
	_, ok := jheader.SniffSignature(bs)
	return ok
}

// GetFileInfo reads only the 3-byte signature and the version that
// follows it. It performs no validation and never fails; fields the
// buffer is too short for stay zero.
func GetFileInfo(bs []byte) FileInfo {
	info := FileInfo{Size: len(bs)}
	if len(bs) >= 3 {
		info.Signature = string(bs[:3])
	}
	if len(bs) >= 5 {
		info.Version = binary.LittleEndian.Uint16(bs[3:5])
	}
	return info
}
