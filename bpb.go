package fat12

import "encoding/binary"

// BPB byte offsets, as defined by the Microsoft BIOS Parameter Block,
// trimmed to the fields a FAT12 mount actually consumes.
const (
	bpbBytesPerSector    = 11 // u16
	bpbSectorsPerCluster = 13 // u8
	bpbReservedSectors   = 14 // u16
	bpbNumFATs           = 16 // u8
	bpbRootEntCnt        = 17 // u16
	bpbTotSec16          = 19 // u16
	bpbFATSz16           = 22 // u16
	bpbTotSec32          = 32 // u32
	bootSignatureOffset  = 510
	bootSignatureValue   = 0xAA55
)

// validSectorSizes are the bytes-per-sector values this package accepts
// in a BPB; anything else fails validation as corrupted.
var validSectorSizes = [...]uint16{512, 1024, 2048, 4096}

// SuperSector is the decoded BIOS Parameter Block at sector 0.
type SuperSector struct {
	BytesPerSector    uint16
	SectorsPerCluster uint8
	ReservedSectors   uint16
	FATCount          uint8
	RootDirCapacity   uint16
	LogicalSectors16  uint16
	SectorsPerFAT     uint16
	LogicalSectors32  uint32
}

// decodeSuperSector reads the little-endian BPB fields out of a 512-byte
// sector-0 buffer. It does not validate; callers must call validate.
func decodeSuperSector(sector []byte) (SuperSector, error) {
	if len(sector) < SectorSize {
		return SuperSector{}, newErr("decode_super_sector", KindInvalidArgument)
	}
	var ss SuperSector
	ss.BytesPerSector = binary.LittleEndian.Uint16(sector[bpbBytesPerSector:])
	ss.SectorsPerCluster = sector[bpbSectorsPerCluster]
	ss.ReservedSectors = binary.LittleEndian.Uint16(sector[bpbReservedSectors:])
	ss.FATCount = sector[bpbNumFATs]
	ss.RootDirCapacity = binary.LittleEndian.Uint16(sector[bpbRootEntCnt:])
	ss.LogicalSectors16 = binary.LittleEndian.Uint16(sector[bpbTotSec16:])
	ss.SectorsPerFAT = binary.LittleEndian.Uint16(sector[bpbFATSz16:])
	ss.LogicalSectors32 = binary.LittleEndian.Uint32(sector[bpbTotSec32:])
	return ss, nil
}

// validate enforces the BPB field constraints a well-formed FAT12 boot
// sector must satisfy. The boot signature at offset 510 is checked first
// since it is the cheapest and most reliable "this is not a BPB at all"
// signal.
func (ss SuperSector) validate(sector []byte) error {
	if len(sector) >= bootSignatureOffset+2 {
		if binary.LittleEndian.Uint16(sector[bootSignatureOffset:]) != bootSignatureValue {
			return newErr("validate_super_sector", KindCorrupted)
		}
	}
	if ss.SectorsPerCluster < 1 || ss.SectorsPerCluster > 128 {
		return newErr("validate_super_sector", KindCorrupted)
	}
	if ss.ReservedSectors < 1 {
		return newErr("validate_super_sector", KindCorrupted)
	}
	if ss.FATCount < 1 || ss.FATCount > 2 {
		return newErr("validate_super_sector", KindCorrupted)
	}
	// Logical XOR: exactly one of the two logical-sector fields is zero.
	if (ss.LogicalSectors16 == 0) == (ss.LogicalSectors32 == 0) {
		return newErr("validate_super_sector", KindCorrupted)
	}
	validSize := false
	for _, s := range validSectorSizes {
		if ss.BytesPerSector == s {
			validSize = true
			break
		}
	}
	if !validSize {
		return newErr("validate_super_sector", KindCorrupted)
	}
	return nil
}
