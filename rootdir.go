package fat12

import "encoding/binary"

const dirEntrySize = 32

// Raw on-disk directory-entry byte offsets within a 32-byte entry.
const (
	direntName       = 0  // 8 bytes
	direntExt        = 8  // 3 bytes
	direntAttr       = 11 // 1 byte
	direntTime       = 22 // u16
	direntDate       = 24 // u16
	direntCluster    = 26 // u16 (FAT12 uses only this low half)
	direntSize       = 28 // u32
	direntFreeMarker = 0x00
	direntDeleted    = 0xE5
	direntLFNAttr    = 0x0F
)

// Attrs are the boolean attribute flags carried on a decoded directory
// entry. VolumeLabel is exposed alongside the five standard FAT
// attribute bits so OpenFile can reject a name that resolves to a
// volume-label entry with is-a-directory rather than silently treating
// it as not-found.
type Attrs struct {
	ReadOnly    bool
	Hidden      bool
	System      bool
	Directory   bool
	Archive     bool
	VolumeLabel bool
}

func decodeAttrs(b byte) Attrs {
	return Attrs{
		ReadOnly:    b&0x01 != 0,
		Hidden:      b&0x02 != 0,
		System:      b&0x04 != 0,
		VolumeLabel: b&0x08 != 0,
		Directory:   b&0x10 != 0,
		Archive:     b&0x20 != 0,
	}
}

func isVolumeLabel(attr byte) bool { return attr&0x08 != 0 }

// DirEntry is a decoded root-directory entry.
type DirEntry struct {
	Name         string
	Size         uint32
	Attrs        Attrs
	CreatedDate  Date
	CreatedClock Clock
	FirstCluster uint32
}

// rawRootDir holds the loaded root-directory region and supports both
// the Volume's lookup-by-name and the Dir handle's ordered enumeration.
type rawRootDir struct {
	data     []byte
	capacity int
}

// loadRootDir reads rootdir_sectors sectors at rootdir_lba.
func loadRootDir(dev BlockDevice, g Geometry, ss SuperSector) (*rawRootDir, error) {
	buf := make([]byte, g.RootDirSectors*SectorSize)
	if _, err := dev.ReadSectors(g.RootDirLBA, g.RootDirSectors, buf); err != nil {
		return nil, err
	}
	return &rawRootDir{data: buf, capacity: int(ss.RootDirCapacity)}, nil
}

// entryAt returns the raw 32-byte slice for the i-th directory slot.
func (r *rawRootDir) entryAt(i int) []byte {
	off := i * dirEntrySize
	return r.data[off : off+dirEntrySize]
}

// scanEntry reports whether the directory-scan rules exclude this entry,
// and whether the entry terminates the scan. Directory iteration
// (forLookup=false) skips volume-label entries entirely; the lookup path
// (forLookup=true) still decodes them so the caller can reject a matched
// name with is-a-directory instead of treating it as not-found.
func scanEntry(raw []byte, forLookup bool) (skip, terminate bool) {
	first := raw[direntName]
	if first == direntFreeMarker {
		return true, true
	}
	if first == direntDeleted {
		return true, false
	}
	if raw[direntAttr] == direntLFNAttr {
		return true, false
	}
	if !forLookup && isVolumeLabel(raw[direntAttr]) {
		return true, false
	}
	return false, false
}

func decodeDirEntry(raw []byte) DirEntry {
	var nameBuf [11]byte
	copy(nameBuf[:], raw[direntName:direntName+11])
	return DirEntry{
		Name:         decode83Name(nameBuf),
		Size:         binary.LittleEndian.Uint32(raw[direntSize:]),
		Attrs:        decodeAttrs(raw[direntAttr]),
		CreatedDate:  decodeDate(binary.LittleEndian.Uint16(raw[direntDate:])),
		CreatedClock: decodeClock(binary.LittleEndian.Uint16(raw[direntTime:])),
		FirstCluster: uint32(binary.LittleEndian.Uint16(raw[direntCluster:])),
	}
}

// lookup performs a linear scan of the root directory: the first entry
// whose reconstructed name equals name, byte-exact, wins. The comparison
// is over the full reconstructed name, not a caller-supplied-length
// prefix, so a query for "A" never matches a stored "A.TXT".
func (r *rawRootDir) lookup(name string) (DirEntry, bool) {
	for i := 0; i < r.capacity; i++ {
		raw := r.entryAt(i)
		skip, terminate := scanEntry(raw, true)
		if terminate {
			break
		}
		if skip {
			continue
		}
		entry := decodeDirEntry(raw)
		if entry.Name == name {
			return entry, true
		}
	}
	return DirEntry{}, false
}

// snapshot decodes every valid file entry in slot order, used by Dir.
func (r *rawRootDir) snapshot() []DirEntry {
	var out []DirEntry
	for i := 0; i < r.capacity; i++ {
		raw := r.entryAt(i)
		skip, terminate := scanEntry(raw, false)
		if terminate {
			break
		}
		if skip {
			continue
		}
		out = append(out, decodeDirEntry(raw))
	}
	return out
}
