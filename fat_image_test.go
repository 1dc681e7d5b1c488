package fat12

import "encoding/binary"

// buildBootSector writes the BPB fields of the concrete scenario in
// spec.md §8: bytes_per_sector=512, sectors_per_cluster=1,
// reserved_sectors=1, fat_count=2, sectors_per_fat=1,
// root_dir_capacity=16, logical_sectors16=20.
func buildBootSector() []byte {
	s := make([]byte, SectorSize)
	binary.LittleEndian.PutUint16(s[bpbBytesPerSector:], 512)
	s[bpbSectorsPerCluster] = 1
	binary.LittleEndian.PutUint16(s[bpbReservedSectors:], 1)
	s[bpbNumFATs] = 2
	binary.LittleEndian.PutUint16(s[bpbRootEntCnt:], 16)
	binary.LittleEndian.PutUint16(s[bpbTotSec16:], 20)
	binary.LittleEndian.PutUint16(s[bpbFATSz16:], 1)
	binary.LittleEndian.PutUint16(s[bootSignatureOffset:], bootSignatureValue)
	return s
}

// buildFATSector packs the FAT12 entries of spec.md §8 scenarios 2 and 3
// into one 512-byte FAT sector: entry0=0xFF8 (media placeholder), entry1
// reserved=0xFFF, entry2=0xFFF (A.TXT's single-cluster EOC), entry3=4
// (B.BIN's first hop), entry4=0xFFF (B.BIN's EOC).
func buildFATSector() []byte {
	s := make([]byte, SectorSize)
	copy(s, []byte{
		0xF8, 0xFF, 0xFF, // entries 0,1
		0xFF, 0x4F, 0x00, // entries 2,3
		0xFF, 0x0F, 0x00, // entries 4,5
	})
	return s
}

// dirEntryBytes builds one raw 32-byte directory entry.
func dirEntryBytes(name [11]byte, attr byte, cluster uint16, size uint32, date, clock uint16) []byte {
	e := make([]byte, dirEntrySize)
	copy(e[direntName:direntName+11], name[:])
	e[direntAttr] = attr
	binary.LittleEndian.PutUint16(e[direntDate:], date)
	binary.LittleEndian.PutUint16(e[direntTime:], clock)
	binary.LittleEndian.PutUint16(e[direntCluster:], cluster)
	binary.LittleEndian.PutUint32(e[direntSize:], size)
	return e
}

func name83(base, ext string) [11]byte {
	var n [11]byte
	for i := range n {
		n[i] = ' '
	}
	copy(n[0:8], base)
	copy(n[8:11], ext)
	return n
}

// buildRootDirSector builds the root directory sector used by the
// Volume/File integration tests: A.TXT (size 5, cluster 2), B.BIN (size
// 700, cluster 3), then a terminator.
func buildRootDirSector() []byte {
	s := make([]byte, SectorSize)
	off := 0
	copy(s[off:], dirEntryBytes(name83("A", "TXT"), 0x20, 2, 5, 0, 0))
	off += dirEntrySize
	copy(s[off:], dirEntryBytes(name83("B", "BIN"), 0x20, 3, 700, 0, 0))
	// remaining entries stay zeroed, acting as the terminator.
	return s
}

// buildImage assembles a full 20-sector (10240-byte) FAT12 image per
// spec.md §8's concrete scenario: sector 0 boot, sectors 1-2 FAT copies,
// sector 3 root directory, sectors 4-19 data area. Cluster 2 (sector 4) is
// filled with "hello" followed by '*' padding; cluster 3 (sector 5) is all
// 0x01; cluster 4 (sector 6) has its first 188 bytes 0x02 and the rest
// 0xFF, matching scenario 3.
func buildImage() []byte {
	img := make([]byte, 20*SectorSize)
	copy(img[0:SectorSize], buildBootSector())
	fat := buildFATSector()
	copy(img[1*SectorSize:2*SectorSize], fat)
	copy(img[2*SectorSize:3*SectorSize], fat)
	copy(img[3*SectorSize:4*SectorSize], buildRootDirSector())

	cluster2 := img[4*SectorSize : 5*SectorSize]
	copy(cluster2, "hello")
	for i := 5; i < len(cluster2); i++ {
		cluster2[i] = '*'
	}

	cluster3 := img[5*SectorSize : 6*SectorSize]
	for i := range cluster3 {
		cluster3[i] = 0x01
	}

	cluster4 := img[6*SectorSize : 7*SectorSize]
	for i := 0; i < 188; i++ {
		cluster4[i] = 0x02
	}
	for i := 188; i < len(cluster4); i++ {
		cluster4[i] = 0xFF
	}
	return img
}

func mountTestVolume() (*Volume, error) {
	dev := newMemDevice(buildImage())
	return Mount(dev)
}
