package fat12

// Geometry is the pure derivation of a volume's layout from a validated
// SuperSector: no I/O, total whenever validation passed.
type Geometry struct {
	FAT1LBA         int64
	FAT2LBA         int64
	RootDirLBA      int64
	RootDirSectors  int64
	DataLBA         int64
	VolumeSectors   int64
	UserSectors     int64
	TotalClusters   int64
	BytesPerCluster int64
}

// deriveGeometry computes a FAT12 volume's layout from its validated
// BPB fields: FAT locations, root directory location and size, data
// area start, and cluster count. TotalClusters is UserSectors/spc + 1,
// the highest valid cluster number rather than a count, since cluster
// numbering itself starts at 2; the FAT-decoded table (fattable.go) is
// allocated two slots larger so cluster numbers index it directly
// without a remap at query time.
func deriveGeometry(ss SuperSector) Geometry {
	var g Geometry
	bps := int64(ss.BytesPerSector)
	spc := int64(ss.SectorsPerCluster)
	spf := int64(ss.SectorsPerFAT)
	nFATs := int64(ss.FATCount)

	g.FAT1LBA = int64(ss.ReservedSectors)
	g.FAT2LBA = g.FAT1LBA + spf
	g.RootDirLBA = int64(ss.ReservedSectors) + nFATs*spf
	g.RootDirSectors = (int64(ss.RootDirCapacity)*32 + bps - 1) / bps
	g.DataLBA = g.RootDirLBA + g.RootDirSectors

	if ss.LogicalSectors16 != 0 {
		g.VolumeSectors = int64(ss.LogicalSectors16)
	} else {
		g.VolumeSectors = int64(ss.LogicalSectors32)
	}
	g.UserSectors = g.VolumeSectors - int64(ss.ReservedSectors) - nFATs*spf - g.RootDirSectors
	g.TotalClusters = g.UserSectors/spc + 1
	g.BytesPerCluster = spc * bps
	return g
}
