// Package fat12 is a read-only accessor for FAT12-formatted block-device
// images stored as flat files. It decodes the boot sector, walks the FAT
// cluster chains, and exposes POSIX-like file handles and root-directory
// enumeration. There is no write support, no long-file-name decoding, no
// FAT16/32, and no subdirectory traversal.
package fat12

import "log/slog"

// Option configures Mount. The only option today is WithLogger.
type Option func(*Volume)

// WithLogger attaches a logger used by Volume, File, and Dir's tiered
// trace/debug/info/warn/logerror helpers (log.go). A Volume mounted
// without this option logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(v *Volume) { v.log = logger{log: l} }
}

// Volume is a mounted FAT12 filesystem: the aggregate owner of the FAT
// table, the decoded root directory, and the materialized data area.
type Volume struct {
	dev  BlockDevice
	ss   SuperSector
	geom Geometry
	fat  *FatTable
	root *rawRootDir
	data []byte
	log  logger
}

// Mount composes the full mount sequence: read sector 0, decode and
// validate the super-sector, derive geometry, load/compare/decode both
// FAT copies, load the root directory, and load the data area. Any
// step's failure releases everything acquired by earlier steps.
func Mount(dev BlockDevice, opts ...Option) (*Volume, error) {
	v := &Volume{dev: dev}
	for _, opt := range opts {
		opt(v)
	}
	v.log.trace("mount: reading super sector")

	sector0 := make([]byte, SectorSize)
	if _, err := dev.ReadSectors(0, 1, sector0); err != nil {
		v.log.logerror("mount: read sector 0 failed", "err", err)
		return nil, err
	}
	ss, err := decodeSuperSector(sector0)
	if err != nil {
		v.log.logerror("mount: decode super sector failed", "err", err)
		return nil, err
	}
	if err := ss.validate(sector0); err != nil {
		v.log.warn("mount: super sector failed validation", "err", err)
		return nil, err
	}
	v.ss = ss
	v.geom = deriveGeometry(ss)
	v.log.debug("mount: geometry derived",
		"fat1_lba", v.geom.FAT1LBA, "fat2_lba", v.geom.FAT2LBA,
		"rootdir_lba", v.geom.RootDirLBA, "data_lba", v.geom.DataLBA,
		"total_clusters", v.geom.TotalClusters)

	fat, err := loadFatTable(dev, v.geom, ss)
	if err != nil {
		v.log.logerror("mount: load fat table failed", "err", err)
		return nil, err
	}
	v.fat = fat

	root, err := loadRootDir(dev, v.geom, ss)
	if err != nil {
		v.log.logerror("mount: load root dir failed", "err", err)
		return nil, err
	}
	v.root = root

	data := make([]byte, v.geom.UserSectors*SectorSize)
	if _, err := dev.ReadSectors(v.geom.DataLBA, v.geom.UserSectors, data); err != nil {
		v.log.logerror("mount: load data area failed", "err", err)
		return nil, err
	}
	v.data = data

	v.log.info("mount: succeeded", "total_clusters", v.geom.TotalClusters)
	return v, nil
}

// Close unmounts the volume, releasing the FAT table, root directory,
// and data area. It does not close the underlying BlockDevice; the
// caller that opened it owns its lifetime.
func (v *Volume) Close() error {
	v.log.trace("unmount")
	v.fat = nil
	v.root = nil
	v.data = nil
	return nil
}

// clusterOffset returns the byte offset within the data area of cluster.
func (v *Volume) clusterOffset(cluster uint32) int64 {
	return (int64(cluster) - 2) * v.geom.BytesPerCluster
}
