package fat12

import (
	"io"
	"os"
)

// SectorSize is the only sector size this package supports for the
// block-device layer itself; the decoded SuperSector's own bytes_per_sector
// field (see bpb.go) is validated independently and may differ from this
// transport-level constant on the images this package targets (512).
const SectorSize = 512

// BlockDevice is a random-access reader over fixed-size sectors. All
// higher-level components address storage exclusively through sector
// units so that seek arithmetic is confined to one place.
type BlockDevice interface {
	// ReadSectors reads count sectors starting at firstSector into dst,
	// which must be at least count*SectorSize bytes long. It returns the
	// number of whole sectors read.
	ReadSectors(firstSector, count int64, dst []byte) (int64, error)
	// TotalSectors reports the device's total sector count.
	TotalSectors() int64
	// Close releases the device.
	Close() error
}

// FileDevice is a BlockDevice backed by an *os.File, the concrete transport
// used outside of tests.
type FileDevice struct {
	f            *os.File
	totalSectors int64
}

// Open opens path for binary reading and probes its length to derive the
// total sector count by ceiling division against SectorSize.
func Open(path string) (*FileDevice, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wrapErr("open", KindNotFound, err)
		}
		return nil, wrapErr("open", KindDeviceReadFault, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, wrapErr("open", KindDeviceReadFault, err)
	}
	total := (info.Size() + SectorSize - 1) / SectorSize
	return &FileDevice{f: f, totalSectors: total}, nil
}

// TotalSectors implements BlockDevice.
func (d *FileDevice) TotalSectors() int64 { return d.totalSectors }

// ReadSectors implements BlockDevice.
func (d *FileDevice) ReadSectors(firstSector, count int64, dst []byte) (int64, error) {
	if count <= 0 || firstSector < 0 || firstSector+count > d.totalSectors {
		return 0, newErr("read_sectors", KindRange)
	}
	if dst == nil || int64(len(dst)) < count*SectorSize {
		return 0, newErr("read_sectors", KindInvalidArgument)
	}
	n, err := d.f.ReadAt(dst[:count*SectorSize], firstSector*SectorSize)
	if err != nil && err != io.EOF {
		return 0, wrapErr("read_sectors", KindDeviceReadFault, err)
	}
	if int64(n) < count*SectorSize {
		return 0, wrapErr("read_sectors", KindDeviceReadFault, io.ErrUnexpectedEOF)
	}
	return count, nil
}

// Close implements BlockDevice.
func (d *FileDevice) Close() error {
	if err := d.f.Close(); err != nil {
		return wrapErr("close", KindDeviceReadFault, err)
	}
	return nil
}
