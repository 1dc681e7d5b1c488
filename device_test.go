package fat12

// memDevice is a byte-slice-backed BlockDevice test double, modeled on the
// teacher's BlockByteSlice in vfs_test.go: a flat []byte addressed in
// fixed SectorSize chunks, with no persistence beyond the backing slice.
type memDevice struct {
	data []byte
}

func newMemDevice(data []byte) *memDevice {
	return &memDevice{data: data}
}

func (d *memDevice) TotalSectors() int64 { return int64(len(d.data)) / SectorSize }

func (d *memDevice) ReadSectors(firstSector, count int64, dst []byte) (int64, error) {
	if count <= 0 || firstSector < 0 || firstSector+count > d.TotalSectors() {
		return 0, newErr("read_sectors", KindRange)
	}
	if dst == nil || int64(len(dst)) < count*SectorSize {
		return 0, newErr("read_sectors", KindInvalidArgument)
	}
	off := firstSector * SectorSize
	n := count * SectorSize
	copy(dst[:n], d.data[off:off+n])
	return count, nil
}

func (d *memDevice) Close() error { return nil }
