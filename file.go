package fat12

import (
	"io"

	"github.com/boljen/go-bitmap"
)

// File is a byte cursor over a file's materialized payload: the
// concatenation of its cluster chain's bytes, truncated to the
// directory-reported size.
type File struct {
	name    string
	payload []byte
	size    int64
	pos     int64
	log     logger
}

// OpenFile looks name up in the root directory, rejects directories and
// volume labels, and materializes the file's payload by walking its
// cluster chain from first_cluster, copying min(cluster_bytes, remaining)
// per cluster until remaining reaches zero or the chain ends.
//
// The walk consults a visited-cluster bitmap before following
// next(cluster): a cluster revisited before remaining reaches zero means
// the chain is cyclic, reported as corrupted instead of looping forever.
func (v *Volume) OpenFile(name string) (*File, error) {
	v.log.trace("open_file", "name", name)
	entry, ok := v.root.lookup(name)
	if !ok {
		v.log.debug("open_file: not found", "name", name)
		return nil, newErr("open_file", KindNotFound)
	}
	if entry.Attrs.Directory || entry.Attrs.VolumeLabel {
		return nil, newErr("open_file", KindIsADirectory)
	}

	payload := make([]byte, entry.Size)
	remaining := int64(entry.Size)
	cluster := entry.FirstCluster

	visited := bitmap.New(int(v.geom.TotalClusters) + 2)
	pos := int64(0)
	for remaining > 0 {
		// Valid cluster numbers run 2..TotalClusters inclusive; anything
		// outside that range does not correspond to an allocated data
		// sector and marks a corrupt chain.
		if cluster < 2 || int64(cluster) > v.geom.TotalClusters {
			return nil, newErr("open_file", KindCorrupted)
		}
		if visited.Get(int(cluster)) {
			v.log.warn("open_file: cyclic cluster chain", "name", name, "cluster", cluster)
			return nil, newErr("open_file", KindCorrupted)
		}
		visited.Set(int(cluster), true)

		entryVal := v.fat.next(cluster)
		if isBadCluster(entryVal) {
			return nil, newErr("open_file", KindCorrupted)
		}

		n := v.geom.BytesPerCluster
		if n > remaining {
			n = remaining
		}
		off := v.clusterOffset(cluster)
		if off < 0 || off+n > int64(len(v.data)) {
			return nil, newErr("open_file", KindCorrupted)
		}
		copy(payload[pos:pos+n], v.data[off:off+n])
		pos += n
		remaining -= n

		if remaining == 0 {
			break
		}
		if isEndOfChain(entryVal) {
			// Chain ended before the directory-reported size was
			// satisfied. Treated as a short file, not an error; the
			// payload beyond pos stays zeroed.
			break
		}
		cluster = uint32(entryVal & fatEntryMask)
	}

	v.log.debug("open_file: opened", "name", name, "size", entry.Size)
	return &File{name: name, payload: payload, size: int64(entry.Size), log: v.log}, nil
}

// ReadElements copies whole elements from payload[pos:] into dst. It
// stops (short read) at EOF and returns the number of complete elements
// transferred.
func (f *File) ReadElements(dst []byte, elemSize, elemCount int) (int, error) {
	if elemSize <= 0 || elemCount < 0 || dst == nil {
		return 0, newErr("read", KindInvalidArgument)
	}
	availElems := int((f.size - f.pos) / int64(elemSize))
	elems := elemCount
	if elems > availElems {
		elems = availElems
	}
	if dstElems := len(dst) / elemSize; elems > dstElems {
		elems = dstElems
	}
	n := elems * elemSize
	copy(dst[:n], f.payload[f.pos:f.pos+int64(n)])
	f.pos += int64(n)
	f.log.trace("read", "name", f.name, "elems", elems, "pos", f.pos)
	return elems, nil
}

// Read implements io.Reader as a byte-granular ReadElements call.
func (f *File) Read(p []byte) (int, error) {
	if f.pos >= f.size {
		return 0, io.EOF
	}
	n, err := f.ReadElements(p, 1, len(p))
	return n, err
}

// Seek repositions the file's cursor. whence is one of SeekSet, SeekCur,
// or SeekEnd; any other value is invalid-argument. The resulting absolute
// position must satisfy 0 <= new_pos <= size; seeking to exactly size is
// legal and yields EOF on the next read.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case SeekSet:
		newPos = offset
	case SeekCur:
		newPos = f.pos + offset
	case SeekEnd:
		newPos = f.size + offset
	default:
		return 0, newErr("seek", KindInvalidArgument)
	}
	if newPos < 0 || newPos > f.size {
		return 0, newErr("seek", KindNoSuchAddress)
	}
	f.pos = newPos
	f.log.trace("seek", "name", f.name, "pos", f.pos)
	return f.pos, nil
}

// Close releases the payload.
func (f *File) Close() error {
	f.log.trace("close_file", "name", f.name)
	f.payload = nil
	return nil
}

// Size returns the file's directory-reported size.
func (f *File) Size() int64 { return f.size }

// Whence values for Seek, matching io.Seeker's SET/CUR/END.
const (
	SeekSet = 0
	SeekCur = 1
	SeekEnd = 2
)
