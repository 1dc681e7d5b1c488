package fat12

import "io"

// rootPath is the only directory path this package recognizes; this
// package does not traverse subdirectories.
const rootPath = "\\"

// Dir is a snapshot of decoded root-directory entries with a monotonic
// read cursor.
type Dir struct {
	entries []DirEntry
	cursor  int
	log     logger
}

// OpenRootDir opens the named directory. Only the root path "\" is
// recognized; anything else is not-found.
func (v *Volume) OpenRootDir(path string) (*Dir, error) {
	if path != rootPath {
		return nil, newErr("open_dir", KindNotFound)
	}
	v.log.trace("open_dir", "path", path)
	entries := v.root.snapshot()
	v.log.debug("open_dir: snapshot taken", "count", len(entries))
	return &Dir{entries: entries, log: v.log}, nil
}

// Read returns the next entry and true, or the zero DirEntry and false
// once the cursor is exhausted (a dedicated status, not an error). The
// error return is reserved for future use and is always nil today.
func (d *Dir) Read() (DirEntry, bool, error) {
	if d.cursor >= len(d.entries) {
		d.log.trace("read_dir: exhausted")
		return DirEntry{}, false, nil
	}
	e := d.entries[d.cursor]
	d.cursor++
	d.log.trace("read_dir", "name", e.Name, "cursor", d.cursor)
	return e, true, nil
}

// ForEach calls fn for every remaining entry in order, stopping early if
// fn returns an error.
func (d *Dir) ForEach(fn func(DirEntry) error) error {
	for {
		e, ok, err := d.Read()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(e); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// Close releases the snapshot.
func (d *Dir) Close() error {
	d.log.trace("close_dir")
	d.entries = nil
	return nil
}
