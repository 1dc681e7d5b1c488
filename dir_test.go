package fat12

import "testing"

// TestDirEnumerationOrder is spec.md §8 scenario 4.
func TestDirEnumerationOrder(t *testing.T) {
	root := &rawRootDir{capacity: 4, data: make([]byte, 4*dirEntrySize)}
	copy(root.data[0*dirEntrySize:], dirEntryBytes(name83("A", "TXT"), 0x20, 2, 5, 0, 0))
	deleted := dirEntryBytes(name83("ELETED", "DEL"), 0x20, 0, 0, 0, 0)
	deleted[direntName] = direntDeleted
	copy(root.data[1*dirEntrySize:], deleted)
	copy(root.data[2*dirEntrySize:], dirEntryBytes(name83("LABEL", ""), 0x08, 0, 0, 0, 0))
	copy(root.data[3*dirEntrySize:], dirEntryBytes(name83("SUB", ""), 0x10, 0, 0, 0, 0))

	d := &Dir{entries: root.snapshot()}

	e, ok, err := d.Read()
	if err != nil || !ok || e.Name != "A.TXT" {
		t.Fatalf("first entry = (%+v, %v, %v), want A.TXT", e, ok, err)
	}
	e, ok, err = d.Read()
	if err != nil || !ok || e.Name != "SUB" {
		t.Fatalf("second entry = (%+v, %v, %v), want SUB", e, ok, err)
	}
	_, ok, err = d.Read()
	if err != nil || ok {
		t.Fatalf("expected exhaustion after 2 entries, got ok=%v err=%v", ok, err)
	}
}

func TestOpenRootDirRejectsNonRootPath(t *testing.T) {
	v := &Volume{root: &rawRootDir{capacity: 0}}
	if _, err := v.OpenRootDir("subdir"); ErrorKindOrFatal(t, err) != KindNotFound {
		t.Fatalf("expected not-found for a non-root path")
	}
}

func TestForEachStopsOnError(t *testing.T) {
	root := &rawRootDir{capacity: 2, data: make([]byte, 2*dirEntrySize)}
	copy(root.data[0:], dirEntryBytes(name83("A", "TXT"), 0x20, 2, 5, 0, 0))
	copy(root.data[dirEntrySize:], dirEntryBytes(name83("B", "BIN"), 0x20, 3, 700, 0, 0))

	d := &Dir{entries: root.snapshot()}
	var seen []string
	err := d.ForEach(func(e DirEntry) error {
		seen = append(seen, e.Name)
		return errStop
	})
	if err != errStop {
		t.Fatalf("ForEach returned %v, want errStop", err)
	}
	if len(seen) != 1 {
		t.Fatalf("ForEach visited %d entries, want 1", len(seen))
	}
}

var errStop = newErr("test", KindInvalidArgument)
