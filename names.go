package fat12

import "bytes"

// decode83Name reconstructs an 8.3 short name from the 11-byte stored
// base+extension field. The extension counts as empty when all three
// extension bytes (indices 8-10) are spaces, so a file with no extension
// is not rendered with a trailing dot.
func decode83Name(raw [11]byte) string {
	base := bytes.TrimRight(raw[0:8], " ")
	ext := bytes.TrimRight(raw[8:11], " ")
	if len(ext) == 0 {
		return string(base)
	}
	return string(base) + "." + string(ext)
}
