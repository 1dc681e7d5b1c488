package fat12

// Date is a decoded FAT directory-entry date field.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Clock is a decoded FAT directory-entry time field.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// decodeDate unpacks a little-endian u16 FAT date field: day in bits
// [0..4], month in bits [5..8], year in bits [9..15] relative to 1980.
func decodeDate(v uint16) Date {
	return Date{
		Day:   int(v & 0x1F),
		Month: int((v >> 5) & 0x0F),
		Year:  int(v>>9) + 1980,
	}
}

// decodeClock unpacks a little-endian u16 FAT time field: seconds in bits
// [0..4], stored in 2-second units and multiplied back out here, minute
// in bits [5..10], hour in bits [11..15].
func decodeClock(v uint16) Clock {
	return Clock{
		Second: int(v&0x1F) * 2,
		Minute: int((v >> 5) & 0x3F),
		Hour:   int(v >> 11),
	}
}
