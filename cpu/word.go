package cpu

const (
	WORD_SIZE = 2  // Bytes per word.
	WORD_BITS = 16 // Bits per word.
)

// SignExtend replicates bit (bits-1) of field into every higher bit of the word.
// Bits of field above the field width are ignored.
func SignExtend(field uint16, bits uint) uint16 {
	if bits == 0 || bits >= WORD_BITS {
		return field
	}

	shift := WORD_BITS - bits
	return uint16(int16(field<<shift) >> shift)
}
