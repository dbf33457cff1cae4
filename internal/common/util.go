package common

// WipeByteArray zeroes a sensitive buffer, e.g. a password after use.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
