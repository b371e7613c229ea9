package http1

// unhex converts a single hexadecimal digit to its value. ok is false for
// anything that isn't one.
func unhex(char byte) (value byte, ok bool) {
	switch {
	case '0' <= char && char <= '9':
		return char - '0', true
	case 'a' <= char && char <= 'f':
		return char - 'a' + 10, true
	case 'A' <= char && char <= 'F':
		return char - 'A' + 10, true
	default:
		return 0, false
	}
}
