package utils

// TruncateChars returns at most n characters of s, cutting on a rune
// boundary. PDF extraction regularly yields multi-byte runes, so byte
// slicing is not safe here.
func TruncateChars(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
