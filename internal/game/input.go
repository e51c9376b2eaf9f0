package game

// LetterKey reports whether key is a single ASCII letter and returns it
// lower-cased. Front ends use it to filter raw key names before AppendChar.
func LetterKey(key string) (rune, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := rune(key[0])
	switch {
	case c >= 'a' && c <= 'z':
		return c, true
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A'), true
	}
	return 0, false
}
