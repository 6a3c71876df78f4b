package cloudfx

// One adds "a" or "an" to a string.
func One(s string) (text string) {
	if len(s) > 0 {
		if s[len(s)-1] == 's' {
			return s
		}
		switch s[0] {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			text = "an " + s
		default:
			text = "a " + s
		}
	}
	return text
}
