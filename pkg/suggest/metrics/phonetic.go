package metrics

const phoneticCodeLen = 4

// Consonant classes: labials, gutturals/sibilants, dentals, liquids,
// nasals and r. Vowels, h and w carry no code.
var phoneticClasses = map[rune]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

// PhoneticCode is a Soundex-style transform: first letter preserved,
// following letters mapped to consonant classes with adjacent
// duplicates collapsed, right-padded with zeros to 4 symbols.
func PhoneticCode(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}

	code := make([]byte, 0, phoneticCodeLen)
	code = append(code, byte(runes[0]))
	lastClass := phoneticClasses[runes[0]]

	for _, r := range runes[1:] {
		if len(code) == phoneticCodeLen {
			break
		}
		class, ok := phoneticClasses[r]
		if !ok {
			// vowel or silent letter breaks a duplicate run
			lastClass = 0
			continue
		}
		if class == lastClass {
			continue
		}
		code = append(code, class)
		lastClass = class
	}

	for len(code) < phoneticCodeLen {
		code = append(code, '0')
	}
	return string(code)
}

// PhoneticEqual reports whether two strings share the same phonetic
// code. Matching is exact; the scorer turns this into a flat bonus,
// not a graded score.
func PhoneticEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return PhoneticCode(a) == PhoneticCode(b)
}
