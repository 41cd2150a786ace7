package whatwgurl

// fileCodePoints are the bytes that terminate a Windows drive letter when it
// appears at the head of a path segment: '/', '\\', '?', '#'.
var fileCodePoints = [...]byte{'/', '\\', '?', '#'}

// isWindowsDriveLetter reports whether input is two bytes, an ASCII alpha
// followed by ':' or '|' (spec.md GLOSSARY, "Windows drive letter").
func isWindowsDriveLetter(input string) bool {
	return len(input) == 2 && isASCIIAlpha(input[0]) && (input[1] == ':' || input[1] == '|')
}

// isNormalizedWindowsDriveLetter reports whether input is a Windows drive
// letter whose second byte is ':'.
func isNormalizedWindowsDriveLetter(input string) bool {
	return len(input) == 2 && input[1] == ':' && isWindowsDriveLetter(input)
}

// startsWithWindowsDriveLetter reports whether input[pointer:] begins with a
// Windows drive letter that is either the whole remainder or immediately
// followed by one of fileCodePoints.
func startsWithWindowsDriveLetter(input string, pointer int) bool {
	length := len(input) - pointer
	if length < 2 || !isWindowsDriveLetter(input[pointer:pointer+2]) {
		return false
	}
	if length == 2 {
		return true
	}
	c := input[pointer+2]
	for _, fc := range fileCodePoints {
		if c == fc {
			return true
		}
	}
	return false
}
