package index

// CatchAll is the bucket for names with no ASCII letter at all.
const CatchAll = "_"

// Letters returns every bucket id: "a".."z" plus the catch-all.
// The builder materializes all of them so a lookup never misses a
// bucket just because no record happened to start with that letter.
func Letters() []string {
	letters := make([]string, 0, 27)
	for c := byte('a'); c <= 'z'; c++ {
		letters = append(letters, string(c))
	}
	return append(letters, CatchAll)
}

// NormalizeKey lowercases s and strips every character outside [a-z0-9].
// ASCII only: diacritics and punctuation are dropped, not transliterated.
// Idempotent.
func NormalizeKey(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		}
	}
	return string(out)
}

// LetterOf returns the bucket id for a name: the first ASCII letter found
// anywhere in the string, lowercased, or CatchAll if there is none. The same
// rule runs at build time and query time; a mismatch between the two would
// silently bucket a record where no query ever looks.
func LetterOf(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			return string(c)
		}
		if c >= 'A' && c <= 'Z' {
			return string(c + ('a' - 'A'))
		}
	}
	return CatchAll
}

// IndividualKey is the lookup key for a person: normalized lastName+firstName
// concatenated. The concatenation is deliberately join-free — "Jung"+"Dan" and
// "Ju"+"ngdan" collide; the list values under each key absorb that ambiguity.
func IndividualKey(lastName, firstName string) string {
	return NormalizeKey(lastName + firstName)
}

// BusinessKey is the lookup key for a business name.
func BusinessKey(businessName string) string {
	return NormalizeKey(businessName)
}
