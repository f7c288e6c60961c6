// Package direction classifies the dominant writing system of a text.
//
// Flyer content is mostly Hebrew or English, frequently mixed ("50% הנחה on
// all shoes"). [Detect] counts Hebrew letters against Latin letters and picks
// right-to-left only when Hebrew is the strict majority. Digits, punctuation,
// whitespace and letters of other scripts are ignored.
package direction

import "unicode"

// Direction is the inline base direction used to render a text block.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// hebrewPresentation covers U+FB1D–U+FB4F (Hebrew presentation forms), which
// unicode.Hebrew includes but which we list explicitly to keep the counted
// range in one place.
var hebrewPresentation = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xFB1D, Hi: 0xFB4F, Stride: 1}},
}

// Detect returns RTL when Hebrew letters make up more than half of the Hebrew
// and Latin letters in text, and LTR otherwise. Empty text, or text without
// any Hebrew or Latin letters, is LTR.
func Detect(text string) Direction {
	hebrew, latin := Count(text)
	if hebrew+latin == 0 {
		return LTR
	}
	// 2h > h+l is the integer form of h/(h+l) > 0.5; ties stay LTR.
	if 2*hebrew > hebrew+latin {
		return RTL
	}
	return LTR
}

// Count returns the number of Hebrew and Latin letters in text. Vowel points,
// cantillation marks and other combining marks are not letters and are not
// counted.
func Count(text string) (hebrew, latin int) {
	for _, r := range text {
		switch {
		case unicode.IsSpace(r), unicode.IsPunct(r), unicode.IsSymbol(r):
			continue
		case !unicode.IsLetter(r):
			continue
		case isHebrew(r):
			hebrew++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}
	return hebrew, latin
}

// IsRTL is shorthand for Detect(text) == RTL.
func IsRTL(text string) bool { return Detect(text) == RTL }

func isHebrew(r rune) bool {
	if r >= 0x0590 && r <= 0x05FF {
		return true
	}
	return unicode.Is(hebrewPresentation, r)
}
