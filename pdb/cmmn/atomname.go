package cmmn

import "fmt"

func firstTwo(s string) string {
	if len(s) > 2 {
		return s[:2]
	}
	return s
}

// IsElementName says if an atom name starts with its own element
// symbol, as in CA for calcium or FE in a heme. It is case sensitive.
func IsElementName(name, element string) bool {
	return firstTwo(name) == firstTwo(element)
}

// FormatAtomName puts an atom name into its four columns.
// Four character names go in as they are. A name starting with its
// element is right justified in the first two columns, so calcium is
// "CA  ". Anything else starts in the second column, so a C-alpha is
// " CA ".
func FormatAtomName(name, element string) string {
	return AlignAtomName(name, IsElementName(name, element))
}

// AlignAtomName is FormatAtomName when the element test has already
// been done.
func AlignAtomName(name string, isElement bool) string {
	if len(name) >= 4 {
		return name
	}
	if isElement {
		return fmt.Sprintf("%-4s", fmt.Sprintf("%2s", name))
	}
	return fmt.Sprintf(" %-3s", name)
}
