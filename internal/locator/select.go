package locator

import (
	"sort"

	"golang.org/x/text/language"
)

// SelectLanguage picks a track from available. For each preference in order,
// an exact code match wins, then a track with the same base language
// (e.g. "en-US" or "en-orig" for "en"). Without any match the
// lexicographically first code is returned. It returns "" only when
// available is empty.
func SelectLanguage(available, preferred []string) string {
	if len(available) == 0 {
		return ""
	}

	sorted := append([]string(nil), available...)
	sort.Strings(sorted)

	for _, pref := range preferred {
		for _, lang := range sorted {
			if lang == pref {
				return lang
			}
		}
	}

	for _, pref := range preferred {
		want, ok := baseOf(pref)
		if !ok {
			continue
		}
		for _, lang := range sorted {
			if got, ok := baseOf(lang); ok && got == want {
				return lang
			}
		}
	}

	return sorted[0]
}

// baseOf returns the base language subtag of code. Downloader-specific
// suffixes such as "-orig" are not valid BCP 47, so only the leading
// subtag is parsed.
func baseOf(code string) (language.Base, bool) {
	for i := 0; i < len(code); i++ {
		if code[i] == '-' || code[i] == '_' {
			code = code[:i]
			break
		}
	}
	base, err := language.ParseBase(code)
	if err != nil {
		return language.Base{}, false
	}
	return base, true
}
