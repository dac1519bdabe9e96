package textutil

import "strings"

// filenameStopTokens are separator-derived tokens that carry no
// content signal: generic media words, year tokens, and extensions
// that survive inner dots.
var filenameStopTokens = map[string]struct{}{
	"screenshot": {}, "image": {}, "photo": {}, "pic": {}, "img": {},
	"figure": {}, "fig": {}, "chart": {}, "graph": {}, "plot": {},
	"data": {}, "2024": {}, "2025": {},
	"png": {}, "jpg": {}, "jpeg": {},
}

var filenameSeparators = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// CleanFilename strips the extension and replaces separator characters
// with spaces, keeping the original token order and case.
func CleanFilename(filename string) string {
	base := filename
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	return filenameSeparators.Replace(base)
}

// FilenameKeywords decomposes an image filename into content-bearing
// keywords: extension removed, separators split, stop tokens and
// tokens shorter than three characters dropped. Order is preserved.
func FilenameKeywords(filename string) []string {
	words := strings.Fields(CleanFilename(filename))
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < 3 {
			continue
		}
		if _, stop := filenameStopTokens[strings.ToLower(w)]; stop {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}

// FilenameDescription builds the degraded-mode description used when
// no vision analysis is available for an image.
func FilenameDescription(filename string) string {
	return "Image related to: " + CleanFilename(filename)
}
