package locale

const (
	// TH is Thai.
	TH = "th"
	// EN is English.
	EN = "en"
)

// LangList contains all supported language codes.
var LangList = []string{TH, EN}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = TH

// Locale is the context key for the request language.
type Locale struct{}

const (
	thaiBlockStart = '\u0E00'
	thaiBlockEnd   = '\u0E7F'
)
