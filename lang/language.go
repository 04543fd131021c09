// Package lang provides the static language and script catalog consumed by the
// detection engine.
//
// Language is a closed enumeration. Each language carries read-only metadata:
// the scripts it is written in, an optional set of characters that occur in no
// other catalog language, and a stable ISO 639-1 code used as the key for
// locating its n-gram models. The distinguished value Unknown has no metadata
// and no models; it is the sentinel for "no confident answer".
//
// All catalog data is immutable program data. Everything in this package is
// safe for concurrent use.
package lang

import (
	"encoding/json"
	"fmt"
)

// Language identifies a natural language from the closed catalog.
type Language int

// Catalog languages in natural (alphabetical) order. This order is the
// tie-break order everywhere the engine needs a deterministic iteration over
// languages.
const (
	Unknown Language = iota // zero value, sentinel for insufficient or ambiguous evidence
	Arabic
	Armenian
	Azerbaijani
	Belarusian
	Bengali
	Bulgarian
	Chinese
	Czech
	Danish
	Dutch
	English
	Estonian
	Finnish
	French
	Georgian
	German
	Greek
	Gujarati
	Hebrew
	Hindi
	Hungarian
	Icelandic
	Indonesian
	Irish
	Italian
	Japanese
	Kazakh
	Korean
	Latvian
	Lithuanian
	Macedonian
	Marathi
	Mongolian
	Norwegian
	Polish
	Portuguese
	Punjabi
	Romanian
	Russian
	Serbian
	Slovak
	Slovene
	Spanish
	Swedish
	Tamil
	Telugu
	Thai
	Turkish
	Ukrainian
	Vietnamese
	Yoruba

	numLanguages
)

// languageInfo holds the immutable per-language catalog metadata.
type languageInfo struct {
	name        string
	code        string // ISO 639-1, model-lookup key
	scripts     []Script
	uniqueChars string // characters occurring in no other catalog language
}

var languageCatalog = [numLanguages]languageInfo{
	Unknown:     {name: "Unknown", code: ""},
	Arabic:      {name: "Arabic", code: "ar", scripts: []Script{ScriptArabic}},
	Armenian:    {name: "Armenian", code: "hy", scripts: []Script{ScriptArmenian}},
	Azerbaijani: {name: "Azerbaijani", code: "az", scripts: []Script{ScriptLatin}, uniqueChars: "Əə"},
	Belarusian:  {name: "Belarusian", code: "be", scripts: []Script{ScriptCyrillic}},
	Bengali:     {name: "Bengali", code: "bn", scripts: []Script{ScriptBengali}},
	Bulgarian:   {name: "Bulgarian", code: "bg", scripts: []Script{ScriptCyrillic}},
	Chinese:     {name: "Chinese", code: "zh", scripts: []Script{ScriptHan}},
	Czech:       {name: "Czech", code: "cs", scripts: []Script{ScriptLatin}, uniqueChars: "ĚěŘřŮů"},
	Danish:      {name: "Danish", code: "da", scripts: []Script{ScriptLatin}},
	Dutch:       {name: "Dutch", code: "nl", scripts: []Script{ScriptLatin}},
	English:     {name: "English", code: "en", scripts: []Script{ScriptLatin}},
	Estonian:    {name: "Estonian", code: "et", scripts: []Script{ScriptLatin}},
	Finnish:     {name: "Finnish", code: "fi", scripts: []Script{ScriptLatin}},
	French:      {name: "French", code: "fr", scripts: []Script{ScriptLatin}},
	Georgian:    {name: "Georgian", code: "ka", scripts: []Script{ScriptGeorgian}},
	German:      {name: "German", code: "de", scripts: []Script{ScriptLatin}, uniqueChars: "ß"},
	Greek:       {name: "Greek", code: "el", scripts: []Script{ScriptGreek}},
	Gujarati:    {name: "Gujarati", code: "gu", scripts: []Script{ScriptGujarati}},
	Hebrew:      {name: "Hebrew", code: "he", scripts: []Script{ScriptHebrew}},
	Hindi:       {name: "Hindi", code: "hi", scripts: []Script{ScriptDevanagari}},
	Hungarian:   {name: "Hungarian", code: "hu", scripts: []Script{ScriptLatin}, uniqueChars: "ŐőŰű"},
	Icelandic:   {name: "Icelandic", code: "is", scripts: []Script{ScriptLatin}},
	Indonesian:  {name: "Indonesian", code: "id", scripts: []Script{ScriptLatin}},
	Irish:       {name: "Irish", code: "ga", scripts: []Script{ScriptLatin}},
	Italian:     {name: "Italian", code: "it", scripts: []Script{ScriptLatin}},
	Japanese:    {name: "Japanese", code: "ja", scripts: []Script{ScriptHiragana, ScriptKatakana, ScriptHan}},
	Kazakh:      {name: "Kazakh", code: "kk", scripts: []Script{ScriptCyrillic}, uniqueChars: "ӘәҒғҚқҢңҰұ"},
	Korean:      {name: "Korean", code: "ko", scripts: []Script{ScriptHangul}},
	Latvian:     {name: "Latvian", code: "lv", scripts: []Script{ScriptLatin}, uniqueChars: "ĢģĶķĻļŅņ"},
	Lithuanian:  {name: "Lithuanian", code: "lt", scripts: []Script{ScriptLatin}, uniqueChars: "ĖėĮįŲų"},
	Macedonian:  {name: "Macedonian", code: "mk", scripts: []Script{ScriptCyrillic}, uniqueChars: "ЃѓЅѕЌќЏџ"},
	Marathi:     {name: "Marathi", code: "mr", scripts: []Script{ScriptDevanagari}, uniqueChars: "ळ"},
	Mongolian:   {name: "Mongolian", code: "mn", scripts: []Script{ScriptCyrillic}, uniqueChars: "ӨөҮү"},
	Norwegian:   {name: "Norwegian", code: "no", scripts: []Script{ScriptLatin}},
	Polish:      {name: "Polish", code: "pl", scripts: []Script{ScriptLatin}, uniqueChars: "ŁłŃńŚśŹź"},
	Portuguese:  {name: "Portuguese", code: "pt", scripts: []Script{ScriptLatin}},
	Punjabi:     {name: "Punjabi", code: "pa", scripts: []Script{ScriptGurmukhi}},
	Romanian:    {name: "Romanian", code: "ro", scripts: []Script{ScriptLatin}, uniqueChars: "Țţ"},
	Russian:     {name: "Russian", code: "ru", scripts: []Script{ScriptCyrillic}},
	Serbian:     {name: "Serbian", code: "sr", scripts: []Script{ScriptCyrillic}, uniqueChars: "ЂђЋћ"},
	Slovak:      {name: "Slovak", code: "sk", scripts: []Script{ScriptLatin}, uniqueChars: "ĹĺĽľŔŕ"},
	Slovene:     {name: "Slovene", code: "sl", scripts: []Script{ScriptLatin}},
	Spanish:     {name: "Spanish", code: "es", scripts: []Script{ScriptLatin}, uniqueChars: "¿¡"},
	Swedish:     {name: "Swedish", code: "sv", scripts: []Script{ScriptLatin}},
	Tamil:       {name: "Tamil", code: "ta", scripts: []Script{ScriptTamil}},
	Telugu:      {name: "Telugu", code: "te", scripts: []Script{ScriptTelugu}},
	Thai:        {name: "Thai", code: "th", scripts: []Script{ScriptThai}},
	Turkish:     {name: "Turkish", code: "tr", scripts: []Script{ScriptLatin}},
	Ukrainian:   {name: "Ukrainian", code: "uk", scripts: []Script{ScriptCyrillic}, uniqueChars: "ҐґЄєЇї"},
	Vietnamese: {name: "Vietnamese", code: "vi", scripts: []Script{ScriptLatin},
		uniqueChars: "ẰằẦầẲẳẨẩẴẵẪẫẮắẤấẠạẶặẬậỀềẺẻỂểẼẽỄễẾếỆệỈỉĨĩỊịƠơỒồỜờỎỏỔổỞởỖỗỠỡỐốỚớỘộỢợƯưỪừỦủỬửŨũỮữỨứỤụỰựỲỳỶỷỸỹỴỵ"},
	Yoruba: {name: "Yoruba", code: "yo", scripts: []Script{ScriptLatin}, uniqueChars: "Ṣṣ"},
}

// All returns every detectable language in catalog order. Unknown is excluded.
func All() []Language {
	out := make([]Language, 0, numLanguages-1)
	for l := Unknown + 1; l < numLanguages; l++ {
		out = append(out, l)
	}
	return out
}

// WithScript returns all catalog languages written in the given script,
// in catalog order.
func WithScript(s Script) []Language {
	var out []Language
	for l := Unknown + 1; l < numLanguages; l++ {
		for _, ls := range languageCatalog[l].scripts {
			if ls == s {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

// FromCode resolves an ISO 639-1 code (e.g. "en") to a Language.
func FromCode(code string) (Language, error) {
	for l := Unknown + 1; l < numLanguages; l++ {
		if languageCatalog[l].code == code {
			return l, nil
		}
	}
	return Unknown, fmt.Errorf("lang: unsupported ISO 639-1 code: %q", code)
}

// FromName resolves a language name (e.g. "English") to a Language.
func FromName(name string) (Language, error) {
	for l := Language(0); l < numLanguages; l++ {
		if languageCatalog[l].name == name {
			return l, nil
		}
	}
	return Unknown, fmt.Errorf("lang: unknown language: %q", name)
}

// String returns the name of the language.
func (l Language) String() string {
	if l >= 0 && l < numLanguages {
		return languageCatalog[l].name
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Code returns the ISO 639-1 code of the language, or "" for Unknown.
func (l Language) Code() string {
	if l >= 0 && l < numLanguages {
		return languageCatalog[l].code
	}
	return ""
}

// Scripts returns the scripts the language is written in. The returned slice
// is a copy.
func (l Language) Scripts() []Script {
	if l < 0 || l >= numLanguages {
		return nil
	}
	scripts := languageCatalog[l].scripts
	out := make([]Script, len(scripts))
	copy(out, scripts)
	return out
}

// UsesScript reports whether the language is written in the given script.
func (l Language) UsesScript(s Script) bool {
	if l < 0 || l >= numLanguages {
		return false
	}
	for _, ls := range languageCatalog[l].scripts {
		if ls == s {
			return true
		}
	}
	return false
}

// UniqueCharacters returns the characters that occur in this language and in
// no other catalog language, or "" if there are none.
func (l Language) UniqueCharacters() string {
	if l < 0 || l >= numLanguages {
		return ""
	}
	return languageCatalog[l].uniqueChars
}

// MarshalJSON encodes the language as its JSON string name (e.g. "English").
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a JSON string name (e.g. "English") into a Language.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := FromName(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
