// Package normalize turns free-form answers into the canonical value a
// field stores: names in title case, dates as YYYY-MM-DD, select answers
// as their canonical option codes. Every function is pure and falls back
// to the raw input when no rule matches.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/permitly/permitagent/schedule"
)

// Normalize applies the canonical formatting rule of the given field to a
// raw answer. Unknown fields and unmatched inputs come back trimmed but
// otherwise unchanged.
func Normalize(fieldID, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return v
	}
	field, ok := schedule.ByID(fieldID)
	if !ok {
		return v
	}
	switch {
	case fieldID == "fullName":
		return TitleCase(v)
	case field.Kind == schedule.KindDate:
		if d, ok := ParseDate(v); ok {
			return d
		}
		return v
	case field.Kind == schedule.KindSelect:
		if c, ok := CanonicalOption(fieldID, v); ok {
			return c
		}
		return v
	}
	return v
}

// TitleCase lowercases the input and capitalizes the first letter of each
// space separated word.
func TitleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

var (
	isoRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dottedRe = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)
	slashRe  = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	textRe   = regexp.MustCompile(`(\d{1,2})[.\s]+(\p{L}+)[.\s]+(\d{4})`)
)

var monthNames = map[string]string{
	"januar": "01", "january": "01", "jan": "01",
	"februar": "02", "february": "02", "feb": "02",
	"märz": "03", "march": "03", "mar": "03",
	"april": "04", "apr": "04",
	"mai": "05", "may": "05",
	"juni": "06", "june": "06", "jun": "06",
	"juli": "07", "july": "07", "jul": "07",
	"august": "08", "aug": "08",
	"september": "09", "sep": "09", "sept": "09",
	"oktober": "10", "october": "10", "oct": "10", "okt": "10",
	"november": "11", "nov": "11",
	"dezember": "12", "december": "12", "dec": "12", "dez": "12",
}

// ParseDate reads a date in one of the accepted input shapes and returns
// it as YYYY-MM-DD. Slash dates are read day-first, the European way.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if isoRe.MatchString(s) {
		return s, true
	}
	if m := dottedRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1])), true
	}
	if m := slashRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1])), true
	}
	if m := textRe.FindStringSubmatch(s); m != nil {
		if month, ok := monthNames[strings.ToLower(m[2])]; ok {
			return fmt.Sprintf("%s-%s-%s", m[3], month, pad2(m[1])), true
		}
	}
	return "", false
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

var optionSynonyms = map[string]map[string]string{
	"nationality": {
		"deutsch": "DE", "german": "DE", "germany": "DE", "deutschland": "DE",
		"türkisch": "TR", "turkish": "TR", "türkei": "TR", "turkey": "TR", "türkiye": "TR",
		"syrisch": "SY", "syrian": "SY", "syrien": "SY", "syria": "SY", "suriye": "SY",
		"polnisch": "PL", "polish": "PL", "polen": "PL", "poland": "PL", "polska": "PL",
		"ukrainisch": "UA", "ukrainian": "UA", "ukraine": "UA", "україна": "UA",
		"indisch": "IN", "indian": "IN", "indien": "IN", "india": "IN",
		"russisch": "RU", "russian": "RU", "russland": "RU", "russia": "RU", "россия": "RU",
		"chinesisch": "CN", "chinese": "CN", "china": "CN", "中国": "CN",
		"amerikanisch": "US", "american": "US", "usa": "US", "united states": "US",
		"spanisch": "ES", "spanish": "ES", "spanien": "ES", "spain": "ES",
		"französisch": "FR", "french": "FR", "frankreich": "FR", "france": "FR",
		"italienisch": "IT", "italian": "IT", "italien": "IT", "italy": "IT",
		"portugiesisch": "PT", "portuguese": "PT", "portugal": "PT",
		"british": "GB", "uk": "GB", "united kingdom": "GB", "großbritannien": "GB",
		"romanian": "RO", "rumänisch": "RO", "romania": "RO", "rumänien": "RO",
		"bulgarian": "BG", "bulgarisch": "BG", "bulgaria": "BG", "bulgarien": "BG",
		"greek": "GR", "griechisch": "GR", "greece": "GR", "griechenland": "GR",
		"andere": "OTHER", "other": "OTHER", "sonstige": "OTHER",
	},
	"maritalStatus": {
		"ledig": "single", "unverheiratet": "single", "single": "single", "bekar": "single",
		"verheiratet": "married", "married": "married", "evli": "married",
		"geschieden": "divorced", "divorced": "divorced", "boşanmış": "divorced",
		"verwitwet": "widowed", "widowed": "widowed", "dul": "widowed",
	},
	"germanLevel": {
		"keine": "none", "no": "none", "none": "none", "kein": "none",
		"a1": "A1", "anfänger": "A1", "beginner": "A1",
		"a2": "A2", "grundkenntnisse": "A2", "elementary": "A2",
		"b1": "B1", "mittelstufe": "B1", "intermediate": "B1",
		"b2": "B2", "gute mittelstufe": "B2", "upper intermediate": "B2",
		"c1": "C1", "fortgeschritten": "C1", "advanced": "C1",
		"c2": "C2", "exzellent": "C2", "fließend": "C2", "fluent": "C2", "proficient": "C2",
	},
	"criminalRecord": {
		"ja": "yes", "yes": "yes", "evet": "yes",
		"nein": "no", "no": "no", "hayır": "no",
	},
}

// CanonicalOption resolves a select answer to its canonical option code.
// Matching is case insensitive and covers the German, English and Turkish
// synonyms that the live model most often echoes back.
func CanonicalOption(fieldID, raw string) (string, bool) {
	syns, ok := optionSynonyms[fieldID]
	if !ok {
		return "", false
	}
	if c, ok := syns[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c, true
	}
	// Already canonical values resolve to themselves.
	for _, opt := range schedule.Domain(fieldID) {
		if strings.EqualFold(opt, strings.TrimSpace(raw)) {
			return opt, true
		}
	}
	return "", false
}
