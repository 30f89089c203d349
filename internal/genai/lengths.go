package genai

// SummaryLength is a target-length profile for daily summaries. Goals may
// contain the {{TONE}} placeholder, filled with the persona tone at
// composition time.
type SummaryLength struct {
	Key         string
	Length      string
	Goals       string
	Instruction string
}

// DefaultLengthKey is the fallback length profile for every call site.
const DefaultLengthKey = "short"

var lengths = map[string]SummaryLength{
	"short": {
		Key:    "short",
		Length: "ultra-short",
		Goals: `1. Identify the main theme of the day in ONE sentence
2. Note ONE key productivity insight
3. Offer ONE brief suggestion for tomorrow
4. Keep the tone {{TONE}}
5. **MAXIMUM 2-3 sentences total** - be extremely concise!`,
		Instruction: "2-3 sentences max",
	},
	"medium": {
		Key:    "medium",
		Length: "concise",
		Goals: `1. Identify the main theme and key focus areas of the day
2. Note 2-3 important productivity insights or patterns
3. Highlight one significant accomplishment or challenge
4. Offer 2-3 actionable suggestions for tomorrow
5. Keep the tone {{TONE}}
6. **Provide 1-2 concise paragraphs** - balanced and focused`,
		Instruction: "1-2 paragraphs",
	},
	"long": {
		Key:    "long",
		Length: "detailed",
		Goals: `1. Identify main themes and focus areas of the day
2. Note productivity rhythms and energy transitions
3. Highlight key accomplishments and challenges
4. Offer actionable suggestions for tomorrow
5. Keep the tone {{TONE}}
6. **Provide 2-3 detailed paragraphs** - be comprehensive but {{TONE}}`,
		Instruction: "2-3 paragraphs",
	},
}

// ResolveLength returns the length profile for key, falling back to the
// default when the key is unknown or empty.
func ResolveLength(key string) SummaryLength {
	if l, ok := lengths[key]; ok {
		return l
	}
	return lengths[DefaultLengthKey]
}

// KnownLength reports whether key names a registered length profile.
func KnownLength(key string) bool {
	_, ok := lengths[key]
	return ok
}
