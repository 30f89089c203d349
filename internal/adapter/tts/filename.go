package tts

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// DefaultVoice is used when a user has no voice preference.
const DefaultVoice = "alloy"

var voices = map[string]bool{
	"alloy":   true,
	"echo":    true,
	"fable":   true,
	"onyx":    true,
	"nova":    true,
	"shimmer": true,
}

// ValidVoice reports whether voice names a supported speech voice.
func ValidVoice(voice string) bool {
	return voices[voice]
}

// Filename returns the deterministic audio filename for a user and date:
// <user>_<YYYYMMDD>_<hash>.mp3. The same inputs always name the same
// file, so regeneration lookups are idempotent.
func Filename(userID, date string) string {
	sum := md5.Sum([]byte(date))
	short := hex.EncodeToString(sum[:])[:8]
	day := strings.ReplaceAll(date, "-", "")
	return userID + "_" + day + "_" + short + ".mp3"
}
