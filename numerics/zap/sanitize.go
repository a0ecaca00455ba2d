package zap

import "strings"

// controlCharReplacer escapes control characters that can forge log entries
// in console encoders (CWE-117). The JSON encoder escapes them already.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitizeString(s string) string {
	return controlCharReplacer.Replace(s)
}
