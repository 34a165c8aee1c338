package guard

import "strings"

const (
	rejectVerdictPrefixConstant = "REJECT"
	flagVerdictPrefixConstant   = "FLAG"
)

// ParseVerdict classifies a raw model response by its leading token.
// A trimmed response starting with REJECT classifies as SeverityReject and one
// starting with FLAG classifies as SeverityFlag; any other content, including
// empty or malformed responses, classifies as SeverityPass. The prefix
// vocabulary is the wire contract with the inference backend and must stay
// aligned with the rubric rendered by BuildPrompt.
func ParseVerdict(responseText string) Severity {
	trimmedResponse := strings.TrimSpace(responseText)
	switch {
	case strings.HasPrefix(trimmedResponse, rejectVerdictPrefixConstant):
		return SeverityReject
	case strings.HasPrefix(trimmedResponse, flagVerdictPrefixConstant):
		return SeverityFlag
	default:
		return SeverityPass
	}
}
