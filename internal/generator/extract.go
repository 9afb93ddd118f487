package generator

import "strings"

const (
	fence     = "```"
	jsonFence = "```json"
)

// extractPayload pulls the JSON payload out of a model response. Models
// often wrap JSON in markdown code fences even when told not to, so: if the
// text contains a ```json fence, take everything between it and the next
// fence; otherwise if it contains any fence, take the content between the
// first pair; otherwise the whole text is the payload. Responses with
// several embedded fences can still confuse it, in which case the JSON
// parse downstream fails and the caller gets a ParseError.
func extractPayload(text string) string {
	if i := strings.Index(text, jsonFence); i >= 0 {
		rest := text[i+len(jsonFence):]
		if j := strings.Index(rest, fence); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}
	if i := strings.Index(text, fence); i >= 0 {
		rest := text[i+len(fence):]
		if j := strings.Index(rest, fence); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(text)
}
