package ai

import "strings"

// ExtractJSON strips markdown code fences and surrounding noise from a model
// response so the remainder can be handed to json.Unmarshal. Models are told
// to return bare JSON but routinely wrap it in ```json fences anyway.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	raw = strings.TrimSpace(raw)

	// Some models prepend a short sentence before the object despite the
	// contract. Recover by slicing from the first brace to the last.
	if !strings.HasPrefix(raw, "{") {
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start != -1 && end > start {
			raw = raw[start : end+1]
		}
	}
	return strings.TrimSpace(raw)
}
