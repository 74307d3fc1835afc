package quiz

import "strings"

// Normalize converts a question's raw UI value into its canonical answer
// envelope, or nil when there is no usable answer. It never fails: malformed
// values degrade to the null envelope so that "no answer" is submitted as
// absence rather than as an empty or false-by-default value.
//
// Normalize is idempotent: feeding an already-canonical envelope back in
// returns an equal envelope.
func Normalize(t QuestionType, raw any) Envelope {
	switch t {
	case TypeSingle:
		if choice := normalizeChoice(raw); choice != "" {
			return ChoiceAnswer{Choice: choice}
		}
		return nil

	case TypeJudge:
		if v := normalizeJudge(raw); v != nil {
			return JudgeAnswer{Value: *v}
		}
		return nil

	case TypeShort, TypeFillBlank, TypeCalculation, TypeWritten:
		if text := normalizeText(raw, "text"); text != "" {
			return TextAnswer{Text: text}
		}
		return nil
	}

	// Unrecognized type: stay permissive. Strings still get the free-text
	// treatment; anything else is forwarded untouched so the service sees
	// exactly what the UI stored.
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if text := strings.TrimSpace(v); text != "" {
			return TextAnswer{Text: text}
		}
		return nil
	case TextAnswer:
		if text := strings.TrimSpace(v.Text); text != "" {
			return TextAnswer{Text: text}
		}
		return nil
	case RawAnswer:
		return v
	default:
		return RawAnswer{Value: raw}
	}
}

// normalizeChoice extracts an option letter from a raw value. Accepts a bare
// letter string, a ChoiceAnswer envelope, or a decoded {"choice": ...}
// object; everything else yields "".
func normalizeChoice(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.ToUpper(strings.TrimSpace(v))
	case ChoiceAnswer:
		return strings.ToUpper(strings.TrimSpace(v.Choice))
	case map[string]any:
		if c, ok := v["choice"].(string); ok {
			return strings.ToUpper(strings.TrimSpace(c))
		}
	}
	return ""
}

// normalizeJudge extracts a boolean verdict from a raw value. A value that
// is present but not a boolean yields nil: an unreadable answer is unknown,
// not "incorrect".
func normalizeJudge(raw any) *bool {
	switch v := raw.(type) {
	case bool:
		return &v
	case JudgeAnswer:
		return &v.Value
	case map[string]any:
		if b, ok := v["value"].(bool); ok {
			return &b
		}
	}
	return nil
}

// normalizeText extracts trimmed text from a raw value, trying the given
// object keys in order when the value is a decoded JSON object.
func normalizeText(raw any, keys ...string) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case TextAnswer:
		return strings.TrimSpace(v.Text)
	case map[string]any:
		for _, key := range keys {
			if s, ok := v[key].(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}
