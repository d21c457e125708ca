package logger

// MaskCode hides most of an access code for log output.
// Access codes are credentials and must never be logged whole.
// Example: Q7K2MN -> Q7****
func MaskCode(code string) string {
	if code == "" {
		return ""
	}

	if len(code) <= 2 {
		return "******"
	}

	masked := []byte(code[:2])
	for i := 2; i < len(code); i++ {
		masked = append(masked, '*')
	}
	return string(masked)
}
