package output

// JSONFormatter provides JSON output helpers.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// PrintError outputs an error as a JSON object.
func (j *JSONFormatter) PrintError(status, message, suggestion string) error {
	payload := map[string]string{
		"status":  status,
		"message": message,
	}
	if suggestion != "" {
		payload["suggestion"] = suggestion
	}
	return j.JSON(payload)
}
