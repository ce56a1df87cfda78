package output

import "github.com/goccy/go-json"

// JSONFormatter renders reports as a JSON array
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (JSONFormatter) Name() string { return "json" }

func (jf JSONFormatter) Format(reports []*Report) ([]byte, error) {
	if reports == nil {
		reports = []*Report{}
	}
	if jf.Pretty {
		return json.MarshalIndent(reports, "", "  ")
	}
	return json.Marshal(reports)
}

// MarshalJSON renders any value using the same encoder as the JSON formatter
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
