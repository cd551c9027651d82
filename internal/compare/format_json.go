package compare

import (
	"encoding/json"
)

// JSONFormatter renders a ComparisonSet as one JSON document: the base
// scenario result, each alternative with its MRR diff and lift from base,
// the selected insight, the prioritized plan, and the recommendations.
type JSONFormatter struct {
	Pretty bool // two-space indentation when set
}

// Format marshals the comparison set.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	marshal := json.Marshal
	if jf.Pretty {
		marshal = func(v interface{}) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	data, err := marshal(compSet)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
