package prettyjson

import (
	"encoding/json"
	"fmt"

	"github.com/TylerBrock/colorjson"
)

// Format renders any JSON-encodable object for human eyes. Trace output uses
// it to show payloads the way the self-serve API will see them.
func Format(object interface{}) (string, error) {
	raw, err := json.Marshal(object)
	if err != nil {
		return "", fmt.Errorf("could not encode payload: %s", err.Error())
	}

	var data map[string]interface{}
	err = json.Unmarshal(raw, &data)
	if err != nil {
		return "", fmt.Errorf("could not parse payload: %s", err.Error())
	}

	formatter := colorjson.NewFormatter()
	formatter.Indent = 2
	prettified, err := formatter.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("could not prettify payload: %s", err.Error())
	}

	return string(prettified), nil
}
