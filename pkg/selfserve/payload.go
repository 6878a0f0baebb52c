package selfserve

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// triggerPayload builds the form body for a trigger call. The form values
// 'properties' and 'files' are themselves JSON-encoded strings, which is
// what the self-serve API expects.
func triggerPayload(repoName, revision string, files []string, extraProperties map[string]interface{}) (url.Values, error) {
	// Treeherder needs branch and revision to display running jobs.
	// Additional properties may be specified by the caller.
	props := map[string]interface{}{
		"branch":   repoName,
		"revision": revision,
	}
	for key, value := range extraProperties {
		props[key] = value
	}

	// encoding/json marshals map keys in sorted order, which keeps the
	// serialization stable.
	propsJSON, err := json.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("could not encode properties for '%s': %s", repoName, err.Error())
	}

	payload := url.Values{}
	payload.Set("properties", string(propsJSON))

	// files is all-or-nothing: a single empty entry suppresses the field
	// completely rather than being filtered out.
	if includeFiles(files) {
		filesJSON, err := json.Marshal(files)
		if err != nil {
			return nil, fmt.Errorf("could not encode files for '%s': %s", repoName, err.Error())
		}
		payload.Set("files", string(filesJSON))
	}

	return payload, nil
}

func includeFiles(files []string) bool {
	if len(files) == 0 {
		return false
	}
	for _, file := range files {
		if file == "" {
			return false
		}
	}
	return true
}

// retriggerPayload builds the form body for both retrigger variants. count
// and priority ride along only when either differs from the server default;
// the server treats absence as default.
func retriggerPayload(idField, id string, count, priority int) url.Values {
	payload := url.Values{}
	payload.Set(idField, id)

	if count != 1 || priority != 0 {
		payload.Set("count", strconv.Itoa(count))
		payload.Set("priority", strconv.Itoa(priority))
	}

	return payload
}
