package selfserve

import (
	"log"
	"net/http"

	"github.com/mozilla-releng/buildapi-client/pkg/config"
)

// TriggerJob requests the self-serve API to schedule a job for the
// repo/builder/revision named in the request.
//
// In dry-run mode it describes the request and returns (nil, nil). When
// submitted, it returns the raw response for any status except 401, which
// becomes an *AuthError. A success response whose body does not parse as
// JSON is logged as a warning and degrades to (nil, nil), since the server
// most likely accepted the job anyway.
func (c *Client) TriggerJob(request config.TriggerRequest) (*config.Response, error) {
	apiURL := c.buildersAPIURL(request.RepoName, request.Builder, request.Revision)
	payload, err := triggerPayload(request.RepoName, request.Revision, request.Files, request.ExtraProperties)
	if err != nil {
		return nil, err
	}

	if request.Mode == config.DryRun {
		log.Printf("Dry-run: we were going to request a job for '%s'", request.Builder)
		c.tracePlannedRequest(http.MethodPost, apiURL, payload)
		return nil, nil
	}

	// A good response carries JSON with request_id as one of the keys.
	response, err := c.postForm(apiURL, payload, request.Auth)
	if err != nil {
		return nil, err
	}

	var content struct {
		RequestID int64 `json:"request_id"`
	}
	if err := response.JSON(&content); err != nil {
		log.Printf("We did not get info from %s (status code: %d)", apiURL, response.StatusCode)
		return nil, nil
	}

	if c.enableTracing {
		log.Printf("Status of the request: %s", c.JobsAPIURL(content.RequestID))
	}

	return response, nil
}
