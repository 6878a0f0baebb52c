package selfserve

import (
	"fmt"
	"log"
	"net/http"

	"github.com/mozilla-releng/buildapi-client/pkg/config"
)

// RetriggerRequest re-runs a previously completed request.
//
// Self-serve documentation:
// POST /self-serve/{branch}/request rebuilds request_id, which must be
// passed in as a POST parameter. count and priority are accepted as
// optional parameters; count defaults to 1 and represents the number of
// times the request will be rebuilt.
func (c *Client) RetriggerRequest(request config.RetriggerRequest) (*config.Response, error) {
	apiURL := fmt.Sprintf("%s/%s/request", c.selfServe, request.RepoName)
	payload := retriggerPayload("request_id", request.RequestID, request.CountOrDefault(), request.Priority)

	if request.Mode == config.DryRun {
		c.tracePlannedRequest(http.MethodPost, apiURL, payload)
		return nil, nil
	}

	log.Printf("We're going to re-trigger an existing completed job with request_id: %s %d time(s).",
		request.RequestID, request.CountOrDefault())

	return c.postForm(apiURL, payload, request.Auth)
}

// RetriggerBuild re-runs a previously completed build. It behaves exactly
// like RetriggerRequest except the target is a build_id and the path is
// /self-serve/{branch}/build.
func (c *Client) RetriggerBuild(request config.RetriggerBuildRequest) (*config.Response, error) {
	apiURL := fmt.Sprintf("%s/%s/build", c.selfServe, request.RepoName)
	payload := retriggerPayload("build_id", request.BuildID, request.CountOrDefault(), request.Priority)

	if request.Mode == config.DryRun {
		c.tracePlannedRequest(http.MethodPost, apiURL, payload)
		return nil, nil
	}

	log.Printf("We're going to re-trigger an existing completed build with build_id: %s %d time(s).",
		request.BuildID, request.CountOrDefault())

	return c.postForm(apiURL, payload, request.Auth)
}
