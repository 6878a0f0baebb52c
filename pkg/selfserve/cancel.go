package selfserve

import (
	"fmt"
	"log"
	"net/http"

	"github.com/mozilla-releng/buildapi-client/pkg/config"
)

// CancelRequest cancels a pending request.
//
// Self-serve documentation:
// DELETE /self-serve/{branch}/request/{request_id} cancels the given request.
func (c *Client) CancelRequest(request config.CancelRequest) (*config.Response, error) {
	apiURL := fmt.Sprintf("%s/%s/request/%s", c.selfServe, request.RepoName, request.RequestID)

	if request.Mode == config.DryRun {
		c.tracePlannedRequest(http.MethodDelete, apiURL, nil)
		return nil, nil
	}

	log.Printf("We're going to cancel the job at %s", apiURL)

	return c.del(apiURL, request.Auth)
}
