package selfserve

import "fmt"

func (c *Client) buildersAPIURL(repoName, builder, revision string) string {
	return fmt.Sprintf("%s/%s/builders/%s/%s", c.selfServe, repoName, builder, revision)
}

// JobsAPIURL is the URL of a self-serve job request (scheduling, canceling, etc).
func (c *Client) JobsAPIURL(requestID int64) string {
	return fmt.Sprintf("%s/jobs/%d", c.selfServe, requestID)
}

// QueryJobsURL returns the human-facing dashboard URL for the jobs of a
// revision. Building it needs no network call.
func (c *Client) QueryJobsURL(repoName, revision string) string {
	return fmt.Sprintf("%s/%s/rev/%s", c.selfServe, repoName, revision)
}
