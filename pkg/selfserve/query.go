package selfserve

import (
	"fmt"
	"log"
	"net/http"

	"github.com/mozilla-releng/buildapi-client/pkg/config"
)

// QueryRepositories returns the repositories known to the self-serve API,
// keyed by repo name.
func (c *Client) QueryRepositories(auth config.Credentials) (config.Repositories, error) {
	apiURL := fmt.Sprintf("%s/branches?format=json", c.selfServe)
	if c.enableTracing {
		log.Printf("About to fetch %s", apiURL)
	}

	response, err := c.get(apiURL, auth)
	if err != nil {
		return nil, err
	}

	var repositories config.Repositories
	if err := response.JSON(&repositories); err != nil {
		return nil, fmt.Errorf("could not parse repositories from %s: %s", apiURL, err.Error())
	}

	return repositories, nil
}

// QueryJobsSchedule returns every job scheduled for a revision. A non-200
// status is not an error: the revision may simply have nothing scheduled
// yet, so the result degrades to an empty list. Callers who need to tell
// "no jobs" apart from a server hiccup cannot do so here.
func (c *Client) QueryJobsSchedule(repoName, revision string, auth config.Credentials) ([]config.ScheduledJob, error) {
	apiURL := fmt.Sprintf("%s/%s/rev/%s?format=json", c.selfServe, repoName, revision)

	response, err := c.get(apiURL, auth)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		return []config.ScheduledJob{}, nil
	}

	var jobs []config.ScheduledJob
	if err := response.JSON(&jobs); err != nil {
		return nil, fmt.Errorf("could not parse scheduled jobs from %s: %s", apiURL, err.Error())
	}

	return jobs, nil
}

// QueryPendingJobs returns jobs queued but not yet started, keyed by repo
// and revision. An empty repoName includes every repo the server reports; a
// repo the server does not know yields an empty map rather than an error.
func (c *Client) QueryPendingJobs(repoName string, auth config.Credentials) (config.PendingJobs, error) {
	response, err := c.fetchPending(auth)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		return config.PendingJobs{}, nil
	}

	var content struct {
		Pending config.PendingJobs `json:"pending"`
	}
	if err := response.JSON(&content); err != nil {
		return nil, fmt.Errorf("could not parse pending jobs: %s", err.Error())
	}

	pending := config.PendingJobs{}
	for repo, revisions := range content.Pending {
		if repoName != "" && repo != repoName {
			continue
		}
		pending[repo] = revisions
	}

	return pending, nil
}

// QueryPendingJobsRaw returns the pending-jobs body exactly as the server
// sent it, with no reduction applied.
func (c *Client) QueryPendingJobsRaw(auth config.Credentials) ([]byte, error) {
	response, err := c.fetchPending(auth)
	if err != nil {
		return nil, err
	}

	return response.Body, nil
}

// The pending endpoint hangs off the buildapi root, not the self-serve root.
func (c *Client) fetchPending(auth config.Credentials) (*config.Response, error) {
	apiURL := fmt.Sprintf("%s/pending?format=json", c.hostRoot)
	if c.enableTracing {
		log.Printf("About to fetch %s", apiURL)
	}

	return c.get(apiURL, auth)
}
