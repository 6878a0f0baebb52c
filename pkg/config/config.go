package config

import "encoding/json"

// RunMode gates every mutating operation. The zero value is DryRun, so a
// request must opt in with Submit before anything is sent over the wire.
type RunMode int

const (
	DryRun RunMode = iota
	Submit
)

// Credentials is the basic-auth pair handed through to the self-serve API.
// The client never inspects or stores it.
type Credentials struct {
	Username string
	Password string
}

type TriggerRequest struct {
	RepoName        string
	Builder         string
	Revision        string
	Files           []string
	ExtraProperties map[string]interface{}
	Auth            Credentials
	Mode            RunMode
}

type RetriggerRequest struct {
	RepoName  string
	RequestID string
	Count     int
	Priority  int
	Auth      Credentials
	Mode      RunMode
}

type RetriggerBuildRequest struct {
	RepoName string
	BuildID  string
	Count    int
	Priority int
	Auth     Credentials
	Mode     RunMode
}

type CancelRequest struct {
	RepoName  string
	RequestID string
	Auth      Credentials
	Mode      RunMode
}

const defaultRetriggerCount = 1

// CountOrDefault returns Count if set, otherwise the server default of 1.
func (r RetriggerRequest) CountOrDefault() int {
	if r.Count > 0 {
		return r.Count
	}
	return defaultRetriggerCount
}

func (r RetriggerBuildRequest) CountOrDefault() int {
	if r.Count > 0 {
		return r.Count
	}
	return defaultRetriggerCount
}

// Response is the raw outcome of a non-dry-run call. The body has already
// been read in full, so callers owe no cleanup.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// Repositories is the parsed body of the branches query, keyed by repo name.
type Repositories map[string]interface{}

// ScheduledJob is a single entry from the jobs-schedule query. The server's
// job shape is passed through unparsed.
type ScheduledJob map[string]interface{}

// PendingJobs maps repo name to revision to the jobs queued for it.
type PendingJobs map[string]map[string][]interface{}
