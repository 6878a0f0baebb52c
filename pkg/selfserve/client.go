// Package selfserve is a client for Release Engineering's buildapi
// self-serve service. It can trigger arbitrary jobs, re-trigger completed
// requests or builds, cancel pending requests, and query scheduled and
// pending jobs.
//
// The API documentation lives behind LDAP:
// https://secure.pub.build.mozilla.org/buildapi/self-serve
package selfserve

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mozilla-releng/buildapi-client/pkg/config"
	"github.com/mozilla-releng/buildapi-client/pkg/prettyjson"
)

// HostRoot is the root of the buildapi service.
const HostRoot = "https://secure.pub.build.mozilla.org/buildapi"

const selfServePath = "/self-serve"

// Client issues one HTTP request per operation against the self-serve API.
// It holds no state across calls; concurrent use is safe as long as the
// underlying http.Client is.
type Client struct {
	hostRoot      string
	selfServe     string
	httpClient    *http.Client
	enableTracing bool
}

func NewClient() *Client {
	tr := &http.Transport{
		MaxIdleConns:    10,
		IdleConnTimeout: 30 * time.Second,
	}

	return NewClientUsingHTTPClient(HostRoot, &http.Client{Transport: tr}, false)
}

// NewClientUsingHTTPClient builds a client around an injected http.Client.
// An empty hostRoot selects the production buildapi root.
func NewClientUsingHTTPClient(hostRoot string, httpClient *http.Client, enableTracing bool) *Client {
	if hostRoot == "" {
		hostRoot = HostRoot
	}
	hostRoot = strings.TrimSuffix(hostRoot, "/")

	return &Client{
		hostRoot:      hostRoot,
		selfServe:     hostRoot + selfServePath,
		httpClient:    httpClient,
		enableTracing: enableTracing,
	}
}

func (c *Client) get(apiURL string, auth config.Credentials) (*config.Response, error) {
	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req, auth)
}

func (c *Client) postForm(apiURL string, payload url.Values, auth config.Credentials) (*config.Response, error) {
	req, err := http.NewRequest(http.MethodPost, apiURL, strings.NewReader(payload.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req, auth)
}

func (c *Client) del(apiURL string, auth config.Credentials) (*config.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, apiURL, nil)
	if err != nil {
		return nil, err
	}

	return c.send(req, auth)
}

// send performs the round trip and classifies the status. 401 is the one
// status turned into a typed error; every other status is handed back for
// the caller to inspect. Transport failures propagate untouched.
func (c *Client) send(req *http.Request, auth config.Credentials) (*config.Response, error) {
	req.SetBasicAuth(auth.Username, auth.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &AuthError{}
	}

	return &config.Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
	}, nil
}

// tracePlannedRequest describes the request a dry run would have made.
func (c *Client) tracePlannedRequest(method, apiURL string, payload url.Values) {
	if payload == nil {
		log.Printf("We would make a %s request to %s.", method, apiURL)
		return
	}

	rendered, err := prettyjson.Format(payload)
	if err != nil {
		rendered = payload.Encode()
	}
	log.Printf("We would make a %s request to %s with the payload: %s", method, apiURL, rendered)
}
