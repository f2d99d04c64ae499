package n8n

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"strconv"
)

// buildURL joins the configured API base with path and an optional
// encoded query string.
func (c *Client) buildURL(path string, q url.Values) string {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// setHeaders applies the standard header set and merges per-call
// extras on top. The API key header is populated on every request,
// including webhook calls that add their own Authorization header.
func (c *Client) setHeaders(req *http.Request, extra http.Header) {
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set(apiKeyHeader, c.apiKey)
	for key, values := range extra {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}
}

// basicAuth returns an Authorization header value for the given
// credentials, or the empty string when both are empty so the header
// can be omitted entirely.
func basicAuth(username, password string) string {
	if username == "" && password == "" {
		return ""
	}
	creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return "Basic " + creds
}

// Query helpers. Absent (nil or empty) values emit no key at all
// rather than an empty "key=" pair; booleans and numbers serialize to
// their canonical string forms.

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setBool(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}

func setInt(q url.Values, key string, value *int) {
	if value != nil {
		q.Set(key, strconv.Itoa(*value))
	}
}
