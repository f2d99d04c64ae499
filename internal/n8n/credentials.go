package n8n

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListCredentials returns the credential collection envelope. Secret
// values are never included; n8n only exposes credential metadata.
func (c *Client) ListCredentials(ctx context.Context, opts *ListOptions) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.doQuery(ctx, http.MethodGet, "/credentials", opts.query(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetCredentialSchema returns the JSON schema describing the fields a
// credential of the given type requires.
func (c *Client) GetCredentialSchema(ctx context.Context, credentialTypeName string) (json.RawMessage, error) {
	var result json.RawMessage
	path := fmt.Sprintf("/credentials/schema/%s", url.PathEscape(credentialTypeName))
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
