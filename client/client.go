// file: client/client.go

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go-bank-client/common"
	"io"
	"net/http"
	"strings"
)

// TokenProvider supplies the current session credential for outgoing
// authenticated requests. Implemented by the credential service.
type TokenProvider interface {
	// Token returns the current credential and whether one is present.
	Token() (string, bool)
}

// attachCredential decorates req with the bearer authorization header.
// A request with no credential present must fail fast rather than be sent.
func attachCredential(req *http.Request, tokens TokenProvider) error {
	token, ok := tokens.Token()
	if !ok {
		return common.NewAppError(common.KindUnauthenticated, "Not logged in", nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// encodeJSON marshals payload into a request body reader.
func encodeJSON(payload interface{}) (io.Reader, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, common.Remotef(err, "Could not encode request payload")
	}
	return bytes.NewReader(data), nil
}

// readBody drains the response body, returning it as a trimmed string.
// The collaborators use the body for both token strings and error payloads.
func readBody(resp *http.Response) string {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// classifyFailure converts a non-2xx collaborator response into a typed
// error. The two authentication-rejection status classes are treated
// equivalently.
func classifyFailure(resp *http.Response, fallback string) error {
	body := readBody(resp)
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return common.NewAppError(common.KindAuthExpired,
			"Your session has expired or the token is not valid",
			fmt.Errorf("collaborator returned status %d", resp.StatusCode))
	}
	message := body
	if message == "" {
		message = fallback
	}
	return common.NewAppError(common.KindRemoteFailure, message,
		fmt.Errorf("collaborator returned status %d", resp.StatusCode))
}
