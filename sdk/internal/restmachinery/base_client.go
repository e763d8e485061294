package restmachinery

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
)

// BaseClient provides the plumbing shared by all specialized API clients.
type BaseClient struct {
	APIAddress string
	HTTPClient *http.Client
}

// NewBaseClient returns plumbing shared by all specialized API clients.
func NewBaseClient(apiAddress string, allowInsecure bool) *BaseClient {
	return &BaseClient{
		APIAddress: apiAddress,
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: allowInsecure,
				},
			},
		},
	}
}

// TokenAuthHeaders returns the Authorization header this API expects: the
// raw session token, with no scheme prefix. An empty token yields an empty
// header value; the server decides whether that is acceptable.
func (b *BaseClient) TokenAuthHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": token,
	}
}

// ExecuteRequest submits the request and, if req.RespObj is non-nil,
// unmarshals the response body into it. The body is decoded without regard
// to HTTP status; this API communicates outcomes in the body itself.
func (b *BaseClient) ExecuteRequest(req OutboundRequest) error {
	resp, err := b.SubmitRequest(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if req.RespObj != nil {
		respBodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, req.RespObj); err != nil {
			return errors.Wrap(err, "error unmarshaling response body")
		}
	}
	return nil
}

// SubmitRequest submits the request and returns the raw response. The
// caller is responsible for closing the response body.
func (b *BaseClient) SubmitRequest(
	req OutboundRequest,
) (*http.Response, error) {
	var reqBodyReader io.Reader
	if req.ReqBodyObj != nil {
		switch rb := req.ReqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		default:
			reqBodyBytes, err := json.Marshal(req.ReqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	r, err := http.NewRequest(
		req.Method,
		fmt.Sprintf("%s/%s", b.APIAddress, req.Path),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			req.Method,
			req.Path,
		)
	}
	if len(req.QueryParams) > 0 {
		q := r.URL.Query()
		for k, v := range req.QueryParams {
			q.Set(k, v)
		}
		r.URL.RawQuery = q.Encode()
	}
	if reqBodyReader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.AuthHeaders {
		r.Header.Add(k, v)
	}
	for k, v := range req.Headers {
		r.Header.Add(k, v)
	}

	resp, err := b.HTTPClient.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking API")
	}
	return resp, nil
}
