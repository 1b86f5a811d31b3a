package jq300

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// Session placeholders before a successful login. A uid above zero means the
// session is authenticated.
const (
	anonymousUID   = -1000
	anonymousToken = "anonymous"
)

var (
	// ErrUnknownQueryType marks a programming error: a request against an
	// endpoint family this client does not know.
	ErrUnknownQueryType = errors.New("unknown query type")

	// ErrAuthFailed is the cloud's "account name or password is wrong" code.
	ErrAuthFailed = errors.New("account name or password is wrong")
	// ErrServerBusy is the cloud's explicit busy code.
	ErrServerBusy = errors.New("the system is busy")
	// ErrGenericFail covers any other non-success response code.
	ErrGenericFail = errors.New("cloud request failed")
	// ErrTransport covers network and decoding failures below the
	// response-code level.
	ErrTransport = errors.New("transport error")
)

// client performs authenticated GET requests against the two endpoint
// families of the JQ-300 cloud and owns the session pair (uid, safeToken)
// attached to every request.
type client struct {
	http       *http.Client
	log        *logrus.Logger
	apiBase    string
	deviceBase string

	mu        sync.Mutex
	uid       int64
	safeToken string
}

func newClient(log *logrus.Logger) *client {
	return &client{
		http:       &http.Client{Timeout: QueryTimeout},
		log:        log,
		apiBase:    BaseURLAPI,
		deviceBase: BaseURLDevice,
		uid:        anonymousUID,
		safeToken:  anonymousToken,
	}
}

func (c *client) isConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uid > 0
}

func (c *client) sessionUID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uid
}

func (c *client) setSession(uid int64, token string) {
	c.mu.Lock()
	c.uid = uid
	c.safeToken = token
	c.mu.Unlock()
}

func (c *client) resetSession() {
	c.setSession(anonymousUID, anonymousToken)
}

// userAgent returns the fixed User-Agent string for an endpoint family.
func userAgent(queryType string) (string, error) {
	switch queryType {
	case QueryTypeAPI:
		return UserAgentAPI, nil
	case QueryTypeDevice:
		return UserAgentDevice, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownQueryType, queryType)
}

// buildURL builds the request URL for function on the given endpoint family.
// The session pair is always attached; the DEVICE family renames safeToken to
// saveToken. Values in extra win on key collision.
func (c *client) buildURL(queryType, function string, extra url.Values) (string, error) {
	var base string
	switch queryType {
	case QueryTypeAPI:
		base = c.apiBase
	case QueryTypeDevice:
		base = c.deviceBase
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownQueryType, queryType)
	}

	c.mu.Lock()
	uid, token := c.uid, c.safeToken
	c.mu.Unlock()

	params := url.Values{}
	params.Set("uid", fmt.Sprintf("%d", uid))
	if queryType == QueryTypeDevice {
		params.Set("saveToken", token)
	} else {
		params.Set("safeToken", token)
	}
	for key, vals := range extra {
		params.Del(key)
		for _, v := range vals {
			params.Add(key, v)
		}
	}

	return base + function + "?" + params.Encode(), nil
}

// query performs a GET against the cloud, unwraps the optional JSONP
// envelope, checks the per-family response code and decodes the body into
// out when out is non-nil.
//
// Transport-level failures are logged and returned as soft errors; they never
// panic past this boundary. A non-zero returnCode on the DEVICE family also
// resets the session, forcing a re-login on next use.
func (c *client) query(ctx context.Context, queryType, function string, extra url.Values, out interface{}) error {
	err := c.doQuery(ctx, queryType, function, extra, out)
	result := "success"
	if err != nil {
		result = "error"
	}
	cloudRequests.WithLabelValues(queryType, result).Inc()
	return err
}

func (c *client) doQuery(ctx context.Context, queryType, function string, extra url.Values, out interface{}) error {
	reqURL, err := c.buildURL(queryType, function, extra)
	if err != nil {
		return err
	}
	ua, err := userAgent(queryType)
	if err != nil {
		return err
	}
	c.log.WithField("url", reqURL).Debug("Requesting cloud endpoint")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).Error("Cloud request failed")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		c.log.WithField("status", resp.StatusCode).Error("Unexpected cloud response status")
		return fmt.Errorf("%w: status %d", ErrGenericFail, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.WithError(err).Error("Cannot read cloud response")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	body = unwrapJSONP(body)

	if err := c.checkEnvelope(queryType, body); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			c.log.WithError(err).Error("Cannot decode cloud response")
			return fmt.Errorf("%w: %v", ErrTransport, err)
		}
	}
	return nil
}

// unwrapJSONP strips the jsoncallback(...) wrapper some DEVICE endpoints
// put around their JSON bodies.
func unwrapJSONP(body []byte) []byte {
	const prefix = "jsoncallback("
	if bytes.HasPrefix(body, []byte(prefix)) && bytes.HasSuffix(bytes.TrimSpace(body), []byte(")")) {
		trimmed := bytes.TrimSpace(body)
		return trimmed[len(prefix) : len(trimmed)-1]
	}
	return body
}

// flexInt decodes an integer that the cloud serializes either as a JSON
// number or as a quoted string ("returnCode":"0").
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*f = flexInt(v)
	return nil
}

func (c *client) checkEnvelope(queryType string, body []byte) error {
	var env struct {
		Code       flexInt `json:"code"`
		ReturnCode flexInt `json:"returnCode"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		c.log.WithError(err).Error("Malformed cloud response envelope")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if queryType == QueryTypeAPI {
		code := int64(env.Code)
		switch code {
		case 2000:
			return nil
		case 102:
			c.log.Error(ErrAuthFailed.Error())
			return ErrAuthFailed
		case 9999:
			c.log.Error(ErrServerBusy.Error())
			return ErrServerBusy
		default:
			c.log.WithField("code", code).Error("Cloud request failed")
			return ErrGenericFail
		}
	}

	// DEVICE family: any non-zero returnCode invalidates the session too.
	if code := int64(env.ReturnCode); code != 0 {
		c.log.WithField("returnCode", code).Error("Cloud request failed")
		c.resetSession()
		return ErrGenericFail
	}
	return nil
}
