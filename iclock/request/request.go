package request

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Endpoints the devices push to.
const (
	PathCdata      = "/iclock/cdata"
	PathGetRequest = "/iclock/getrequest"
)

// UnknownSerial is used when a request carries no serial number.
const UnknownSerial = "UNKNOWN"

const defaultPushVersion = "0"

// Params holds the decoded query parameters. Blank values are dropped.
type Params map[string][]string

// Lookup returns the value of key when it was sent exactly once.
func (p Params) Lookup(key string) (string, bool) {
	values := p[key]
	if len(values) != 1 {
		return "", false
	}
	return values[0], true
}

func (p Params) Get(key, fallback string) string {
	if v, ok := p.Lookup(key); ok {
		return v
	}
	return fallback
}

// Values returns every value sent for key.
func (p Params) Values(key string) []string {
	return p[key]
}

func (p Params) Has(key string) bool {
	return len(p[key]) > 0
}

// Request is a received HTTP request reduced to what decoding needs.
type Request struct {
	Method string
	URL    string
	Path   string
	Params Params
	Header http.Header
	Body   []byte
}

// Parse builds a Request from its parts. A malformed URL or query string
// yields whatever parameters could be recovered.
func Parse(method, rawURL string, header http.Header, body []byte) *Request {
	r := &Request{
		Method: strings.ToUpper(method),
		URL:    rawURL,
		Params: Params{},
		Header: header,
		Body:   body,
	}
	if r.Header == nil {
		r.Header = http.Header{}
	}

	rawQuery := ""
	if u, err := url.Parse(rawURL); err == nil {
		r.Path = u.Path
		rawQuery = u.RawQuery
	} else {
		var path string
		path, rawQuery, _ = strings.Cut(rawURL, "?")
		r.Path = path
	}

	values, _ := url.ParseQuery(rawQuery)
	for key, vs := range values {
		for _, v := range vs {
			if v != "" {
				r.Params[key] = append(r.Params[key], v)
			}
		}
	}
	return r
}

// FromHTTP reads the body of an incoming net/http request.
func FromHTTP(req *http.Request) (*Request, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
	}
	return Parse(req.Method, req.URL.String(), req.Header.Clone(), body), nil
}

// Serial resolves the device serial number from the SN parameter, then from
// the first "SN=" in the raw URL, falling back to UnknownSerial.
func (r *Request) Serial() string {
	if sn, ok := r.Params.Lookup("SN"); ok {
		return sn
	}
	_, rest, found := strings.Cut(r.URL, "SN=")
	if !found {
		return UnknownSerial
	}
	sn, _, _ := strings.Cut(rest, "&")
	if sn == "" {
		return UnknownSerial
	}
	return sn
}

// PushVersion is the pushver parameter, "0" when absent.
func (r *Request) PushVersion() string {
	return r.Params.Get("pushver", defaultPushVersion)
}
