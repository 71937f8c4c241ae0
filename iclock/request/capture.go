package request

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnknownEndpoint is returned by Decode for paths devices do not push to.
var ErrUnknownEndpoint = errors.New("unknown iclock endpoint")

// ReadCapture parses a raw HTTP/1.x request as written by
// httputil.DumpRequest.
func ReadCapture(data []byte) (*Request, error) {
	req, err := http.ReadRequest(bufio.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse captured request: %w", err)
	}
	defer req.Body.Close()
	return FromHTTP(req)
}

// Decode picks the decoder for the request path. The result is a
// GetRequest or a CdataRequest.
func Decode(r *Request) (any, error) {
	switch {
	case strings.HasSuffix(r.Path, PathGetRequest):
		return DecodeGetRequest(r), nil
	case strings.HasSuffix(r.Path, PathCdata):
		return DecodeCdataRequest(r)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, r.Path)
}
