package saferoute

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport logs full request/response dumps at debug level.
//
// Enable with SAFEROUTE_DEBUG=true or DEBUG=true, or WithDebugLogging(true).
// Bodies are logged verbatim, credentials included.
type debugTransport struct {
	base http.RoundTripper
	// log points at the client's logger so WithLogger may come later in the option list.
	log *zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	log := *dt.log

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether SAFEROUTE_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("SAFEROUTE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
