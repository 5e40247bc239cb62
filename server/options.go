package server

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonwraymond/statushub/auth"
	"github.com/jonwraymond/statushub/cluster"
	"github.com/jonwraymond/statushub/metrics"
	"github.com/jonwraymond/statushub/observe"
	"github.com/jonwraymond/statushub/status"
)

// Default endpoint paths.
const (
	DefaultHealthPath = "/health"
	DefaultStatsPath  = "/stats"
)

// Options configures a Server.
type Options struct {
	// HealthPath is the health endpoint path. Default: "/health".
	HealthPath string

	// StatsPath is the stats endpoint path. Default: "/stats".
	StatsPath string

	// AccessToken protects both endpoints when non-empty. Ignored when
	// Guard is set.
	AccessToken string

	// Guard overrides the access guard built from AccessToken.
	Guard *auth.Guard

	// Health produces the local health status. Default: an empty map.
	Health status.Callback

	// Registry serves the stats snapshot in single-process mode. Required.
	Registry metrics.Snapshotter

	// ClusterRegistry, when set together with Coordinator, serves the
	// cross-process aggregated stats snapshot instead of Registry.
	ClusterRegistry metrics.Snapshotter

	// Coordinator enables multi-process health aggregation.
	Coordinator *cluster.Coordinator

	// Logger receives handler diagnostics. Default: no-op.
	Logger observe.Logger

	// Middleware, when set, instruments both endpoints with tracing,
	// metrics, and request logging.
	Middleware *observe.Middleware
}

// Validate reports the first configuration problem. Validation failures are
// startup-time fatal; the server must not start with invalid options.
func (o *Options) Validate() error {
	if err := ValidatePath(o.HealthPath); err != nil {
		return err
	}
	if err := ValidatePath(o.StatsPath); err != nil {
		return err
	}
	if o.HealthPath == o.StatsPath {
		return fmt.Errorf("%w: %q", ErrDuplicatePath, o.HealthPath)
	}
	if o.Registry == nil {
		return ErrNilRegistry
	}
	return nil
}

var pathSegmentPattern = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)

// ValidatePath checks a configured endpoint path: it must start with "/" and
// every segment must be non-empty and drawn from a restricted character set.
func ValidatePath(p string) error {
	if p == "" || p[0] != '/' {
		return fmt.Errorf("%w: %q must start with /", ErrInvalidPath, p)
	}
	for _, seg := range strings.Split(p[1:], "/") {
		if !pathSegmentPattern.MatchString(seg) {
			return fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
	}
	return nil
}

// ValidateAddr checks a host:port listen address.
func ValidateAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddr, err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: port %q", ErrInvalidAddr, port)
	}
	return nil
}
