package responder

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/weaveworks/common/logging"
)

const (
	// DefaultHost listens on all interfaces.
	DefaultHost = "0.0.0.0"
	// DefaultPort is the port the responder binds when none is given.
	DefaultPort = 3000

	maxPort = 65535
)

// Config for the responder.
type Config struct {
	Host string
	Port int

	// Log receives the startup notice and request logs. Defaults to the
	// logrus standard logger.
	Log logging.Interface
}

// RegisterFlags registers the listen address flags.
func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&c.Host, "host", DefaultHost, "Host (interface address) to listen on")
	f.IntVar(&c.Port, "port", DefaultPort, "TCP port to listen on")
}

// Address is the host:port the listener binds.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks the listen address can be handed to net.Listen.
// Port 0 asks the kernel for an ephemeral port.
func (c Config) Validate() error {
	var errs error
	if c.Port < 0 || c.Port > maxPort {
		errs = multierror.Append(errs, fmt.Errorf("port %d out of range [0, %d]", c.Port, maxPort))
	}
	if strings.Contains(c.Host, ":") && net.ParseIP(stripZone(c.Host)) == nil {
		errs = multierror.Append(errs, fmt.Errorf("host %q is neither a hostname nor an IP address", c.Host))
	}
	if strings.TrimSpace(c.Host) != c.Host {
		errs = multierror.Append(errs, fmt.Errorf("host %q has surrounding whitespace", c.Host))
	}
	return errs
}

// stripZone drops an IPv6 zone ("fe80::1%eth0"), which net.ParseIP rejects
// but net.Listen accepts.
func stripZone(host string) string {
	if i := strings.LastIndex(host, "%"); i >= 0 {
		return host[:i]
	}
	return host
}
