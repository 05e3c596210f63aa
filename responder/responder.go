package responder

import (
	"net"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/weaveworks/common/logging"
)

// Responder owns a bound listener and serves Handler on it.
type Responder struct {
	cfg      Config
	log      logging.Interface
	listener net.Listener
	server   *http.Server
}

// New binds the configured address. It returns a *BindError if the address
// is invalid or cannot be acquired; nothing is retried.
func New(cfg Config) (*Responder, error) {
	if cfg.Log == nil {
		cfg.Log = logging.Logrus(logrus.StandardLogger())
	}
	if err := cfg.Validate(); err != nil {
		return nil, &BindError{Addr: cfg.Address(), Err: err}
	}

	listener, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return nil, &BindError{Addr: cfg.Address(), Err: err}
	}

	r := &Responder{
		cfg:      cfg,
		log:      cfg.Log,
		listener: listener,
		server:   &http.Server{Handler: Handler(cfg.Log)},
	}
	r.log.Infof("Running on http://%s", r.advertised())
	return r, nil
}

// advertised is the configured host with the port actually bound, which only
// differs from the configured port when that was 0.
func (r *Responder) advertised() string {
	port := r.cfg.Port
	if tcp, ok := r.listener.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	return net.JoinHostPort(r.cfg.Host, strconv.Itoa(port))
}

// Addr is the address the listener is bound to.
func (r *Responder) Addr() net.Addr {
	return r.listener.Addr()
}

// Run serves connections until Shutdown is called.
func (r *Responder) Run() error {
	err := r.server.Serve(r.listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return errors.Wrapf(err, "serving on %s", r.advertised())
}

// Shutdown closes the listener and any open connections. In-flight requests
// are not drained.
func (r *Responder) Shutdown() {
	if err := r.server.Close(); err != nil {
		r.log.Warnf("Error closing server: %v", err)
	}
	// Serve may not have taken ownership of the listener yet.
	r.listener.Close()
}
