// Package statusd runs a tiny line-oriented TCP status server, announced
// over mDNS/DNS-SD, so a monitoring tool on the local network can see which
// rendering strategy a running device picked without attaching a debugger.
// Modeled on the renderer-agnostic parts of the teacher's KISS-over-TCP
// listener and its DNS-SD service announcement.
package statusd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/brutella/dnssd"
	"github.com/charmbracelet/log"
)

// ServiceType is the DNS-SD service type this package advertises.
const ServiceType = "_ambirender._tcp"

// StatusProvider reports the current human-readable status line for a
// device name. Called once per client request; implementations should be
// cheap and non-blocking (typically a single mutex-guarded struct read).
type StatusProvider func(device string) string

// Server accepts TCP connections, writes a single status line per request
// (the device name followed by a newline selects which device to report),
// and closes the connection.
type Server struct {
	logger   *log.Logger
	status   StatusProvider
	listener net.Listener

	mu       sync.Mutex
	stopped  bool
	respName string
}

// New starts listening on port (0 picks an ephemeral port) but does not yet
// accept connections or announce the service; call Serve for that.
func New(port int, status StatusProvider, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("statusd: listen: %w", err)
	}
	return &Server{logger: logger, status: status, listener: ln}, nil
}

// Addr returns the address Serve's listener is bound to.
func (s *Server) Addr() net.Addr { return s.listener.Addr() }

// Serve announces the service via DNS-SD and accepts connections until ctx
// is canceled or Close is called. It blocks; run it in its own goroutine.
func (s *Server) Serve(ctx context.Context, serviceName string) error {
	tcpAddr, ok := s.listener.Addr().(*net.TCPAddr)
	if !ok {
		return fmt.Errorf("statusd: listener is not TCP")
	}

	cfg := dnssd.Config{Name: serviceName, Type: ServiceType, Port: tcpAddr.Port} //nolint:exhaustruct
	service, err := dnssd.NewService(cfg)
	if err != nil {
		return fmt.Errorf("statusd: create service: %w", err)
	}
	responder, err := dnssd.NewResponder()
	if err != nil {
		return fmt.Errorf("statusd: create responder: %w", err)
	}
	if _, err := responder.Add(service); err != nil {
		return fmt.Errorf("statusd: announce service: %w", err)
	}

	go func() {
		if err := responder.Respond(ctx); err != nil {
			s.logger.Warn("dns-sd responder stopped", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		s.Close()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.mu.Lock()
			stopped := s.stopped
			s.mu.Unlock()
			if stopped {
				return nil
			}
			return fmt.Errorf("statusd: accept: %w", err)
		}
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		return
	}
	device := scanner.Text()

	line := "unknown device"
	if s.status != nil {
		line = s.status(device)
	}
	fmt.Fprintf(conn, "%s\n", line)
}

// Close stops accepting new connections. Safe to call more than once.
func (s *Server) Close() error {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	return s.listener.Close()
}
