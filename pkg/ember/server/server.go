package server

import (
	"context"
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/yourusername/ember/pkg/ember/metrics"
	"github.com/yourusername/ember/pkg/ember/routing"
	"github.com/yourusername/ember/pkg/ember/socket"
)

// Server owns the route tables and the accept loop. Grounded on
// pkg/shockwave/server/server_shockwave.go's ShockwaveServer, adapted
// from its zero-allocation shared-handler design (http11.Handler
// func) to dispatching through a routing.Router, since ember routes by
// path template rather than wrapping a single user Handler.
type Server struct {
	config   Config
	router   *routing.Router
	listener net.Listener

	running atomic.Bool
	wg      sync.WaitGroup

	sem     *semaphore.Weighted
	metrics metrics.Recorder
}

// New returns a Server that will dispatch to router once started.
// Request/connection counters are recorded through metrics.Recorder,
// which is a no-op unless the binary is built with the "prometheus"
// tag (see pkg/ember/metrics).
func New(config Config, router *routing.Router) *Server {
	s := &Server{config: config, router: router, metrics: metrics.New()}
	if config.MaxConnections > 0 {
		s.sem = semaphore.NewWeighted(config.MaxConnections)
	}
	return s
}

// ListenAndServe binds config.Host:Port and runs the accept loop until
// Stop is called. Grounded on HttpServer::run's setup (SO_REUSEADDR,
// non-blocking listen, bind, listen(SOMAXCONN)); Go's net package
// already gives every listener SO_REUSEADDR-equivalent rebinding
// behavior and a non-blocking accept, so there is no raw-socket setup
// step to port — net.Listen covers it.
func (s *Server) ListenAndServe() error {
	addr := s.config.Host
	if addr == "0.0.0.0" {
		addr = ""
	}
	ln, err := net.Listen("tcp", net.JoinHostPort(addr, strconv.Itoa(s.config.Port)))
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve runs the accept loop against an already-bound listener.
//
// The reference's accept loop retries on EAGAIN/EWOULDBLOCK/EINTR with
// a 1ms sleep because its listening socket is non-blocking; Go's
// net.Listener.Accept blocks until a connection arrives or the
// listener is closed, so that retry loop has no Go equivalent to port
// — Stop (closing the listener) is what makes Accept return an error
// and end the loop, matching the original's running_ + closeSocket
// shutdown path.
func (s *Server) Serve(ln net.Listener) error {
	s.listener = ln
	s.running.Store(true)
	defer s.running.Store(false)

	for s.running.Load() {
		conn, err := ln.Accept()
		if err != nil {
			if !s.running.Load() {
				return nil
			}
			s.config.Logger.Printf("ember: accept error: %v", err)
			continue
		}

		if s.sem != nil {
			if err := s.sem.Acquire(context.Background(), 1); err != nil {
				conn.Close()
				continue
			}
		}

		if err := socket.Tune(conn, s.config.SocketTuning); err != nil {
			s.config.Logger.Printf("ember: socket tuning: %v", err)
		}

		s.metrics.ConnectionOpened()
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.metrics.ConnectionClosed()
			if s.sem != nil {
				defer s.sem.Release(1)
			}
			s.handleConnection(conn)
		}()
	}
	return nil
}

// Stop clears running and closes the listener; in-flight connections
// finish their current request and exit naturally, matching
// HttpServer::stop.
func (s *Server) Stop() {
	s.running.Store(false)
	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
}
