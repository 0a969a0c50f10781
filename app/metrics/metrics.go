package metrics

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net"
	"net/http"
	"time"
)

var heartbeats = promauto.NewCounter(prometheus.CounterOpts{
	Name: "signaller_heartbeats_total",
	Help: "Heartbeat lines written by the watcher.",
})

var signals = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "signaller_signals_total",
	Help: "Signals delivered to the watcher, by name.",
}, []string{"signal"})

func CountHeartbeat() {
	heartbeats.Inc()
}

func CountSignal(name string) {
	signals.WithLabelValues(name).Inc()
}

type Server struct {
	srv *http.Server
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(5*time.Second))
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}

	return nil
}

func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return &Server{srv: srv}, nil
}
