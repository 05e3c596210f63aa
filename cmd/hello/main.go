package main

import (
	"flag"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/weaveworks/common/logging"

	"github.com/weaveworks/hello/responder"
)

func main() {
	var (
		logLevel      = flag.String("log.level", "info", "Logging level to use: debug | info | warn | error")
		metricsListen = flag.String("metrics.listen", "", "Address to serve /metrics on; empty disables it")
		cfg           responder.Config
	)
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := logging.Setup(*logLevel); err != nil {
		log.Fatalf("Error configuring logging: %v", err)
		return
	}
	cfg.Log = logging.Logrus(log.StandardLogger())

	if *metricsListen != "" {
		go func() {
			log.Infof("Serving metrics on %s", *metricsListen)
			mux := http.NewServeMux()
			mux.Handle("/metrics", prometheus.Handler())
			log.Fatal(http.ListenAndServe(*metricsListen, mux))
		}()
	}

	r, err := responder.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start responder: %v", err)
	}
	if err := r.Run(); err != nil {
		log.Fatalf("Responder stopped: %v", err)
	}
}
