// Package keepalive exposes a tiny HTTP liveness endpoint so free-tier hosts
// don't put the bot to sleep.
package keepalive

import (
	"log"
	"net/http"
	"time"
)

// Start serves a liveness endpoint on the given port. It returns the server
// so the caller can shut it down; serving happens on a background goroutine.
func Start(port string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Livia Bot is alive."))
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Keepalive server stopped: %v", err)
		}
	}()

	return srv
}
