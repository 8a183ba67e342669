// Command bundesrecht-mcp serves the legal research tool over MCP
// stdio. Configuration comes from the environment (optionally via a
// .env file); an optional HTTP listener exposes Prometheus metrics.
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rechtsinfo/bundesrecht-mcp/pkg/helpers"
	"github.com/rechtsinfo/bundesrecht-mcp/pkg/mcptool"
	"github.com/rechtsinfo/bundesrecht-mcp/pkg/pipeline"
	"github.com/rechtsinfo/bundesrecht-mcp/pkg/ris"
)

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	log := newLogger()

	client := ris.NewClient(ris.Config{
		BaseURL:   helpers.GetStringFromEnv("RIS_BASE_URL", ris.DefaultBaseURL),
		Timeout:   helpers.GetDurationFromEnv("RIS_TIMEOUT", 30*time.Second),
		UserAgent: helpers.GetStringFromEnv("RIS_USER_AGENT", mcptool.ServerName+"/"+mcptool.Version),
	}, log)

	server := mcptool.NewServer(pipeline.New(client, log), log)

	if addr := helpers.GetStringFromEnv("METRICS_ADDR", ""); addr != "" {
		go serveMetrics(addr, log)
	}

	log.Info().Str("version", mcptool.Version).Msg("serving MCP over stdio")
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal().Err(err).Msg("MCP server terminated")
	}
}

// newLogger writes to stderr; stdout belongs to the MCP transport.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(helpers.GetStringFromEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func serveMetrics(addr string, log zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	log.Info().Str("addr", addr).Msg("serving Prometheus metrics")
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	if err := srv.ListenAndServe(); err != nil {
		log.Error().Err(err).Msg("metrics listener stopped")
	}
}
