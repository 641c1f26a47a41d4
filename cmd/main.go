package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/kargotakip/freightline/internal/agent"
	"github.com/kargotakip/freightline/internal/config"
	"github.com/kargotakip/freightline/internal/freight"
	"github.com/kargotakip/freightline/internal/ingest"
	"github.com/kargotakip/freightline/internal/jobstore"
	"github.com/kargotakip/freightline/internal/llmhint"
	"github.com/kargotakip/freightline/internal/notify"
	"github.com/kargotakip/freightline/internal/store"
	"github.com/kargotakip/freightline/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	var (
		httpAddr    = flag.String("http-addr", ":8080", "HTTP server address")
		otelAddr    = flag.String("otel-addr", "", "OTLP HTTP collector address (overrides OTEL_EXPORTER_OTLP_ENDPOINT)")
		verbose     = flag.Bool("v", false, "verbose mode - print stage banners alongside structured logs")
		showVersion = flag.Bool("version", false, "show version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("freightline v1.0.0")
		os.Exit(0)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.ValidateForIngestion(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := telemetry.NewProvider(ctx, "freightline", *otelAddr)
	if err != nil {
		log.Fatalf("failed to start telemetry provider: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Printf("error shutting down telemetry provider: %v", err)
		}
	}()
	ingestTracer := telemetry.NewStageTracer(provider.Tracer(), "ingest", *verbose)
	agentTracer := telemetry.NewStageTracer(provider.Tracer(), "agent", *verbose)

	jobs, err := jobstore.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open job store: %v", err)
	}

	convos, err := store.New(os.Getenv("REDIS_ADDR"), cfg.ConversationsTable)
	if err != nil {
		log.Fatalf("failed to open conversation store: %v", err)
	}

	archive, err := ingest.NewS3Archive(cfg.ArchiveBucket)
	if err != nil {
		log.Fatalf("failed to create archive client: %v", err)
	}
	queue, err := ingest.NewSQSQueue(cfg.MessageQueueURL)
	if err != nil {
		log.Fatalf("failed to create queue client: %v", err)
	}
	deadLetters, err := ingest.NewS3DeadLetterSink(cfg.ArchiveBucket)
	if err != nil {
		log.Fatalf("failed to create dead-letter sink: %v", err)
	}

	parser := freight.NewParser(logger.With().Str("component", "freight").Logger())
	notifier := notify.New(cfg.OutboundDeliveryURL)

	var hinter agent.Hinter
	if cfg.LLMEndpoint != "" {
		llmClient, err := llmhint.New(cfg.LLMEndpoint, cfg.LLMTimeout, logger.With().Str("component", "llmhint").Logger())
		if err != nil {
			log.Printf("LLM hint client disabled: %v", err)
		} else {
			hinter = llmClient
		}
	}

	consumer := ingest.NewConsumer(jobs, convos, parser, notifier, deadLetters, ingestTracer, logger.With().Str("component", "consumer").Logger())
	controller := agent.New(convos, jobs, convos, hinter, cfg, agentTracer, logger.With().Str("component", "agent").Logger())

	admission := ingest.NewAdmissionHandler(cfg, archive, queue, logger.With().Str("component", "admission").Logger())

	router := mux.NewRouter()
	admission.Register(router)
	router.HandleFunc("/agent/query", newAgentQueryHandler(controller, logger)).Methods(http.MethodPost)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	server := &http.Server{Addr: *httpAddr, Handler: router}

	errChan := make(chan error, 2)
	go func() {
		log.Printf("freightline HTTP server listening on %s", *httpAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	consumerCtx, cancelConsumer := context.WithCancel(ctx)
	defer cancelConsumer()
	go runConsumerLoop(consumerCtx, queue, consumer, logger.With().Str("component", "consumer-loop").Logger())
	go runRetentionSweep(consumerCtx, jobs, cfg.JobRetention, logger.With().Str("component", "retention").Logger())

	log.Println("freightline service started successfully")

	select {
	case <-ctx.Done():
		log.Println("shutdown signal received")
	case err := <-errChan:
		log.Printf("server error: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("error shutting down http server: %v", err)
	}
	cancelConsumer()
	_ = convos.Close()

	log.Println("shutdown complete")
}

// runConsumerLoop long-polls the queue and hands each record to the
// ingestion consumer, deleting it only once handling succeeds so an
// unhandled panic or crash leaves the record for SQS to redeliver.
func runConsumerLoop(ctx context.Context, queue *ingest.SQSQueue, consumer *ingest.Consumer, logger zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		records, err := queue.Receive(ctx, 10, 20)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error().Err(err).Msg("consumer loop: receive failed")
			time.Sleep(time.Second)
			continue
		}

		for _, rec := range records {
			body, err := json.Marshal(rec.Body)
			if err != nil {
				logger.Error().Err(err).Msg("consumer loop: re-encoding record failed")
				continue
			}
			if err := consumer.HandleRecord(ctx, body, 1); err != nil && !errors.Is(err, ingest.ErrDuplicateMessage) {
				logger.Error().Err(err).Str("message_id", rec.Body.MessageID).Msg("consumer loop: handling record failed")
				continue
			}
			if err := queue.Delete(ctx, rec.ReceiptHandle); err != nil {
				logger.Error().Err(err).Str("message_id", rec.Body.MessageID).Msg("consumer loop: delete failed")
			}
		}
	}
}

// runRetentionSweep periodically expires jobs older than retention, per
// the supplemented retention-sweep feature.
func runRetentionSweep(ctx context.Context, jobs *jobstore.Store, retention time.Duration, logger zerolog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := jobs.SweepExpired(ctx, retention)
			if err != nil {
				logger.Error().Err(err).Msg("retention sweep failed")
				continue
			}
			if n > 0 {
				logger.Info().Int64("expired", n).Msg("retention sweep expired jobs")
			}
		}
	}
}

type agentQueryRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

type agentQueryResponse struct {
	Reply string `json:"reply"`
}

// newAgentQueryHandler exposes the conversational agent over HTTP for
// channels other than the WhatsApp-shaped webhook, e.g. internal tooling
// or a future first-party chat surface.
func newAgentQueryHandler(controller *agent.Controller, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req agentQueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" || req.Text == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "userId and text are required"})
			return
		}

		reply, err := controller.HandleTurn(r.Context(), req.UserID, req.Text)
		if err != nil {
			logger.Error().Err(err).Str("user_id", req.UserID).Msg("agent query failed")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "internal error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(agentQueryResponse{Reply: reply})
	}
}
