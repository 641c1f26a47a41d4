package ingest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/kargotakip/freightline/internal/config"
)

// AdmissionHandler implements the ADMIT -> ARCHIVED -> QUEUED state
// transitions of the ingestion pipeline (spec §4.5, §6.1).
type AdmissionHandler struct {
	cfg     *config.Config
	archive Archive
	queue   Queue
	log     zerolog.Logger
}

// NewAdmissionHandler wires the webhook endpoint to its archive and queue
// collaborators.
func NewAdmissionHandler(cfg *config.Config, archive Archive, queue Queue, logger zerolog.Logger) *AdmissionHandler {
	return &AdmissionHandler{cfg: cfg, archive: archive, queue: queue, log: logger}
}

// Register mounts the webhook route on r.
func (h *AdmissionHandler) Register(r *mux.Router) {
	r.HandleFunc("/webhook", h.handleWebhook).Methods(http.MethodPost)
}

func (h *AdmissionHandler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.NewString()
	log := h.log.With().Str("correlation_id", correlationID).Logger()

	if !h.authenticate(r) {
		log.Warn().Msg("webhook: authentication failed")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		return
	}

	var payload WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Warn().Err(err).Msg("webhook: malformed json")
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	if !payload.passesFilters() {
		log.Debug().Str("remote_jid", payload.Data.Key.RemoteJID).Msg("webhook: message filtered")
		writeJSON(w, http.StatusOK, map[string]string{"message": "Message filtered"})
		return
	}

	receivedAt := time.Now().UTC()
	messageID := payload.Data.Key.ID
	archiveKey := ArchiveKey(payload.Instance, messageID, receivedAt)

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.ArchiveTimeout)
	defer cancel()
	if err := h.archive.Put(ctx, archiveKey, payload, receivedAt); err != nil {
		log.Error().Err(err).Str("message_id", messageID).Msg("webhook: archive write failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "archive failed"})
		return
	}

	queueCtx, queueCancel := context.WithTimeout(r.Context(), h.cfg.QueueTimeout)
	defer queueCancel()
	qmsg := QueueMessage{
		InstanceName:  payload.Instance,
		RemoteJID:     payload.Data.Key.RemoteJID,
		MessageID:     messageID,
		PushName:      payload.Data.PushName,
		SenderJID:     payload.Data.Key.Participant,
		Text:          payload.Data.Message.Text(),
		Timestamp:     payload.Data.MessageTimestamp,
		ReceivedAt:    receivedAt,
		ArchiveBucket: h.cfg.ArchiveBucket,
		ArchiveKey:    archiveKey,
	}
	if err := h.queue.Enqueue(queueCtx, qmsg); err != nil {
		log.Error().Err(err).Str("message_id", messageID).Msg("webhook: queue send failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "queue send failed"})
		return
	}

	log.Info().Str("message_id", messageID).Msg("webhook: message stored and queued")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Message stored and queued"})
}

func (h *AdmissionHandler) authenticate(r *http.Request) bool {
	return h.cfg.VerifyWebhookSecret(r.Header.Get("x-api-key"))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
