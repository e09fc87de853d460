package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/model"
	"github.com/startupsole/solechat/pkg/usecase"
	"github.com/startupsole/solechat/pkg/utils/errutil"
	"github.com/startupsole/solechat/pkg/utils/logging"
)

// sessionIDHeader carries the effective session identifier both ways
const sessionIDHeader = "X-Session-ID"

// User-visible error texts. Fault messages are deliberately generic;
// details stay in the server log.
const (
	msgMethodNotAllowed = "Yalnızca POST istekleri kabul edilmektedir."
	msgInvalidMessage   = "Geçersiz veya boş kullanıcı mesajı."
	msgFAQFault         = "SSS araması sırasında bir hata oluştu."
	msgBlogFault        = "Blog makaleleri araması sırasında bir hata oluştu."
	msgKeywordFault     = "Popüler anahtar kelimeleri ararken bir hata oluştu."
	msgAskFault         = "Ana chatbot işleyicisi çalışırken bir hata oluştu."
	msgChatFault        = "Sunucu hatası, lütfen daha sonra tekrar deneyin."
)

type chatRequest struct {
	UserMessage string `json:"userMessage"`
	SessionID   string `json:"sessionId,omitempty"`
}

type lookupResponse struct {
	Message string `json:"message"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message   []chatMessage `json:"message"`
	SessionID string        `json:"sessionId"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err)
	}
}

// parseRequest decodes the request body and validates the user message.
// It returns false after writing the 400 response, before any store or
// inference call is made.
func parseRequest(w http.ResponseWriter, r *http.Request) (*chatRequest, bool) {
	ctx := r.Context()

	var req chatRequest
	if r.Body != nil {
		// A malformed body falls through to the empty-message check
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if req.UserMessage == "" {
		errutil.HandleHTTP(ctx, w, goerr.New(msgInvalidMessage), http.StatusBadRequest)
		return nil, false
	}

	if req.SessionID == "" {
		req.SessionID = r.Header.Get(sessionIDHeader)
	}

	return &req, true
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	errutil.HandleHTTP(r.Context(), w, goerr.New(msgMethodNotAllowed), http.StatusMethodNotAllowed)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// lookupHandler adapts a single-shot lookup to HTTP. A lookup miss is a
// 200 with the source's not-found text; only infrastructure faults
// become a 500, with the generic faultMsg as the visible error.
func lookupHandler(lookup func(ctx context.Context, query string) (string, error), faultMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req, ok := parseRequest(w, r)
		if !ok {
			return
		}

		reply, err := lookup(ctx, req.UserMessage)
		if err != nil {
			_ = errutil.Handle(ctx, err, "lookup failed")
			writeJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": faultMsg})
			return
		}

		writeJSON(ctx, w, http.StatusOK, lookupResponse{Message: reply})
	}
}

func chatHandler(chat *usecase.ChatUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req, ok := parseRequest(w, r)
		if !ok {
			return
		}

		out, err := chat.Chat(ctx, model.SessionID(req.SessionID), req.UserMessage)
		if err != nil {
			_ = errutil.Handle(ctx, err, "chat failed")
			writeJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": msgChatFault})
			return
		}

		messages := make([]chatMessage, 0, len(out.Messages))
		for _, m := range out.Messages {
			messages = append(messages, chatMessage{
				Role:    string(m.Role),
				Content: m.Content,
			})
		}

		w.Header().Set(sessionIDHeader, string(out.SessionID))
		writeJSON(ctx, w, http.StatusOK, chatResponse{
			Message:   messages,
			SessionID: string(out.SessionID),
		})
	}
}
