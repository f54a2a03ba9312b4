package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chankey/chankey-go/internal/core/domain"
	"github.com/chankey/chankey-go/internal/core/service"
)

// handleIssueRTC handles POST /v1/tokens/rtc.
func (h *Handler) handleIssueRTC(w http.ResponseWriter, r *http.Request) {
	var req IssueRTCTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, domain.ErrBadRequest.Code, "invalid request body", nil)
		return
	}

	resp, err := h.issuer.IssueRTC(r.Context(), &service.IssueRTCRequest{
		ChannelName: req.ChannelName,
		SubjectID:   req.UserAccount,
		UID:         req.UID,
		Role:        req.Role,
		TTLSeconds:  req.TTLSeconds,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, TokenResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt,
		Format:    string(resp.Format),
	})
}

// handleIssueRTM handles POST /v1/tokens/rtm.
func (h *Handler) handleIssueRTM(w http.ResponseWriter, r *http.Request) {
	var req IssueRTMTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, domain.ErrBadRequest.Code, "invalid request body", nil)
		return
	}

	resp, err := h.issuer.IssueRTM(r.Context(), &service.IssueRTMRequest{
		UserID:     req.UserID,
		TTLSeconds: req.TTLSeconds,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, TokenResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt,
		Format:    string(resp.Format),
	})
}
