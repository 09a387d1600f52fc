package authapi

import (
	"context"
	"encoding/json"
	"net"
	"strings"
)

// Audit inserts are best-effort: a failed insert is logged and never fails
// the request that triggered it.

func (h *Handler) auditSignup(ctx context.Context, userID int64, ip net.IP, ua string) {
	h.insertAudit(ctx, "auth.signup", &userID, nil, ip, ua, nil)
}

func (h *Handler) auditLoginFailed(ctx context.Context, userID *int64, ip net.IP, ua string, reason string) {
	h.insertAudit(ctx, "auth.login.failed", userID, nil, ip, ua, map[string]any{
		"reason": reason,
	})
}

func (h *Handler) auditLoginSuccess(ctx context.Context, userID int64, sessionID string, ip net.IP, ua string) {
	h.insertAudit(ctx, "auth.login.success", &userID, &sessionID, ip, ua, nil)
}

func (h *Handler) auditSessionRevoked(ctx context.Context, userID int64, sessionID string, ip net.IP, ua string) {
	h.insertAudit(ctx, "auth.session.revoked", &userID, &sessionID, ip, ua, nil)
}

func (h *Handler) auditRevokeDenied(ctx context.Context, userID int64, ip net.IP, ua string) {
	h.insertAudit(ctx, "auth.session.revoke_denied", &userID, nil, ip, ua, nil)
}

func (h *Handler) auditLogout(ctx context.Context, userID int64, sessionID string, ip net.IP, ua string) {
	h.insertAudit(ctx, "auth.logout", &userID, &sessionID, ip, ua, nil)
}

func (h *Handler) insertAudit(ctx context.Context, action string, userID *int64, sessionID *string, ip net.IP, ua string, meta map[string]any) {
	if h == nil || h.pool == nil {
		return
	}

	action = strings.TrimSpace(action)
	if action == "" {
		return
	}

	var ipVal any
	if ip != nil {
		ipVal = ip.String()
	}

	var metaVal *string
	if len(meta) > 0 {
		if b, err := json.Marshal(meta); err == nil {
			s := string(b)
			metaVal = &s
		}
	}

	_, err := h.pool.Exec(ctx, `
		INSERT INTO taskd.audit_log (
			user_id, session_id, action, created_at, ip, user_agent, meta
		) VALUES ($1, $2, $3, now(), $4, $5, $6::jsonb)
	`, userID, sessionID, action, ipVal, trimOrNil(ua), metaVal)
	if err != nil {
		h.log.Error("auth.audit.insert.fail", "err", err, "action", action)
	}
}

func trimOrNil(s string) any {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return v
}
