package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const SignatureHeader = "X-Envoy-Signature"

// Sign returns the hex HMAC-SHA256 of body keyed with the client secret,
// the value the platform puts in X-Envoy-Signature.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature rejects requests whose body was not signed with secret.
// The body is restored for the next handler.
func VerifySignature(secret string, maxBody int64, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
			if err != nil {
				logger.Warn("webhook body read failed", slog.String("error", err.Error()))
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			_ = r.Body.Close()

			got, err := hex.DecodeString(strings.TrimSpace(r.Header.Get(SignatureHeader)))
			if err != nil || len(got) == 0 {
				logger.Warn("webhook signature missing or not hex")
				writeError(w, http.StatusUnauthorized, "invalid signature")
				return
			}

			mac := hmac.New(sha256.New, []byte(secret))
			mac.Write(body)
			if !hmac.Equal(got, mac.Sum(nil)) {
				logger.Warn("webhook signature mismatch")
				writeError(w, http.StatusUnauthorized, "invalid signature")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}
