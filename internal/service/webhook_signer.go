package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Headers carrying the signature on signed webhook deliveries.
const (
	HeaderWebhookTimestamp = "X-Webhook-Timestamp"
	HeaderWebhookSignature = "X-Webhook-Signature"

	signaturePrefix = "sha256="
)

// WebhookSigner signs outgoing webhook bodies with HMAC-SHA256 so receivers
// can authenticate them.
type WebhookSigner struct {
	secret []byte
}

// NewWebhookSigner returns nil when secret is empty; a nil signer leaves
// deliveries unsigned.
func NewWebhookSigner(secret string) *WebhookSigner {
	if secret == "" {
		return nil
	}
	return &WebhookSigner{secret: []byte(secret)}
}

// Sign computes "sha256=" + lowercase hex HMAC of "<timestamp>.<body>".
func (s *WebhookSigner) Sign(timestamp int64, body []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(canonicalPayload(timestamp, body)))
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify checks signature against body and timestamp in constant time.
func (s *WebhookSigner) Verify(timestamp int64, body []byte, signature string) bool {
	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}
	return hmac.Equal([]byte(s.Sign(timestamp, body)), []byte(signature))
}

// canonicalPayload binds the timestamp to the body so a captured delivery
// cannot be replayed under a fresh timestamp.
func canonicalPayload(timestamp int64, body []byte) string {
	return strconv.FormatInt(timestamp, 10) + "." + string(body)
}
