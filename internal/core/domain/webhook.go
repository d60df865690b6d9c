package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// WebhookKind is the content category that routes a payload to one endpoint.
type WebhookKind string

const (
	KindAudio     WebhookKind = "audio"
	KindBooks     WebhookKind = "books"
	KindLectures  WebhookKind = "lectures"
	KindPodcasts  WebhookKind = "podcasts"
	KindNotes     WebhookKind = "notes"
	KindDocuments WebhookKind = "documents"
	KindVideos    WebhookKind = "videos"
	KindImages    WebhookKind = "images"
	KindResearch  WebhookKind = "research"
	KindMeetings  WebhookKind = "meetings"
)

// AllWebhookKinds lists every kind in display order.
func AllWebhookKinds() []WebhookKind {
	return []WebhookKind{
		KindAudio, KindBooks, KindLectures, KindPodcasts, KindNotes,
		KindDocuments, KindVideos, KindImages, KindResearch, KindMeetings,
	}
}

// ParseWebhookKind converts a raw string to a known kind.
func ParseWebhookKind(s string) (WebhookKind, error) {
	k := WebhookKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown webhook kind %q", s)
	}
	return k, nil
}

// Valid reports whether k is one of the known kinds.
func (k WebhookKind) Valid() bool {
	switch k {
	case KindAudio, KindBooks, KindLectures, KindPodcasts, KindNotes,
		KindDocuments, KindVideos, KindImages, KindResearch, KindMeetings:
		return true
	}
	return false
}

// DisplayName is the human label shown next to dispatch results.
func (k WebhookKind) DisplayName() string {
	switch k {
	case KindAudio:
		return "Audio Files"
	case KindBooks:
		return "Books"
	case KindLectures:
		return "Lectures"
	case KindPodcasts:
		return "Podcasts"
	case KindNotes:
		return "Notes"
	case KindDocuments:
		return "Documents"
	case KindVideos:
		return "Videos"
	case KindImages:
		return "Images"
	case KindResearch:
		return "Research"
	case KindMeetings:
		return "Meetings"
	}
	return string(k)
}

// UserInfo identifies who captured the content.
type UserInfo struct {
	Name      string `json:"name" validate:"required,max=200"`
	SessionID string `json:"session_id" validate:"max=200"`
}

// Content is the captured material plus its kind-specific fields.
type Content struct {
	PrimaryData  string             `json:"primary_data" validate:"required"`
	Metadata     map[string]any     `json:"metadata"`
	TypeSpecific TypeSpecificFields `json:"type_specific_fields" validate:"-"`
}

// ProcessingOptions are hints for the receiving pipeline.
type ProcessingOptions struct {
	Quality     string `json:"quality" validate:"max=32"`
	AutoProcess bool   `json:"auto_process"`
}

// WebhookPayload is the JSON body posted to a webhook endpoint.
type WebhookPayload struct {
	WebhookType       WebhookKind       `json:"webhook_type" validate:"required,webhook_kind"`
	Timestamp         time.Time         `json:"timestamp"`
	UserInfo          UserInfo          `json:"user_info"`
	Content           Content           `json:"content"`
	ProcessingOptions ProcessingOptions `json:"processing_options"`
}

// UserID is the identity used for rate limiting and the X-User-ID header.
func (p WebhookPayload) UserID() string {
	if p.UserInfo.Name == "" {
		return "anonymous"
	}
	return p.UserInfo.Name
}

// NewPayload assembles a payload for kind, deriving the kind-specific fields
// from metadata and filling defaults for anything missing.
func NewPayload(kind WebhookKind, user UserInfo, primaryData string, metadata map[string]any, opts ProcessingOptions, now time.Time) WebhookPayload {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return WebhookPayload{
		WebhookType: kind,
		Timestamp:   now,
		UserInfo:    user,
		Content: Content{
			PrimaryData:  primaryData,
			Metadata:     metadata,
			TypeSpecific: FieldsFromMetadata(kind, metadata),
		},
		ProcessingOptions: opts,
	}
}

// UnmarshalJSON picks the TypeSpecificFields variant from webhook_type.
func (p *WebhookPayload) UnmarshalJSON(data []byte) error {
	type rawContent struct {
		PrimaryData  string          `json:"primary_data"`
		Metadata     map[string]any  `json:"metadata"`
		TypeSpecific json.RawMessage `json:"type_specific_fields"`
	}
	var raw struct {
		WebhookType       WebhookKind       `json:"webhook_type"`
		Timestamp         time.Time         `json:"timestamp"`
		UserInfo          UserInfo          `json:"user_info"`
		Content           rawContent        `json:"content"`
		ProcessingOptions ProcessingOptions `json:"processing_options"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.WebhookType = raw.WebhookType
	p.Timestamp = raw.Timestamp
	p.UserInfo = raw.UserInfo
	p.ProcessingOptions = raw.ProcessingOptions
	p.Content = Content{
		PrimaryData: raw.Content.PrimaryData,
		Metadata:    raw.Content.Metadata,
	}

	if !raw.WebhookType.Valid() {
		// Left nil; validation reports the bad kind.
		return nil
	}
	if len(raw.Content.TypeSpecific) == 0 || string(raw.Content.TypeSpecific) == "null" {
		p.Content.TypeSpecific = FieldsFromMetadata(raw.WebhookType, raw.Content.Metadata)
		return nil
	}
	fields, err := decodeFields(raw.WebhookType, raw.Content.TypeSpecific)
	if err != nil {
		return fmt.Errorf("type_specific_fields for %s: %w", raw.WebhookType, err)
	}
	p.Content.TypeSpecific = fields
	return nil
}
