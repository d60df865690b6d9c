package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TypeSpecificFields is the closed set of per-kind field groups. Each variant
// reports the kind it belongs to so a payload can be checked for consistency.
type TypeSpecificFields interface {
	Kind() WebhookKind
}

type AudioFields struct {
	Format     string  `json:"format" validate:"max=16"`
	Duration   float64 `json:"duration" validate:"gte=0"`
	SampleRate int     `json:"sample_rate" validate:"gte=0"`
}

type BookFields struct {
	Author    string `json:"author" validate:"max=200"`
	Genre     string `json:"genre" validate:"max=100"`
	Chapter   string `json:"chapter" validate:"max=200"`
	PageCount int    `json:"page_count" validate:"gte=0"`
}

type LectureFields struct {
	Instructor  string `json:"instructor" validate:"max=200"`
	Subject     string `json:"subject" validate:"max=200"`
	CourseCode  string `json:"course_code" validate:"max=50"`
	SlidesCount int    `json:"slides_count" validate:"gte=0"`
}

type PodcastFields struct {
	Host          string `json:"host" validate:"max=200"`
	EpisodeNumber string `json:"episode_number" validate:"max=50"`
	ShowName      string `json:"show_name" validate:"max=200"`
	Guest         string `json:"guest" validate:"max=200"`
}

type NoteFields struct {
	Tags         []string `json:"tags" validate:"max=50,dive,max=100"`
	Priority     string   `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Category     string   `json:"category" validate:"max=100"`
	ReminderDate string   `json:"reminder_date" validate:"max=50"`
}

type DocumentFields struct {
	DocumentType   string `json:"document_type" validate:"max=100"`
	Version        string `json:"version" validate:"max=50"`
	Department     string `json:"department" validate:"max=200"`
	Classification string `json:"classification" validate:"max=50"`
}

type VideoFields struct {
	Resolution string  `json:"resolution" validate:"max=20"`
	Format     string  `json:"format" validate:"max=16"`
	FPS        float64 `json:"fps" validate:"gte=0,lte=1000"`
	Codec      string  `json:"codec" validate:"max=32"`
}

type ImageFields struct {
	Dimensions string `json:"dimensions" validate:"max=50"`
	Format     string `json:"format" validate:"max=16"`
	Location   string `json:"location" validate:"max=200"`
	CameraInfo string `json:"camera_info" validate:"max=200"`
}

type ResearchFields struct {
	Methodology   string `json:"methodology" validate:"max=500"`
	SubjectArea   string `json:"subject_area" validate:"max=200"`
	Institution   string `json:"institution" validate:"max=200"`
	FundingSource string `json:"funding_source" validate:"max=200"`
}

type MeetingFields struct {
	Participants []string `json:"participants" validate:"max=200,dive,max=200"`
	AgendaItems  []string `json:"agenda_items" validate:"max=200,dive,max=500"`
	ActionItems  []string `json:"action_items" validate:"max=200,dive,max=500"`
	MeetingType  string   `json:"meeting_type" validate:"max=50"`
}

func (AudioFields) Kind() WebhookKind    { return KindAudio }
func (BookFields) Kind() WebhookKind     { return KindBooks }
func (LectureFields) Kind() WebhookKind  { return KindLectures }
func (PodcastFields) Kind() WebhookKind  { return KindPodcasts }
func (NoteFields) Kind() WebhookKind     { return KindNotes }
func (DocumentFields) Kind() WebhookKind { return KindDocuments }
func (VideoFields) Kind() WebhookKind    { return KindVideos }
func (ImageFields) Kind() WebhookKind    { return KindImages }
func (ResearchFields) Kind() WebhookKind { return KindResearch }
func (MeetingFields) Kind() WebhookKind  { return KindMeetings }

// DefaultFieldsFor returns the variant for kind with every default applied.
func DefaultFieldsFor(kind WebhookKind) TypeSpecificFields {
	return FieldsFromMetadata(kind, nil)
}

// FieldsFromMetadata builds the variant for kind by reading well-known keys
// out of free-form metadata. Missing or mistyped keys take their defaults.
func FieldsFromMetadata(kind WebhookKind, md map[string]any) TypeSpecificFields {
	switch kind {
	case KindAudio:
		return AudioFields{
			Format:     mdString(md, "format", "webm"),
			Duration:   mdFloat(md, "duration", 0),
			SampleRate: mdInt(md, "sample_rate", 44100),
		}
	case KindBooks:
		return BookFields{
			Author:    mdString(md, "author", ""),
			Genre:     mdString(md, "genre", ""),
			Chapter:   mdString(md, "chapter", ""),
			PageCount: mdInt(md, "page_count", 0),
		}
	case KindLectures:
		return LectureFields{
			Instructor:  mdString(md, "instructor", ""),
			Subject:     mdString(md, "subject", ""),
			CourseCode:  mdString(md, "course_code", ""),
			SlidesCount: mdInt(md, "slides_count", 0),
		}
	case KindPodcasts:
		return PodcastFields{
			Host:          mdString(md, "host", ""),
			EpisodeNumber: mdString(md, "episode_number", ""),
			ShowName:      mdString(md, "show_name", ""),
			Guest:         mdString(md, "guest", ""),
		}
	case KindNotes:
		return NoteFields{
			Tags:         mdStrings(md, "tags"),
			Priority:     mdString(md, "priority", "medium"),
			Category:     mdString(md, "category", "general"),
			ReminderDate: mdString(md, "reminder_date", ""),
		}
	case KindDocuments:
		return DocumentFields{
			DocumentType:   mdString(md, "document_type", ""),
			Version:        mdString(md, "version", "1.0"),
			Department:     mdString(md, "department", ""),
			Classification: mdString(md, "classification", "public"),
		}
	case KindVideos:
		return VideoFields{
			Resolution: mdString(md, "resolution", "1080p"),
			Format:     mdString(md, "format", "mp4"),
			FPS:        mdFloat(md, "fps", 30),
			Codec:      mdString(md, "codec", "h264"),
		}
	case KindImages:
		return ImageFields{
			Dimensions: mdString(md, "dimensions", ""),
			Format:     mdString(md, "format", "jpg"),
			Location:   mdString(md, "location", ""),
			CameraInfo: mdString(md, "camera_info", ""),
		}
	case KindResearch:
		return ResearchFields{
			Methodology:   mdString(md, "methodology", ""),
			SubjectArea:   mdString(md, "subject_area", ""),
			Institution:   mdString(md, "institution", ""),
			FundingSource: mdString(md, "funding_source", ""),
		}
	case KindMeetings:
		return MeetingFields{
			Participants: mdStrings(md, "participants"),
			AgendaItems:  mdStrings(md, "agenda_items"),
			ActionItems:  mdStrings(md, "action_items"),
			MeetingType:  mdString(md, "meeting_type", "general"),
		}
	}
	return nil
}

func decodeFields(kind WebhookKind, raw json.RawMessage) (TypeSpecificFields, error) {
	switch kind {
	case KindAudio:
		return decodeInto[AudioFields](raw)
	case KindBooks:
		return decodeInto[BookFields](raw)
	case KindLectures:
		return decodeInto[LectureFields](raw)
	case KindPodcasts:
		return decodeInto[PodcastFields](raw)
	case KindNotes:
		return decodeInto[NoteFields](raw)
	case KindDocuments:
		return decodeInto[DocumentFields](raw)
	case KindVideos:
		return decodeInto[VideoFields](raw)
	case KindImages:
		return decodeInto[ImageFields](raw)
	case KindResearch:
		return decodeInto[ResearchFields](raw)
	case KindMeetings:
		return decodeInto[MeetingFields](raw)
	}
	return nil, fmt.Errorf("unknown webhook kind %q", kind)
}

func decodeInto[T TypeSpecificFields](raw json.RawMessage) (TypeSpecificFields, error) {
	var f T
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return f, nil
}

func mdString(md map[string]any, key, def string) string {
	v, ok := md[key]
	if !ok || v == nil {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	}
	return def
}

func mdFloat(md map[string]any, key string, def float64) float64 {
	switch n := md[key].(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return def
}

func mdInt(md map[string]any, key string, def int) int {
	switch n := md[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return def
}

func mdStrings(md map[string]any, key string) []string {
	switch v := md[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}
		}
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return []string{}
}
