package service

import (
	"strings"
	"testing"
	"time"

	"bizdash-core/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *PayloadValidator {
	t.Helper()
	v, err := NewPayloadValidator()
	require.NoError(t, err)
	return v
}

func TestValidate_ValidPayloadForEveryKind(t *testing.T) {
	v := newTestValidator(t)
	for _, k := range domain.AllWebhookKinds() {
		ok, errs := v.Validate(validPayload(k))
		assert.True(t, ok, "%s: %v", k, errs)
		assert.Empty(t, errs)
	}
}

func TestValidate_Errors(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name   string
		mutate func(p *domain.WebhookPayload)
		want   string
	}{
		{
			name:   "missing user name",
			mutate: func(p *domain.WebhookPayload) { p.UserInfo.Name = "" },
			want:   "name is a required field",
		},
		{
			name:   "missing primary data",
			mutate: func(p *domain.WebhookPayload) { p.Content.PrimaryData = "" },
			want:   "primary_data is a required field",
		},
		{
			name:   "blank primary data",
			mutate: func(p *domain.WebhookPayload) { p.Content.PrimaryData = "   " },
			want:   "primary_data must not be blank",
		},
		{
			name:   "unknown kind",
			mutate: func(p *domain.WebhookPayload) { p.WebhookType = "comics" },
			want:   "webhook_type must be one of the supported webhook types",
		},
		{
			name:   "zero timestamp",
			mutate: func(p *domain.WebhookPayload) { p.Timestamp = time.Time{} },
			want:   "timestamp is a required field",
		},
		{
			name:   "missing type specific fields",
			mutate: func(p *domain.WebhookPayload) { p.Content.TypeSpecific = nil },
			want:   "type_specific_fields is a required field",
		},
		{
			name: "variant for another kind",
			mutate: func(p *domain.WebhookPayload) {
				p.Content.TypeSpecific = domain.DefaultFieldsFor(domain.KindBooks)
			},
			want: "type_specific_fields are for books, not notes",
		},
		{
			name: "bad priority",
			mutate: func(p *domain.WebhookPayload) {
				f := p.Content.TypeSpecific.(domain.NoteFields)
				f.Priority = "whenever"
				p.Content.TypeSpecific = f
			},
			want: "priority must be one of [low medium high urgent]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload(domain.KindNotes)
			tt.mutate(&p)

			ok, errs := v.Validate(p)
			assert.False(t, ok)
			assert.Contains(t, errs, tt.want)
		})
	}
}

func TestSanitize(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload(domain.KindBooks)
	p.UserInfo.Name = "  Pat O'Brien\x00\x1b "
	p.Content.PrimaryData = "\n  <raw transcript> \t"
	p.Content.Metadata = map[string]any{
		"title":   " Dune ",
		"skip":    nil,
		"long":    strings.Repeat("é", 1500),
		"nested":  map[string]any{"x": "Q&A <prep>"},
		"count":   3,
		"authors": []any{"a", nil, " b "},
	}
	p.Content.TypeSpecific = domain.BookFields{Author: "<b>Herbert</b>", PageCount: 412}

	out := v.Sanitize(p)

	assert.Equal(t, "Pat O'Brien", out.UserInfo.Name)
	assert.Equal(t, "<raw transcript>", out.Content.PrimaryData)
	assert.Equal(t, "Dune", out.Content.Metadata["title"])
	assert.NotContains(t, out.Content.Metadata, "skip")
	assert.Equal(t, MaxStringLength, len([]rune(out.Content.Metadata["long"].(string))))
	assert.Equal(t, map[string]any{"x": "Q&A <prep>"}, out.Content.Metadata["nested"])
	assert.Equal(t, 3, out.Content.Metadata["count"])
	assert.Equal(t, []any{"a", "b"}, out.Content.Metadata["authors"])

	books := out.Content.TypeSpecific.(domain.BookFields)
	assert.Equal(t, "<b>Herbert</b>", books.Author)
	assert.Equal(t, 412, books.PageCount)

	// The input is left untouched.
	assert.Equal(t, "<b>Herbert</b>", p.Content.TypeSpecific.(domain.BookFields).Author)
	assert.Contains(t, p.Content.Metadata, "skip")
}

func TestSanitize_SliceFields(t *testing.T) {
	v := newTestValidator(t)

	p := validPayload(domain.KindMeetings)
	p.Content.TypeSpecific = domain.MeetingFields{Participants: []string{" ann ", "<bob>"}, MeetingType: "standup"}

	out := v.Sanitize(p)
	mf := out.Content.TypeSpecific.(domain.MeetingFields)
	assert.Equal(t, []string{"ann", "<bob>"}, mf.Participants)
	assert.Equal(t, []string{" ann ", "<bob>"}, p.Content.TypeSpecific.(domain.MeetingFields).Participants)
}

func TestSanitize_NilMetadataBecomesEmpty(t *testing.T) {
	v := newTestValidator(t)
	p := validPayload(domain.KindAudio)
	p.Content.Metadata = nil

	out := v.Sanitize(p)
	assert.NotNil(t, out.Content.Metadata)
	assert.Empty(t, out.Content.Metadata)
}
