package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_TrimsHeadersAndPadsRows(t *testing.T) {
	tbl := NewTable([][]any{
		{" Project Name ", "Status\t", "Budget"},
		{"P1", "Done", 100},
		{"P2"},
	})

	assert.Equal(t, []string{"Project Name", "Status", "Budget"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "P1", tbl.Rows[0]["Project Name"])
	assert.Equal(t, 100, tbl.Rows[0]["Budget"])
	assert.Equal(t, "", tbl.Rows[1]["Status"])
}

func TestNewTable_Empty(t *testing.T) {
	tbl := NewTable(nil)
	assert.True(t, tbl.IsEmpty())
	assert.Empty(t, tbl.Columns)
}

func TestTable_ValuesRoundTrip(t *testing.T) {
	tbl := NewTable([][]any{
		{"a", "b"},
		{"1", nil},
	})
	tbl.Rows[0]["b"] = nil

	values := tbl.Values()
	require.Len(t, values, 2)
	assert.Equal(t, []any{"a", "b"}, values[0])
	assert.Equal(t, []any{"1", ""}, values[1])
}

func TestTable_CloneIsIndependent(t *testing.T) {
	tbl := NewTable([][]any{{"a"}, {"x"}})
	clone := tbl.Clone()
	clone.Rows[0]["a"] = "y"

	assert.Equal(t, "x", tbl.Rows[0]["a"])
}

func TestEmptyTable_CopiesSchema(t *testing.T) {
	tbl := EmptyTable(CallColumns)
	assert.Equal(t, CallColumns, tbl.Columns)
	assert.NotNil(t, tbl.Rows)
	assert.True(t, tbl.HasColumn("call_id"))
	assert.False(t, tbl.HasColumn("nope"))
}

func TestCacheEntry_Fresh(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	e := CacheEntry{FetchedAt: now}

	assert.True(t, e.Fresh(now.Add(299*time.Second), 300*time.Second))
	assert.False(t, e.Fresh(now.Add(300*time.Second), 300*time.Second))
}

func TestCacheKey_String(t *testing.T) {
	assert.Equal(t, "sheet1", CacheKey{SourceID: "sheet1"}.String())
	assert.Equal(t, "sheet1#Projects", CacheKey{SourceID: "sheet1", Worksheet: "Projects"}.String())
}

func TestParseWebhookKind(t *testing.T) {
	for _, k := range AllWebhookKinds() {
		got, err := ParseWebhookKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.NotEmpty(t, k.DisplayName())
	}

	_, err := ParseWebhookKind("comics")
	assert.Error(t, err)
}

func TestDefaultFieldsFor_EveryKindMatches(t *testing.T) {
	for _, k := range AllWebhookKinds() {
		f := DefaultFieldsFor(k)
		require.NotNil(t, f, k)
		assert.Equal(t, k, f.Kind())
	}
}

func TestFieldsFromMetadata_Defaults(t *testing.T) {
	audio := FieldsFromMetadata(KindAudio, nil).(AudioFields)
	assert.Equal(t, "webm", audio.Format)
	assert.Equal(t, 44100, audio.SampleRate)

	notes := FieldsFromMetadata(KindNotes, map[string]any{"tags": "a, b,,c"}).(NoteFields)
	assert.Equal(t, []string{"a", "b", "c"}, notes.Tags)
	assert.Equal(t, "medium", notes.Priority)
	assert.Equal(t, "general", notes.Category)

	video := FieldsFromMetadata(KindVideos, map[string]any{"fps": 60.0}).(VideoFields)
	assert.Equal(t, 60.0, video.FPS)
	assert.Equal(t, "h264", video.Codec)

	docs := FieldsFromMetadata(KindDocuments, map[string]any{"version": 2}).(DocumentFields)
	assert.Equal(t, "2", docs.Version)
	assert.Equal(t, "public", docs.Classification)
}

func TestWebhookPayload_JSONRoundTripKeepsVariant(t *testing.T) {
	p := NewPayload(KindMeetings,
		UserInfo{Name: "alice", SessionID: "s1"},
		"minutes text",
		map[string]any{"participants": []any{"alice", "bob"}},
		ProcessingOptions{Quality: "High", AutoProcess: true},
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), `"type_specific_fields":{"participants":["alice","bob"]`))

	var decoded WebhookPayload
	require.NoError(t, json.Unmarshal(b, &decoded))

	mf, ok := decoded.Content.TypeSpecific.(MeetingFields)
	require.True(t, ok, "variant should decode as MeetingFields")
	assert.Equal(t, []string{"alice", "bob"}, mf.Participants)
	assert.Equal(t, "general", mf.MeetingType)
	assert.Equal(t, "alice", decoded.UserID())
}

func TestWebhookPayload_UnmarshalUnknownKindLeavesFieldsNil(t *testing.T) {
	var p WebhookPayload
	require.NoError(t, json.Unmarshal([]byte(`{"webhook_type":"comics","content":{"primary_data":"x"}}`), &p))
	assert.Nil(t, p.Content.TypeSpecific)
	assert.Equal(t, "anonymous", p.UserID())
}

func TestWebhookPayload_UnmarshalMissingFieldsDerivesFromMetadata(t *testing.T) {
	var p WebhookPayload
	require.NoError(t, json.Unmarshal([]byte(`{"webhook_type":"books","content":{"primary_data":"x","metadata":{"author":"Le Guin"}}}`), &p))

	bf, ok := p.Content.TypeSpecific.(BookFields)
	require.True(t, ok)
	assert.Equal(t, "Le Guin", bf.Author)
}

func TestOutcomeForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Outcome
	}{
		{200, OutcomeSucceeded},
		{201, OutcomeUnexpectedStatus},
		{302, OutcomeUnexpectedStatus},
		{400, OutcomeClientError},
		{404, OutcomeClientError},
		{429, OutcomeRateLimitedByServer},
		{500, OutcomeServerError},
		{503, OutcomeServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutcomeForStatus(tt.status), tt.status)
	}
}

func TestOutcome_ReachedNetwork(t *testing.T) {
	assert.False(t, OutcomeInvalid.ReachedNetwork())
	assert.False(t, OutcomeOversized.ReachedNetwork())
	assert.False(t, OutcomeRateLimited.ReachedNetwork())
	assert.True(t, OutcomeTransportFailure.ReachedNetwork())
	assert.True(t, OutcomeSucceeded.ReachedNetwork())
}

func TestTruncateResponse(t *testing.T) {
	assert.Equal(t, "short", TruncateResponse("short"))
	assert.Len(t, TruncateResponse(strings.Repeat("x", 900)), MaxResponseTextLen)

	// Multi-byte rune straddling the cut point must not be split.
	s := strings.Repeat("x", MaxResponseTextLen-1) + "é"
	got := TruncateResponse(s)
	assert.Equal(t, MaxResponseTextLen-1, len(got))
}

func TestSampleProjects(t *testing.T) {
	tbl := SampleProjects()
	assert.Equal(t, ProjectColumns, tbl.Columns)
	assert.Equal(t, 5, tbl.Len())
	assert.Equal(t, "Website Redesign", tbl.Rows[0][ColProjectName])
}
