package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the Sheets REST v4 root.
const DefaultBaseURL = "https://sheets.googleapis.com/v4"

// ErrSheetNotFound is returned when a spreadsheet or worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// Client implements ports.SheetSource against the Sheets REST API.
type Client struct {
	http   *resty.Client
	tokens TokenSource
	log    zerolog.Logger
}

// NewClient creates a Sheets client. baseURL defaults to DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: http, tokens: tokens, log: log}
}

type valueRange struct {
	Range          string  `json:"range,omitempty"`
	MajorDimension string  `json:"majorDimension,omitempty"`
	Values         [][]any `json:"values"`
}

type spreadsheetMeta struct {
	Sheets []struct {
		Properties struct {
			Title string `json:"title"`
		} `json:"properties"`
	} `json:"sheets"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ReadAll returns every populated row of the worksheet, header first.
func (c *Client) ReadAll(ctx context.Context, sourceID, worksheet string) ([][]any, error) {
	id := ParseSheetID(sourceID)
	title, err := c.worksheetTitle(ctx, id, worksheet)
	if err != nil {
		return nil, err
	}

	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.
		SetPathParams(map[string]string{"id": id, "range": quoteTitle(title)}).
		SetQueryParam("valueRenderOption", "UNFORMATTED_VALUE").
		SetQueryParam("dateTimeRenderOption", "FORMATTED_STRING").
		SetResult(&valueRange{}).
		Get("/spreadsheets/{id}/values/{range}")
	if err := c.check(resp, err, "read"); err != nil {
		return nil, err
	}

	values := resp.Result().(*valueRange).Values
	c.log.Debug().Str("source", id).Str("worksheet", title).Int("rows", len(values)).Msg("sheets: values read")
	return values, nil
}

// AppendRow appends one row after the last populated row.
func (c *Client) AppendRow(ctx context.Context, sourceID, worksheet string, row []any) error {
	id := ParseSheetID(sourceID)
	title, err := c.worksheetTitle(ctx, id, worksheet)
	if err != nil {
		return err
	}

	req, err := c.request(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetPathParams(map[string]string{"id": id, "range": quoteTitle(title)}).
		SetQueryParam("valueInputOption", "USER_ENTERED").
		SetQueryParam("insertDataOption", "INSERT_ROWS").
		SetBody(valueRange{MajorDimension: "ROWS", Values: [][]any{row}}).
		Post("/spreadsheets/{id}/values/{range}:append")
	return c.check(resp, err, "append")
}

// ReplaceAll clears the worksheet and writes values starting at A1.
func (c *Client) ReplaceAll(ctx context.Context, sourceID, worksheet string, values [][]any) error {
	id := ParseSheetID(sourceID)
	title, err := c.worksheetTitle(ctx, id, worksheet)
	if err != nil {
		return err
	}
	rng := quoteTitle(title)

	req, err := c.request(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetPathParams(map[string]string{"id": id, "range": rng}).
		SetBody(map[string]any{}).
		Post("/spreadsheets/{id}/values/{range}:clear")
	if err := c.check(resp, err, "clear"); err != nil {
		return err
	}

	req, err = c.request(ctx)
	if err != nil {
		return err
	}
	resp, err = req.
		SetPathParams(map[string]string{"id": id, "range": rng + "!A1"}).
		SetQueryParam("valueInputOption", "USER_ENTERED").
		SetBody(valueRange{Range: rng + "!A1", MajorDimension: "ROWS", Values: values}).
		Put("/spreadsheets/{id}/values/{range}")
	return c.check(resp, err, "update")
}

// worksheetTitle resolves an empty worksheet name to the first sheet.
func (c *Client) worksheetTitle(ctx context.Context, id, worksheet string) (string, error) {
	if worksheet != "" {
		return worksheet, nil
	}
	req, err := c.request(ctx)
	if err != nil {
		return "", err
	}
	resp, err := req.
		SetPathParam("id", id).
		SetQueryParam("fields", "sheets.properties.title").
		SetResult(&spreadsheetMeta{}).
		Get("/spreadsheets/{id}")
	if err := c.check(resp, err, "metadata"); err != nil {
		return "", err
	}
	meta := resp.Result().(*spreadsheetMeta)
	if len(meta.Sheets) == 0 {
		return "", fmt.Errorf("spreadsheet %s has no worksheets: %w", id, ErrSheetNotFound)
	}
	return meta.Sheets[0].Properties.Title, nil
}

func (c *Client) request(ctx context.Context) (*resty.Request, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets auth: %w", err)
	}
	return c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(&apiError{}), nil
}

func (c *Client) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("sheets %s: %w", op, err)
	}
	if !resp.IsError() {
		return nil
	}
	msg := resp.String()
	if e, ok := resp.Error().(*apiError); ok && e.Error.Message != "" {
		msg = e.Error.Message
	}
	if resp.StatusCode() == 404 {
		return fmt.Errorf("sheets %s: %s: %w", op, msg, ErrSheetNotFound)
	}
	return fmt.Errorf("sheets %s: status %d: %s", op, resp.StatusCode(), msg)
}

// quoteTitle wraps a worksheet title in A1-notation quotes.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// Ping verifies that credentials can be exchanged for a token.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.tokens.Token(ctx)
	return err
}

// Name returns the dependency name.
func (c *Client) Name() string {
	return "sheets"
}
