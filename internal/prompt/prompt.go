package prompt

import (
	"context"
	"errors"
	"html"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"lyrics-server/internal/types"
)

// User-facing alert messages
const (
	MsgEmptyPrompt = "Input is empty!"
	MsgRejected    = "Failed to generate lyrics. Please try again."
	MsgFailed      = "An error occurred while generating lyrics."
)

// ErrEmptyPrompt is returned by Validate for blank input
var ErrEmptyPrompt = errors.New("empty prompt")

// emphasisLine selects the lines wrapped in <strong>. Only blank or
// ASCII-whitespace-only lines match; section headers such as "[Verse]" do
// not. script.js uses the same character class.
var emphasisLine = regexp.MustCompile(`^[ \t\r\f\v]*$`)

// View is the UI handle the controller drives
type View interface {
	SetLoading(loading bool)
	ShowAlert(message string)
	HideAlert()
	ShowResult(lyricsHTML string)
}

// Fetcher retrieves lyrics for a prompt
type Fetcher interface {
	Fetch(ctx context.Context, prompt string) (*types.LyricsResponse, error)
}

// Outcome reports which branch a Generate call took
type Outcome int

const (
	OutcomeEmpty    Outcome = iota // validation failed, nothing sent
	OutcomeRendered                // lyrics rendered
	OutcomeRejected                // upstream answered without lyrics
	OutcomeFailed                  // transport or parse failure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomeRendered:
		return "rendered"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Validate trims raw and rejects empty input
func Validate(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	if p == "" {
		return "", ErrEmptyPrompt
	}
	return p, nil
}

// FormatLyrics splits text on newlines, escapes each line, wraps lines
// matching the emphasis pattern in <strong> and joins them with <br>.
func FormatLyrics(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		escaped := html.EscapeString(line)
		if emphasisLine.MatchString(line) {
			escaped = "<strong>" + escaped + "</strong>"
		}
		lines[i] = escaped
	}
	return strings.Join(lines, "<br>")
}

// Controller runs the generate/dismiss flow of the lyrics page against a
// View, the same contract script.js implements in the browser. It holds no
// per-request state and is safe for concurrent use.
type Controller struct {
	fetcher Fetcher
	log     logrus.FieldLogger
}

// NewController returns a controller backed by fetcher
func NewController(fetcher Fetcher) *Controller {
	return &Controller{
		fetcher: fetcher,
		log:     logrus.StandardLogger(),
	}
}

// WithLogger replaces the diagnostic logger
func (c *Controller) WithLogger(log logrus.FieldLogger) *Controller {
	c.log = log
	return c
}

// Generate validates raw, fetches lyrics once and updates view. The loading
// indicator is always cleared before returning once a request was issued.
func (c *Controller) Generate(ctx context.Context, view View, raw string) Outcome {
	p, err := Validate(raw)
	if err != nil {
		view.ShowAlert(MsgEmptyPrompt)
		return OutcomeEmpty
	}

	view.SetLoading(true)
	defer view.SetLoading(false)

	resp, err := c.fetcher.Fetch(ctx, p)
	if err != nil {
		c.log.WithError(err).WithField("prompt", p).Error("Lyrics generation failed")
		view.ShowAlert(MsgFailed)
		return OutcomeFailed
	}

	if resp == nil || !resp.Status || resp.Lyrics == "" {
		c.log.WithField("prompt", p).Warn("Lyrics API returned no lyrics")
		view.ShowAlert(MsgRejected)
		return OutcomeRejected
	}

	view.ShowResult(FormatLyrics(resp.Lyrics))
	return OutcomeRendered
}

// Dismiss hides the alert bubble
func (c *Controller) Dismiss(view View) {
	view.HideAlert()
}
