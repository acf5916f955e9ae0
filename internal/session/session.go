package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/thenoetrevino/gradebook/internal/cli/styles"
	"github.com/thenoetrevino/gradebook/internal/models"
	gradeservice "github.com/thenoetrevino/gradebook/internal/services/grade"
)

// errEndOfInput is returned by prompts once the input stream is exhausted
var errEndOfInput = errors.New("end of input")

// gradeService is the subset of the grade service the session drives
type gradeService interface {
	ResolveStudent(ctx context.Context, name string) (int, error)
	RecordGrade(ctx context.Context, req gradeservice.RecordGradeRequest) (*models.Grade, error)
	ListGrades(ctx context.Context) ([]models.GradeEntry, error)
	AverageForSubject(ctx context.Context, subject string) (*float64, error)
	FindGrade(ctx context.Context, studentName, subject string) (*models.Grade, error)
	UpdateGrade(ctx context.Context, req gradeservice.UpdateGradeRequest) error
	Report(ctx context.Context) ([]models.ReportEntry, error)
}

// Session is one run of the interactive menu loop
type Session struct {
	id      string
	svc     gradeService
	scanner *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger

	// color applies styles to output; only set for terminals
	color bool
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for session events and store failures
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithColor forces styled output on or off regardless of the output writer
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.color = enabled
	}
}

// WithID overrides the generated session ID
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New creates a session reading operator input from in and writing to out
func New(svc gradeService, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		svc:     svc,
		scanner: bufio.NewScanner(in),
		out:     out,
		logger:  slog.Default(),
		color:   styles.Enabled() && styles.IsTerminal(out),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.id)
	return s
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id
}

// Run drives the menu until the operator exits or input runs out.
// Feature failures are reported to the operator and never end the loop.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started")
	defer s.logger.Info("session ended")

	state := StateMenu
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch {
		case state == StateMenu:
			s.renderMenu()
			choice, err := s.prompt(promptChoice)
			if err != nil {
				return s.endOfInput()
			}

			t := Dispatch(state, choice)
			if t.Effect == EffectInvalidChoice {
				s.println(s.render(styles.WarningStyle, msgInvalidChoice))
			}
			s.logger.Debug("menu choice", "input", choice, "next", t.Next.String())
			state = t.Next

		case state.IsFeature():
			if err := s.runFeature(ctx, state); err != nil {
				if errors.Is(err, errEndOfInput) {
					return s.endOfInput()
				}
				s.report(state, err)
			}
			state = Dispatch(state, "").Next

		default:
			s.println(msgFarewell)
			return nil
		}
	}
}

// runFeature executes the handler bound to a feature state
func (s *Session) runFeature(ctx context.Context, state State) error {
	switch state {
	case StateAdd:
		return s.addGrade(ctx)
	case StateView:
		return s.viewGrades(ctx)
	case StateAverage:
		return s.averageGrade(ctx)
	case StateEdit:
		return s.editGrade(ctx)
	case StateReport:
		return s.reportGrades(ctx)
	default:
		return fmt.Errorf("no handler for state %s", state)
	}
}

// report prints the operator message for a failed feature
func (s *Session) report(state State, err error) {
	var msg string
	switch {
	case errors.Is(err, gradeservice.ErrEmptyStudentName):
		msg = msgEmptyStudentName
	case errors.Is(err, gradeservice.ErrEmptySubject):
		msg = msgEmptySubject
	case errors.Is(err, gradeservice.ErrInvalidGrade):
		msg = msgInvalidGrade
	case errors.Is(err, gradeservice.ErrGradeOutOfRange):
		msg = msgGradeOutOfRange
	case errors.Is(err, gradeservice.ErrGradeNotFound):
		msg = msgGradeNotFound
	default:
		s.logger.Error("feature failed", "feature", state.String(), "error", err)
		s.println(s.render(styles.ErrorStyle, "Error: "+err.Error()))
		return
	}

	s.logger.Debug("feature rejected input", "feature", state.String(), "reason", err)
	s.println(s.render(styles.WarningStyle, msg))
}

// endOfInput finishes the session when input is exhausted or unreadable
func (s *Session) endOfInput() error {
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	s.println("")
	s.println(msgFarewell)
	return nil
}

func (s *Session) renderMenu() {
	s.println("")
	s.println(s.render(styles.BannerStyle, menuRule))
	s.println(s.render(styles.TitleStyle, menuTitle))
	s.println(s.render(styles.BannerStyle, menuRule))
	for _, option := range menuOptions {
		s.println(option)
	}
	s.println("")
}

// prompt writes text without a newline and reads one trimmed line
func (s *Session) prompt(text string) (string, error) {
	_, _ = fmt.Fprint(s.out, s.render(styles.PromptStyle, text))
	if !s.scanner.Scan() {
		return "", errEndOfInput
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// render styles text when color output is on
func (s *Session) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

func (s *Session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}
