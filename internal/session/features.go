package session

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/gradebook/internal/cli/styles"
	gradeservice "github.com/thenoetrevino/gradebook/internal/services/grade"
)

// addGrade records a grade. The student is resolved (and created) as soon as
// the name is entered, before the subject and value are validated.
func (s *Session) addGrade(ctx context.Context) error {
	name, err := s.prompt(promptStudentName)
	if err != nil {
		return err
	}

	studentID, err := s.svc.ResolveStudent(ctx, name)
	if err != nil {
		return err
	}

	subject, err := s.prompt(promptSubject)
	if err != nil {
		return err
	}
	if subject == "" {
		return gradeservice.ErrEmptySubject
	}

	text, err := s.prompt(fmt.Sprintf(promptGradeFmt, subject))
	if err != nil {
		return err
	}

	value, err := gradeservice.ParseGrade(text)
	if err != nil {
		return err
	}

	if _, err := s.svc.RecordGrade(ctx, gradeservice.RecordGradeRequest{
		StudentID: studentID,
		Subject:   subject,
		Value:     value,
	}); err != nil {
		return err
	}

	s.println(s.render(styles.SuccessStyle, fmt.Sprintf(fmtGradeAdded, value, name, subject)))
	return nil
}

func (s *Session) viewGrades(ctx context.Context) error {
	entries, err := s.svc.ListGrades(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		s.println(msgNoGrades)
		return nil
	}

	s.println("")
	s.println(s.render(styles.SectionStyle, headerGrades))
	s.println(ruleGrades)
	for _, entry := range entries {
		s.println(entry.String())
	}
	return nil
}

func (s *Session) averageGrade(ctx context.Context) error {
	subject, err := s.prompt(promptAvgSubject)
	if err != nil {
		return err
	}

	avg, err := s.svc.AverageForSubject(ctx, subject)
	if err != nil {
		return err
	}

	if avg == nil {
		s.println(fmt.Sprintf(fmtNoSubjectGrade, subject))
		return nil
	}

	s.println(fmt.Sprintf(fmtAverage, subject, *avg))
	return nil
}

// editGrade changes the value of one existing grade.
// Student and subject are not checked for blanks here; a blank pair simply
// matches no grade.
func (s *Session) editGrade(ctx context.Context) error {
	name, err := s.prompt(promptEditStudent)
	if err != nil {
		return err
	}
	subject, err := s.prompt(promptEditSubject)
	if err != nil {
		return err
	}

	grade, err := s.svc.FindGrade(ctx, name, subject)
	if err != nil {
		return err
	}

	s.println(fmt.Sprintf(fmtCurrentGrade, name, subject, grade.Value))

	text, err := s.prompt(promptNewGrade)
	if err != nil {
		return err
	}

	value, err := gradeservice.ParseGrade(text)
	if err != nil {
		return err
	}

	if err := s.svc.UpdateGrade(ctx, gradeservice.UpdateGradeRequest{
		GradeID: grade.ID,
		Value:   value,
	}); err != nil {
		return err
	}

	s.println(s.render(styles.SuccessStyle, msgGradeUpdated))
	return nil
}

func (s *Session) reportGrades(ctx context.Context) error {
	entries, err := s.svc.Report(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		s.println(msgNoReport)
		return nil
	}

	s.println("")
	s.println(s.render(styles.SectionStyle, headerReport))
	s.println(ruleReport)
	for _, entry := range entries {
		s.println(entry.String())
	}
	return nil
}
