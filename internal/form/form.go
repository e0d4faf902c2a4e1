// Package form is the view model of the contact form: four independent fields,
// constraint validation and the submit/reset cycle.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"ContactForm_SheetsProject/internal/models"
)

type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

// 화면에 보이는 순서
var Fields = []Field{FieldName, FieldPhone, FieldEmail, FieldMessage}

var requiredFields = []Field{FieldName, FieldPhone, FieldEmail}

var ErrUnknownField = errors.New("form: unknown field")

type MissingFieldError struct {
	Field Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("form: %s is required", e.Field)
}

// Submitter delivers one submission to the endpoint.
type Submitter interface {
	Submit(ctx context.Context, sub models.Submission) (*models.AppendConfirmation, error)
}

type Form struct {
	mu       sync.Mutex
	values   map[Field]string
	inFlight atomic.Int32
}

func New() *Form {
	f := &Form{}
	f.Clear()
	return f
}

// Set updates exactly one field.
func (f *Form) Set(field Field, value string) error {
	if !known(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	f.mu.Lock()
	f.values[field] = value
	f.mu.Unlock()
	return nil
}

func (f *Form) Get(field Field) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// Record snapshots the current field values.
func (f *Form) Record() models.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recordLocked()
}

func (f *Form) recordLocked() models.Submission {
	return models.Submission{
		Name:    f.values[FieldName],
		Email:   f.values[FieldEmail],
		Phone:   f.values[FieldPhone],
		Message: f.values[FieldMessage],
	}
}

func (f *Form) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = make(map[Field]string, len(Fields))
	for _, field := range Fields {
		f.values[field] = ""
	}
}

// Validate mirrors the browser's required check: only an empty value fails,
// whitespace passes.
func (f *Form) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Form) validateLocked() error {
	for _, field := range requiredFields {
		if f.values[field] == "" {
			return &MissingFieldError{Field: field}
		}
	}
	return nil
}

// Submitting reports whether a submission is waiting for its response.
func (f *Form) Submitting() bool {
	return f.inFlight.Load() > 0
}

// Submit validates, sends the current record once and clears the fields on
// success. On failure nothing is cleared so the user can retry. Concurrent
// calls are not blocked.
func (f *Form) Submit(ctx context.Context, s Submitter) (*models.AppendConfirmation, error) {
	sub, err := f.snapshot()
	if err != nil {
		return nil, err
	}

	f.inFlight.Add(1)
	defer f.inFlight.Add(-1)

	conf, err := s.Submit(ctx, sub)
	if err != nil {
		return nil, err
	}
	f.Clear()
	return conf, nil
}

// snapshot validates and copies the fields under one lock.
func (f *Form) snapshot() (models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.validateLocked(); err != nil {
		return models.Submission{}, err
	}
	return f.recordLocked(), nil
}

func known(field Field) bool {
	for _, f := range Fields {
		if f == field {
			return true
		}
	}
	return false
}
