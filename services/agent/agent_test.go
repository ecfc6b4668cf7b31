package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autointake/models"
	"autointake/services/driver"
	"autointake/services/generator"
)

const generatedRecord = `{
  "customerName": "Alex Morgan",
  "phoneNumber": "555-201-3344",
  "email": "alex.morgan@example.com",
  "make": "Toyota",
  "model": "Camry",
  "year": 2018,
  "mileage": 64500,
  "serviceType": "Brake Service",
  "urgency": "Urgent",
  "problemDescription": "Brake pedal feels soft and the car takes longer to stop than usual."
}`

type stubBackend struct {
	text string
	err  error
}

func (s *stubBackend) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

// fakeSession satisfies PageSession and records how much of the form run
// reached it.
type fakeSession struct {
	ops    []string
	failOn string
	err    error
	closed bool
}

func (s *fakeSession) touch(selector string) error {
	if s.failOn != "" && selector == s.failOn {
		return s.err
	}
	s.ops = append(s.ops, selector)
	return nil
}

func (s *fakeSession) Fill(ctx context.Context, selector, value string) error {
	return s.touch(selector)
}

func (s *fakeSession) SelectOption(ctx context.Context, selector, value string) error {
	return s.touch(selector)
}

func (s *fakeSession) Click(ctx context.Context, selector string) error {
	return s.touch(selector)
}

func (s *fakeSession) WaitForVisible(ctx context.Context, selector string) error {
	return s.touch(selector)
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

func newTestService(backend *stubBackend, session *fakeSession) (*Service, *int) {
	opens := 0
	open := func(ctx context.Context, url string) (PageSession, error) {
		opens++
		return session, nil
	}
	return New(generator.NewService(backend), open, "http://localhost:3000"), &opens
}

func TestRun_Success(t *testing.T) {
	session := &fakeSession{}
	svc, opens := newTestService(&stubBackend{text: generatedRecord}, session)

	rec, err := svc.Run(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Alex Morgan", rec.CustomerName)
	assert.Equal(t, 1, *opens)
	assert.True(t, session.closed)
	assert.Contains(t, session.ops, ".submit-btn")
}

func TestRun_OverridesApplied(t *testing.T) {
	session := &fakeSession{}
	svc, _ := newTestService(&stubBackend{text: generatedRecord}, session)

	name := "Jane Doe"
	urgency := "Emergency"
	rec, err := svc.Run(context.Background(), &models.ServiceRequestPatch{
		CustomerName: &name,
		Urgency:      &urgency,
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", rec.CustomerName)
	assert.Equal(t, "Emergency", rec.Urgency)
	// Generated values survive where no override exists.
	assert.Equal(t, "Toyota", rec.Make)
}

func TestRun_BackendFailure(t *testing.T) {
	session := &fakeSession{}
	svc, opens := newTestService(&stubBackend{err: errors.New("quota exceeded")}, session)

	_, err := svc.Run(context.Background(), nil)

	var gerr *GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, 0, *opens, "no browser session on generation failure")
}

func TestRun_UnparseableOutput(t *testing.T) {
	session := &fakeSession{}
	svc, _ := newTestService(&stubBackend{text: "sorry, cannot help with that"}, session)

	_, err := svc.Run(context.Background(), nil)

	var gerr *GenerationError
	require.ErrorAs(t, err, &gerr)
	var perr *generator.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestRun_MergedRecordFailsValidation(t *testing.T) {
	session := &fakeSession{}
	svc, opens := newTestService(&stubBackend{text: generatedRecord}, session)

	year := 2031
	_, err := svc.Run(context.Background(), &models.ServiceRequestPatch{Year: &year})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "year", verr.Fields[0].Field)
	assert.Equal(t, 0, *opens, "no browser session on validation failure")
}

func TestRun_GeneratorOmittedRequiredField(t *testing.T) {
	// Generated record missing problemDescription fails strict validation
	// even with no overrides at all.
	incomplete := `{"customerName":"Alex Morgan","phoneNumber":"555-201-3344",
		"email":"alex.morgan@example.com","make":"Toyota","model":"Camry",
		"year":2018,"mileage":64500,"serviceType":"Brake Service","urgency":"Urgent"}`
	svc, opens := newTestService(&stubBackend{text: incomplete}, &fakeSession{})

	_, err := svc.Run(context.Background(), nil)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, *opens)
}

func TestRun_OpenPageFailure(t *testing.T) {
	boom := errors.New("browser failed to launch")
	open := func(ctx context.Context, url string) (PageSession, error) {
		return nil, boom
	}
	svc := New(generator.NewService(&stubBackend{text: generatedRecord}), open, "http://localhost:3000")

	_, err := svc.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRun_DriveFailureClosesSession(t *testing.T) {
	boom := errors.New("element not found")
	session := &fakeSession{failOn: "#problemDescription", err: boom}
	svc, _ := newTestService(&stubBackend{text: generatedRecord}, session)

	_, err := svc.Run(context.Background(), nil)

	var derr *driver.Error
	require.ErrorAs(t, err, &derr)
	assert.True(t, session.closed, "session released even when the drive fails")
}
