package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sm-customers/pkg/logger"
)

type fakeReporter struct {
	calls chan struct{}
	err   error
}

func (f *fakeReporter) Report(ctx context.Context) (int, error) {
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return 0, errors.New("sin deadline")
	}
	f.calls <- struct{}{}
	return 1, f.err
}

func TestScheduleReconciliation_IntervaloCeroNoRegistra(t *testing.T) {
	s, err := NewScheduler(time.Second, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.ScheduleReconciliation(0, &fakeReporter{}))

	_, ok := s.Job(ReconciliationJobName)
	assert.False(t, ok)
	require.NoError(t, s.Stop())
}

func TestScheduleReconciliation_EjecutaElInforme(t *testing.T) {
	s, err := NewScheduler(time.Second, logger.Nop())
	require.NoError(t, err)
	r := &fakeReporter{calls: make(chan struct{}, 1)}

	require.NoError(t, s.ScheduleReconciliation(time.Hour, r))
	job, ok := s.Job(ReconciliationJobName)
	require.True(t, ok)
	assert.Equal(t, ReconciliationJobName, job.Name())

	s.Start()
	defer func() { assert.NoError(t, s.Stop()) }()
	require.NoError(t, job.RunNow())

	select {
	case <-r.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("el informe no se ejecutó")
	}
}

func TestScheduleReconciliation_ErrorDelInformeSoloSeRegistra(t *testing.T) {
	s, err := NewScheduler(time.Second, logger.Nop())
	require.NoError(t, err)
	r := &fakeReporter{calls: make(chan struct{}, 1), err: errors.New("almacén caído")}

	require.NoError(t, s.ScheduleReconciliation(time.Hour, r))
	job, _ := s.Job(ReconciliationJobName)

	s.Start()
	require.NoError(t, job.RunNow())
	select {
	case <-r.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("el informe no se ejecutó")
	}
	assert.NoError(t, s.Stop())
}
