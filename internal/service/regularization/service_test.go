package regularization

import (
	"context"
	"testing"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/regularization"
	"github.com/klipper-hq/klipper-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reason(s string) *string { return &s }

func TestSubmit_StoresCorrectedTimes(t *testing.T) {
	t.Parallel()

	svc := NewRegularizationService(memory.NewRegularizationStore())
	created, err := svc.Submit(context.Background(), regularization.SubmitRequest{
		EmployeeID: "emp-48",
		Date:       "2019-02-04",
		TimeIn:     "09:00",
		TimeOut:    "18:00",
		Reason:     reason("badge reader outage"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "emp-48", created.EmployeeID)
	assert.Equal(t, "2019-02-04", created.Date)
	assert.Equal(t, "09:00", created.TimeIn)
	assert.Equal(t, "18:00", created.TimeOut)
}

func TestSubmit_SecondSubmissionReplacesTheFirst(t *testing.T) {
	t.Parallel()

	svc := NewRegularizationService(memory.NewRegularizationStore())
	_, err := svc.Submit(context.Background(), regularization.SubmitRequest{
		EmployeeID: "emp-48", Date: "2019-02-04", TimeIn: "09:00", TimeOut: "17:00",
	})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), regularization.SubmitRequest{
		EmployeeID: "emp-48", Date: "2019-02-04", TimeIn: "09:30", TimeOut: "18:30",
	})
	require.NoError(t, err)

	listed, err := svc.ListForEmployee(context.Background(), "emp-48")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "09:30", listed[0].TimeIn)
	assert.Equal(t, "18:30", listed[0].TimeOut)
}

func TestSubmit_RejectsTimeOutBeforeTimeIn(t *testing.T) {
	t.Parallel()

	svc := NewRegularizationService(memory.NewRegularizationStore())
	_, err := svc.Submit(context.Background(), regularization.SubmitRequest{
		EmployeeID: "emp-48", Date: "2019-02-04", TimeIn: "18:00", TimeOut: "09:00",
	})
	assert.ErrorIs(t, err, regularization.ErrInvalidCorrectedTimes)
}

func TestSubmit_AllowsZeroTimeOutForOpenDays(t *testing.T) {
	t.Parallel()

	svc := NewRegularizationService(memory.NewRegularizationStore())
	created, err := svc.Submit(context.Background(), regularization.SubmitRequest{
		EmployeeID: "emp-48", Date: "2019-02-04", TimeIn: "09:00", TimeOut: "00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "00:00", created.TimeOut)
}

func TestSubmit_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	svc := NewRegularizationService(memory.NewRegularizationStore())

	_, err := svc.Submit(context.Background(), regularization.SubmitRequest{
		EmployeeID: "emp-48", Date: "Feb 4 2019", TimeIn: "09:00", TimeOut: "18:00",
	})
	assert.ErrorIs(t, err, regularization.ErrInvalidDate)

	_, err = svc.Submit(context.Background(), regularization.SubmitRequest{
		EmployeeID: "emp-48", Date: "2019-02-04", TimeIn: "9am", TimeOut: "18:00",
	})
	assert.ErrorIs(t, err, regularization.ErrInvalidTime)

	_, err = svc.Submit(context.Background(), regularization.SubmitRequest{
		EmployeeID: "emp-48", Date: "2019-02-04", TimeIn: "09:00", TimeOut: "half past six",
	})
	assert.ErrorIs(t, err, regularization.ErrInvalidTime)
}

func TestListForEmployee_SortedByDateAndScoped(t *testing.T) {
	t.Parallel()

	svc := NewRegularizationService(memory.NewRegularizationStore())
	for _, d := range []string{"2019-02-11", "2019-02-04"} {
		_, err := svc.Submit(context.Background(), regularization.SubmitRequest{
			EmployeeID: "emp-48", Date: d, TimeIn: "09:00", TimeOut: "18:00",
		})
		require.NoError(t, err)
	}
	_, err := svc.Submit(context.Background(), regularization.SubmitRequest{
		EmployeeID: "emp-99", Date: "2019-02-05", TimeIn: "09:00", TimeOut: "18:00",
	})
	require.NoError(t, err)

	listed, err := svc.ListForEmployee(context.Background(), "emp-48")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "2019-02-04", listed[0].Date)
	assert.Equal(t, "2019-02-11", listed[1].Date)
}
