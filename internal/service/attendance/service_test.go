package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/attendance"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/employee"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/leave"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/regularization"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/timeutil"
	"github.com/klipper-hq/klipper-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reason(s string) *string { return &s }

type serviceFixture struct {
	events          *memory.AccessEventStore
	employees       *memory.EmployeeStore
	departments     *memory.DepartmentStore
	leaves          *memory.LeaveStore
	regularizations *memory.RegularizationStore
	svc             *AttendanceServiceImpl
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		events:          memory.NewAccessEventStore(),
		employees:       memory.NewEmployeeStore(),
		departments:     memory.NewDepartmentStore(),
		leaves:          memory.NewLeaveStore(),
		regularizations: memory.NewRegularizationStore(),
	}
	f.svc = NewAttendanceService(f.events, f.employees, f.departments, f.leaves, f.regularizations)

	f.departments.Add(
		deptWithShift(softwareDept),
		deptWithShift(designDept),
		deptWithShift(serviceDept),
	)
	f.employees.Add(
		employee.Employee{ID: "emp-sw", EmployeeCode: "SW-001", FullName: "Ada Byron", DepartmentID: softwareDept.ID},
		employee.Employee{ID: "emp-ds", EmployeeCode: "DS-001", FullName: "Ray Eames", DepartmentID: designDept.ID},
		employee.Employee{ID: "emp-sv", EmployeeCode: "SV-001", FullName: "Sam Ohm", DepartmentID: serviceDept.ID},
	)
	return f
}

func (f *serviceFixture) swipe(employeeID string, day time.Time, hour, minute int, category attendance.AccessPointCategory) {
	f.events.Add(attendance.AccessEvent{
		EmployeeID:  employeeID,
		Timestamp:   time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC),
		AccessPoint: category,
	})
}

func TestReportForDateRange_SoftwareSaturdayIsAllOvertime(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	saturday := date(2019, time.February, 2)
	f.swipe("emp-sw", saturday, 12, 10, attendance.CategoryMain)
	f.swipe("emp-sw", saturday, 16, 11, attendance.CategoryMain)

	report, err := f.svc.ReportForDateRange(context.Background(), "emp-sw", saturday, saturday)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)

	record := report.Records[0]
	assert.Equal(t, attendance.NonWorkingDay, record.DayStatus)
	assert.Equal(t, timeutil.New(12, 10), record.TimeIn)
	assert.Equal(t, timeutil.New(16, 11), record.TimeOut)
	assert.Equal(t, timeutil.New(4, 1), record.WorkingHours)
	assert.Equal(t, timeutil.New(4, 1), record.OverTime)
	assert.True(t, record.LateBy.IsZero())
}

func TestReportForDateRange_DesignSaturdayMatchesSoftware(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	saturday := date(2019, time.February, 2)
	f.swipe("emp-ds", saturday, 12, 10, attendance.CategoryMain)
	f.swipe("emp-ds", saturday, 16, 11, attendance.CategoryMain)

	report, err := f.svc.ReportForDateRange(context.Background(), "emp-ds", saturday, saturday)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)

	record := report.Records[0]
	assert.Equal(t, attendance.NonWorkingDay, record.DayStatus)
	assert.Equal(t, timeutil.New(4, 1), record.OverTime)
}

func TestReportForDateRange_ServiceFirstSaturdayIsWorking(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	saturday := date(2019, time.February, 2)
	f.swipe("emp-sv", saturday, 12, 10, attendance.CategoryMain)
	f.swipe("emp-sv", saturday, 16, 11, attendance.CategoryMain)

	report, err := f.svc.ReportForDateRange(context.Background(), "emp-sv", saturday, saturday)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)

	record := report.Records[0]
	assert.Equal(t, attendance.WorkingDay, record.DayStatus)
	assert.Equal(t, timeutil.New(4, 1), record.WorkingHours)
	assert.Equal(t, timeutil.New(3, 10), record.LateBy)
	assert.True(t, record.OverTime.IsZero())
}

func TestReportForDateRange_ServiceSecondSaturdayIsOff(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	saturday := date(2019, time.February, 9)
	f.swipe("emp-sv", saturday, 12, 10, attendance.CategoryMain)
	f.swipe("emp-sv", saturday, 16, 11, attendance.CategoryMain)

	report, err := f.svc.ReportForDateRange(context.Background(), "emp-sv", saturday, saturday)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)
	assert.Equal(t, attendance.NonWorkingDay, report.Records[0].DayStatus)
	assert.Equal(t, timeutil.New(4, 1), report.Records[0].OverTime)
}

func TestReportForDateRange_OneRecordPerDayIncludingEmptyDays(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	from := date(2019, time.February, 4)
	to := date(2019, time.February, 8)
	f.swipe("emp-sw", date(2019, time.February, 5), 9, 0, attendance.CategoryMain)
	f.swipe("emp-sw", date(2019, time.February, 5), 18, 0, attendance.CategoryMain)

	report, err := f.svc.ReportForDateRange(context.Background(), "emp-sw", from, to)
	require.NoError(t, err)
	require.Len(t, report.Records, 5)

	for i, record := range report.Records {
		assert.Equal(t, from.AddDate(0, 0, i), record.Date)
	}
	assert.True(t, report.Records[0].TimeIn.IsZero())
	assert.Equal(t, timeutil.New(9, 0), report.Records[1].TimeIn)
	assert.Equal(t, timeutil.New(9, 0), report.Records[1].WorkingHours)
	assert.True(t, report.Records[2].TimeIn.IsZero())
	assert.Equal(t, attendance.WorkingDay, report.Records[4].DayStatus)
}

func TestReportForDateRange_ReversedRange(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	_, err := f.svc.ReportForDateRange(context.Background(),
		"emp-sw", date(2019, time.February, 9), date(2019, time.February, 2))
	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
}

func TestReportForDateRange_UnknownEmployee(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	day := date(2019, time.February, 4)
	_, err := f.svc.ReportForDateRange(context.Background(), "emp-missing", day, day)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestReportForDateRange_RegularizationOverridesSwipedTimes(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	monday := date(2019, time.February, 4)
	f.swipe("emp-sw", monday, 11, 30, attendance.CategoryMain)
	f.swipe("emp-sw", monday, 14, 0, attendance.CategoryMain)
	_, err := f.regularizations.Upsert(context.Background(), regularization.Regularization{
		ID:         "reg-1",
		EmployeeID: "emp-sw",
		Date:       monday,
		TimeIn:     timeutil.New(9, 0),
		TimeOut:    timeutil.New(18, 0),
		Reason:     reason("badge left at home"),
	})
	require.NoError(t, err)

	report, err := f.svc.ReportForDateRange(context.Background(), "emp-sw", monday, monday)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)

	record := report.Records[0]
	assert.Equal(t, timeutil.New(9, 0), record.TimeIn)
	assert.Equal(t, timeutil.New(18, 0), record.TimeOut)
	assert.Equal(t, timeutil.New(9, 0), record.WorkingHours)
	assert.True(t, record.LateBy.IsZero())
}

func TestReportForDateRange_ApprovedLeaveMarksTheDay(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	monday := date(2019, time.February, 4)
	_, err := f.leaves.Create(context.Background(), leave.Leave{
		ID:         "leave-1",
		EmployeeID: "emp-sw",
		Date:       monday,
		Status:     leave.StatusApproved,
	})
	require.NoError(t, err)

	report, err := f.svc.ReportForDateRange(context.Background(), "emp-sw", monday, monday)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)
	assert.True(t, report.Records[0].OnLeave)
	assert.Equal(t, attendance.WorkingDay, report.Records[0].DayStatus)
}

func TestReportForDateRange_CancelledLeaveIsIgnored(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	monday := date(2019, time.February, 4)
	_, err := f.leaves.Create(context.Background(), leave.Leave{
		ID:         "leave-1",
		EmployeeID: "emp-sw",
		Date:       monday,
		Status:     leave.StatusCancelled,
	})
	require.NoError(t, err)

	report, err := f.svc.ReportForDateRange(context.Background(), "emp-sw", monday, monday)
	require.NoError(t, err)
	require.Len(t, report.Records, 1)
	assert.False(t, report.Records[0].OnLeave)
}

func TestReportForDateRange_CancelledContextReturnsPartialReport(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := f.svc.ReportForDateRange(ctx,
		"emp-sw", date(2019, time.February, 4), date(2019, time.February, 8))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Records)
	assert.Equal(t, "emp-sw", report.EmployeeID)
}

func TestReportForLastNDays(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	report, err := f.svc.ReportForLastNDays(context.Background(), "emp-sw", 7)
	require.NoError(t, err)
	require.Len(t, report.Records, 7)

	today := time.Now().UTC()
	last := report.Records[len(report.Records)-1].Date
	assert.Equal(t, today.Format("2006-01-02"), last.Format("2006-01-02"))
}

func TestReportForLastNDays_RejectsNonPositiveDays(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	for _, days := range []int{0, -3} {
		_, err := f.svc.ReportForLastNDays(context.Background(), "emp-sw", days)
		assert.ErrorIs(t, err, attendance.ErrInvalidDays)
	}
}

func TestAccessPointDetails_PairsSwipesForTheDay(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	day := date(2018, time.October, 1)
	f.swipe("emp-sw", day, 8, 0, attendance.CategoryMain)
	f.swipe("emp-sw", day, 11, 21, attendance.CategoryRecreation)
	f.swipe("emp-sw", day, 11, 35, attendance.CategoryRecreation)
	f.swipe("emp-sw", day, 17, 30, attendance.CategoryMain)
	// A swipe on another day must not leak in.
	f.swipe("emp-sw", day.AddDate(0, 0, 1), 9, 0, attendance.CategoryMain)

	segments, err := f.svc.AccessPointDetails(context.Background(), "emp-sw", day)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, attendance.CategoryMain, segments[0].AccessPoint)
	assert.Equal(t, timeutil.New(8, 0), segments[0].TimeIn)
	assert.Equal(t, timeutil.New(17, 30), segments[0].TimeOut)
	assert.Equal(t, attendance.CategoryRecreation, segments[1].AccessPoint)
	assert.Equal(t, timeutil.New(0, 14), segments[1].TimeSpend)
}

func TestAccessPointDetails_UnknownEmployee(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	_, err := f.svc.AccessPointDetails(context.Background(), "emp-missing", date(2018, time.October, 1))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
