package attendance

// Response DTOs returned by the HTTP layer. Dates are "2006-01-02", times
// are "HH:MM".

type PerDayAttendanceRecordResponse struct {
	Date         string `json:"date"`
	TimeIn       string `json:"time_in"`
	TimeOut      string `json:"time_out"`
	WorkingHours string `json:"working_hours"`
	OverTime     string `json:"over_time"`
	LateBy       string `json:"late_by"`
	DayStatus    string `json:"day_status"`
	OnLeave      bool   `json:"on_leave"`
}

type ReportResponse struct {
	EmployeeID string                           `json:"employee_id"`
	From       string                           `json:"from"`
	To         string                           `json:"to"`
	Records    []PerDayAttendanceRecordResponse `json:"records"`
}

type AccessPointSegmentResponse struct {
	AccessPoint string `json:"access_point"`
	TimeIn      string `json:"time_in"`
	TimeOut     string `json:"time_out"`
	TimeSpend   string `json:"time_spend"`
}

func (r Report) ToResponse() ReportResponse {
	records := make([]PerDayAttendanceRecordResponse, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, PerDayAttendanceRecordResponse{
			Date:         rec.Date.Format("2006-01-02"),
			TimeIn:       rec.TimeIn.String(),
			TimeOut:      rec.TimeOut.String(),
			WorkingHours: rec.WorkingHours.String(),
			OverTime:     rec.OverTime.String(),
			LateBy:       rec.LateBy.String(),
			DayStatus:    string(rec.DayStatus),
			OnLeave:      rec.OnLeave,
		})
	}
	return ReportResponse{
		EmployeeID: r.EmployeeID,
		From:       r.From.Format("2006-01-02"),
		To:         r.To.Format("2006-01-02"),
		Records:    records,
	}
}

func SegmentsToResponse(segments []AccessPointSegment) []AccessPointSegmentResponse {
	out := make([]AccessPointSegmentResponse, 0, len(segments))
	for _, s := range segments {
		out = append(out, AccessPointSegmentResponse{
			AccessPoint: string(s.AccessPoint),
			TimeIn:      s.TimeIn.String(),
			TimeOut:     s.TimeOut.String(),
			TimeSpend:   s.TimeSpend.String(),
		})
	}
	return out
}
