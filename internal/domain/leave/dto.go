package leave

type ApplyLeaveRequest struct {
	Date   string  `json:"date"`
	Remark *string `json:"remark,omitempty"`
}

type OverrideLeaveRequest struct {
	Status string  `json:"status"`
	Remark *string `json:"remark,omitempty"`
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Remark     *string `json:"remark,omitempty"`
}

func (l Leave) ToResponse() LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Date:       l.Date.Format("2006-01-02"),
		Status:     string(l.Status),
		Remark:     l.Remark,
	}
}
