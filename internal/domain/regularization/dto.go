package regularization

type SubmitRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	TimeIn     string  `json:"time_in"`
	TimeOut    string  `json:"time_out"`
	Reason     *string `json:"reason,omitempty"`
}

type RegularizationResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	TimeIn     string  `json:"time_in"`
	TimeOut    string  `json:"time_out"`
	Reason     *string `json:"reason,omitempty"`
}

func (r Regularization) ToResponse() RegularizationResponse {
	return RegularizationResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date.Format("2006-01-02"),
		TimeIn:     r.TimeIn.String(),
		TimeOut:    r.TimeOut.String(),
		Reason:     r.Reason,
	}
}
