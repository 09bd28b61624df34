package events

import "time"

const (
	SalaryRecordCreatedTopic = "hr.salary.record.created.v1"
	SalaryRecordCreatedType  = "salary_record_created"
)

type SalaryRecordCreatedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	SalaryRecordID string    `json:"salary_record_id"`
	EmployeeID     string    `json:"employee_id"`
	SalaryPeriod   string    `json:"salary_period"`
	NetSalary      string    `json:"net_salary"`
	OccurredAt     time.Time `json:"occurred_at"`
}
