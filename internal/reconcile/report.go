package reconcile

import "github.com/xlab-si/nuagex/internal/nuagex"

// Report is the user-facing outcome of a reconciliation, shaped for JSON
// output. Lab fields are empty/absent when no lab exists.
type Report struct {
	Changed    bool               `json:"changed"`
	LabID      string             `json:"lab_id"`
	LabName    string             `json:"lab_name"`
	LabAddress string             `json:"lab_address"`
	LabWeb     *nuagex.WebAccess  `json:"lab_web,omitempty"`
	LabAMQP    *nuagex.AMQPAccess `json:"lab_amqp,omitempty"`
}

// Report shapes the result for output. Derived endpoints only make sense for
// a running lab with an address, so they are omitted otherwise.
func (r *Result) Report() Report {
	report := Report{Changed: r.Changed}
	if r.Lab == nil {
		return report
	}

	report.LabID = r.Lab.ID
	report.LabName = r.Lab.Name
	report.LabAddress = r.Lab.Address

	if r.Lab.Running() && r.Lab.Address != "" {
		web := r.Lab.Web()
		amqp := r.Lab.AMQP()
		report.LabWeb = &web
		report.LabAMQP = &amqp
	}
	return report
}
