package domain

import "time"

// ApplicantStatus is the derived view of an applicant's most recent
// submission. It is computed from stored rows and never persisted.
type ApplicantStatus struct {
	NUID             string        `json:"nuid"`
	Name             string        `json:"name"`
	OK               bool          `json:"ok"`
	TimeToCompletion time.Duration `json:"time_to_completion"`
}

// NewApplicantStatus builds an ApplicantStatus from an applicant's
// registration time and a submission. The time to completion is clamped
// to zero when the submission timestamp precedes the registration
// timestamp, which can happen with clock skew or bad data.
func NewApplicantStatus(
	nuid, name string,
	ok bool,
	registrationTime, submissionTime time.Time,
) ApplicantStatus {
	timeToCompletion := submissionTime.Sub(registrationTime)
	if timeToCompletion < 0 {
		timeToCompletion = 0
	}

	return ApplicantStatus{
		NUID:             nuid,
		Name:             name,
		OK:               ok,
		TimeToCompletion: timeToCompletion,
	}
}
