// Package domain defines the core business entities of the applicant
// challenge system: applicants, their challenges and canonical solutions,
// recorded submissions, and the derived applicant status view.
package domain
