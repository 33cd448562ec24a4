package domain

// Principal is the authenticated caller as seen by the authorization guard.
// The variant set is closed: guards switch over these types instead of
// inspecting role strings and optional fields.
type Principal interface {
	isPrincipal()
}

// CompanyPrincipal is a caller acting through a resolved company profile.
type CompanyPrincipal struct {
	CompanyID int64
}

// CandidatePrincipal is a caller acting through a resolved candidate profile.
type CandidatePrincipal struct {
	CandidateID int64
}

// OtherPrincipal is any authenticated caller with no ownership stake in
// applications. Admins fall in here: they are denied application access,
// matching the observed behavior of the system this replaces.
type OtherPrincipal struct {
	Role string
}

func (CompanyPrincipal) isPrincipal()   {}
func (CandidatePrincipal) isPrincipal() {}
func (OtherPrincipal) isPrincipal()     {}

// CanReadApplication reports whether p owns app through the job's company
// or through the candidate.
func CanReadApplication(p Principal, app *Application) bool {
	switch pr := p.(type) {
	case CompanyPrincipal:
		return pr.CompanyID == app.JobCompanyID
	case CandidatePrincipal:
		return pr.CandidateID == app.CandidateID
	default:
		return false
	}
}

// CanWriteApplicationStatus reports whether p may change app's status.
// Only the company owning the job may; candidates can create and read
// their applications but never move them.
func CanWriteApplicationStatus(p Principal, app *Application) bool {
	pr, ok := p.(CompanyPrincipal)
	return ok && pr.CompanyID == app.JobCompanyID
}
