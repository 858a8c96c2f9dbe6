package session

// Role names carried in the auth token. The backend enforces the real
// permissions; these only gate which screens this service serves.
const (
	RoleEmployee = "employee"
	RoleHR       = "hr"
	RoleAgent    = "agent"
)

// Context identifies the caller for the duration of one request or one
// questionnaire session. It is passed explicitly to every collaborator
// instead of being read from ambient storage.
type Context struct {
	AuthToken string
	UserID    string
	Username  string
	Role      string
}

func (c Context) IsReviewer() bool {
	return c.Role == RoleHR || c.Role == RoleAgent
}
