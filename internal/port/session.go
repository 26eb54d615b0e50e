package port

// SessionControl ends a user's interactive sessions on the local machine,
// so an applied lockout takes effect immediately rather than at next logon.
type SessionControl interface {
	LogoffUser(username string) error
}
