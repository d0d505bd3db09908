package cli

import "fmt"

type notSignedInError struct{}

func (notSignedInError) Error() string {
	return "not signed in: run `opslog login` first"
}

func errNotSignedIn() error { return notSignedInError{} }

type sessionExpiredError struct {
	detail string
}

func (e sessionExpiredError) Error() string {
	return fmt.Sprintf("session invalid (%s); credentials cleared, run `opslog login` again", e.detail)
}

func errSessionExpired(detail string) error { return sessionExpiredError{detail: detail} }

type missingFlagError struct {
	flag string
}

func (e missingFlagError) Error() string {
	return fmt.Sprintf("required flag missing: --%s", e.flag)
}

func errMissingFlag(flag string) error { return missingFlagError{flag: flag} }
