package dailylog

import "errors"

var (
	ErrDailyLogNotFound = errors.New("daily log not found")

	// Authorization failures. Reported before any state check so a caller who
	// is both unauthorized and late still gets the authorization error.
	ErrNotLogOwner           = errors.New("daily log does not belong to this employee")
	ErrNotAuthorizedToVerify = errors.New("not authorized to verify this daily log")

	// Invalid state transitions.
	ErrLogAlreadyVerified   = errors.New("daily log has already been verified")
	ErrApprovedLogImmutable = errors.New("approved daily log can not be modified")
)
