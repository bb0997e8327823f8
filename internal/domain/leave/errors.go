package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrLeaveSettingsNotFound = errors.New("leave settings not found")
	ErrLeaveBalanceNotFound  = errors.New("leave balance not found")
)
