package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDateLocked         = errors.New("attendance date is outside the editable window")
	ErrInvalidStatus      = errors.New("invalid attendance status")
	ErrUnknownEmployee    = errors.New("employee does not belong to this company")
)
