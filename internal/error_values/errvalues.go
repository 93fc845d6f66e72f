package errorvalues

import "errors"

var (
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrDeviceRegistered = errors.New("device is already bound to an employee")
	ErrEmployeeIDTaken  = errors.New("employee id is already taken")
	ErrInvalidStatus    = errors.New("status must be Active or Inactive")

	ErrStreakNotFound     = errors.New("no streak recorded for user")
	ErrStaleActivityDate  = errors.New("activity date is earlier than the last recorded one")
	ErrAchievementExists  = errors.New("achievement already awarded")
	ErrMilestoneNotFound  = errors.New("milestone doesn't exist")
	ErrStepRecordNotFound = errors.New("no step record for that day")
	ErrSettingsNotFound   = errors.New("no global settings configured")
	ErrInvalidDateRange   = errors.New("range end is before range start")

	ErrInvalidToken = errors.New("invalid device token")
)
