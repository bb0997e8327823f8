package expense

import "errors"

var (
	ErrExpenseNotFound = errors.New("monthly expense entry not found")
)
