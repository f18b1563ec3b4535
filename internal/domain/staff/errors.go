package staff

import "errors"

var (
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrStaffRetired       = errors.New("staff member has retired")
	ErrInvalidPayItemType = errors.New("pay item type must be allowance or deduction")
)
