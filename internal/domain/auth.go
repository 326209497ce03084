package domain

// SubjectType identifies what kind of principal a token was issued to.
type SubjectType string

const (
	SubjectTypeEmployee SubjectType = "EMPLOYEE"
)
