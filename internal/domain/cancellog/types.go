package cancellog

import "errors"

type Method string

const (
	MethodSelfService   Method = "self_service"
	MethodAdminOverride Method = "admin_override"
	MethodSystem        Method = "system"
)

const (
	DefaultAdminReason  = "canceled by administrator"
	DefaultSystemReason = "canceled by system"
)

var (
	ErrInvalidMethod  = errors.New("invalid cancel method")
	ErrReasonRequired = errors.New("cancel reason is required")
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodSelfService, MethodAdminOverride, MethodSystem:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", ErrInvalidMethod
	}
	return m, nil
}
