package domain

import (
	"fmt"
	"regexp"

	"gitee.com/flycash/review-reminder/internal/errs"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Person 请求里的参与方，邮箱加显示名
type Person struct {
	Name  string
	Email string
}

func (p Person) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: Name 不能为空", errs.ErrInvalidParameter)
	}
	if p.Email == "" {
		return fmt.Errorf("%w: Email 不能为空", errs.ErrInvalidParameter)
	}
	if !emailPattern.MatchString(p.Email) {
		return fmt.Errorf("%w: Email = %q", errs.ErrInvalidParameter, p.Email)
	}
	return nil
}
