package service

import (
	"Agora/pkg/errorx"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 和 gin 的 binding 共用同一套 tag
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errorx.NewValidation(fe.Field(), "failed on '"+fe.Tag()+"'")
	}
	return errorx.NewValidation("", err.Error())
}

// requireText 去掉首尾空白后不能为空
func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", errorx.NewValidation(field, "must not be blank")
	}
	return v, nil
}
