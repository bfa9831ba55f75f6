package main

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/cgpa/core"
)

// describeError flattens validation errors into a single readable error, eg.
// "invalid input: completed_semesters: completed semesters must be ...".
func (cli *commandLine) describeError(err error) error {
	var fldErrs map[string]string
	switch vErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		fldErrs = core.FieldErrors(vErr, cli.translator)
	case *core.ValidationError:
		fldErrs = make(map[string]string, len(vErr.Fields))
		for _, fe := range vErr.Fields {
			fldErrs[fe.Field] = fe.Error
		}
		if len(fldErrs) == 0 {
			return errors.Errorf("invalid input: %s", vErr.Error())
		}
	default:
		return err
	}

	fields := make([]string, 0, len(fldErrs))
	for f := range fldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f+": "+fldErrs[f])
	}
	return errors.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}
