package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// enumValue is implemented by every closed enum type in pkg/models.
type enumValue interface {
	IsValid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names so errors match the request payload
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumValue)
		return ok && e.IsValid()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n >= models.MinLevel && n <= models.MaxLevel
	})
	return v
}

// validateStruct runs the struct tags and converts failures into a
// *ValidationError listing every violated rule.
func validateStruct(s any) *ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return &ValidationError{}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Errors: []FieldError{{Field: "base", Message: err.Error()}}}
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Add(fe.Field(), fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "can't be blank"
	case "enum":
		return "is not included in the list"
	case "level":
		return fmt.Sprintf("must be between %d and %d", models.MinLevel, models.MaxLevel)
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}

// constraintToValidation converts a uniqueness or check violation raised by
// the store into a ValidationError on field.
func constraintToValidation(err error, field, message string) error {
	if ent.IsConstraintError(err) {
		return NewValidationError(field, message)
	}
	var ve *ent.ValidationError
	if errors.As(err, &ve) {
		return NewValidationError(ve.Name, ve.Unwrap().Error())
	}
	return err
}

// refs are the optional weak references a record may carry.
type refs struct {
	invocation  *int
	issue       *int
	improvement *int
}

// checkReferences adds a violation for the agent and every weak reference
// that does not exist.
func checkReferences(ctx context.Context, client *ent.Client, verr *ValidationError, agentID int, r refs) error {
	if agentID != 0 {
		ok, err := agentExists(ctx, client, agentID)
		if err != nil {
			return err
		}
		if !ok {
			verr.Add("agent_id", "must exist")
		}
	}

	checks := []struct {
		field string
		id    *int
		exist func(int) (bool, error)
	}{
		{"agent_invocation_id", r.invocation, func(id int) (bool, error) {
			return client.AgentInvocation.Query().Where(agentinvocation.IDEQ(id)).Exist(ctx)
		}},
		{"agent_issue_id", r.issue, func(id int) (bool, error) {
			return client.AgentIssue.Query().Where(agentissue.IDEQ(id)).Exist(ctx)
		}},
		{"agent_improvement_id", r.improvement, func(id int) (bool, error) {
			return client.AgentImprovement.Query().Where(agentimprovement.IDEQ(id)).Exist(ctx)
		}},
	}
	for _, c := range checks {
		if c.id == nil {
			continue
		}
		ok, err := c.exist(*c.id)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", c.field, err)
		}
		if !ok {
			verr.Add(c.field, "must exist")
		}
	}
	return nil
}
