package handlers

import (
	"errors"
	"gestao_obras/internal/adapter/http/dto/request"
	"gestao_obras/internal/adapter/http/middleware"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/domain/ledger"
	"gestao_obras/internal/domain/workflow"
	"gestao_obras/pkg"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Malformed JSON payload", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(request.Date); ok {
			return d.Time
		}
		return nil
	}, request.Date{})
	return v
}

// bindAndValidate decodes the JSON body into dst and runs its validate tags.
// It writes the error response itself and reports whether the handler may go on.
func bindAndValidate(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, errInvalidPayload)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeError(c, errInvalidPayload)
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldPath(fe)] = fieldMessage(fe)
		}
		writeError(c, pkg.NewValidationError(fields))
		return false
	}
	return true
}

// fieldPath drops the top-level struct name: "ExpenseRequest.amount" -> "amount".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + fe.Param() + " item(s)"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// actorOrAbort reads the authenticated actor set by the JWT middleware.
func actorOrAbort(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
	}
	return actor, ok
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// respondError maps err with the handler's specific mapper first and falls
// back to the error category.
func respondError(c *gin.Context, err error, specific func(error) *pkg.AppError) {
	var appErr *pkg.AppError
	if specific != nil {
		appErr = specific(err)
	}
	if appErr == nil {
		appErr = mapDomainError(err)
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Str("code", appErr.Code).Msg("request failed")
	}
	writeError(c, appErr)
}

func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, workflow.ErrInsufficientRole):
		return pkg.NewDomainError("INSUFFICIENT_ROLE", "Your role cannot act on this approval stage", err, http.StatusForbidden)
	case errors.Is(err, ledger.ErrProjectLocked):
		return pkg.NewDomainError("PROJECT_LOCKED", "Project no longer accepts expense changes", err, http.StatusForbidden)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", publicMessage(err), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrPermission):
		return pkg.NewDomainError("FORBIDDEN", publicMessage(err), err, http.StatusForbidden)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", publicMessage(err), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", publicMessage(err), err, http.StatusConflict)
	case errors.Is(err, entities.ErrIntegration):
		return pkg.NewDomainError("INTEGRATION_UNAVAILABLE", "External provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// publicMessage strips the category prefix: "validation error: name is required" -> "name is required".
func publicMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
