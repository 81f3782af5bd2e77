package apperr

import "github.com/arivera-dev/inventario/pkg/zerror"

const (
	ValidationErrorCode   = "VALIDATION_FAILED"
	EmptyMessageErrorCode = "EMPTY_MESSAGE"
	DataAccessErrorCode   = "DATA_ACCESS_FAILED"
	AIServiceErrorCode    = "AI_SERVICE_FAILED"
)

var (
	ValidationErr   = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	EmptyMessageErr = zerror.NewBadRequest(EmptyMessageErrorCode, "message must not be empty")
	DataAccessErr   = zerror.NewInternalServerError(DataAccessErrorCode, "error querying the database")
	AIServiceErr    = zerror.NewInternalServerError(AIServiceErrorCode, "error calling the AI service")
)
