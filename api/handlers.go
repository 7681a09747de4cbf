package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/avelara/portfolio-backend/config"
	"github.com/avelara/portfolio-backend/database"
	"github.com/avelara/portfolio-backend/errs"
	"github.com/avelara/portfolio-backend/services"
)

var validate = newValidator()

var phonePattern = regexp.MustCompile(`^[+()\-\s0-9]*$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(cfg *config.Config, db database.Database) *routeHandlers {
	authService := services.NewAuthService(db.UserRepo(), cfg.JWTSecret, cfg.JWTExpiry)
	projectService := services.NewProjectService(db.ProjectRepo(), db.TechRepo())
	techService := services.NewTechService(db.TechRepo())
	profileService := services.NewProfileService(db.ProfileRepo())

	return &routeHandlers{
		authHandler:    newAuthHandler(authService, cfg),
		projectHandler: newProjectHandler(projectService),
		techHandler:    newTechHandler(techService),
		profileHandler: newProfileHandler(profileService),
	}
}

// decodeBody parses a JSON request body into dst and runs struct
// validation. Unknown keys are tolerated; malformed JSON and validation
// failures are reported as client errors.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewMalformedPayloadError("request", err)
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if ok := errors.As(err, &fieldErrs); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errs.NewInvalidFieldError(fe.Field(), "failed validation rule "+fe.Tag())
		}
		return errs.NewBadRequestError("invalid request body")
	}
	return nil
}
