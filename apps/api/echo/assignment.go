package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ChiranjeeviNanda/joineasy-task2/core/assignment"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/course"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/submission"
)

// saveAssignment handles both creation (POST) and editing (PUT with :aid).
// Only the course's own professor may mutate its assignments.
func (api *courseApi) saveAssignment(ctx echo.Context) error {
	crs, ok := ctx.Get(contextCourseKey).(course.Course)
	if !ok {
		return errors.Wrap(errCourseNotFoundInCtx, "retrieving course from context")
	}

	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if crs.ProfessorID != usr.ID {
		return errHttpForbidden
	}

	var data assignment.AssignmentData
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AssignmentData")
	}
	data.ID = ctx.Param("aid") // empty on POST
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	asg, err := api.asgSvc.CreateOrUpdate(crs, data)
	if err != nil {
		return errors.Wrap(err, "saving assignment")
	}

	code := http.StatusOK
	if ctx.Request().Method == http.MethodPost {
		code = http.StatusCreated
	}
	return ctx.JSON(code, asg)
}

func (api *courseApi) destroyAssignment(ctx echo.Context) error {
	crs, ok := ctx.Get(contextCourseKey).(course.Course)
	if !ok {
		return errors.Wrap(errCourseNotFoundInCtx, "retrieving course from context")
	}

	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if crs.ProfessorID != usr.ID {
		return errHttpForbidden
	}

	if err := api.asgSvc.Delete(crs.ID, ctx.Param("aid")); err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *courseApi) acknowledge(ctx echo.Context) error {
	crs, ok := ctx.Get(contextCourseKey).(course.Course)
	if !ok {
		return errors.Wrap(errCourseNotFoundInCtx, "retrieving course from context")
	}

	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	ack, err := api.subSvc.Acknowledge(ctx.Param("aid"), crs.ID, usr)
	if err != nil {
		// already satisfied; not an error state for the caller
		if errors.Cause(err) == submission.ErrAlreadyAcknowledged {
			return ctx.JSON(http.StatusOK, AcknowledgeResponse{
				Info:           err.Error(),
				Acknowledgment: ack,
			})
		}
		return errors.Wrap(err, "acknowledging submission")
	}
	return ctx.JSON(http.StatusCreated, AcknowledgeResponse{Acknowledgment: ack})
}

type AcknowledgeResponse struct {
	Info           string                    `json:"info,omitempty"`
	Acknowledgment submission.Acknowledgment `json:"acknowledgment"`
}
