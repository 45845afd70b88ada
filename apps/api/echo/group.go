package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ChiranjeeviNanda/joineasy-task2/core/course"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/group"
)

// queryGroups lists the course's groups so a student can pick one to join.
func (api *courseApi) queryGroups(ctx echo.Context) error {
	crs, ok := ctx.Get(contextCourseKey).(course.Course)
	if !ok {
		return errors.Wrap(errCourseNotFoundInCtx, "retrieving course from context")
	}

	groups, err := api.grpSvc.QueryByCourse(crs.ID)
	if err != nil {
		return errors.Wrap(err, "querying groups")
	}
	return ctx.JSON(http.StatusOK, groups)
}

func (api *courseApi) createOrJoinGroup(ctx echo.Context) error {
	crs, ok := ctx.Get(contextCourseKey).(course.Course)
	if !ok {
		return errors.Wrap(errCourseNotFoundInCtx, "retrieving course from context")
	}

	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data group.CreateOrJoinGroup
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CreateOrJoinGroup")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	grp, err := api.grpSvc.CreateOrJoin(crs.ID, usr, data)
	if err != nil {
		return errors.Wrap(err, "creating or joining group")
	}

	code := http.StatusOK
	if data.Action == group.ActionCreate {
		code = http.StatusCreated
	}
	return ctx.JSON(code, grp)
}

func (api *courseApi) groupStatus(ctx echo.Context) error {
	crs, ok := ctx.Get(contextCourseKey).(course.Course)
	if !ok {
		return errors.Wrap(errCourseNotFoundInCtx, "retrieving course from context")
	}

	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	status, err := api.grpSvc.StatusFor(crs.ID, usr.ID)
	if err != nil {
		return errors.Wrap(err, "getting group status")
	}
	return ctx.JSON(http.StatusOK, status)
}
