package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ChiranjeeviNanda/joineasy-task2/core"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/assignment"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/course"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/group"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/submission"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/user"
)

var (
	// a handler running without its course middleware is an integrity
	// failure, not a request error
	errCourseNotFoundInCtx = core.NewShutdownError("course object not found in echo.Context")

	contextCourseKey = "course"
)

type courseApi struct {
	conf     *core.Config
	usrSvc   *user.Service
	crsSvc   *course.Service
	asgSvc   *assignment.Service
	grpSvc   *group.Service
	subSvc   *submission.Service
	validate *validator.Validate
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := courseApi{
		conf:     deps.Conf,
		usrSvc:   deps.UserSvc,
		crsSvc:   deps.CourseSvc,
		asgSvc:   deps.AssignmentSvc,
		grpSvc:   deps.GroupSvc,
		subSvc:   deps.SubmissionSvc,
		validate: deps.Validate,
	}

	cg := g.Group("/courses", jwt)
	cg.GET("", api.query)

	// detail endpoints; the course must exist and the caller must either
	// teach it or be enrolled in it
	dg := cg.Group("/:id", api.ctxCourseMiddleware())
	dg.GET("/assignments", api.queryAssignments)
	dg.POST("/assignments", api.saveAssignment, professorMiddleware())
	dg.PUT("/assignments/:aid", api.saveAssignment, professorMiddleware())
	dg.DELETE("/assignments/:aid", api.destroyAssignment, professorMiddleware())
	dg.POST("/assignments/:aid/acknowledge", api.acknowledge, studentMiddleware())
	dg.GET("/groups", api.queryGroups, studentMiddleware())
	dg.POST("/groups", api.createOrJoinGroup, studentMiddleware())
	dg.GET("/groups/status", api.groupStatus, studentMiddleware())
}

// Handlers

func (api *courseApi) query(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	courses, err := api.crsSvc.QueryForUser(usr)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}

	resp := make([]CourseResponse, 0, len(courses))
	for _, crs := range courses {
		resp = append(resp, CourseResponse{
			Course:        crs,
			ProfessorName: api.crsSvc.ProfessorName(crs.ProfessorID),
		})
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *courseApi) queryAssignments(ctx echo.Context) error {
	crs, ok := ctx.Get(contextCourseKey).(course.Course)
	if !ok {
		return errors.Wrap(errCourseNotFoundInCtx, "retrieving course from context")
	}

	asgs, err := api.asgSvc.QueryByCourse(crs.ID)
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}

	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	resp := make([]AssignmentResponse, 0, len(asgs))
	for _, asg := range asgs {
		ar := AssignmentResponse{Assignment: asg}
		// progress analytics are a professor view
		if usr.IsProfessor() {
			progress, err := api.subSvc.Progress(asg, crs)
			if err != nil {
				return errors.Wrap(err, "computing progress")
			}
			ar.Progress = &progress
		}
		resp = append(resp, ar)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// ctxCourseMiddleware resolves the course and ensures the caller belongs to it.
func (api *courseApi) ctxCourseMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, err := getContextUser(ctx, api.usrSvc)
			if err != nil {
				return errors.Wrap(err, "getting context user")
			}

			crs, err := api.crsSvc.GetByID(ctx.Param("id"))
			if err != nil {
				if errors.Cause(err) == course.ErrNotFound {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding course by ID")
			}
			if crs.ProfessorID != usr.ID && !usr.EnrolledIn(crs.ID) {
				return errHttpNotFound
			}
			ctx.Set(contextCourseKey, crs)
			return next(ctx)
		}
	}
}

type (
	CourseResponse struct {
		course.Course
		ProfessorName string `json:"professor_name"`
	}

	AssignmentResponse struct {
		assignment.Assignment
		Progress *submission.Progress `json:"progress,omitempty"`
	}
)
