package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/ChiranjeeviNanda/joineasy-task2/apps/api/echo"
	"github.com/ChiranjeeviNanda/joineasy-task2/core"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/assignment"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/course"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/group"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/submission"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/user"
	emailsvc "github.com/ChiranjeeviNanda/joineasy-task2/services/email"
	inmemdb "github.com/ChiranjeeviNanda/joineasy-task2/storage/database/inmem"
)

var (
	conf = &core.Config{
		TestMode:  true,
		Env:       "TEST",
		AppName:   "JoinEasy",
		SecretKey: "5ecr3t",
		Server: core.ServerConfig{
			JWTExpirationDelta:        1 * time.Hour,
			JWTRefreshExpirationDelta: 4 * time.Hour,
		},
	}

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errPermDenied   = httpErr{Error: "permission denied"}
	errNotFound     = httpErr{Error: "not found"}

	reqMsg = "this field is required"
)

// testApp bundles a freshly seeded server with its repositories so tests can
// read expected state straight from the store.
type testApp struct {
	server  *echoapi.Server
	usrRepo *inmemdb.UserRepository
	crsRepo *inmemdb.CourseRepository
	asgRepo *inmemdb.AssignmentRepository
	grpRepo *inmemdb.GroupRepository
	ackRepo *inmemdb.AcknowledgmentRepository
}

func (app *testApp) ServeHTTP(rec *httptest.ResponseRecorder, req *http.Request) {
	app.server.ServeHTTP(rec, req)
}

// setup builds a server on a fresh seeded store. Each test gets its own so
// mutations cannot leak across tests.
func setup(t *testing.T) *testApp {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup(): %v", err)
	}
	if err = inmemdb.LoadFixtures(db); err != nil {
		t.Fatalf("setup(): %v", err)
	}

	usrRepo := inmemdb.NewUserRepository(db)
	crsRepo := inmemdb.NewCourseRepository(db)
	asgRepo := inmemdb.NewAssignmentRepository(db)
	grpRepo := inmemdb.NewGroupRepository(db)
	ackRepo := inmemdb.NewAcknowledgmentRepository(db)

	emailsvc.ClearSentMessages()
	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:          conf,
		Logger:        nopLogger{},
		UserSvc:       user.NewService(usrRepo, conf),
		CourseSvc:     course.NewService(crsRepo, usrRepo),
		AssignmentSvc: assignment.NewService(asgRepo, usrRepo, ackRepo, mailSvc),
		GroupSvc:      group.NewService(grpRepo),
		SubmissionSvc: submission.NewService(ackRepo, asgRepo, grpRepo),
		Validate:      validate,
		Translator:    translator,
	})

	return &testApp{
		server:  server,
		usrRepo: usrRepo,
		crsRepo: crsRepo,
		asgRepo: asgRepo,
		grpRepo: grpRepo,
		ackRepo: ackRepo,
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

// Fixture accessors

func getUser(t *testing.T, app *testApp, id string) user.User {
	usr, err := app.usrRepo.GetUserByID(id)
	if err != nil {
		t.Fatalf("getUser(%s): %v", id, err)
	}
	return usr
}

func getCourse(t *testing.T, app *testApp, id string) course.Course {
	crs, err := app.crsRepo.GetCourseByID(id)
	if err != nil {
		t.Fatalf("getCourse(%s): %v", id, err)
	}
	return crs
}

func getAssignment(t *testing.T, app *testApp, id string) assignment.Assignment {
	asg, err := app.asgRepo.GetAssignmentByID(id)
	if err != nil {
		t.Fatalf("getAssignment(%s): %v", id, err)
	}
	return asg
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	claims := echoapi.GetUserClaims(conf, usr)
	token, err := echoapi.GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return false, nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
