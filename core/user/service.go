package user

import (
	"errors"
	"time"

	"github.com/ChiranjeeviNanda/joineasy-task2/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	SleepFunc = time.Sleep // mockable
)

type (
	Repository interface {
		GetUserByID(id string) (User, error)
		GetUserByUsername(username string) (User, error)
	}

	Service struct {
		repo       Repository
		loginDelay time.Duration
	}
)

func NewService(repo Repository, conf *core.Config) *Service {
	return &Service{
		repo:       repo,
		loginDelay: conf.LoginDelay,
	}
}

// Authenticate checks the given credentials against the seeded users.
// A fixed-duration pause precedes resolution to mimic the latency of
// the network call the dashboard originally faked.
func (svc *Service) Authenticate(username, password string) (User, error) {
	SleepFunc(svc.loginDelay)

	usr, err := svc.repo.GetUserByUsername(core.CleanString(username, true /* lower */))
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if usr.Password != password {
		return User{}, ErrInvalidCredentials
	}
	return usr, nil
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}
