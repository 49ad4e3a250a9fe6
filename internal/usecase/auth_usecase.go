package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"os"
	"strings"

	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStaffInactive      = errors.New("staff member is inactive")
)

// Session is the result of a successful login.
type Session struct {
	Token string
	Name  string
	Role  entities.StaffRole
}

// IAuthUseCase authenticates the hard-coded super admin and the staff
// allow-list stored next to the rest of the CRM data.
type IAuthUseCase interface {
	Login(ctx context.Context, login, password string) (Session, error)
}

type AuthUseCase struct {
	staffRepo interfaces.IStaffRepository
	tokens    interfaces.ITokenService
	log       *logrus.Logger

	adminLogin    string
	adminPassword string
	adminName     string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase wires the super-admin credentials from the environment, with
// the long-standing defaults kept for local setups.
func NewAuthUseCase(staffRepo interfaces.IStaffRepository, tokens interfaces.ITokenService, log *logrus.Logger) *AuthUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AuthUseCase{
		staffRepo:     staffRepo,
		tokens:        tokens,
		log:           log,
		adminLogin:    getenvDefault("SUPER_ADMIN_LOGIN", "admin"),
		adminPassword: getenvDefault("SUPER_ADMIN_PASSWORD", "admin123"),
		adminName:     getenvDefault("SUPER_ADMIN_NAME", "Administrator"),
	}
}

// Login checks the super admin first, then the staff allow-list by passport
// number. Both failure modes collapse into ErrInvalidCredentials so the
// response never reveals which part failed.
func (u *AuthUseCase) Login(ctx context.Context, login, password string) (Session, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(login), []byte(u.adminLogin)) == 1 &&
		subtle.ConstantTimeCompare([]byte(password), []byte(u.adminPassword)) == 1 {
		token, err := u.tokens.Generate(interfaces.Claims{Subject: u.adminLogin, Name: u.adminName, Role: entities.RoleAdmin})
		if err != nil {
			return Session{}, err
		}
		u.log.WithField("login", login).Info("super admin signed in")
		return Session{Token: token, Name: u.adminName, Role: entities.RoleAdmin}, nil
	}

	staff, err := u.staffRepo.GetByPassport(ctx, login)
	if err != nil {
		return Session{}, err
	}
	if staff.ID == "" {
		return Session{}, ErrInvalidCredentials
	}
	if staff.Status != entities.StaffActive {
		return Session{}, ErrStaffInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	role := staff.Role
	if role == "" {
		role = entities.RoleStaff
	}
	token, err := u.tokens.Generate(interfaces.Claims{Subject: staff.PassportNumber, Name: staff.Name, Role: role})
	if err != nil {
		return Session{}, err
	}
	u.log.WithFields(logrus.Fields{"staff_id": staff.ID, "role": role}).Info("staff signed in")
	return Session{Token: token, Name: staff.Name, Role: role}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
