package services

import (
	"context"
	"errors"
	"regexp"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/middleware"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/session"

	"golang.org/x/crypto/bcrypt"
)

const tokenExpiryHours = 1

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[\d\s-]{7,20}$`)
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
}

type AuthService struct {
	Customers *repository.CustomerRepository
	Admins    *repository.AdminRepository
	Sessions  *session.Store
}

func NewAuthService(cr *repository.CustomerRepository, ar *repository.AdminRepository, sessions *session.Store) *AuthService {
	return &AuthService{Customers: cr, Admins: ar, Sessions: sessions}
}

// ValidateRegistration applies the registration field rules.
func ValidateRegistration(in *RegisterInput) error {
	if in.Username == "" || len(in.Username) > 50 {
		return errors.New("Username is required and must be 50 characters or less")
	}
	if in.Email == "" || len(in.Email) > 100 || !emailRegex.MatchString(in.Email) {
		return errors.New("Valid email is required and must be 100 characters or less")
	}
	if len(in.Password) < 6 || len(in.Password) > 255 {
		return errors.New("Password is required, must be 6-255 characters")
	}
	if in.FullName == "" || len(in.FullName) > 100 {
		return errors.New("Full name is required and must be 100 characters or less")
	}
	if in.Phone == "" || len(in.Phone) > 20 || !phoneRegex.MatchString(in.Phone) {
		return errors.New("Valid phone number is required and must be 20 characters or less")
	}
	return nil
}

// Register creates a customer account after validating the input.
func (s *AuthService) Register(ctx context.Context, in *RegisterInput) (int64, error) {
	if err := ValidateRegistration(in); err != nil {
		return 0, err
	}
	exists, err := s.Customers.Exists(ctx, in.Email, in.Username)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("Email or username already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Customers.Create(ctx, &model.Customer{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		FullName: in.FullName,
		Phone:    in.Phone,
	})
}

// Login authenticates a customer by username or email and issues a token.
// A newer login replaces the customer's previous session entry.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, *model.Customer, error) {
	c, err := s.Customers.GetByLogin(ctx, login)
	if err != nil {
		return "", nil, errors.New("Invalid username or email")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)); err != nil {
		return "", nil, errors.New("Invalid password")
	}
	token, err := middleware.GenerateToken(c.ID, c.Email, c.Username, "customer", tokenExpiryHours)
	if err != nil {
		return "", nil, err
	}
	s.Sessions.Replace(c.ID, token)
	c.Password = ""
	return token, c, nil
}

// AdminProfile loads an admin account without its password hash.
func (s *AuthService) AdminProfile(ctx context.Context, adminID int64) (*model.Admin, error) {
	a, err := s.Admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	a.Password = ""
	return a, nil
}

// LoginAdmin authenticates an admin by username or email.
func (s *AuthService) LoginAdmin(ctx context.Context, login, password string) (string, *model.Admin, error) {
	a, err := s.Admins.GetByLogin(ctx, login)
	if err != nil {
		return "", nil, errors.New("Invalid username or email")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
		return "", nil, errors.New("Invalid password")
	}
	token, err := middleware.GenerateToken(a.ID, a.Email, a.Username, "admin", tokenExpiryHours)
	if err != nil {
		return "", nil, err
	}
	a.Password = ""
	return token, a, nil
}
