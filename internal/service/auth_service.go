package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/disaster-backend/internal/logger"
	"github.com/ignatzorin/disaster-backend/internal/pkg/apperror"
)

const (
	RoleAdmin     = "admin"
	RoleReporter  = "user"
	RoleVolunteer = "volunteer"
)

// Account - учётная запись, заведённая при старте процесса.
type Account struct {
	Username     string
	PasswordHash string
	Role         string
}

// AuthService проверяет учётные данные и выдаёт токены.
type AuthService struct {
	mu           sync.RWMutex
	accounts     map[string]*Account
	tokenManager *TokenManager
	bcryptCost   int
}

// LoginResult возвращает итог авторизации.
type LoginResult struct {
	Username string       `json:"username"`
	Role     string       `json:"role"`
	Token    *AccessToken `json:"token"`
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(tokenManager *TokenManager, bcryptCost int) *AuthService {
	return &AuthService{
		accounts:     make(map[string]*Account),
		tokenManager: tokenManager,
		bcryptCost:   bcryptCost,
	}
}

// AddAccount регистрирует учётную запись с захешированным паролем.
func (s *AuthService) AddAccount(username, password, role string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("auth service: имя пользователя обязательно")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("auth service: не удалось захешировать пароль: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[username]; exists {
		return fmt.Errorf("auth service: пользователь %s уже существует", username)
	}
	s.accounts[username] = &Account{Username: username, PasswordHash: string(passHash), Role: role}
	return nil
}

// SeedInput описывает стартовый набор учётных записей.
type SeedInput struct {
	AdminPassword    string
	DefaultPassword  string
	ReporterAccounts int
	VolunteerIDs     []string
}

// Seed заводит администратора, пользователей user1..userN и учётки волонтёров.
func (s *AuthService) Seed(in SeedInput) error {
	if err := s.AddAccount("admin", in.AdminPassword, RoleAdmin); err != nil {
		return err
	}
	for i := 1; i <= in.ReporterAccounts; i++ {
		if err := s.AddAccount(fmt.Sprintf("user%d", i), in.DefaultPassword, RoleReporter); err != nil {
			return err
		}
	}
	for _, id := range in.VolunteerIDs {
		if err := s.AddAccount(id, in.DefaultPassword, RoleVolunteer); err != nil {
			return err
		}
	}

	logger.Log.WithField("accounts", 1+in.ReporterAccounts+len(in.VolunteerIDs)).Info("auth service: учётные записи созданы")
	return nil
}

// Login проверяет пароль и выпускает access токен.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	s.mu.RLock()
	account, ok := s.accounts[strings.TrimSpace(username)]
	s.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Issue(account)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выпустить токен")
	}

	logger.Log.WithField("username", account.Username).Info("auth service: успешный вход")
	return &LoginResult{Username: account.Username, Role: account.Role, Token: token}, nil
}

// UsernamesWithRole возвращает отсортированные имена пользователей с ролью.
func (s *AuthService) UsernamesWithRole(role string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for name, acc := range s.accounts {
		if acc.Role == role {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
