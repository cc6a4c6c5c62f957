package auth

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	autherrors "go-timekeep/internal/auth/errors"
	"go-timekeep/internal/employee"
	counterMock "go-timekeep/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	withTxFn     func(tx *sql.Tx) Repository
	createFn     func(ctx context.Context, user *User) error
	getByEmailFn func(ctx context.Context, email string) (*User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*User, error)
}

func (f *fakeUserRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeUserRepo) Create(ctx context.Context, user *User) error {
	return f.createFn(ctx, user)
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return f.getByEmailFn(ctx, email)
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}

type fakeEmployeeRepo struct {
	withTxFn      func(tx *sql.Tx) employee.Repository
	createFn      func(ctx context.Context, emp *employee.Employee) error
	findByIDFn    func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmailFn func(ctx context.Context, email string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f.withTxFn(tx) }
func (f *fakeEmployeeRepo) Create(ctx context.Context, emp *employee.Employee) error {
	return f.createFn(ctx, emp)
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return f.findByEmailFn(ctx, email)
}

func newFakeRepos() (*fakeUserRepo, *fakeEmployeeRepo) {
	users := &fakeUserRepo{}
	users.withTxFn = func(tx *sql.Tx) Repository { return users }
	users.createFn = func(ctx context.Context, user *User) error { return nil }
	users.getByEmailFn = func(ctx context.Context, email string) (*User, error) {
		return nil, gorm.ErrRecordNotFound
	}
	users.getByIDFn = func(ctx context.Context, id uuid.UUID) (*User, error) {
		return nil, gorm.ErrRecordNotFound
	}

	employees := &fakeEmployeeRepo{}
	employees.withTxFn = func(tx *sql.Tx) employee.Repository { return employees }
	employees.createFn = func(ctx context.Context, emp *employee.Employee) error { return nil }
	employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}
	employees.findByEmailFn = func(ctx context.Context, email string) (*employee.Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}

	return users, employees
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mock, _ := sqlmock.New()
	defer db.Close()

	users, employees := newFakeRepos()

	var savedEmp employee.Employee
	var savedUser User
	employees.createFn = func(ctx context.Context, emp *employee.Employee) error {
		savedEmp = *emp
		return nil
	}
	users.createFn = func(ctx context.Context, user *User) error {
		savedUser = *user
		return nil
	}

	counters := counterMock.NewMockRepository(ctrl)
	counters.EXPECT().GetNextValue(gomock.Any(), "employee").Return(int64(7), nil)

	svc := NewService(db, users, employees, counters)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Dana Cruz",
		Email:    "dana@example.com",
		Password: "correct-horse",
		HireDate: "2026-01-15",
	})
	assert.NoError(t, err)
	assert.Equal(t, "EMP-000007", resp.EmployeeNo)
	assert.Equal(t, savedEmp.ID, savedUser.EmployeeID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedUser.Password), []byte("correct-horse")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Register_InvalidHireDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	users, employees := newFakeRepos()
	svc := NewService(db, users, employees, counterMock.NewMockRepository(ctrl))

	_, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Dana Cruz",
		Email:    "dana@example.com",
		Password: "correct-horse",
		HireDate: "15/01/2026",
	})
	assert.ErrorIs(t, err, autherrors.ErrInvalidHireDate)
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	t.Setenv("JWT_SECRET", "test-secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	userID := uuid.New()
	employeeID := uuid.New()

	users, employees := newFakeRepos()
	users.getByEmailFn = func(ctx context.Context, email string) (*User, error) {
		return &User{ID: userID, EmployeeID: employeeID, Email: email, Password: string(hashed)}, nil
	}
	employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return &employee.Employee{ID: employeeID, EmployeeNo: "EMP-000007", FullName: "Dana Cruz"}, nil
	}

	svc := NewService(db, users, employees, counterMock.NewMockRepository(ctrl))

	access, refresh, resp, err := svc.Login(context.Background(), "dana@example.com", "correct-horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "EMP-000007", resp.EmployeeNo)

	token, err := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, employeeID.String(), claims["employee_id"])
}

func TestService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)

	users, employees := newFakeRepos()
	users.getByEmailFn = func(ctx context.Context, email string) (*User, error) {
		return &User{ID: uuid.New(), EmployeeID: uuid.New(), Email: email, Password: string(hashed)}, nil
	}

	svc := NewService(db, users, employees, counterMock.NewMockRepository(ctrl))

	_, _, _, err := svc.Login(context.Background(), "dana@example.com", "wrong")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	users, employees := newFakeRepos()
	svc := NewService(db, users, employees, counterMock.NewMockRepository(ctrl))

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_RefreshToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	employeeID := uuid.New()

	users, employees := newFakeRepos()
	users.getByIDFn = func(ctx context.Context, id uuid.UUID) (*User, error) {
		return &User{ID: userID, EmployeeID: employeeID, Email: "dana@example.com"}, nil
	}

	svc := NewService(db, users, employees, counterMock.NewMockRepository(ctrl)).(*service)

	refresh, err := svc.generateToken(userID.String(), employeeID.String(), time.Hour)
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, userID.String(), resp.ID)
}

func TestService_RefreshToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	users, employees := newFakeRepos()
	svc := NewService(db, users, employees, counterMock.NewMockRepository(ctrl))

	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}
