package services_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/app/repositories"
	"github.com/shashiranjanraj/dinein/app/services"
	"github.com/shashiranjanraj/dinein/pkg/auth"
	"github.com/shashiranjanraj/dinein/pkg/validate"
)

func fastHasher() *auth.Hasher { return auth.NewHasher(bcrypt.MinCost) }

func validSignup() services.SignupInput {
	return services.SignupInput{
		Name:     "Meera Iyer",
		Email:    "meera@example.com",
		Phone:    "9876543210",
		Address:  "12 Park Street",
		Age:      28,
		Password: "Abcdef1!",
	}
}

// mockUsers is a testify mock for failure paths the memory store cannot produce.
type mockUsers struct{ mock.Mock }

func (m *mockUsers) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func TestSignupStoresHashedPassword(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := services.NewAuthService(store.Users(), fastHasher())
	ctx := context.Background()

	user, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "Abcdef1!", user.Password)

	stored, err := store.Users().FindByEmail(ctx, "meera@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
	assert.True(t, fastHasher().CheckPassword(stored.Password, "Abcdef1!"))
}

func TestSignupGeneratesDistinctIDs(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := services.NewAuthService(store.Users(), fastHasher())

	a := validSignup()
	b := validSignup()
	b.Email = "other@example.com"

	ua, err := svc.Signup(context.Background(), a)
	require.NoError(t, err)
	ub, err := svc.Signup(context.Background(), b)
	require.NoError(t, err)
	assert.NotEqual(t, ua.ID, ub.ID)
}

func TestSignupDuplicateEmailIsConflictRegardlessOfOtherFields(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := services.NewAuthService(store.Users(), fastHasher())
	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	again := services.SignupInput{Email: "meera@example.com", Phone: "bad", Age: 3, Password: "weak"}
	_, err = svc.Signup(context.Background(), again)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestSignupRuleOrder(t *testing.T) {
	svc := services.NewAuthService(repositories.NewMemoryStore().Users(), fastHasher())

	in := validSignup()
	in.Phone = "12345"
	in.Age = 100
	in.Password = "weak"
	_, err := svc.Signup(context.Background(), in)
	assert.ErrorIs(t, err, validate.ErrInvalidPhone)

	in.Phone = "1234567890"
	_, err = svc.Signup(context.Background(), in)
	assert.ErrorIs(t, err, validate.ErrInvalidAge)

	in.Age = 15
	_, err = svc.Signup(context.Background(), in)
	assert.ErrorIs(t, err, validate.ErrWeakPassword)

	in.Password = "Abcdef1!" + strings.Repeat("a", 72)
	_, err = svc.Signup(context.Background(), in)
	assert.ErrorIs(t, err, validate.ErrPasswordTooLong)
}

func TestSignupMissingRequiredField(t *testing.T) {
	svc := services.NewAuthService(repositories.NewMemoryStore().Users(), fastHasher())

	in := validSignup()
	in.Address = "  "
	_, err := svc.Signup(context.Background(), in)

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "The address field is required.", verr.Message)
}

func TestSignupInsertRaceMapsToConflict(t *testing.T) {
	users := &mockUsers{}
	users.On("FindByEmail", mock.Anything, "meera@example.com").Return(nil, repositories.ErrNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicate)

	_, err := services.NewAuthService(users, fastHasher()).Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	users.AssertExpectations(t)
}

func TestSignupStoreFailureIsInternal(t *testing.T) {
	boom := errors.New("connection reset")
	users := &mockUsers{}
	users.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := services.NewAuthService(users, fastHasher()).Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, boom)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := services.NewAuthService(store.Users(), fastHasher())
	created, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), services.LoginInput{Email: "meera@example.com", Password: "Abcdef1!"})
	require.NoError(t, err)
	assert.Equal(t, models.Profile{Name: "Meera Iyer", Email: "meera@example.com", ID: created.ID}, user.Profile())

	_, err = svc.Login(context.Background(), services.LoginInput{Email: "meera@example.com", Password: "Abcdef1?"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), services.LoginInput{Email: "nobody@example.com", Password: "Abcdef1!"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginStoreFailureIsNotInvalidCredentials(t *testing.T) {
	users := &mockUsers{}
	users.On("FindByEmail", mock.Anything, "meera@example.com").Return(nil, errors.New("timeout"))

	_, err := services.NewAuthService(users, fastHasher()).Login(context.Background(),
		services.LoginInput{Email: "meera@example.com", Password: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
}

// countingHasher records how many comparisons Login performs.
type countingHasher struct {
	*auth.Hasher
	checks atomic.Int32
}

func (h *countingHasher) CheckPassword(hash, plain string) bool {
	h.checks.Add(1)
	return h.Hasher.CheckPassword(hash, plain)
}

func TestLoginUnknownEmailStillComparesHash(t *testing.T) {
	hasher := &countingHasher{Hasher: fastHasher()}
	svc := services.NewAuthService(repositories.NewMemoryStore().Users(), hasher)

	for i := 0; i < 2; i++ {
		_, err := svc.Login(context.Background(), services.LoginInput{Email: "nobody@example.com", Password: "Abcdef1!"})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	}
	assert.Equal(t, int32(2), hasher.checks.Load())
}
