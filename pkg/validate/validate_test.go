package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/dinein/pkg/validate"
)

type signupInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required,phone"`
	Age      int    `json:"age"      validate:"age"`
	Password string `json:"password" validate:"required,password"`
}

func validSignup() signupInput {
	return signupInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Age:      30,
		Password: "Abcdef1!",
	}
}

func TestValidInput(t *testing.T) {
	assert.Empty(t, validate.Struct(validSignup()))
	assert.Empty(t, validate.First(validSignup()))
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(signupInput{Age: 20})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "password")
}

func TestDomainRulesUseSentinelMessages(t *testing.T) {
	in := validSignup()
	in.Phone = "123-456-7890"
	assert.Equal(t, validate.ErrInvalidPhone.Error(), validate.Struct(in)["phone"])

	in = validSignup()
	in.Age = 100
	assert.Equal(t, validate.ErrInvalidAge.Error(), validate.Struct(in)["age"])

	in = validSignup()
	in.Password = "abcdefgh"
	assert.Equal(t, validate.ErrWeakPassword.Error(), validate.Struct(in)["password"])

	in = validSignup()
	in.Password = "Abcdef1!" + strings.Repeat("a", 72)
	assert.Equal(t, validate.ErrPasswordTooLong.Error(), validate.Struct(in)["password"])
}

func TestFirstFollowsDeclarationOrder(t *testing.T) {
	in := validSignup()
	in.Phone = "12345"
	in.Password = "weak"
	assert.Equal(t, validate.ErrInvalidPhone.Error(), validate.First(&in))
}

func TestQuantityRule(t *testing.T) {
	type in struct {
		Quantity float64 `json:"quantity" validate:"quantity"`
	}
	assert.NotEmpty(t, validate.Struct(in{Quantity: 0}))
	assert.NotEmpty(t, validate.Struct(in{Quantity: 16}))
	assert.NotEmpty(t, validate.Struct(in{Quantity: 2.5}))
	assert.Empty(t, validate.Struct(in{Quantity: 1}))
	assert.Empty(t, validate.Struct(in{Quantity: 15}))
}

func TestUnknownRulesAreIgnored(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required, email ,lowercase"`
	}
	assert.Empty(t, validate.Struct(in{Email: "asha@example.com"}))
	assert.Equal(t, "The email must be a valid email address.", validate.Struct(in{Email: "asha"})["email"])
}
