package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtt-importer/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "missing definition error",
			code:     errors.CodeMissingDefinition,
			message:  "spell has no name",
			expected: "MISSING_DEFINITION: spell has no name",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
		{
			name:     "unauthenticated error",
			code:     errors.CodeUnauthenticated,
			message:  "no usable credential",
			expected: "UNAUTHENTICATED: no usable credential",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.MissingDefinition("monster 42 has no name")
	wrapped := errors.Wrap(base, "failed to translate monster")

	s.Equal(errors.CodeMissingDefinition, wrapped.Code)
	s.True(errors.IsMissingDefinition(wrapped))
	s.Contains(wrapped.Error(), "failed to translate monster")
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	base := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(base, "fetch failed")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.MissingDefinitionf("item %d has no definition", 7)
	s.Equal("item 7 has no definition", errors.GetMessage(err))

	plain := fmt.Errorf("boom")
	s.Equal("boom", errors.GetMessage(plain))
	s.Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("boom")))
	s.Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("missing")))
}

func (s *ErrorsTestSuite) TestMeta() {
	err := errors.NotFound("entity not found").
		WithMeta("source_id", 123)

	s.Equal(123, err.Meta["source_id"])
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	s.NoError(vb.Build())

	vb.RequiredField("Clock").RequiredField("Fetcher")
	err := vb.Build()
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Clock")
	s.Contains(err.Error(), "Fetcher")
}
