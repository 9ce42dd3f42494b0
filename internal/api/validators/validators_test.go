package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naseer617/ta-member-service/internal/api/types"
)

func TestValidMemberPayload(t *testing.T) {
	req := types.MemberCreateRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Login:     "alice01",
		Email:     "alice@example.com",
	}
	assert.NoError(t, New().Struct(req))
}

func TestInvalidEmail(t *testing.T) {
	req := types.MemberCreateRequest{
		FirstName: "A",
		LastName:  "B",
		Login:     "ab",
		Email:     "invalid",
	}
	msg := Message(New().Struct(req))
	assert.Equal(t, "email must be a valid email address", msg)
}

func TestMissingFieldsNamed(t *testing.T) {
	req := types.MemberCreateRequest{Email: "a@example.com"}
	msg := Message(New().Struct(req))
	assert.Contains(t, msg, "first_name is required")
	assert.Contains(t, msg, "last_name is required")
	assert.Contains(t, msg, "login is required")
}

func TestNegativeCountersRejected(t *testing.T) {
	req := types.MemberCreateRequest{
		FirstName: "A",
		LastName:  "B",
		Login:     "ab",
		Email:     "a@example.com",
		Followers: -1,
	}
	msg := Message(New().Struct(req))
	assert.Equal(t, "followers must be >= 0", msg)
}

func TestMessageNilError(t *testing.T) {
	assert.Empty(t, Message(nil))
}
