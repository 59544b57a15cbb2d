package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_DonorDefaults(t *testing.T) {
	e := newTestEnv(t)

	u, err := e.auth.Register(RegisterInput{
		Email: "Somchai@Test.Local", Password: "password1", FullName: "Somchai",
	})
	require.NoError(t, err)
	assert.Equal(t, "somchai@test.local", u.Email) // normalize เป็นตัวเล็ก
	assert.Equal(t, "donor", u.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.auth.Register(RegisterInput{Email: "dup@test.local", Password: "password1", FullName: "A"})
	require.NoError(t, err)

	_, err = e.auth.Register(RegisterInput{Email: "DUP@test.local", Password: "password1", FullName: "B"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_NgoCreatesInactiveOrg(t *testing.T) {
	e := newTestEnv(t)

	u, err := e.auth.Register(RegisterInput{
		Email: "org@test.local", Password: "password1", FullName: "Contact",
		Role: "ngo", NgoName: "Food For All", NgoDescription: "meals",
	})
	require.NoError(t, err)
	assert.Equal(t, "ngo", u.Role)

	var ngo entity.Ngo
	require.NoError(t, e.db.Where("user_id = ?", u.ID).First(&ngo).Error)
	assert.Equal(t, "Food For All", ngo.Name)
	assert.False(t, ngo.Active)
	assert.Nil(t, ngo.ApprovedByID)
}

func TestLogin(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.auth.Register(RegisterInput{Email: "u@test.local", Password: "password1", FullName: "U"})
	require.NoError(t, err)

	token, user, err := e.auth.Login("u@test.local", "password1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u@test.local", user.Email)

	_, _, err = e.auth.Login("u@test.local", "wrong")
	assert.ErrorIs(t, err, ErrForbidden)

	_, _, err = e.auth.Login("nobody@test.local", "password1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateProfile_RoleNotEditable(t *testing.T) {
	e := newTestEnv(t)

	u, err := e.auth.Register(RegisterInput{Email: "u@test.local", Password: "password1", FullName: "U"})
	require.NoError(t, err)

	got, err := e.auth.UpdateProfile(u.ID, map[string]any{
		"full_name": "New Name",
		"role":      "admin", // ต้องโดนกรองทิ้ง
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.FullName)
	assert.Equal(t, "donor", got.Role)
}
