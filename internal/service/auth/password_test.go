package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/todoapi/todoapi/internal/service/auth"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	// MinCost keeps the deliberately slow hash fast enough for tests.
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	password := "correct horse battery staple"

	hashed, err := hasher.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, password, hashed)

	assert.NoError(t, hasher.Compare(hashed, password))
	assert.ErrorIs(t, hasher.Compare(hashed, "wrong password"), auth.ErrPasswordMismatch)
}

func TestBcryptHasher_FreshSaltPerHash(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	password := "correct horse battery staple"

	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	// Fresh salt each call: different digests, both verify.
	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Compare(first, password))
	assert.NoError(t, hasher.Compare(second, password))
}

func TestBcryptHasher_MalformedHashIsNotAMismatch(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	err := hasher.Compare("not-a-bcrypt-hash", "whatever")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrPasswordMismatch)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	t.Parallel()

	// Out-of-range costs must not panic later; hashing still works.
	for _, cost := range []int{-1, 0, 3, 32} {
		hasher := auth.NewBcryptHasher(cost)
		hashed, err := hasher.Hash("some long password")
		require.NoError(t, err)
		assert.NoError(t, hasher.Compare(hashed, "some long password"))
	}
}
