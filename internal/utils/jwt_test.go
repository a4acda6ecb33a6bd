// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "post-board"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)

		require.NoError(t, err)
		assert.NotEmpty(t, token.SignedString)
	})

	t.Run("RejectsEmptyParams", func(t *testing.T) {
		_, err := GenerateJWTToken("", 42, time.Hour, testSignKey)
		require.Error(t, err)

		_, err = GenerateJWTToken(testIssuer, 42, 0, testSignKey)
		require.Error(t, err)

		_, err = GenerateJWTToken(testIssuer, 42, time.Hour, "")
		require.Error(t, err)
	})
}

func TestValidateAndParseJWTToken(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		issued, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
		require.NoError(t, err)

		parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)

		require.NoError(t, err)
		assert.Equal(t, int64(42), parsed.UserID)
	})

	t.Run("WrongSignKey", func(t *testing.T) {
		issued, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
		require.Error(t, err)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		issued, err := GenerateJWTToken("someone-else", 42, time.Hour, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
		require.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		issued, err := GenerateJWTToken(testIssuer, 42, -time.Hour, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
		require.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
		require.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		token, err := ParseBearerToken("Bearer abc.def.ghi")
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("NoScheme", func(t *testing.T) {
		_, err := ParseBearerToken("abc.def.ghi")
		require.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseBearerToken("")
		require.Error(t, err)
	})
}

func TestParseUserIDFromJWT(t *testing.T) {
	t.Run("ExtractsSubjectWithoutVerification", func(t *testing.T) {
		issued, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
		require.NoError(t, err)

		// no sign key needed on the client side
		id, err := ParseUserIDFromJWT(issued.SignedString)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseUserIDFromJWT("garbage")
		require.Error(t, err)
	})
}
