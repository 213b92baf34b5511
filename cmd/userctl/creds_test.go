package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCredentials(t *testing.T) {
	t.Parallel()

	input := "username,password\nalice,s3cret\nbob,hunter2\n"

	credentials, err := parseCredentials(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, credentials, 2)
	require.Equal(t, "alice", credentials[0].Username)
	require.Equal(t, "s3cret", credentials[0].Password)
	require.Equal(t, "bob", credentials[1].Username)
}

func TestParseCredentials_MissingPassword(t *testing.T) {
	t.Parallel()

	input := "username,password\nalice,\n"

	_, err := parseCredentials(strings.NewReader(input))
	require.Error(t, err)
	require.Contains(t, err.Error(), "password is required")
}

func TestParseCredentials_HeaderOnly(t *testing.T) {
	t.Parallel()

	credentials, err := parseCredentials(strings.NewReader("username,password\n"))
	require.NoError(t, err)
	require.Empty(t, credentials)
}
