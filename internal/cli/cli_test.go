package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := RootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmdStructure(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range RootCmd().Commands() {
		names[sub.Name()] = true
		assert.NotEmpty(t, sub.Short, sub.Name())
	}
	for _, want := range []string{"migrate", "check", "actions", "token"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestCheckEligibility(t *testing.T) {
	tool := writeFile(t, "tool.json", `{"id": 3, "userId": 2, "communities": [4], "location": {"latitude": 41.38, "longitude": 2.17}}`)

	t.Run("Eligible", func(t *testing.T) {
		user := writeFile(t, "user.json", `{"id": 7, "communities": [{"id": 4, "name": "Gràcia"}]}`)
		out, err := run(t, "check", "eligibility", "--tool", tool, "--user", user)
		require.NoError(t, err)
		assert.Contains(t, out, "ELIGIBLE user 7 can book tool 3")
	})

	t.Run("Owner", func(t *testing.T) {
		user := writeFile(t, "user.json", `{"id": 2, "communities": [{"id": 4}]}`)
		out, err := run(t, "check", "eligibility", "--tool", tool, "--user", user)
		require.NoError(t, err)
		assert.Contains(t, out, "DENIED")
		assert.Contains(t, out, "isOwner")
	})

	t.Run("OutsideCommunity", func(t *testing.T) {
		user := writeFile(t, "user.json", `{"id": 7, "communities": [{"id": 9}]}`)
		out, err := run(t, "check", "eligibility", "--tool", tool, "--user", user)
		require.NoError(t, err)
		assert.Contains(t, out, "isNotInCommunity")
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := run(t, "check", "eligibility", "--tool", tool, "--user", "/nonexistent.json")
		assert.Error(t, err)
	})
}

func TestCheckConflict(t *testing.T) {
	// 2024-06-10 .. 2024-06-12
	reserved := writeFile(t, "reserved.json", `[{"from": 1717977600, "to": 1718150400}]`)

	out, err := run(t, "check", "conflict", "--start", "2024-06-12", "--end", "2024-06-14", "--reserved", reserved)
	require.NoError(t, err)
	assert.Contains(t, out, "CONFLICT")

	out, err = run(t, "check", "conflict", "--start", "2024-06-13", "--end", "2024-06-14", "--reserved", reserved)
	require.NoError(t, err)
	assert.Contains(t, out, "FREE")

	_, err = run(t, "check", "conflict", "--start", "2024-06-14", "--end", "2024-06-13", "--reserved", reserved)
	assert.Error(t, err)
}

func TestActions(t *testing.T) {
	b := writeFile(t, "booking.json", `{"id": 11, "bookingStatus": "ACCEPTED", "endDate": 1718150400}`)

	out, err := run(t, "actions", "--booking", b, "--role", "request", "--now", "2024-06-11T12:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, "booking 11 [ACCEPTED] as request")
	assert.Contains(t, out, "return (confirm) loan end date has not passed yet")

	out, err = run(t, "actions", "--booking", b, "--role", "petition")
	require.NoError(t, err)
	assert.Contains(t, out, "no actions")

	_, err = run(t, "actions", "--booking", b, "--role", "owner")
	assert.Error(t, err)
}
