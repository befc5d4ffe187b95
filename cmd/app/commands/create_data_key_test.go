package commands

import (
	"bytes"
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/userguard/internal/crypto/domain"
)

func TestRunCreateDataKey(t *testing.T) {
	var out bytes.Buffer
	err := RunCreateDataKey(&out)
	require.NoError(t, err)

	re := regexp.MustCompile(`^DATA_ENCRYPTION_KEY="(.+)"\n$`)
	matches := re.FindStringSubmatch(out.String())
	require.Len(t, matches, 2)

	raw, err := base64.StdEncoding.DecodeString(matches[1])
	require.NoError(t, err)
	assert.Len(t, raw, cryptoDomain.KeySize)
}

func TestRunCreateDataKeyUnique(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, RunCreateDataKey(&first))
	require.NoError(t, RunCreateDataKey(&second))
	assert.NotEqual(t, first.String(), second.String())
}
