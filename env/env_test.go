package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jongio/scalus/token"
)

func TestTokenEnvironment(t *testing.T) {
	m := token.New()
	m.Set(token.Host, "10.0.0.5")
	m.Set(token.GeneratedFile, "/tmp/x.rdp")

	got := TokenEnvironment(&m)
	assert.Len(t, got, int(token.Count))
	assert.Equal(t, "10.0.0.5", got["SCALUS_HOST"])
	assert.Equal(t, "/tmp/x.rdp", got["SCALUS_GENERATEDFILE"])
	assert.Equal(t, "", got["SCALUS_USER"])
	assert.Contains(t, got, "SCALUS_ORIGINALURL")
}

func TestTokenEnvironmentBlanksVaultToken(t *testing.T) {
	m := token.New()
	m.Set(token.VaultToken, "s.secret")
	m.Set(token.Host, "h")

	got := TokenEnvironment(&m)
	assert.Equal(t, "", got["SCALUS_VAULTTOKEN"])
	assert.Equal(t, "h", got["SCALUS_HOST"])

	merged := Merge([]string{"SCALUS_VAULTTOKEN=stale"}, got, false)
	assert.Contains(t, merged, "SCALUS_VAULTTOKEN=")
	assert.NotContains(t, merged, "SCALUS_VAULTTOKEN=stale")
	for _, kv := range merged {
		assert.NotContains(t, kv, "s.secret")
	}
}

func TestVarName(t *testing.T) {
	assert.Equal(t, "SCALUS_TARGETPORT", VarName(token.TargetPort))
}

func TestMerge(t *testing.T) {
	base := []string{"PATH=/bin", "SCALUS_HOST=stale", "scalus_user=old", "MALFORMED"}

	got := Merge(base, map[string]string{"SCALUS_HOST": "new", "SCALUS_USER": "alice"}, false)
	assert.Equal(t, []string{"PATH=/bin", "scalus_user=old", "MALFORMED", "SCALUS_HOST=new", "SCALUS_USER=alice"}, got)

	got = Merge(base, map[string]string{"SCALUS_HOST": "new", "SCALUS_USER": "alice"}, true)
	assert.Equal(t, []string{"PATH=/bin", "MALFORMED", "SCALUS_HOST=new", "SCALUS_USER=alice"}, got)
}

func TestMapToSliceSorted(t *testing.T) {
	got := MapToSlice(map[string]string{"B": "2", "A": "1=x"})
	assert.Equal(t, []string{"A=1=x", "B=2"}, got)
}
