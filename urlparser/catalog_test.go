package urlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	assert.GreaterOrEqual(t, len(Catalog), 60)
	assert.Equal(t, FullAddressKey, Catalog[0].Name)
	assert.Equal(t, UsernameKey, Catalog[1].Name)

	seen := make(map[string]bool)
	for _, s := range Catalog {
		assert.False(t, seen[s.Name], "duplicate catalog entry %q", s.Name)
		seen[s.Name] = true
	}
}

func TestCatalogIrregularEntries(t *testing.T) {
	irregular := map[string]bool{
		"alternate full address":   true,
		"domain":                   true,
		"camerastoredirect":        true,
		"remoteapplicationname":    true,
		"remoteapplicationprogram": true,
	}
	for _, s := range Catalog {
		if irregular[s.Name] {
			assert.Equal(t, s.Name+":s:", s.Line())
			continue
		}
		assert.Equal(t, ":", s.Value[:1], "entry %q", s.Name)
	}
}

func TestCatalogExcludesPinnedClientSettings(t *testing.T) {
	names := make(map[string]bool, len(Catalog))
	for _, s := range Catalog {
		names[s.Name] = true
	}

	for _, n := range []string{
		"session bpp",
		"winposstr",
		"prompt for credentials",
		"prompt for credentials on client",
		"gatewaybrokeringtype",
		"use redirection server name",
		"rdgiskdcproxy",
		"kdcproxyname",
	} {
		assert.False(t, names[n], "catalog should not pin %q", n)
	}

	for _, n := range []string{
		"connection type",
		"displayconnectionbar",
		"enableworkspacereconnect",
		"disable wallpaper",
		"allow font smoothing",
		"allow desktop composition",
		"disable full window drag",
		"disable menu anims",
		"disable themes",
		"disable cursor setting",
		"bitmapcachepersistenable",
		"redirectposdevices",
		"negotiate security layer",
		"shell working directory",
	} {
		assert.True(t, names[n], "catalog is missing %q", n)
	}
}
