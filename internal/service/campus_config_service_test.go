package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus_config.json")

	svc, err := NewCampusConfigService(path, nopLogger{})
	require.NoError(t, err)

	assert.Equal(t, "Your University", svc.GetValue("campus_info", "name"))
	assert.Equal(t, "CampusBot", svc.GetValue("chatbot_settings", "bot_name"))
	assert.FileExists(t, path)
}

func TestConfigDeepMergeUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus_config.json")

	svc, err := NewCampusConfigService(path, nopLogger{})
	require.NoError(t, err)

	require.NoError(t, svc.Update(map[string]interface{}{
		"campus_info": map[string]interface{}{
			"name": "Acme Institute",
		},
	}))

	// Updated key changed, sibling keys untouched
	assert.Equal(t, "Acme Institute", svc.GetValue("campus_info", "name"))
	assert.Equal(t, "YU", svc.GetValue("campus_info", "short_name"))

	// Survives a reload
	reloaded, err := NewCampusConfigService(path, nopLogger{})
	require.NoError(t, err)
	assert.Equal(t, "Acme Institute", reloaded.GetValue("campus_info", "name"))
}

func TestConfigUpdateAssetPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus_config.json")

	svc, err := NewCampusConfigService(path, nopLogger{})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAssetPath("logo", "assets/logo.png"))
	require.NoError(t, svc.UpdateAssetPath("bot_avatar", "assets/bot_avatar.svg"))
	assert.Equal(t, "assets/logo.png", svc.GetValue("branding", "logo_path"))
	assert.Equal(t, "assets/bot_avatar.svg", svc.GetValue("chatbot_settings", "bot_avatar"))

	// Sibling branding keys untouched
	assert.Equal(t, "#1e3a8a", svc.GetValue("branding", "primary_color"))

	// Unknown asset types have no config slot and are not an error
	require.NoError(t, svc.UpdateAssetPath("banner", "assets/banner.png"))

	// Survives a reload
	reloaded, err := NewCampusConfigService(path, nopLogger{})
	require.NoError(t, err)
	assert.Equal(t, "assets/logo.png", reloaded.GetValue("branding", "logo_path"))
}

func TestConfigDepartments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus_config.json")

	svc, err := NewCampusConfigService(path, nopLogger{})
	require.NoError(t, err)

	assert.Nil(t, svc.GetDepartment("fees"))

	require.NoError(t, svc.Update(map[string]interface{}{
		"departments": map[string]interface{}{
			"fees": map[string]interface{}{
				"contact":  "fees@acme.edu",
				"phone":    "+1-555-0100",
				"location": "Admin Block, Room 4",
			},
		},
	}))

	dept := svc.GetDepartment("fees")
	require.NotNil(t, dept)
	assert.Equal(t, "fees@acme.edu", dept.Contact)
	assert.Equal(t, "Admin Block, Room 4", dept.Location)
	assert.Empty(t, dept.Hours)
}

func TestConfigGetPublicIsACopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus_config.json")

	svc, err := NewCampusConfigService(path, nopLogger{})
	require.NoError(t, err)

	public := svc.GetPublic()
	public["campus_info"].(map[string]interface{})["name"] = "mutated"

	assert.Equal(t, "Your University", svc.GetValue("campus_info", "name"))
}
