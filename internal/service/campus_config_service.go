package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"campus-chat-be/internal/dto"
	"campus-chat-be/internal/pkg/logger"
)

type ICampusConfigService interface {
	GetPublic() map[string]interface{}
	Update(updates map[string]interface{}) error
	UpdateAssetPath(assetType, path string) error
	GetValue(keys ...string) string
	GetDepartment(category string) *dto.DepartmentInfo
}

// campusConfigService owns the campus identity / branding / departments JSON
// file. The whole document is kept in memory and rewritten atomically on
// every update.
type campusConfigService struct {
	mu     sync.RWMutex
	path   string
	config map[string]interface{}
	logger logger.ILogger
}

func NewCampusConfigService(path string, log logger.ILogger) (ICampusConfigService, error) {
	s := &campusConfigService{
		path:   path,
		logger: log,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaultCampusConfig() map[string]interface{} {
	return map[string]interface{}{
		"campus_info": map[string]interface{}{
			"name":       "Your University",
			"short_name": "YU",
			"tagline":    "Excellence in Education",
		},
		"chatbot_settings": map[string]interface{}{
			"bot_name":        "CampusBot",
			"welcome_message": "Hello! How can I help you?",
		},
		"branding": map[string]interface{}{
			"primary_color":   "#1e3a8a",
			"secondary_color": "#3b82f6",
		},
	}
}

func (s *campusConfigService) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.config = defaultCampusConfig()
			if err := s.save(); err != nil {
				return fmt.Errorf("failed to write default campus config: %w", err)
			}
			s.logger.Info("campus-config", "Created default campus config", map[string]interface{}{"path": s.path})
			return nil
		}
		return fmt.Errorf("failed to read campus config: %w", err)
	}

	var config map[string]interface{}
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse campus config: %w", err)
	}
	s.config = config
	return nil
}

func (s *campusConfigService) save() error {
	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// GetPublic returns a deep copy so callers can never mutate the live config.
func (s *campusConfigService) GetPublic() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopyMap(s.config)
}

func (s *campusConfigService) Update(updates map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deepMerge(s.config, updates)
	if err := s.save(); err != nil {
		s.logger.Error("campus-config", "Failed to save campus config", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.logger.Info("campus-config", "Campus config updated", nil)
	return nil
}

// assetPathKeys maps a branding asset type to its slot in the config tree.
var assetPathKeys = map[string][]string{
	"logo":       {"branding", "logo_path"},
	"favicon":    {"branding", "favicon_path"},
	"background": {"branding", "background_image"},
	"bot_avatar": {"chatbot_settings", "bot_avatar"},
}

// UpdateAssetPath records where an uploaded branding asset lives. Unknown
// asset types keep their file on disk but have no config slot.
func (s *campusConfigService) UpdateAssetPath(assetType, path string) error {
	keys, ok := assetPathKeys[assetType]
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.config
	for _, key := range keys[:len(keys)-1] {
		next, ok := target[key].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			target[key] = next
		}
		target = next
	}
	target[keys[len(keys)-1]] = path

	if err := s.save(); err != nil {
		s.logger.Error("campus-config", "Failed to save asset path", map[string]interface{}{"error": err.Error()})
		return err
	}
	return nil
}

// GetValue walks nested keys and returns the string value, or "" when the
// path does not resolve to a string.
func (s *campusConfigService) GetValue(keys ...string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var current interface{} = s.config
	for _, key := range keys {
		m, ok := current.(map[string]interface{})
		if !ok {
			return ""
		}
		current, ok = m[key]
		if !ok {
			return ""
		}
	}

	if str, ok := current.(string); ok {
		return str
	}
	return ""
}

func (s *campusConfigService) GetDepartment(category string) *dto.DepartmentInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	departments, ok := s.config["departments"].(map[string]interface{})
	if !ok {
		return nil
	}
	dept, ok := departments[category].(map[string]interface{})
	if !ok {
		return nil
	}

	str := func(key string) string {
		if v, ok := dept[key].(string); ok {
			return v
		}
		return ""
	}
	return &dto.DepartmentInfo{
		Contact:  str("contact"),
		Phone:    str("phone"),
		Location: str("location"),
		Hours:    str("hours"),
	}
}

func deepMerge(base, updates map[string]interface{}) {
	for key, value := range updates {
		if existing, ok := base[key].(map[string]interface{}); ok {
			if incoming, ok := value.(map[string]interface{}); ok {
				deepMerge(existing, incoming)
				continue
			}
		}
		base[key] = value
	}
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for key, value := range src {
		if nested, ok := value.(map[string]interface{}); ok {
			dst[key] = deepCopyMap(nested)
			continue
		}
		dst[key] = value
	}
	return dst
}
