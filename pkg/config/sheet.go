package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/entrhq/sheetmenu/pkg/motion"
)

const (
	// SectionIDSheet is the identifier for the bottom sheet settings section
	SectionIDSheet = "sheet"

	defaultFrameRate     = motion.DefaultFrameRate
	defaultBackdropColor = "#6B7280"
	defaultAccentColor   = "#FFB3BA"
	defaultHandleWidth   = 8
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// SheetSection holds animation and appearance settings for bottom sheets.
type SheetSection struct {
	OpenFrequency  float64 `json:"open_frequency"`
	CloseFrequency float64 `json:"close_frequency"`
	CloseDamping   float64 `json:"close_damping"`
	FrameRate      int     `json:"frame_rate"`
	BackdropColor  string  `json:"backdrop_color"`
	AccentColor    string  `json:"accent_color"`
	HandleWidth    int     `json:"handle_width"`
	mu             sync.RWMutex
}

// NewSheetSection creates a sheet section with default settings.
func NewSheetSection() *SheetSection {
	s := &SheetSection{}
	s.reset()
	return s
}

// ID returns the section identifier.
func (s *SheetSection) ID() string {
	return SectionIDSheet
}

// Title returns the section title.
func (s *SheetSection) Title() string {
	return "Bottom Sheet"
}

// Description returns the section description.
func (s *SheetSection) Description() string {
	return "Spring, frame rate and color settings for the bottom sheet menu."
}

// Data returns the current configuration data.
func (s *SheetSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"open_frequency":  s.OpenFrequency,
		"close_frequency": s.CloseFrequency,
		"close_damping":   s.CloseDamping,
		"frame_rate":      s.FrameRate,
		"backdrop_color":  s.BackdropColor,
		"accent_color":    s.AccentColor,
		"handle_width":    s.HandleWidth,
	}
}

// SetData updates the configuration from the provided data.
func (s *SheetSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "open_frequency":
			f, err := toFloat(key, value)
			if err != nil {
				return err
			}
			s.OpenFrequency = f

		case "close_frequency":
			f, err := toFloat(key, value)
			if err != nil {
				return err
			}
			s.CloseFrequency = f

		case "close_damping":
			f, err := toFloat(key, value)
			if err != nil {
				return err
			}
			s.CloseDamping = f

		case "frame_rate":
			f, err := toFloat(key, value)
			if err != nil {
				return err
			}
			s.FrameRate = int(f)

		case "handle_width":
			f, err := toFloat(key, value)
			if err != nil {
				return err
			}
			s.HandleWidth = int(f)

		case "backdrop_color":
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value type for backdrop_color: expected string, got %T", value)
			}
			s.BackdropColor = str

		case "accent_color":
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value type for accent_color: expected string, got %T", value)
			}
			s.AccentColor = str

		default:
			// Ignore unknown keys for forward compatibility
			continue
		}
	}

	return nil
}

// toFloat accepts the numeric shapes JSON decoding and callers produce.
func toFloat(key string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("invalid value type for %s: expected number, got %T", key, value)
	}
}

// Validate validates the current configuration.
func (s *SheetSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.OpenFrequency <= 0 || s.OpenFrequency > 100 {
		return fmt.Errorf("open_frequency must be in (0, 100], got %v", s.OpenFrequency)
	}
	if s.CloseFrequency <= 0 || s.CloseFrequency > 100 {
		return fmt.Errorf("close_frequency must be in (0, 100], got %v", s.CloseFrequency)
	}
	if s.CloseDamping <= 0 || s.CloseDamping > 1 {
		return fmt.Errorf("close_damping must be in (0, 1], got %v", s.CloseDamping)
	}
	if s.FrameRate < 10 || s.FrameRate > 240 {
		return fmt.Errorf("frame_rate must be between 10 and 240, got %d", s.FrameRate)
	}
	if s.HandleWidth < 1 {
		return fmt.Errorf("handle_width must be positive, got %d", s.HandleWidth)
	}
	if !hexColor.MatchString(s.BackdropColor) {
		return fmt.Errorf("backdrop_color must be a #rrggbb color, got %q", s.BackdropColor)
	}
	if !hexColor.MatchString(s.AccentColor) {
		return fmt.Errorf("accent_color must be a #rrggbb color, got %q", s.AccentColor)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *SheetSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *SheetSection) reset() {
	s.OpenFrequency = motion.DefaultOpenFrequency
	s.CloseFrequency = motion.DefaultCloseFrequency
	s.CloseDamping = motion.DefaultCloseDamping
	s.FrameRate = defaultFrameRate
	s.BackdropColor = defaultBackdropColor
	s.AccentColor = defaultAccentColor
	s.HandleWidth = defaultHandleWidth
}

// Springs returns the open and close springs. Opening never bounces; closing
// never overshoots.
func (s *SheetSection) Springs() (open, closing motion.Spring) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return motion.CriticallyDamped(s.OpenFrequency), motion.Clamped(s.CloseFrequency, s.CloseDamping)
}

// GetFrameRate returns the animation frame rate.
func (s *SheetSection) GetFrameRate() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.FrameRate
}

// Colors returns the backdrop and accent colors.
func (s *SheetSection) Colors() (backdrop, accent string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.BackdropColor, s.AccentColor
}

// GetHandleWidth returns the drag handle width in cells.
func (s *SheetSection) GetHandleWidth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.HandleWidth
}
