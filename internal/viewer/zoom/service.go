package zoom

import (
	"fmt"
	"strconv"
	"strings"

	"docgrip/internal/domain"
	"docgrip/internal/eventbus"
)

// FitToWidthToken is the zoom specification for fit-to-width mode.
const FitToWidthToken = "fit"

// ParseError reports a malformed zoom specification. The current zoom
// is left unchanged when it is returned.
type ParseError struct {
	Spec string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid zoom specification %q", e.Spec)
}

// Service parses zoom specifications and applies them to the engine
// view. It tracks the current mode so the toolbar can display it.
type Service struct {
	bus         eventbus.EventBus
	applyFactor func(float64) // engine SetZoomFactor
	applyFit    func()        // engine SetFitToWidth

	mode   domain.ZoomMode
	factor float64

	presets   []string
	presetIdx int
}

// NewService creates a zoom service with the given preset specs (the
// toolbar dropdown entries, e.g. "50%" ... "200%").
func NewService(bus eventbus.EventBus, presets []string) *Service {
	s := &Service{
		bus:     bus,
		mode:    domain.ZoomFitWidth,
		factor:  1.0,
		presets: presets,
	}
	// Start the preset cursor on 100% when it is present.
	for i, p := range presets {
		if p == "100%" {
			s.presetIdx = i
			break
		}
	}
	return s
}

// SetApplyFunctions sets the engine callbacks.
func (s *Service) SetApplyFunctions(factor func(float64), fit func()) {
	s.applyFactor = factor
	s.applyFit = fit
}

// SetZoom parses and applies a zoom specification: either the
// fit-to-width token or a percentage such as "150%". A malformed or
// non-positive percentage returns a *ParseError and leaves the current
// zoom untouched.
func (s *Service) SetZoom(spec string) error {
	if strings.TrimSpace(spec) == FitToWidthToken {
		s.mode = domain.ZoomFitWidth
		if s.applyFit != nil {
			s.applyFit()
		}
		s.publishChanged()
		return nil
	}

	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(spec), "%"))
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || value <= 0 {
		return &ParseError{Spec: spec}
	}

	s.mode = domain.ZoomFixed
	s.factor = value / 100
	if s.applyFactor != nil {
		s.applyFactor(s.factor)
	}
	s.publishChanged()
	return nil
}

// Mode returns the current zoom mode and factor.
func (s *Service) Mode() (domain.ZoomMode, float64) {
	return s.mode, s.factor
}

// Label returns the toolbar text for the current zoom state.
func (s *Service) Label() string {
	if s.mode == domain.ZoomFitWidth {
		return "Fit Width"
	}
	return fmt.Sprintf("%.0f%%", s.factor*100)
}

// CyclePreset steps through the configured presets. dir is +1 or -1;
// the cursor clamps at the ends like the original dropdown.
func (s *Service) CyclePreset(dir int) error {
	if len(s.presets) == 0 {
		return nil
	}

	next := s.presetIdx + dir
	if next < 0 || next >= len(s.presets) {
		return nil
	}
	s.presetIdx = next
	return s.SetZoom(s.presets[next])
}

func (s *Service) publishChanged() {
	if s.bus == nil {
		return
	}
	s.bus.Publish(domain.ZoomChangedEvent{Mode: s.mode, Factor: s.factor})
}
