// Package browser opens real Chrome page sessions that satisfy the form
// driver's page capability.
package browser

import (
	"context"
	"fmt"
	"time"

	"autointake/utils"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds browser configuration.
type Config struct {
	Headless            bool
	ViewportWidth       int
	ViewportHeight      int
	NavigationTimeoutMs int
	ElementTimeoutMs    int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Headless:            true,
		ViewportWidth:       1366,
		ViewportHeight:      768,
		NavigationTimeoutMs: 30000,
		ElementTimeoutMs:    10000,
	}
}

// NavigationTimeout returns the navigation timeout.
func (c Config) NavigationTimeout() time.Duration {
	if c.NavigationTimeoutMs == 0 {
		return 30 * time.Second
	}
	return time.Duration(c.NavigationTimeoutMs) * time.Millisecond
}

// ElementTimeout returns the per-interaction element timeout.
func (c Config) ElementTimeout() time.Duration {
	if c.ElementTimeoutMs == 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ElementTimeoutMs) * time.Millisecond
}

// Opener launches one browser per session. Runs are independent, so there
// is no shared browser, pool, or session cap here.
type Opener struct {
	cfg Config
}

func NewOpener(cfg Config) *Opener {
	return &Opener{cfg: cfg}
}

// Session is one live page in its own Chrome instance.
type Session struct {
	id       string
	cfg      Config
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

// Open launches Chrome, opens a page, and navigates it to url.
func (o *Opener) Open(ctx context.Context, url string) (*Session, error) {
	logger := utils.GetLogger()

	l := launcher.New().
		Headless(o.cfg.Headless).
		Set(flags.Flag("window-size"), fmt.Sprintf("%d,%d", o.cfg.ViewportWidth, o.cfg.ViewportHeight))
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = b.Close()
		l.Cleanup()
		return nil, fmt.Errorf("create page: %w", err)
	}

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             o.cfg.ViewportWidth,
		Height:            o.cfg.ViewportHeight,
		DeviceScaleFactor: 1.0,
		Mobile:            false,
	}).Call(page); err != nil {
		logger.Warn("Failed to set viewport", zap.Error(err))
	}

	if err := page.Timeout(o.cfg.NavigationTimeout()).Navigate(url); err != nil {
		_ = b.Close()
		l.Cleanup()
		return nil, fmt.Errorf("navigate to %s: %w", url, err)
	}
	if err := page.Timeout(o.cfg.NavigationTimeout()).WaitLoad(); err != nil {
		_ = b.Close()
		l.Cleanup()
		return nil, fmt.Errorf("wait for %s to load: %w", url, err)
	}

	sess := &Session{
		id:       uuid.NewString(),
		cfg:      o.cfg,
		launcher: l,
		browser:  b,
		page:     page,
	}
	logger.Debug("Browser session opened", zap.String("session", sess.id), zap.String("url", url))
	return sess, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Close shuts down the page's browser.
func (s *Session) Close() error {
	err := s.browser.Close()
	s.launcher.Cleanup()
	utils.GetLogger().Debug("Browser session closed", zap.String("session", s.id))
	return err
}

func (s *Session) element(ctx context.Context, selector string) (*rod.Element, error) {
	el, err := s.page.Context(ctx).Timeout(s.cfg.ElementTimeout()).Element(selector)
	if err != nil {
		return nil, fmt.Errorf("element %s not found: %w", selector, err)
	}
	return el, nil
}

// Fill types value into the element at selector.
func (s *Session) Fill(ctx context.Context, selector, value string) error {
	el, err := s.element(ctx, selector)
	if err != nil {
		return err
	}
	return el.Input(value)
}

// SelectOption selects the option with the exact value attribute.
func (s *Session) SelectOption(ctx context.Context, selector, value string) error {
	el, err := s.element(ctx, selector)
	if err != nil {
		return err
	}
	return el.Select([]string{fmt.Sprintf(`option[value=%q]`, value)}, true, rod.SelectorTypeCSSSector)
}

// Click left-clicks the element at selector.
func (s *Session) Click(ctx context.Context, selector string) error {
	el, err := s.element(ctx, selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

// WaitForVisible blocks until the element at selector is rendered visible.
func (s *Session) WaitForVisible(ctx context.Context, selector string) error {
	el, err := s.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.WaitVisible(); err != nil {
		return fmt.Errorf("element %s not visible: %w", selector, err)
	}
	return nil
}
