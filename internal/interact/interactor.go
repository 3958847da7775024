package interact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
	"go.uber.org/zap"

	"github.com/selebrow/journey/internal/wait"
	"github.com/selebrow/journey/pkg/locator"
	"github.com/selebrow/journey/pkg/models"
)

const (
	StageLocate         = "locate"
	StageVisible        = "visibility"
	StageEnabled        = "enabled"
	StageClick          = "click"
	StageConfirm        = "confirm"
	StageLocateDropdown = "locate dropdown"
	StageClickDropdown  = "click dropdown"
	StageLocateOption   = "locate option"
	StageOptionVisible  = "option visibility"
	StageClickOption    = "click option"
	StageNavigate       = "navigate"
	StageRead           = "read text"
)

type (
	Page interface {
		wait.Finder
		Get(url string) error
	}

	Timeouts struct {
		// Locate bounds lookups of page fixtures such as dropdowns and nav links
		Locate time.Duration
		// Option bounds the lookup of an opened dropdown option
		Option time.Duration
		// Click bounds the lookup of controls clicked by ClickWhenReady
		Click   time.Duration
		Visible time.Duration
		Enabled time.Duration
		Confirm time.Duration
		Settle  time.Duration
	}

	SleepFunc func(ctx context.Context, d time.Duration) error

	Option func(i *Interactor)

	Interactor struct {
		page          Page
		w             *wait.Waiter
		t             Timeouts
		optionLocator func(text string) locator.Locator
		sleep         SleepFunc
		l             *zap.SugaredLogger
	}
)

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Locate:  15 * time.Second,
		Option:  10 * time.Second,
		Click:   10 * time.Second,
		Visible: 5 * time.Second,
		Enabled: 5 * time.Second,
		Confirm: 10 * time.Second,
		Settle:  1500 * time.Millisecond,
	}
}

func WithOptionLocator(fn func(text string) locator.Locator) Option {
	return func(i *Interactor) {
		i.optionLocator = fn
	}
}

func WithSleep(fn SleepFunc) Option {
	return func(i *Interactor) {
		i.sleep = fn
	}
}

func NewInteractor(page Page, w *wait.Waiter, t Timeouts, l *zap.Logger, opts ...Option) *Interactor {
	i := &Interactor{
		page:          page,
		w:             w,
		t:             t,
		optionLocator: locator.ReactSelectOption,
		sleep:         Sleep,
		l:             l.Sugar(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Interactor) Timeouts() Timeouts {
	return i.t
}

// Locate waits up to timeout for an element matching l
func (i *Interactor) Locate(ctx context.Context, l locator.Locator, timeout time.Duration, msg string) (selenium.WebElement, error) {
	return wait.For(ctx, i.w, timeout, msg, wait.ElementLocated(i.page, l))
}

// SelectDropdownOption opens the dropdown matched by dropdown and picks the option showing optionText
func (i *Interactor) SelectDropdownOption(ctx context.Context, dropdown locator.Locator, optionText string) error {
	el, err := i.Locate(ctx, dropdown, i.t.Locate, fmt.Sprintf("Dropdown %s not found.", dropdown))
	if err != nil {
		return stageErr(StageLocateDropdown, err)
	}
	if err := el.Click(); err != nil {
		return stageErr(StageClickDropdown, err)
	}
	i.l.Debugw("clicked dropdown", zap.Stringer("locator", dropdown))

	optLoc := i.optionLocator(optionText)
	opt, err := i.Locate(ctx, optLoc, i.t.Option, fmt.Sprintf("Option '%s' not found in dropdown.", optionText))
	if err != nil {
		return stageErr(StageLocateOption, err)
	}
	_, err = wait.For(ctx, i.w, i.t.Visible, fmt.Sprintf("Option '%s' found but not visible.", optionText), wait.ElementVisible(opt))
	if err != nil {
		return stageErr(StageOptionVisible, err)
	}
	if err := opt.Click(); err != nil {
		return stageErr(StageClickOption, err)
	}
	i.l.Debugw("selected option", zap.String("option", optionText))

	return i.Settle(ctx)
}

// ClickWhenReady clicks the element once it is located, visible and enabled
func (i *Interactor) ClickWhenReady(ctx context.Context, l locator.Locator) (selenium.WebElement, error) {
	return i.ClickWhenReadyWithin(ctx, l, i.t.Click)
}

// ClickWhenReadyWithin is ClickWhenReady with an explicit lookup timeout
func (i *Interactor) ClickWhenReadyWithin(ctx context.Context, l locator.Locator, timeout time.Duration) (selenium.WebElement, error) {
	el, err := i.Locate(ctx, l, timeout, fmt.Sprintf("%s not found.", l))
	if err != nil {
		return nil, stageErr(StageLocate, err)
	}
	if _, err := wait.For(ctx, i.w, i.t.Visible, fmt.Sprintf("%s not visible.", l), wait.ElementVisible(el)); err != nil {
		return nil, stageErr(StageVisible, err)
	}
	if _, err := wait.For(ctx, i.w, i.t.Enabled, fmt.Sprintf("%s not enabled.", l), wait.ElementEnabled(el)); err != nil {
		return nil, stageErr(StageEnabled, err)
	}
	if err := el.Click(); err != nil {
		return nil, stageErr(StageClick, err)
	}
	i.l.Debugw("clicked", zap.Stringer("locator", l))
	return el, nil
}

// ClickAndConfirmStateChange clicks l and waits for confirm to appear. When confirm
// is already present the click is skipped, so repeating the call never toggles
// the state back.
func (i *Interactor) ClickAndConfirmStateChange(ctx context.Context, l, confirm locator.Locator) error {
	els, err := i.page.FindElements(confirm.By, confirm.Value)
	if err == nil && len(els) > 0 {
		i.l.Debugw("state already confirmed, skipping click", zap.Stringer("locator", l))
		return nil
	}

	if _, err := i.ClickWhenReady(ctx, l); err != nil {
		return err
	}

	_, err = i.Locate(ctx, confirm, i.t.Confirm, fmt.Sprintf("%s did not show %s after click.", l, confirm))
	if err != nil {
		return stageErr(StageConfirm, err)
	}
	i.l.Debugw("state change confirmed", zap.Stringer("locator", l), zap.Stringer("confirmation", confirm))
	return nil
}

// VerifyTextPresent waits for l and asserts its text contains expected, the text is returned
func (i *Interactor) VerifyTextPresent(ctx context.Context, l locator.Locator, expected string, timeout time.Duration) (string, error) {
	el, err := i.Locate(ctx, l, timeout, fmt.Sprintf("%s not found.", l))
	if err != nil {
		return "", stageErr(StageLocate, err)
	}
	text, err := el.Text()
	if err != nil {
		return "", stageErr(StageRead, err)
	}
	if !strings.Contains(text, expected) {
		return text, models.NewAssertionError("expected text of %s to contain %q, got %q", l, expected, text)
	}
	return text, nil
}

func (i *Interactor) VerifyCount(_ context.Context, l locator.Locator, expected int) error {
	els, err := i.page.FindElements(l.By, l.Value)
	if err != nil {
		return stageErr(StageLocate, err)
	}
	if len(els) != expected {
		return models.NewAssertionError("expected %d elements matching %s, got %d", expected, l, len(els))
	}
	return nil
}

// NavigateAndVerify opens url and waits until ready is located and visible
func (i *Interactor) NavigateAndVerify(ctx context.Context, url string, ready locator.Locator, locateTimeout time.Duration) error {
	if err := i.page.Get(url); err != nil {
		return stageErr(StageNavigate, err)
	}
	el, err := i.Locate(ctx, ready, locateTimeout, fmt.Sprintf("%s not found after loading %s.", ready, url))
	if err != nil {
		return stageErr(StageLocate, err)
	}
	_, err = wait.For(ctx, i.w, i.t.Visible, fmt.Sprintf("%s found but not visible.", ready), wait.ElementVisible(el))
	if err != nil {
		return stageErr(StageVisible, err)
	}
	return nil
}

// WaitGone waits until nothing matches l
func (i *Interactor) WaitGone(ctx context.Context, l locator.Locator, timeout time.Duration, msg string) error {
	_, err := wait.For(ctx, i.w, timeout, msg, wait.ElementAbsent(i.page, l))
	return err
}

// Settle gives asynchronous UI handlers time to finish
func (i *Interactor) Settle(ctx context.Context) error {
	return i.Pause(ctx, i.t.Settle)
}

func (i *Interactor) Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	return i.sleep(ctx, d)
}

func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "sleep interrupted")
	case <-t.C:
		return nil
	}
}

func stageErr(stage string, err error) error {
	return models.NewInteractionError(stage, err)
}
