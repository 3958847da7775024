package scenario

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
	"go.uber.org/zap"

	"github.com/selebrow/journey/internal/common/clock"
	"github.com/selebrow/journey/internal/executor"
	"github.com/selebrow/journey/internal/interact"
	"github.com/selebrow/journey/internal/wait"
	"github.com/selebrow/journey/pkg/browser"
	"github.com/selebrow/journey/pkg/config"
	"github.com/selebrow/journey/pkg/event"
	evmodels "github.com/selebrow/journey/pkg/event/models"
	"github.com/selebrow/journey/pkg/models"
)

const pageSourceExcerpt = 500

type Runner interface {
	Run(ctx context.Context, desc models.CapabilityDescriptor, creds config.Credentials) models.ScenarioResult
}

type NewExecutorFunc func(se executor.ScriptExecutor, l *zap.Logger) executor.Executor

type Option func(r *JourneyRunner)

type JourneyRunner struct {
	mgr         browser.SessionManager
	j           Journey
	eb          event.EventBroker
	t           interact.Timeouts
	st          StepTimeouts
	interval    time.Duration
	sleep       interact.SleepFunc
	now         clock.NowFunc
	newExecutor NewExecutorFunc
	l           *zap.SugaredLogger
}

func WithTimeouts(t interact.Timeouts, st StepTimeouts) Option {
	return func(r *JourneyRunner) {
		r.t = t
		r.st = st
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(r *JourneyRunner) {
		r.interval = d
	}
}

func WithSleep(fn interact.SleepFunc) Option {
	return func(r *JourneyRunner) {
		r.sleep = fn
	}
}

func WithClock(now clock.NowFunc) Option {
	return func(r *JourneyRunner) {
		r.now = now
	}
}

func WithExecutor(fn NewExecutorFunc) Option {
	return func(r *JourneyRunner) {
		r.newExecutor = fn
	}
}

func NewJourneyRunner(mgr browser.SessionManager, j Journey, eb event.EventBroker, l *zap.Logger, opts ...Option) *JourneyRunner {
	r := &JourneyRunner{
		mgr:      mgr,
		j:        j,
		eb:       eb,
		t:        interact.DefaultTimeouts(),
		st:       DefaultStepTimeouts(),
		interval: wait.DefaultInterval,
		sleep:    interact.Sleep,
		now:      time.Now,
		newExecutor: func(se executor.ScriptExecutor, l *zap.Logger) executor.Executor {
			return executor.NewBrowserStackExecutor(se, l)
		},
		l: l.Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the journey on a fresh session and always returns exactly one result.
// The session is closed before the result is published.
func (r *JourneyRunner) Run(ctx context.Context, desc models.CapabilityDescriptor, creds config.Credentials) models.ScenarioResult {
	title := desc.Title()
	l := r.l.With(zap.String("platform", title))

	r.eb.Publish(evmodels.NewScenarioStartedEvent(evmodels.ScenarioStarted{Title: title}))
	l.Info("scenario started")

	res := r.run(ctx, desc, creds, l)
	if res.Passed() {
		l.Infow("scenario passed", zap.Duration("duration", res.Duration()))
	} else {
		logFailure(l, res)
	}

	r.eb.Publish(evmodels.NewScenarioFinishedEvent(evmodels.ScenarioFinished{Result: res}))
	return res
}

func (r *JourneyRunner) run(
	ctx context.Context,
	desc models.CapabilityDescriptor,
	creds config.Credentials,
	l *zap.SugaredLogger,
) models.ScenarioResult {
	title := desc.Title()
	start := r.now()

	s, err := r.mgr.Open(ctx, desc, creds)
	if err != nil {
		return models.NewFailedResult(title, "", err, r.now().Sub(start))
	}
	opened := r.now()
	r.eb.Publish(evmodels.NewSessionOpenedEvent(evmodels.SessionOpened{
		Title:         title,
		SessionID:     s.ID(),
		StartDuration: opened.Sub(start),
	}))

	defer func() {
		s.Close()
		r.eb.Publish(evmodels.NewSessionClosedEvent(evmodels.SessionClosed{
			Title:           title,
			SessionID:       s.ID(),
			SessionDuration: r.now().Sub(opened),
		}))
	}()

	l = l.With(zap.String("session_id", s.ID()))
	exec := r.newExecutor(s.Driver(), l.Desugar().Named("executor"))

	name := desc.Name
	if name == "" {
		name = title
	}
	exec.SetSessionName(name)

	if err := r.journey(ctx, s.Driver(), exec, l); err != nil {
		res := models.NewFailedResult(title, s.ID(), err, r.now().Sub(start))
		exec.SetSessionStatus(models.StatusFailed, res.Reason())
		return res
	}

	exec.SetSessionStatus(models.StatusPassed, passedReason)
	return models.NewPassedResult(title, s.ID(), passedReason, r.now().Sub(start))
}

type step struct {
	name string
	fn   func(ctx context.Context) error
}

func (r *JourneyRunner) journey(ctx context.Context, wd selenium.WebDriver, exec executor.Executor, l *zap.SugaredLogger) error {
	il := l.Desugar().Named("interact")
	w := wait.NewWaiter(r.interval, r.now, il)
	it := interact.NewInteractor(wd, w, r.t, il, interact.WithSleep(r.sleep))

	steps := []step{
		{"open sign-in page", func(ctx context.Context) error { return r.openSignIn(ctx, wd, it, l) }},
		{"login", func(ctx context.Context) error { return r.login(ctx, wd, it) }},
		{"apply filter", func(ctx context.Context) error { return r.applyFilter(ctx, it) }},
		{"favourite product", func(ctx context.Context) error { return r.favourite(ctx, it) }},
		{"verify favourites", func(ctx context.Context) error { return r.verifyFavourites(ctx, it) }},
	}

	for _, st := range steps {
		l.Debugw("running step", zap.String("step", st.name))
		exec.Annotate(st.name, executor.LevelInfo)
		if err := st.fn(ctx); err != nil {
			err = errors.Wrap(err, st.name)
			exec.Annotate(err.Error(), executor.LevelError)
			return err
		}
	}
	return nil
}

func (r *JourneyRunner) openSignIn(ctx context.Context, wd selenium.WebDriver, it *interact.Interactor, l *zap.SugaredLogger) error {
	if err := it.NavigateAndVerify(ctx, r.j.SignInURL(), appRoot, r.st.PageReady); err != nil {
		logPageState(wd, l)
		return err
	}
	return it.Settle(ctx)
}

func (r *JourneyRunner) login(ctx context.Context, wd selenium.WebDriver, it *interact.Interactor) error {
	if err := it.SelectDropdownOption(ctx, usernameDropdown, r.j.Username); err != nil {
		return err
	}
	if err := it.SelectDropdownOption(ctx, passwordDropdown, r.j.Password); err != nil {
		return err
	}
	if _, err := it.ClickWhenReady(ctx, loginButton); err != nil {
		return err
	}

	if _, err := it.VerifyTextPresent(ctx, r.j.authMarker(), r.j.Username, r.st.SignedIn); err != nil {
		if models.IsKind(err, models.TimeoutErr) {
			return loginFailure(wd, err)
		}
		return err
	}
	return it.Pause(ctx, r.st.AfterLogin)
}

// loginFailure surfaces the error banner text when one is shown, banner absence
// keeps the original timeout
func loginFailure(f wait.Finder, timeout error) error {
	els, err := f.FindElements(loginErrorBanner.By, loginErrorBanner.Value)
	if err == nil && len(els) > 0 {
		text, err := els[0].Text()
		if text = strings.TrimSpace(text); err == nil && text != "" {
			return models.NewInteractionError("error banner", errors.Errorf("login failed with error: %s", text))
		}
	}
	return errors.Wrap(timeout, "no clear error message found")
}

func (r *JourneyRunner) applyFilter(ctx context.Context, it *interact.Interactor) error {
	if _, err := it.ClickWhenReady(ctx, r.j.vendorFilter()); err != nil {
		return err
	}
	return it.WaitGone(ctx, spinner, r.st.FilterApplied,
		fmt.Sprintf("Products did not finish loading after applying %s filter.", r.j.Vendor))
}

func (r *JourneyRunner) favourite(ctx context.Context, it *interact.Interactor) error {
	_, err := it.Locate(ctx, r.j.productTitle(), r.st.ProductListed,
		fmt.Sprintf("Product '%s' not found after applying %s filter.", r.j.Product, r.j.Vendor))
	if err != nil {
		return err
	}
	if err := it.ClickAndConfirmStateChange(ctx, r.j.favouriteButton(), r.j.favouriteConfirmed()); err != nil {
		return err
	}
	return it.Pause(ctx, r.st.AfterFavourite)
}

func (r *JourneyRunner) verifyFavourites(ctx context.Context, it *interact.Interactor) error {
	if _, err := it.ClickWhenReadyWithin(ctx, favouritesLink, it.Timeouts().Locate); err != nil {
		return err
	}
	if _, err := it.VerifyTextPresent(ctx, r.j.productTitle(), r.j.Product, r.st.Favourites); err != nil {
		return err
	}
	return it.VerifyCount(ctx, shelfItem, 1)
}

// logFailure keeps expected step failures at warn level, environment defects
// and untyped errors are logged as errors
func logFailure(l *zap.SugaredLogger, res models.ScenarioResult) {
	fields := []interface{}{
		zap.String("reason", res.Reason()),
		zap.Duration("duration", res.Duration()),
	}
	kind, ok := models.KindOf(res.Err())
	if !ok {
		l.Errorw("scenario failed", fields...)
		return
	}
	fields = append(fields, zap.String("kind", string(kind)))
	if kind.Expected() {
		l.Warnw("scenario failed", fields...)
	} else {
		l.Errorw("scenario failed", fields...)
	}
}

func logPageState(wd selenium.WebDriver, l *zap.SugaredLogger) {
	u, err := wd.CurrentURL()
	if err != nil {
		u = "unknown"
	}
	src, err := wd.PageSource()
	if err != nil {
		src = ""
	}
	if r := []rune(src); len(r) > pageSourceExcerpt {
		src = string(r[:pageSourceExcerpt])
	}
	l.Warnw("page did not become ready", zap.String("url", u), zap.String("source", src))
}
