package interact

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/journey/internal/wait"
	"github.com/selebrow/journey/internal/webdrivertest"
	"github.com/selebrow/journey/pkg/locator"
	"github.com/selebrow/journey/pkg/models"
)

var (
	testTimeouts = Timeouts{
		Locate:  100 * time.Millisecond,
		Option:  100 * time.Millisecond,
		Click:   100 * time.Millisecond,
		Visible: 50 * time.Millisecond,
		Enabled: 50 * time.Millisecond,
		Confirm: 100 * time.Millisecond,
		Settle:  time.Second,
	}

	dropdown  = locator.ByID("username")
	loginBtn  = locator.ByID("login-btn")
	heart     = locator.ByXPath("//button[@id='heart']")
	heartDone = locator.ByXPath("//button[@id='heart' and contains(@class, 'clicked')]")
)

type sleepRecorder struct {
	slept []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.slept = append(s.slept, d)
	return nil
}

func newTestInteractor(t *testing.T, d *webdrivertest.Driver) (*Interactor, *sleepRecorder) {
	rec := new(sleepRecorder)
	l := zaptest.NewLogger(t)
	w := wait.NewWaiter(5*time.Millisecond, time.Now, l)
	return NewInteractor(d, w, testTimeouts, l, WithSleep(rec.sleep)), rec
}

func expectStage(g *WithT, err error, stage string) {
	var je *models.JourneyError
	g.Expect(errors.As(err, &je)).To(BeTrue())
	g.Expect(je.Kind()).To(Equal(models.InteractionErr))
	g.Expect(je.Stage()).To(Equal(stage))
}

func TestSelectDropdownOption(t *testing.T) {
	g := NewWithT(t)
	d := webdrivertest.NewDriver("s1")
	i, rec := newTestInteractor(t, d)

	option := webdrivertest.NewElement("demouser")
	dd := webdrivertest.NewElement("Select Username").OnClick(func() error {
		d.Set(locator.ReactSelectOption("demouser"), option)
		return nil
	})
	d.Set(dropdown, dd)

	err := i.SelectDropdownOption(context.TODO(), dropdown, "demouser")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(dd.Clicks()).To(Equal(1))
	g.Expect(option.Clicks()).To(Equal(1))
	g.Expect(rec.slept).To(Equal([]time.Duration{time.Second}))
}

func TestSelectDropdownOption_Stages(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(d *webdrivertest.Driver)
		wantStage string
		timeout   bool
	}{
		{
			name:      "dropdown missing",
			setup:     func(*webdrivertest.Driver) {},
			wantStage: StageLocateDropdown,
			timeout:   true,
		},
		{
			name: "dropdown click fails",
			setup: func(d *webdrivertest.Driver) {
				d.Set(dropdown, webdrivertest.NewElement("").OnClick(func() error {
					return errors.New("element click intercepted")
				}))
			},
			wantStage: StageClickDropdown,
		},
		{
			name: "option missing",
			setup: func(d *webdrivertest.Driver) {
				d.Set(dropdown, webdrivertest.NewElement(""))
			},
			wantStage: StageLocateOption,
			timeout:   true,
		},
		{
			name: "option hidden",
			setup: func(d *webdrivertest.Driver) {
				d.Set(dropdown, webdrivertest.NewElement(""))
				d.Set(locator.ReactSelectOption("demouser"), webdrivertest.NewElement("demouser").SetDisplayed(false))
			},
			wantStage: StageOptionVisible,
			timeout:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			d := webdrivertest.NewDriver("s1")
			tt.setup(d)
			i, rec := newTestInteractor(t, d)

			err := i.SelectDropdownOption(context.TODO(), dropdown, "demouser")
			g.Expect(err).To(HaveOccurred())
			expectStage(g, err, tt.wantStage)
			g.Expect(models.IsKind(err, models.TimeoutErr)).To(Equal(tt.timeout))
			g.Expect(rec.slept).To(BeEmpty())
		})
	}
}

func TestLookupTimeouts(t *testing.T) {
	g := NewWithT(t)
	tm := testTimeouts
	tm.Locate = time.Minute
	tm.Option = 30 * time.Millisecond
	tm.Click = 30 * time.Millisecond

	d := webdrivertest.NewDriver("s1")
	d.Set(dropdown, webdrivertest.NewElement(""))
	l := zaptest.NewLogger(t)
	i := NewInteractor(d, wait.NewWaiter(5*time.Millisecond, time.Now, l), tm, l,
		WithSleep(func(context.Context, time.Duration) error { return nil }))
	g.Expect(i.Timeouts()).To(Equal(tm))

	start := time.Now()
	err := i.SelectDropdownOption(context.TODO(), dropdown, "demouser")
	expectStage(g, err, StageLocateOption)
	g.Expect(time.Since(start)).To(BeNumerically("<", 10*time.Second))

	start = time.Now()
	_, err = i.ClickWhenReady(context.TODO(), loginBtn)
	expectStage(g, err, StageLocate)
	g.Expect(time.Since(start)).To(BeNumerically("<", 10*time.Second))

	ctx, cancel := context.WithTimeout(context.TODO(), 100*time.Millisecond)
	defer cancel()
	_, err = i.ClickWhenReadyWithin(ctx, loginBtn, tm.Locate)
	g.Expect(err).To(MatchError(context.DeadlineExceeded))
}

func TestClickWhenReady(t *testing.T) {
	g := NewWithT(t)
	d := webdrivertest.NewDriver("s1")
	i, _ := newTestInteractor(t, d)

	btn := webdrivertest.NewElement("Log In").SetEnabled(false)
	d.Set(loginBtn, btn)
	go func() {
		time.Sleep(10 * time.Millisecond)
		btn.SetEnabled(true)
	}()

	got, err := i.ClickWhenReady(context.TODO(), loginBtn)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(BeIdenticalTo(btn))
	g.Expect(btn.Clicks()).To(Equal(1))
}

func TestClickWhenReady_Stages(t *testing.T) {
	tests := []struct {
		name      string
		el        *webdrivertest.Element
		wantStage string
	}{
		{
			name:      "missing",
			wantStage: StageLocate,
		},
		{
			name:      "hidden",
			el:        webdrivertest.NewElement("").SetDisplayed(false),
			wantStage: StageVisible,
		},
		{
			name:      "disabled",
			el:        webdrivertest.NewElement("").SetEnabled(false),
			wantStage: StageEnabled,
		},
		{
			name: "click fails",
			el: webdrivertest.NewElement("").OnClick(func() error {
				return errors.New("element not interactable")
			}),
			wantStage: StageClick,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			d := webdrivertest.NewDriver("s1")
			if tt.el != nil {
				d.Set(loginBtn, tt.el)
			}
			i, _ := newTestInteractor(t, d)

			_, err := i.ClickWhenReady(context.TODO(), loginBtn)
			g.Expect(err).To(HaveOccurred())
			expectStage(g, err, tt.wantStage)
			if tt.el != nil && tt.wantStage != StageClick {
				g.Expect(tt.el.Clicks()).To(BeZero())
			}
		})
	}
}

func TestClickAndConfirmStateChange(t *testing.T) {
	g := NewWithT(t)
	d := webdrivertest.NewDriver("s1")
	i, _ := newTestInteractor(t, d)

	btn := webdrivertest.NewElement("")
	btn.OnClick(func() error {
		// the handler is asynchronous, the class flips a bit later
		go func() {
			time.Sleep(10 * time.Millisecond)
			if btn.Clicks()%2 == 1 {
				d.Set(heartDone, btn)
			} else {
				d.Set(heartDone)
			}
		}()
		return nil
	})
	d.Set(heart, btn)

	err := i.ClickAndConfirmStateChange(context.TODO(), heart, heartDone)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(btn.Clicks()).To(Equal(1))

	// repeated call must not toggle back
	err = i.ClickAndConfirmStateChange(context.TODO(), heart, heartDone)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(btn.Clicks()).To(Equal(1))

	els, err := d.FindElements(heartDone.By, heartDone.Value)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(els).To(HaveLen(1))
}

func TestClickAndConfirmStateChange_NoEffect(t *testing.T) {
	g := NewWithT(t)
	d := webdrivertest.NewDriver("s1")
	i, _ := newTestInteractor(t, d)

	btn := webdrivertest.NewElement("")
	d.Set(heart, btn)

	err := i.ClickAndConfirmStateChange(context.TODO(), heart, heartDone)
	g.Expect(err).To(HaveOccurred())
	expectStage(g, err, StageConfirm)
	g.Expect(models.IsKind(err, models.TimeoutErr)).To(BeTrue())
	g.Expect(btn.Clicks()).To(Equal(1))
}

func TestVerifyTextPresent(t *testing.T) {
	g := NewWithT(t)
	d := webdrivertest.NewDriver("s1")
	i, _ := newTestInteractor(t, d)
	l := locator.ByText("p", "Galaxy S20+")

	_, err := i.VerifyTextPresent(context.TODO(), l, "Galaxy S20+", 20*time.Millisecond)
	expectStage(g, err, StageLocate)

	d.Set(l, webdrivertest.NewElement("Galaxy S20+"))
	text, err := i.VerifyTextPresent(context.TODO(), l, "Galaxy S20+", time.Second)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(text).To(Equal("Galaxy S20+"))

	d.Set(l, webdrivertest.NewElement("Galaxy S20"))
	_, err = i.VerifyTextPresent(context.TODO(), l, "Galaxy S20+", time.Second)
	g.Expect(models.IsKind(err, models.AssertionErr)).To(BeTrue())
}

func TestVerifyCount(t *testing.T) {
	g := NewWithT(t)
	d := webdrivertest.NewDriver("s1")
	i, _ := newTestInteractor(t, d)
	l := locator.ByCSS(".shelf-item")

	err := i.VerifyCount(context.TODO(), l, 0)
	g.Expect(err).ToNot(HaveOccurred())

	d.Set(l, webdrivertest.NewElement("a"))
	g.Expect(i.VerifyCount(context.TODO(), l, 1)).To(Succeed())

	d.Set(l, webdrivertest.NewElement("a"), webdrivertest.NewElement("b"))
	err = i.VerifyCount(context.TODO(), l, 1)
	g.Expect(models.IsKind(err, models.AssertionErr)).To(BeTrue())
	g.Expect(err.Error()).To(Equal("expected 1 elements matching css selector=.shelf-item, got 2"))
}

func TestNavigateAndVerify(t *testing.T) {
	g := NewWithT(t)
	d := webdrivertest.NewDriver("s1")
	i, _ := newTestInteractor(t, d)
	root := locator.ByID("__next")

	d.OnGet(func(string) {
		d.Set(root, webdrivertest.NewElement(""))
	})
	err := i.NavigateAndVerify(context.TODO(), "https://shop/signin", root, time.Second)
	g.Expect(err).ToNot(HaveOccurred())
	url, _ := d.CurrentURL()
	g.Expect(url).To(Equal("https://shop/signin"))

	d.SetGetError(errors.New("unreachable"))
	err = i.NavigateAndVerify(context.TODO(), "https://shop/signin", root, time.Second)
	expectStage(g, err, StageNavigate)
}

func TestWaitGone(t *testing.T) {
	g := NewWithT(t)
	d := webdrivertest.NewDriver("s1")
	i, _ := newTestInteractor(t, d)
	spinner := locator.ByCSS(".spinner")

	d.Set(spinner, webdrivertest.NewElement(""))
	err := i.WaitGone(context.TODO(), spinner, 20*time.Millisecond, "spinner did not disappear")
	g.Expect(err).To(MatchError("spinner did not disappear"))

	go func() {
		time.Sleep(10 * time.Millisecond)
		d.Set(spinner)
	}()
	g.Expect(i.WaitGone(context.TODO(), spinner, time.Second, "spinner did not disappear")).To(Succeed())
}

func TestSleep(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Sleep(context.TODO(), time.Millisecond)).To(Succeed())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g.Expect(Sleep(ctx, time.Hour)).To(MatchError(context.Canceled))
}
