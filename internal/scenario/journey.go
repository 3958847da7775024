package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/selebrow/journey/pkg/config"
	"github.com/selebrow/journey/pkg/locator"
)

const (
	signInPath = "/signin"

	passedReason = "User was able to log in, favorite an item, and verify it."
)

var (
	appRoot          = locator.ByID("__next").Describe("application root")
	usernameDropdown = locator.ByID("username").Describe("username dropdown")
	passwordDropdown = locator.ByID("password").Describe("password dropdown")
	loginButton      = locator.ByID("login-btn").Describe("login button")
	loginErrorBanner = locator.ByCSS(`.api-error, .error-message, [role="alert"]`).Describe("login error banner")
	spinner          = locator.ByCSS(".spinner").Describe("loading spinner")
	favouritesLink   = locator.ByID("favourites").Describe("favourites link")
	shelfItem        = locator.ByCSS(".shelf-item").Describe("shelf item")
)

// Journey shop specific inputs of the scenario
type Journey struct {
	SiteURL  string
	Username string
	Password string
	Vendor   string
	Product  string
}

func NewJourney(cfg config.JourneyConfig) Journey {
	return Journey{
		SiteURL:  cfg.SiteURL(),
		Username: cfg.Username(),
		Password: cfg.Password(),
		Vendor:   cfg.Vendor(),
		Product:  cfg.Product(),
	}
}

func (j Journey) SignInURL() string {
	return strings.TrimRight(j.SiteURL, "/") + signInPath
}

func (j Journey) authMarker() locator.Locator {
	return locator.ByTextContains("span", j.Username).Describe(fmt.Sprintf("signed in user %q", j.Username))
}

func (j Journey) vendorFilter() locator.Locator {
	return locator.ByXPath(fmt.Sprintf("//label[./input[@value=%s]]/span[@class='checkmark']", locator.Literal(j.Vendor))).
		Describe(fmt.Sprintf("%s filter", j.Vendor))
}

func (j Journey) productTitle() locator.Locator {
	return locator.ByText("p", j.Product).Describe(fmt.Sprintf("product %q", j.Product))
}

func (j Journey) shelfItemXPath() string {
	return fmt.Sprintf("//div[contains(@class, 'shelf-item') and .//p[text()=%s]]", locator.Literal(j.Product))
}

func (j Journey) favouriteButton() locator.Locator {
	return locator.ByXPath(j.shelfItemXPath() +
		"//button[contains(@class, 'MuiIconButton-root') and .//*[local-name()='svg']]").
		Describe(fmt.Sprintf("favourite button of %q", j.Product))
}

func (j Journey) favouriteConfirmed() locator.Locator {
	return locator.ByXPath(j.shelfItemXPath() + "//button[contains(@class, 'clicked')]").
		Describe(fmt.Sprintf("checked favourite button of %q", j.Product))
}

// StepTimeouts budgets of the scenario steps not covered by interact.Timeouts
type StepTimeouts struct {
	PageReady      time.Duration
	SignedIn       time.Duration
	AfterLogin     time.Duration
	FilterApplied  time.Duration
	ProductListed  time.Duration
	AfterFavourite time.Duration
	Favourites     time.Duration
}

func DefaultStepTimeouts() StepTimeouts {
	return StepTimeouts{
		PageReady:      20 * time.Second,
		SignedIn:       30 * time.Second,
		AfterLogin:     2 * time.Second,
		FilterApplied:  10 * time.Second,
		ProductListed:  15 * time.Second,
		AfterFavourite: time.Second,
		Favourites:     20 * time.Second,
	}
}
