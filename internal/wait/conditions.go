package wait

import (
	"context"

	"github.com/tebeka/selenium"

	"github.com/selebrow/journey/pkg/locator"
)

type Finder interface {
	FindElement(by, value string) (selenium.WebElement, error)
	FindElements(by, value string) ([]selenium.WebElement, error)
}

func ElementLocated(f Finder, l locator.Locator) Condition[selenium.WebElement] {
	return func(_ context.Context) (selenium.WebElement, bool, error) {
		el, err := f.FindElement(l.By, l.Value)
		if err != nil {
			return nil, false, err
		}
		return el, el != nil, nil
	}
}

// ElementAbsent is satisfied when nothing matches l, including the case when it never appeared
func ElementAbsent(f Finder, l locator.Locator) Condition[struct{}] {
	return func(_ context.Context) (struct{}, bool, error) {
		els, err := f.FindElements(l.By, l.Value)
		if err != nil {
			return struct{}{}, false, err
		}
		return struct{}{}, len(els) == 0, nil
	}
}

func ElementVisible(el selenium.WebElement) Condition[selenium.WebElement] {
	return func(_ context.Context) (selenium.WebElement, bool, error) {
		ok, err := el.IsDisplayed()
		return el, ok, err
	}
}

func ElementEnabled(el selenium.WebElement) Condition[selenium.WebElement] {
	return func(_ context.Context) (selenium.WebElement, bool, error) {
		ok, err := el.IsEnabled()
		return el, ok, err
	}
}
