// Package webdrivertest provides an in-memory WebDriver double with a tiny
// scriptable DOM keyed by locator.
package webdrivertest

import (
	"slices"
	"sync"

	"github.com/tebeka/selenium"

	"github.com/selebrow/journey/pkg/locator"
)

const (
	noSuchElement = "no such element"
	staleElement  = "stale element reference"
)

func NoSuchElementError(l locator.Locator) *selenium.Error {
	return &selenium.Error{Err: noSuchElement, Message: "unable to locate element: " + l.String()}
}

func StaleElementError() *selenium.Error {
	return &selenium.Error{Err: staleElement, Message: "element is not attached to the page document"}
}

type Element struct {
	// unimplemented methods panic
	selenium.WebElement

	mu        sync.Mutex
	text      string
	displayed bool
	enabled   bool
	stale     bool
	attrs     map[string]string
	clicks    int
	onClick   func() error
}

func NewElement(text string) *Element {
	return &Element{
		text:      text,
		displayed: true,
		enabled:   true,
		attrs:     make(map[string]string),
	}
}

func (e *Element) SetDisplayed(v bool) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.displayed = v
	return e
}

func (e *Element) SetEnabled(v bool) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = v
	return e
}

func (e *Element) SetStale(v bool) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stale = v
	return e
}

func (e *Element) SetAttribute(name, value string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
	return e
}

// OnClick registers a handler invoked on every click, its error is returned by Click
func (e *Element) OnClick(fn func() error) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onClick = fn
	return e
}

func (e *Element) Clicks() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clicks
}

func (e *Element) Click() error {
	e.mu.Lock()
	if e.stale {
		e.mu.Unlock()
		return StaleElementError()
	}
	e.clicks++
	fn := e.onClick
	e.mu.Unlock()

	if fn != nil {
		return fn()
	}
	return nil
}

func (e *Element) Text() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stale {
		return "", StaleElementError()
	}
	return e.text, nil
}

func (e *Element) IsDisplayed() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stale {
		return false, StaleElementError()
	}
	return e.displayed, nil
}

func (e *Element) IsEnabled() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stale {
		return false, StaleElementError()
	}
	return e.enabled, nil
}

func (e *Element) GetAttribute(name string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stale {
		return "", StaleElementError()
	}
	return e.attrs[name], nil
}

type Driver struct {
	// unimplemented methods panic
	selenium.WebDriver

	mu       sync.Mutex
	id       string
	elements map[locator.Locator][]*Element
	url      string
	source   string
	scripts  []string
	quits    int
	quitErr  error
	getErr   error
	onGet    func(url string)
}

func NewDriver(id string) *Driver {
	return &Driver{
		id:       id,
		elements: make(map[locator.Locator][]*Element),
	}
}

// Set replaces elements matched by l, calling it without elements removes them
func (d *Driver) Set(l locator.Locator, els ...*Element) *Driver {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := locator.Locator{By: l.By, Value: l.Value}
	if len(els) == 0 {
		delete(d.elements, key)
	} else {
		d.elements[key] = els
	}
	return d
}

func (d *Driver) SetPageSource(src string) *Driver {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.source = src
	return d
}

func (d *Driver) SetQuitError(err error) *Driver {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quitErr = err
	return d
}

func (d *Driver) SetGetError(err error) *Driver {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.getErr = err
	return d
}

func (d *Driver) OnGet(fn func(url string)) *Driver {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onGet = fn
	return d
}

func (d *Driver) Scripts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.scripts)
}

func (d *Driver) Quits() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.quits
}

func (d *Driver) SessionID() string {
	return d.id
}

func (d *Driver) FindElement(by, value string) (selenium.WebElement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	l := locator.Locator{By: by, Value: value}
	els := d.elements[l]
	if len(els) == 0 {
		return nil, NoSuchElementError(l)
	}
	return els[0], nil
}

func (d *Driver) FindElements(by, value string) ([]selenium.WebElement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	els := d.elements[locator.Locator{By: by, Value: value}]
	res := make([]selenium.WebElement, 0, len(els))
	for _, e := range els {
		res = append(res, e)
	}
	return res, nil
}

func (d *Driver) Get(url string) error {
	d.mu.Lock()
	if d.getErr != nil {
		d.mu.Unlock()
		return d.getErr
	}
	d.url = url
	fn := d.onGet
	d.mu.Unlock()

	if fn != nil {
		fn(url)
	}
	return nil
}

func (d *Driver) CurrentURL() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.url, nil
}

func (d *Driver) PageSource() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.source, nil
}

func (d *Driver) ExecuteScript(script string, _ []interface{}) (interface{}, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scripts = append(d.scripts, script)
	return nil, nil
}

func (d *Driver) Quit() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quits++
	return d.quitErr
}
