package locator

import (
	"fmt"
	"strings"

	"github.com/tebeka/selenium"
)

// Locator describes how to find one or more DOM elements
type Locator struct {
	By    string
	Value string
	desc  string
}

func ByID(id string) Locator {
	return Locator{By: selenium.ByID, Value: id}
}

func ByCSS(selector string) Locator {
	return Locator{By: selenium.ByCSSSelector, Value: selector}
}

func ByXPath(xpath string) Locator {
	return Locator{By: selenium.ByXPATH, Value: xpath}
}

// ByText matches tag elements whose own text equals text exactly, empty tag matches any element
func ByText(tag, text string) Locator {
	return ByXPath(fmt.Sprintf("//%s[text()=%s]", anyTag(tag), Literal(text)))
}

// ByTextContains matches tag elements whose own text contains text
func ByTextContains(tag, text string) Locator {
	return ByXPath(fmt.Sprintf("//%s[contains(text(), %s)]", anyTag(tag), Literal(text)))
}

// ByClassFragment matches tag elements whose class attribute contains fragment
func ByClassFragment(tag, fragment string) Locator {
	return ByXPath(fmt.Sprintf("//%s[contains(@class, %s)]", anyTag(tag), Literal(fragment)))
}

// ReactSelectOption matches a react-select menu option by its visible text
func ReactSelectOption(text string) Locator {
	return ByXPath(fmt.Sprintf("//div[contains(@id, 'react-select') and text()=%s]", Literal(text))).
		Describe(fmt.Sprintf("option %q", text))
}

// Describe attaches a human readable description used in logs and failure messages
func (l Locator) Describe(desc string) Locator {
	l.desc = desc
	return l
}

func (l Locator) String() string {
	if l.desc != "" {
		return l.desc
	}
	return fmt.Sprintf("%s=%s", l.By, l.Value)
}

func (l Locator) IsZero() bool {
	return l.By == "" && l.Value == ""
}

// Literal quotes s as an XPath 1.0 string literal. XPath has no escape sequences,
// so strings holding both quote kinds are assembled with concat().
func Literal(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	var sb strings.Builder
	sb.WriteString("concat(")
	for i, p := range parts {
		if i > 0 {
			sb.WriteString(`, "'", `)
		}
		sb.WriteRune('\'')
		sb.WriteString(p)
		sb.WriteRune('\'')
	}
	sb.WriteRune(')')
	return sb.String()
}

func anyTag(tag string) string {
	if tag == "" {
		return "*"
	}
	return tag
}
