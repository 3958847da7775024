package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/selebrow/journey/pkg/models"
)

const (
	UsernameEnv  = "BROWSERSTACK_USERNAME"
	AccessKeyEnv = "BROWSERSTACK_ACCESS_KEY"

	masked  = "*****"
	notSet  = "Not found"
	missing = "BrowserStack login details are missing! Please set " + UsernameEnv + " and " + AccessKeyEnv + "."
)

type LookupEnvFunc func(key string) (string, bool)

// Credentials grid account, must never be logged in cleartext
type Credentials struct {
	Username  string
	AccessKey string
}

// LoadCredentials reads the account from the environment, lookup defaults to os.LookupEnv
func LoadCredentials(lookup LookupEnvFunc) (Credentials, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	user, _ := lookup(UsernameEnv)
	key, _ := lookup(AccessKeyEnv)
	c := Credentials{
		Username:  strings.TrimSpace(user),
		AccessKey: strings.TrimSpace(key),
	}
	return c, c.Validate()
}

func (c Credentials) Validate() error {
	if c.Username == "" || c.AccessKey == "" {
		return models.NewConfigurationError(errors.New(missing))
	}
	return nil
}

func (c Credentials) UserInfo() *url.Userinfo {
	return url.UserPassword(c.Username, c.AccessKey)
}

func (c Credentials) String() string {
	return "username=" + maskValue(c.Username) + " access_key=" + maskValue(c.AccessKey)
}

func maskValue(v string) string {
	if v == "" {
		return notSet
	}
	return masked
}
