package cli

import (
	"os"
	"os/user"
)

// Identity supplies the default author name.
type Identity interface {
	Username() string
}

// osIdentity reports the login name of the current user.
type osIdentity struct{}

func (osIdentity) Username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
