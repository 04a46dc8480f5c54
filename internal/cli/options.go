package cli

import "time"

type Options struct {
	Command   string
	APIURL    string
	TokenFile string
	Debug     bool
	LogFile   string
	Timeout   time.Duration
}
