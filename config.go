package cursorbuf

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"

	"github.com/performancecopilot/cursorbuf/fileio"
	"github.com/pkg/errors"
)

// confPath stores the path of the KEY=VALUE config file
var confPath string

// config stores the values read from the config file
var config map[string]string

var defaultEncoding = UTF8
var defaultFileMode = fileio.DefaultMode

// pat stores a valid key-value pattern line
var pat = regexp.MustCompile("^([A-Z0-9_]+)=(.*)$")

// initConfig reads CURSORBUF_CONF (or ~/.cursorbuf.conf) and applies
// CURSORBUF_ENCODING and CURSORBUF_FILE_MODE, environment variables win
// over the file
func initConfig() error {
	p, ok := os.LookupEnv("CURSORBUF_CONF")
	if !ok {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		p = filepath.Join(home, ".cursorbuf.conf")
	}
	confPath = p

	config = make(map[string]string)
	ferr := readConfig(confPath)
	if os.IsNotExist(errors.Cause(ferr)) {
		ferr = nil
	}

	if v, ok := lookupConfig("CURSORBUF_ENCODING"); ok {
		e, err := ParseEncoding(v)
		if err != nil {
			return err
		}
		defaultEncoding = e
	}

	if v, ok := lookupConfig("CURSORBUF_FILE_MODE"); ok {
		if _, err := fileio.ParseMode(v); err != nil {
			return err
		}
		defaultFileMode = v
	}

	return ferr
}

func readConfig(p string) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if matches := pat.FindStringSubmatch(scanner.Text()); matches != nil {
			config[matches[1]] = matches[2]
		}
	}

	return errors.Wrapf(scanner.Err(), "reading %s", p)
}

func lookupConfig(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}

	v, ok := config[key]
	return v, ok
}

// DefaultEncoding returns the encoding new buffers start with
func DefaultEncoding() Encoding { return defaultEncoding }

// SetDefaultEncoding changes the encoding new buffers start with
func SetDefaultEncoding(e Encoding) error {
	e, err := ParseEncoding(string(e))
	if err != nil {
		return err
	}

	defaultEncoding = e
	return nil
}

// DefaultFileMode returns the mode OpenFile uses when none is given
func DefaultFileMode() string { return defaultFileMode }
